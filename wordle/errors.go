package wordle

import "errors"

var (
	// ErrInvalidFeedbackSymbol is returned for a feedback symbol outside Correct, Present, Absent.
	ErrInvalidFeedbackSymbol = errors.New("invalid feedback symbol")
	ErrMalformedFeedback     = errors.New("feedback must have 5 symbols")
	ErrMalformedWord         = errors.New("word must be 5 letters a-z")
	ErrDuplicateWord         = errors.New("duplicate word in dictionary")
)
