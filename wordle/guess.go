package wordle

import (
	"fmt"
	"strings"
)

// GuessRecord is one word that was tried and the feedback the puzzle returned for it.
type GuessRecord struct {
	Word     Word
	Feedback Feedback
}

func ParseGuess(word, feedback string) (GuessRecord, error) {
	w, err := ParseWord(word)
	if err != nil {
		return GuessRecord{}, err
	}
	f, err := ParseFeedback(feedback)
	if err != nil {
		return GuessRecord{}, err
	}
	return GuessRecord{Word: w, Feedback: f}, nil
}

// ParseGuessPair parses the "word:feedback" form, for example "crane:gy***".
func ParseGuessPair(pair string) (GuessRecord, error) {
	word, feedback, ok := strings.Cut(pair, ":")
	if !ok {
		return GuessRecord{}, fmt.Errorf("%w: expected word:feedback, got %q", ErrMalformedFeedback, pair)
	}
	return ParseGuess(word, feedback)
}

// ParseGuesses pairs up words with feedbacks, the slices must be the same length.
func ParseGuesses(words, feedbacks []string) ([]GuessRecord, error) {
	if len(words) != len(feedbacks) {
		return nil, fmt.Errorf("%w: %d words but %d feedbacks", ErrMalformedFeedback, len(words), len(feedbacks))
	}
	ret := make([]GuessRecord, 0, len(words))
	for i := range words {
		record, err := ParseGuess(words[i], feedbacks[i])
		if err != nil {
			return nil, err
		}
		ret = append(ret, record)
	}
	return ret, nil
}

func (r GuessRecord) String() string {
	return r.Word.String() + ":" + r.Feedback.String()
}
