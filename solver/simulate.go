package solver

import (
	"errors"
	"fmt"

	"github.com/powellquiring/wordle-solver/wordle"
)

// ErrNotSolved is returned by Simulate when the candidates run out before the target is guessed.
var ErrNotSolved = errors.New("target not solved")

// Simulate plays one game against target. The openers are guessed first, in order,
// then the best ranked candidate each turn. The records of every guess are returned,
// the last one is all correct when err is nil.
func (s *Solver) Simulate(target wordle.Word, openers ...wordle.Word) ([]wordle.GuessRecord, error) {
	state := s.Start()
	// a ranked guess is a candidate and leaves the candidates unless it is the target
	for turn := 0; state.Phase == Collecting; turn++ {
		var guess wordle.Word
		if turn < len(openers) {
			guess = openers[turn]
		} else {
			result, err := s.Suggestions(state, 1)
			if err != nil {
				return state.Records, err
			}
			guess = result.Words[0].Word
		}
		next, err := s.Advance(state, wordle.GuessRecord{Word: guess, Feedback: wordle.Score(guess, target)})
		if err != nil {
			return state.Records, err
		}
		state = next
	}

	records := state.Records
	if state.Phase == Exhausted {
		return records, fmt.Errorf("%w: %s, no candidate left", ErrNotSolved, target)
	}
	if n := len(records); n > 0 && records[n-1].Feedback.Solved() {
		return records, nil
	}
	last := state.Candidates[0]
	records = append(records, wordle.GuessRecord{Word: last, Feedback: wordle.Score(last, target)})
	if !records[len(records)-1].Feedback.Solved() {
		return records, fmt.Errorf("%w: %s, resolved to %s", ErrNotSolved, target, last)
	}
	s.logger.Debug().Stringer("target", target).Int("guesses", len(records)).Msg("simulated")
	return records, nil
}
