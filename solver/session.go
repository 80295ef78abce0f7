package solver

import (
	"errors"
	"slices"

	"github.com/powellquiring/wordle-solver/entropy"
	"github.com/powellquiring/wordle-solver/wordle"
)

// ErrSessionFinished is returned when advancing a session that is Resolved or Exhausted.
var ErrSessionFinished = errors.New("session finished")

// State is one step of an interactive solve. A State is a value, Advance returns a
// new one and leaves its argument alone.
type State struct {
	Phase       Outcome
	Records     []wordle.GuessRecord
	Constraints wordle.Constraints
	Candidates  []wordle.Word
}

// Start is the state before any guess, every dictionary word is a candidate.
func (s *Solver) Start() State {
	candidates := s.dictionary.Words()
	return State{
		Phase:       outcomeFor(len(candidates)),
		Constraints: wordle.NewConstraints(),
		Candidates:  candidates,
	}
}

// Advance adds one guess record to the state.
//
//	Collecting -> Collecting  more than one candidate left
//	Collecting -> Resolved    one candidate left, or the feedback is all correct
//	Collecting -> Exhausted   no candidate left
//
// Resolved and Exhausted are final.
func (s *Solver) Advance(state State, record wordle.GuessRecord) (State, error) {
	if state.Phase != Collecting {
		return state, ErrSessionFinished
	}
	next := State{
		Records:     append(slices.Clip(state.Records), record),
		Constraints: state.Constraints,
	}
	if err := next.Constraints.Apply(record); err != nil {
		return state, err
	}
	if record.Feedback.Solved() {
		next.Candidates = []wordle.Word{record.Word}
	} else {
		next.Candidates = wordle.Filter(s.dictionary, next.Constraints)
	}
	next.Phase = outcomeFor(len(next.Candidates))
	s.logger.Debug().Str("guess", record.String()).Int("candidates", len(next.Candidates)).Stringer("phase", next.Phase).Msg("advance")
	return next, nil
}

// Suggestions ranks the candidates of state, at most limit of them when limit > 0.
func (s *Solver) Suggestions(state State, limit int) (Result, error) {
	if state.Phase == Resolved && len(state.Candidates) == 1 && !s.dictionary.Contains(state.Candidates[0]) {
		// solved with a word the table does not know
		return Result{Words: []entropy.Scored{{Word: state.Candidates[0]}}, Candidates: 1, Outcome: Resolved}, nil
	}
	return s.rank(state.Candidates, limit)
}
