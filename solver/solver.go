// Package solver narrows the dictionary with the guesses so far and ranks what is
// left by entropy. The entropy table is computed once per dictionary and reused for
// every suggestion, since it does not depend on the guesses.
package solver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/powellquiring/wordle-solver/entropy"
	"github.com/powellquiring/wordle-solver/wordle"
)

// Outcome says how far a solve has narrowed the dictionary.
type Outcome int

const (
	// Collecting means more than one candidate is left.
	Collecting Outcome = iota
	// Resolved means exactly one candidate is left.
	Resolved
	// Exhausted means the guesses ruled out every word.
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Collecting:
		return "collecting"
	case Resolved:
		return "resolved"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

func outcomeFor(candidates int) Outcome {
	switch candidates {
	case 0:
		return Exhausted
	case 1:
		return Resolved
	}
	return Collecting
}

type Solver struct {
	dictionary *wordle.Dictionary
	table      *entropy.Table
	logger     zerolog.Logger
}

// New computes the entropy table for the dictionary, opts are passed to entropy.Compute.
func New(ctx context.Context, d *wordle.Dictionary, logger zerolog.Logger, opts ...entropy.Option) (*Solver, error) {
	opts = append([]entropy.Option{entropy.WithLogger(logger)}, opts...)
	table, err := entropy.Compute(ctx, d, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithTable(d, table, logger), nil
}

// NewWithTable uses a table already computed for d.
func NewWithTable(d *wordle.Dictionary, table *entropy.Table, logger zerolog.Logger) *Solver {
	return &Solver{dictionary: d, table: table, logger: logger}
}

func (s *Solver) Dictionary() *wordle.Dictionary {
	return s.dictionary
}

func (s *Solver) Table() *entropy.Table {
	return s.table
}

// Result is the ranked words for a guess history.
type Result struct {
	Words      []entropy.Scored
	Candidates int // words left before truncation
	Outcome    Outcome
}

// Suggest filters the dictionary with records and returns the best limit words, limit <= 0 is all of them.
// Guesses that rule out every word give an empty Exhausted result, not an error.
func (s *Solver) Suggest(records []wordle.GuessRecord, limit int) (Result, error) {
	c, err := wordle.DeriveConstraints(records)
	if err != nil {
		return Result{}, err
	}
	return s.rank(wordle.Filter(s.dictionary, c), limit)
}

func (s *Solver) rank(candidates []wordle.Word, limit int) (Result, error) {
	ranked, err := entropy.RankScored(candidates, s.table)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug().Int("candidates", len(candidates)).Msg("ranked")
	return Result{
		Words:      Top(ranked, limit),
		Candidates: len(candidates),
		Outcome:    outcomeFor(len(candidates)),
	}, nil
}

// Top returns the first limit entries, all of them when limit <= 0.
func Top[T any](ranked []T, limit int) []T {
	if limit <= 0 || limit >= len(ranked) {
		return ranked
	}
	return ranked[:limit]
}

// WordsOf drops the scores.
func WordsOf(scored []entropy.Scored) []wordle.Word {
	ret := make([]wordle.Word, len(scored))
	for i, s := range scored {
		ret[i] = s.Word
	}
	return ret
}
