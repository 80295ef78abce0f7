package entropy

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/wordle-solver/wordle"
)

// ErrMissingEntropyScore is returned when a word to rank is not in the table.
var ErrMissingEntropyScore = errors.New("missing entropy score")

// guesses handed to one worker at a time
const chunkSize = 64

// Table maps each guess word to its entropy in bits.
// It belongs to the target list it was computed against and is read only.
type Table struct {
	words  []wordle.Word
	scores map[wordle.Word]float64
}

func (t *Table) Score(word wordle.Word) (float64, bool) {
	ret, ok := t.scores[word]
	return ret, ok
}

func (t *Table) Len() int {
	return len(t.words)
}

// Range visits the words in the order they were computed.
func (t *Table) Range(yield func(word wordle.Word, score float64) bool) {
	for _, word := range t.words {
		if !yield(word, t.scores[word]) {
			return
		}
	}
}

// Progress is told how many guesses have been scored, a progressbar.ProgressBar is one.
type Progress interface {
	Add(num int) error
}

type options struct {
	workers  int
	progress Progress
	logger   zerolog.Logger
}

type Option func(*options)

// WithWorkers sets the number of guesses scored at once, default GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

func WithProgress(progress Progress) Option {
	return func(o *options) {
		o.progress = progress
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Compute scores every dictionary word against the whole dictionary.
func Compute(ctx context.Context, d *wordle.Dictionary, opts ...Option) (*Table, error) {
	words := d.Words()
	return ComputeAgainst(ctx, words, words, opts...)
}

// ComputeAgainst scores each guess by the entropy of the patterns it produces against targets.
// Guesses are independent of each other and are split across the workers.
func ComputeAgainst(ctx context.Context, guesses, targets []wordle.Word, opts ...Option) (*Table, error) {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()
	o.logger.Debug().Int("guesses", len(guesses)).Int("targets", len(targets)).Int("workers", o.workers).Msg("computing entropy")

	scores := make([]float64, len(guesses))
	var progressMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for first := 0; first < len(guesses); first += chunkSize {
		last := min(first+chunkSize, len(guesses))
		g.Go(func() error {
			var counts [wordle.NumPatterns]int
			for i := first; i < last; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				counts = [wordle.NumPatterns]int{}
				countPatterns(&guesses[i], targets, &counts)
				scores[i] = shannon(&counts, len(targets))
			}
			if o.progress != nil {
				progressMu.Lock()
				defer progressMu.Unlock()
				return o.progress.Add(last - first)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing entropy: %w", err)
	}

	ret := &Table{
		words:  make([]wordle.Word, 0, len(guesses)),
		scores: make(map[wordle.Word]float64, len(guesses)),
	}
	// a repeated guess is kept once, at its first position
	for i, guess := range guesses {
		if _, ok := ret.scores[guess]; ok {
			continue
		}
		ret.words = append(ret.words, guess)
		ret.scores[guess] = scores[i]
	}
	o.logger.Info().Int("words", len(ret.words)).Dur("elapsed", time.Since(start)).Msg("entropy table ready")
	return ret, nil
}

// Scored is a word with its entropy.
type Scored struct {
	Word  wordle.Word
	Score float64
}

// RankScored orders candidates by descending entropy, equal scores keep their input order.
func RankScored(candidates []wordle.Word, t *Table) ([]Scored, error) {
	ret := make([]Scored, len(candidates))
	for i, candidate := range candidates {
		score, ok := t.Score(candidate)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingEntropyScore, candidate)
		}
		ret[i] = Scored{Word: candidate, Score: score}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Score > ret[j].Score
	})
	return ret, nil
}

// Rank is RankScored without the scores.
func Rank(candidates []wordle.Word, t *Table) ([]wordle.Word, error) {
	scored, err := RankScored(candidates, t)
	if err != nil {
		return nil, err
	}
	ret := make([]wordle.Word, len(scored))
	for i, s := range scored {
		ret[i] = s.Word
	}
	return ret, nil
}
