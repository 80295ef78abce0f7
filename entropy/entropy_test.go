package entropy

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordle-solver/wordle"
)

var testWords = []string{
	"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal", "evade", "naval", "serve",
	"heath", "dwarf", "model", "karma", "stink", "grade", "quiet", "bench", "abate", "feign",
	"sword", "crane", "these", "geese", "speed", "abide", "there", "eerie", "heron", "petal",
	"abcde", "eabcd", "edcba", "aabbc",
}

func WW(s string) wordle.Word {
	return wordle.MustParseWord(s)
}

func dictionary(t *testing.T, words ...string) *wordle.Dictionary {
	t.Helper()
	d, err := wordle.NewDictionaryFromStrings(words)
	require.NoError(t, err)
	return d
}

func TestPatternMatchesScore(t *testing.T) {
	words := dictionary(t, testWords...).Words()
	for _, guess := range words {
		patterns := Patterns(guess, words, nil)
		require.Len(t, patterns, len(words))
		for i, target := range words {
			assert.Equal(t, wordle.ScorePattern(guess, target), patterns[i], "%s/%s", guess, target)
		}
	}
}

func TestAnagramIsAllPresent(t *testing.T) {
	patterns := Patterns(WW("abcde"), []wordle.Word{WW("eabcd"), WW("edcba")}, nil)
	assert.Equal(t, "yyyyy", patterns[0].String())
	assert.Equal(t, "yygyy", patterns[1].String())
}

func TestDistribution(t *testing.T) {
	words := dictionary(t, testWords...).Words()
	counts := Distribution(WW("crane"), words)
	total := 0
	for _, count := range counts {
		total += count
	}
	assert.Equal(t, len(words), total)
	assert.Equal(t, 1, counts[wordle.NumPatterns-1], "only crane itself is all correct")
}

func TestEntropyKnownValues(t *testing.T) {
	assert.Equal(t, 0.0, EntropyOf(WW("aaaaa"), []wordle.Word{WW("aaaaa")}))
	assert.Equal(t, 0.0, EntropyOf(WW("zzzzz"), []wordle.Word{WW("aaaaa"), WW("bbbbb")}), "one pattern")
	assert.Equal(t, 1.0, EntropyOf(WW("aaaaa"), []wordle.Word{WW("aaaaa"), WW("bbbbb")}))

	four := []wordle.Word{WW("abcde"), WW("eabcd"), WW("fghij"), WW("abcdf")}
	assert.Equal(t, 2.0, EntropyOf(WW("abcde"), four))
	assert.Equal(t, 0.0, EntropyOf(WW("abcde"), nil))
}

func TestComputeBounds(t *testing.T) {
	d := dictionary(t, testWords...)
	table, err := Compute(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, d.Len(), table.Len())
	for word, score := range table.Range {
		assert.GreaterOrEqual(t, score, 0.0, word.String())
		assert.LessOrEqual(t, score, MaxEntropy, word.String())
		assert.Equal(t, EntropyOf(word, d.Words()), score, word.String())
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	d := dictionary(t, testWords...)
	one, err := Compute(context.Background(), d, WithWorkers(1))
	require.NoError(t, err)
	many, err := Compute(context.Background(), d, WithWorkers(8))
	require.NoError(t, err)
	again, err := Compute(context.Background(), d, WithWorkers(8))
	require.NoError(t, err)
	for word, score := range one.Range {
		got, ok := many.Score(word)
		require.True(t, ok)
		assert.Equal(t, score, got, word.String())
		got, _ = again.Score(word)
		assert.Equal(t, score, got, word.String())
	}
}

func TestComputeEmpty(t *testing.T) {
	table, err := Compute(context.Background(), dictionary(t))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

type countingProgress struct {
	mu    sync.Mutex
	count int
}

func (p *countingProgress) Add(num int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count += num
	return nil
}

func TestComputeProgress(t *testing.T) {
	words := make([]string, 0, 200)
	for a := byte('a'); a <= 'z' && len(words) < 200; a++ {
		for b := byte('a'); b <= 'z' && len(words) < 200; b++ {
			words = append(words, string([]byte{a, b, 'x', 'y', 'z'}))
		}
	}
	d := dictionary(t, words...)
	progress := &countingProgress{}
	_, err := Compute(context.Background(), d, WithProgress(progress), WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, d.Len(), progress.count)
}

func TestComputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Compute(ctx, dictionary(t, testWords...))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank(t *testing.T) {
	d := dictionary(t, "aaaaa", "bbbbb", "abcde", "eabcd", "fghij", "abcdf")
	table, err := Compute(context.Background(), d)
	require.NoError(t, err)

	ranked, err := RankScored(d.Words(), table)
	require.NoError(t, err)
	require.Len(t, ranked, d.Len())
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	// aaaaa and bbbbb score the same, input order decides
	words, err := Rank([]wordle.Word{WW("bbbbb"), WW("aaaaa")}, table)
	require.NoError(t, err)
	assert.Equal(t, []wordle.Word{WW("bbbbb"), WW("aaaaa")}, words)
	words, err = Rank([]wordle.Word{WW("aaaaa"), WW("bbbbb")}, table)
	require.NoError(t, err)
	assert.Equal(t, []wordle.Word{WW("aaaaa"), WW("bbbbb")}, words)

	words, err = Rank([]wordle.Word{WW("abcde")}, table)
	require.NoError(t, err)
	assert.Equal(t, []wordle.Word{WW("abcde")}, words)

	words, err = Rank(nil, table)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestRankMissingScore(t *testing.T) {
	table, err := Compute(context.Background(), dictionary(t, "aaaaa", "bbbbb"))
	require.NoError(t, err)
	_, err = Rank([]wordle.Word{WW("aaaaa"), WW("zzzzz")}, table)
	assert.ErrorIs(t, err, ErrMissingEntropyScore)
	assert.Contains(t, err.Error(), "zzzzz")
}

func TestComputeAgainstRepeatedGuess(t *testing.T) {
	guesses := []wordle.Word{WW("crane"), WW("petal"), WW("crane")}
	targets := []wordle.Word{WW("crane"), WW("petal"), WW("sword")}
	table, err := ComputeAgainst(context.Background(), guesses, targets)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	var visited []string
	for word, score := range table.Range {
		visited = append(visited, word.String())
		assert.Equal(t, EntropyOf(word, targets), score)
	}
	assert.Equal(t, []string{"crane", "petal"}, visited)
}
