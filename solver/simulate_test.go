package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordle-solver/wordle"
)

// no repeated letters within a word, every feedback narrows soundly
var distinctWords = []string{
	"cigar", "rebut", "blush", "focal", "dwarf", "model", "stink", "grade",
	"quiet", "bench", "feign", "sword", "crane", "heron", "petal",
}

func TestSimulateEveryTarget(t *testing.T) {
	s := newSolver(t, distinctWords...)
	for _, target := range distinctWords {
		records, err := s.Simulate(wordle.MustParseWord(target))
		require.NoError(t, err, target)
		require.NotEmpty(t, records)
		last := records[len(records)-1]
		assert.Equal(t, target, last.Word.String())
		assert.True(t, last.Feedback.Solved())

		seen := map[wordle.Word]bool{}
		for _, r := range records[:len(records)-1] {
			assert.False(t, r.Feedback.Solved(), target)
			assert.False(t, seen[r.Word], "%s guessed twice", r.Word)
			seen[r.Word] = true
		}
	}
}

func TestSimulateOpeners(t *testing.T) {
	s := newSolver(t, distinctWords...)
	records, err := s.Simulate(wordle.MustParseWord("petal"), wordle.MustParseWord("sword"))
	require.NoError(t, err)
	assert.Equal(t, "sword:*****", records[0].String())
	assert.Equal(t, "petal:ggggg", records[len(records)-1].String())

	records, err = s.Simulate(wordle.MustParseWord("petal"), wordle.MustParseWord("petal"))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSimulateNotSolved(t *testing.T) {
	s := newSolver(t, distinctWords...)
	_, err := s.Simulate(wordle.MustParseWord("zebra"))
	assert.ErrorIs(t, err, ErrNotSolved)

	one := newSolver(t, "crane")
	records, err := one.Simulate(wordle.MustParseWord("crane"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane:ggggg"}, []string{records[0].String()})

	_, err = one.Simulate(wordle.MustParseWord("petal"))
	assert.ErrorIs(t, err, ErrNotSolved)
}
