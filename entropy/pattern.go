package entropy

import (
	"math"

	"github.com/powellquiring/wordle-solver/letterset"
	"github.com/powellquiring/wordle-solver/wordle"
)

// MaxEntropy is the most information one guess can give, log2 of the number of patterns.
var MaxEntropy = math.Log2(wordle.NumPatterns)

// place value of each position in a pattern
var pow3 = [wordle.WordSize]int{1, 3, 9, 27, 81}

const allCorrect = 1<<wordle.WordSize - 1

// pattern is wordle.ScorePattern without building the Feedback.
func pattern(guess, target *wordle.Word) wordle.Pattern {
	var targetNotCorrect [letterset.Size]uint8
	correct := 0 // bit i is set when position i is correct
	p := 0
	for i := range wordle.WordSize {
		if guess[i] == target[i] {
			correct |= 1 << i
			p += int(wordle.Correct) * pow3[i]
		} else {
			targetNotCorrect[target[i]-'a']++
		}
	}
	if correct == allCorrect {
		return wordle.Pattern(p)
	}
	for i := range wordle.WordSize {
		if correct&(1<<i) != 0 {
			continue
		}
		letter := guess[i] - 'a'
		if targetNotCorrect[letter] > 0 {
			targetNotCorrect[letter]--
			p += int(wordle.Present) * pow3[i]
		}
	}
	return wordle.Pattern(p)
}

// Patterns appends the pattern guess produces against each target to out.
func Patterns(guess wordle.Word, targets []wordle.Word, out []wordle.Pattern) []wordle.Pattern {
	for i := range targets {
		out = append(out, pattern(&guess, &targets[i]))
	}
	return out
}

// Distribution counts the targets by the pattern guess would produce against them.
func Distribution(guess wordle.Word, targets []wordle.Word) [wordle.NumPatterns]int {
	var counts [wordle.NumPatterns]int
	countPatterns(&guess, targets, &counts)
	return counts
}

func countPatterns(guess *wordle.Word, targets []wordle.Word, counts *[wordle.NumPatterns]int) {
	for i := range targets {
		counts[pattern(guess, &targets[i])]++
	}
}

// shannon returns the entropy in bits of the pattern counts, every target equally likely.
// Patterns are summed in order so the result does not depend on who calls it.
func shannon(counts *[wordle.NumPatterns]int, n int) float64 {
	if n == 0 {
		return 0
	}
	total := float64(n)
	ret := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		ret -= p * math.Log2(p)
	}
	return ret
}

// EntropyOf is the expected information in bits from guessing guess when the
// hidden word is any one of targets.
func EntropyOf(guess wordle.Word, targets []wordle.Word) float64 {
	counts := Distribution(guess, targets)
	return shannon(&counts, len(targets))
}
