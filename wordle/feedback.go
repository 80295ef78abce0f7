package wordle

import (
	"fmt"
	"strings"

	"github.com/powellquiring/wordle-solver/letterset"
)

// Color is the puzzle's answer for one letter of a guess
type Color uint8

const (
	Absent Color = iota
	Present
	Correct
)

// NumColors is the size of the feedback alphabet.
const NumColors = 3

func (c Color) Valid() bool {
	return c <= Correct
}

func (c Color) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// symbol used when printing feedback
func (c Color) symbol() byte {
	switch c {
	case Correct:
		return 'g'
	case Present:
		return 'y'
	case Absent:
		return '*'
	}
	return '?'
}

// Feedback is the color of each letter of a guess
type Feedback [WordSize]Color

// ParseFeedback decodes the text form of a feedback, g is Correct, y is Present and
// any of * - _ . r b x is Absent. Case is ignored.
func ParseFeedback(colors string) (Feedback, error) {
	var ret Feedback
	symbols := []rune(strings.ToLower(strings.TrimSpace(colors)))
	if len(symbols) != WordSize {
		return ret, fmt.Errorf("%w: %q", ErrMalformedFeedback, colors)
	}
	for i, symbol := range symbols {
		switch symbol {
		case 'g':
			ret[i] = Correct
		case 'y':
			ret[i] = Present
		case '*', '-', '_', '.', 'r', 'b', 'x':
			ret[i] = Absent
		default:
			return ret, fmt.Errorf("%w: %q at position %d of %q", ErrInvalidFeedbackSymbol, symbol, i+1, colors)
		}
	}
	return ret, nil
}

func (f Feedback) String() string {
	ret := make([]byte, WordSize)
	for i, color := range f {
		ret[i] = color.symbol()
	}
	return string(ret)
}

// Solved reports whether every letter is Correct.
func (f Feedback) Solved() bool {
	for _, color := range f {
		if color != Correct {
			return false
		}
	}
	return true
}

// Pattern is a feedback packed into one integer, color[i] * 3^i summed over the positions.
// Two feedbacks are equal if and only if their patterns are equal.
type Pattern uint8

// NumPatterns is 3^WordSize, every Pattern is below it.
const NumPatterns = 243

func (f Feedback) Pattern() Pattern {
	p := 0
	for i := WordSize - 1; i >= 0; i-- {
		p = p*NumColors + int(f[i])
	}
	return Pattern(p)
}

// Feedback unpacks the pattern.
func (p Pattern) Feedback() Feedback {
	var ret Feedback
	rest := int(p)
	for i := range WordSize {
		ret[i] = Color(rest % NumColors)
		rest /= NumColors
	}
	return ret
}

func (p Pattern) String() string {
	return p.Feedback().String()
}

// Score returns the feedback the puzzle gives for guess when the hidden word is target.
// Correct letters are marked first, then each remaining guess letter is Present only while
// the target still has an unmatched copy of it, left to right.
func Score(guess, target Word) Feedback {
	var ret Feedback
	var targetNotCorrect [letterset.Size]uint8
	for i, targetLetter := range target {
		if guess[i] == targetLetter {
			ret[i] = Correct
		} else {
			targetNotCorrect[targetLetter-'a']++
		}
	}
	// turn the absent to present if in the word but not correct
	for i, guessLetter := range guess {
		if ret[i] == Correct {
			continue
		}
		if targetNotCorrect[guessLetter-'a'] > 0 {
			ret[i] = Present
			targetNotCorrect[guessLetter-'a']--
		}
	}
	return ret
}

func ScorePattern(guess, target Word) Pattern {
	return Score(guess, target).Pattern()
}
