package wordle

import (
	"fmt"
	"strings"

	"github.com/powellquiring/wordle-solver/letterset"
)

// Constraints is what the guesses so far say about the hidden word.
// Positions[i] is the set of letters still allowed at position i and
// Required is the set of letters known to be somewhere in the word.
type Constraints struct {
	Positions [WordSize]letterset.Set
	Required  letterset.Set
}

// NewConstraints allows every letter everywhere and requires nothing.
func NewConstraints() Constraints {
	var c Constraints
	for i := range c.Positions {
		c.Positions[i] = letterset.All()
	}
	return c
}

// DeriveConstraints folds the guess records, in order, into constraints.
func DeriveConstraints(records []GuessRecord) (Constraints, error) {
	c := NewConstraints()
	for _, record := range records {
		if err := c.Apply(record); err != nil {
			return c, err
		}
	}
	return c, nil
}

// Apply narrows the constraints with one more guess record.
//
// Correct sets its position to just the guessed letter, Present removes the letter
// from its position, and both require the letter somewhere. Absent removes the letter
// from every position, even when an earlier copy in the same guess was marked Correct
// or Present. A word with a repeated letter can be rejected because of that, for
// example "speed" against target "abide". A Correct copy after the Absent one is set
// again, so "geese" against "these" keeps "these".
//
// A record with a color outside Absent, Present, Correct is rejected and leaves
// the constraints unchanged.
func (c *Constraints) Apply(record GuessRecord) error {
	for i, color := range record.Feedback {
		if !color.Valid() {
			return fmt.Errorf("%w: %s at position %d of %s", ErrInvalidFeedbackSymbol, color, i+1, record.Word)
		}
	}
	for i, letter := range record.Word {
		switch record.Feedback[i] {
		case Correct:
			c.Positions[i] = letterset.Only(letter)
			c.Required = c.Required.Add(letter)
		case Present:
			c.Positions[i] = c.Positions[i].Remove(letter)
			c.Required = c.Required.Add(letter)
		case Absent:
			for p := range c.Positions {
				c.Positions[p] = c.Positions[p].Remove(letter)
			}
		}
	}
	return nil
}

// IsValid reports whether word could still be the hidden word.
func (c Constraints) IsValid(word Word) bool {
	for i, letter := range word {
		if !c.Positions[i].Has(letter) {
			return false
		}
	}
	return c.Required.SubsetOf(letterset.Of(word[:]...))
}

// IsValid is Constraints.IsValid in function form.
func IsValid(word Word, c Constraints) bool {
	return c.IsValid(word)
}

// Filter returns the dictionary words that satisfy the constraints in dictionary order.
func Filter(d *Dictionary, c Constraints) []Word {
	return d.Matching(c)
}

// FilterWords is Filter for a plain slice of words, order is kept.
func FilterWords(words []Word, c Constraints) []Word {
	ret := []Word{}
	for _, word := range words {
		if c.IsValid(word) {
			ret = append(ret, word)
		}
	}
	return ret
}

func (c Constraints) String() string {
	var sb strings.Builder
	for i, allowed := range c.Positions {
		fmt.Fprintf(&sb, "%d: ", i+1)
		if allowed == letterset.All() {
			sb.WriteString("*\n")
		} else {
			sb.WriteString(allowed.String())
			sb.WriteByte('\n')
		}
	}
	fmt.Fprintf(&sb, "required: %s", c.Required)
	return sb.String()
}
