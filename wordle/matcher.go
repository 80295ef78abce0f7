package wordle

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/powellquiring/wordle-solver/letterset"
)

/*
letters[0]['a'-'a'] all words whose first letter is an a, [1] second letter is an a, ...
contains['a'-'a'] all words with one or more a

a word is represented by it's index into the dictionary
*/
type matcher struct {
	length   uint
	letters  [WordSize][letterset.Size]*bitset.BitSet
	contains [letterset.Size]*bitset.BitSet
}

func newMatcher(words []Word) *matcher {
	ret := &matcher{length: uint(len(words))}
	for l := range ret.letters {
		for letter := range ret.letters[l] {
			ret.letters[l][letter] = bitset.New(ret.length)
		}
	}
	for letter := range ret.contains {
		ret.contains[letter] = bitset.New(ret.length)
	}
	for w, word := range words {
		for l, letter := range word {
			ret.letters[l][letter-'a'].Set(uint(w))
			ret.contains[letter-'a'].Set(uint(w))
		}
	}
	return ret
}

// matching returns the set of words allowed by c.
func (m *matcher) matching(c Constraints) *bitset.BitSet {
	ret := bitset.New(m.length).Complement()

	// each position keeps the words whose letter at that position is still allowed
	for l, allowed := range c.Positions {
		if allowed == letterset.All() {
			continue
		}
		set := bitset.New(m.length)
		for letter := range allowed.Range {
			set.InPlaceUnion(m.letters[l][letter-'a'])
		}
		ret.InPlaceIntersection(set)
	}

	// required letters must be somewhere in the word
	for letter := range c.Required.Range {
		ret.InPlaceIntersection(m.contains[letter-'a'])
	}
	return ret
}
