package letterset

import (
	"math/bits"
	"strings"
)

// Size is the number of letters a Set can hold, 'a' through 'z'.
const Size = 26

// There is a bit for each lowercase letter, bit 0 is 'a'
type Set uint32

// allLetters has every letter bit set
const allLetters Set = 1<<Size - 1

// All returns the set of every lowercase letter.
func All() Set {
	return allLetters
}

// Of returns the set holding exactly the given letters.
func Of(letters ...byte) Set {
	var s Set
	for _, letter := range letters {
		s = s.Add(letter)
	}
	return s
}

// bit for a letter, zero for anything outside a-z
func bit(letter byte) Set {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return 1 << (letter - 'a')
}

func (s Set) Add(letter byte) Set {
	return s | bit(letter)
}

func (s Set) Remove(letter byte) Set {
	return s &^ bit(letter)
}

func (s Set) Has(letter byte) bool {
	b := bit(letter)
	return b != 0 && s&b != 0
}

// Only collapses the set to the single letter.
func Only(letter byte) Set {
	return bit(letter)
}

func (s Set) Intersection(other Set) Set {
	return s & other
}

func (s Set) Union(other Set) Set {
	return s | other
}

// SubsetOf reports whether every letter of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	return s&^other == 0
}

// Count (number of letters in the set).
func (s Set) Count() int {
	return bits.OnesCount32(uint32(s))
}

func (s Set) Empty() bool {
	return s == 0
}

// NextSet returns the next letter in the set at or after the given letter
// along with false when there is none.
// for l, ok := s.NextSet('a'); ok; l, ok = s.NextSet(l + 1) {...}
func (s Set) NextSet(letter byte) (byte, bool) {
	if letter < 'a' {
		letter = 'a'
	}
	if letter > 'z' {
		return 0, false
	}
	rest := uint32(s) >> (letter - 'a')
	if rest == 0 {
		return 0, false
	}
	return letter + byte(bits.TrailingZeros32(rest)), true
}

// Range visits the letters in alphabetical order.
func (s Set) Range(yield func(letter byte) bool) {
	for letter, ok := s.NextSet('a'); ok; letter, ok = s.NextSet(letter + 1) {
		if !yield(letter) {
			return
		}
	}
}

// Letters returns the letters in alphabetical order.
func (s Set) Letters() []byte {
	ret := make([]byte, 0, s.Count())
	for letter := range s.Range {
		ret = append(ret, letter)
	}
	return ret
}

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	sb.Write(s.Letters())
	sb.WriteByte('}')
	return sb.String()
}
