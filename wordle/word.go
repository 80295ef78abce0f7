package wordle

import (
	"fmt"
	"strings"
)

// WordSize is the number of letters in every word of the puzzle.
const WordSize = 5

// Word is a fixed length lowercase word, each byte is 'a'..'z'
type Word [WordSize]byte

// ParseWord validates s at the input boundary, upper case is folded to lower case.
func ParseWord(s string) (Word, error) {
	var w Word
	lower := strings.ToLower(strings.TrimSpace(s))
	if len(lower) != WordSize {
		return w, fmt.Errorf("%w: %q", ErrMalformedWord, s)
	}
	for i := 0; i < WordSize; i++ {
		letter := lower[i]
		if letter < 'a' || letter > 'z' {
			return w, fmt.Errorf("%w: %q", ErrMalformedWord, s)
		}
		w[i] = letter
	}
	return w, nil
}

// MustParseWord is ParseWord for words known to be good, it panics otherwise.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWords parses each string, stopping at the first bad one.
func ParseWords(strs []string) ([]Word, error) {
	ret := make([]Word, 0, len(strs))
	for _, s := range strs {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, w)
	}
	return ret, nil
}

func (w Word) String() string {
	return string(w[:])
}

// Contains reports whether the letter occurs anywhere in the word.
func (w Word) Contains(letter byte) bool {
	for _, l := range w {
		if l == letter {
			return true
		}
	}
	return false
}

func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, word := range words {
		ret = append(ret, word.String())
	}
	return ret
}
