package wordle

import "fmt"

// Dictionary is the fixed, ordered list of candidate words for a solving session.
// It is not changed after NewDictionary returns and is safe for concurrent readers.
type Dictionary struct {
	words       []Word
	wordToIndex map[Word]int
	matcher     *matcher
}

// NewDictionary copies words, a word may only appear once.
func NewDictionary(words []Word) (*Dictionary, error) {
	ret := &Dictionary{
		words:       make([]Word, len(words)),
		wordToIndex: make(map[Word]int, len(words)),
	}
	copy(ret.words, words)
	for i, word := range ret.words {
		if first, ok := ret.wordToIndex[word]; ok {
			return nil, fmt.Errorf("%w: %s at %d and %d", ErrDuplicateWord, word, first, i)
		}
		ret.wordToIndex[word] = i
	}
	ret.matcher = newMatcher(ret.words)
	return ret, nil
}

func NewDictionaryFromStrings(strings []string) (*Dictionary, error) {
	words, err := ParseWords(strings)
	if err != nil {
		return nil, err
	}
	return NewDictionary(words)
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the words in dictionary order.
func (d *Dictionary) Words() []Word {
	ret := make([]Word, len(d.words))
	copy(ret, d.words)
	return ret
}

func (d *Dictionary) At(i int) Word {
	return d.words[i]
}

// Index of the word in the dictionary
func (d *Dictionary) Index(word Word) (int, bool) {
	ret, ok := d.wordToIndex[word]
	return ret, ok
}

func (d *Dictionary) Contains(word Word) bool {
	_, ok := d.wordToIndex[word]
	return ok
}

// Range visits the words in dictionary order.
func (d *Dictionary) Range(yield func(i int, word Word) bool) {
	for i, word := range d.words {
		if !yield(i, word) {
			return
		}
	}
}

// Matching returns the words that satisfy the constraints, in dictionary order.
func (d *Dictionary) Matching(c Constraints) []Word {
	set := d.matcher.matching(c)
	indices := make([]uint, set.Count())
	_, indices = set.NextSetMany(0, indices)
	ret := make([]Word, len(indices))
	for i, index := range indices {
		ret[i] = d.words[index]
	}
	return ret
}
