// Package words loads the dictionary from a whitespace separated word file.
//
// Tokens that are not 5 letters a-z are rejected, case is folded, and a word that
// appears twice is kept once at its first position. With no path the embedded
// default list is used.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/rs/zerolog"

	"github.com/powellquiring/wordle-solver/wordle"
)

//go:embed default.txt
var embeddedDefault string

// ErrEmptyDictionary is returned when a source has no usable word.
var ErrEmptyDictionary = errors.New("dictionary has no words")

// Stats counts what happened to the tokens of a source.
type Stats struct {
	Loaded     int
	Duplicates int
	Rejected   int
}

// Read parses r into a dictionary, keeping the order of the first occurrence of each word.
func Read(r io.Reader, logger zerolog.Logger) (*wordle.Dictionary, Stats, error) {
	var stats Stats
	seen := mapset.NewThreadUnsafeSet()
	var list []wordle.Word

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		word, err := wordle.ParseWord(sc.Text())
		if err != nil {
			stats.Rejected++
			logger.Debug().Err(err).Msg("skipping word")
			continue
		}
		if !seen.Add(word) {
			stats.Duplicates++
			continue
		}
		list = append(list, word)
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading words: %w", err)
	}
	if len(list) == 0 {
		return nil, stats, ErrEmptyDictionary
	}
	stats.Loaded = len(list)
	if stats.Rejected > 0 || stats.Duplicates > 0 {
		logger.Warn().Int("rejected", stats.Rejected).Int("duplicates", stats.Duplicates).Msg("word list has unusable entries")
	}

	d, err := wordle.NewDictionary(list)
	if err != nil {
		return nil, stats, err
	}
	return d, stats, nil
}

// Load reads the word file at path, the embedded default list when path is empty.
func Load(path string, logger zerolog.Logger) (*wordle.Dictionary, error) {
	if path == "" {
		d, stats, err := Read(strings.NewReader(embeddedDefault), logger)
		if err != nil {
			return nil, err
		}
		logger.Info().Int("words", stats.Loaded).Msg("loaded default dictionary")
		return d, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, stats, err := Read(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info().Str("path", path).Int("words", stats.Loaded).Msg("loaded dictionary")
	return d, nil
}
