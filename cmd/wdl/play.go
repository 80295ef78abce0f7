package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/powellquiring/wordle-solver/solver"
	"github.com/powellquiring/wordle-solver/wordle"
)

// play reads a guess and its feedback per round from r until the session is
// resolved, exhausted or the input ends.
func play(s *solver.Solver, r io.Reader, w io.Writer, limit int) error {
	state := s.Start()
	result, err := s.Suggestions(state, limit)
	if err != nil {
		return err
	}
	printResult(w, "Top starting words", result)

	scanner := bufio.NewScanner(r)
	for state.Phase == solver.Collecting {
		fmt.Fprint(w, "Enter the word you tried: ")
		if !scanner.Scan() {
			break
		}
		word := strings.TrimSpace(scanner.Text())
		fmt.Fprint(w, "Enter the colours (g correct, y present, * absent): ")
		if !scanner.Scan() {
			break
		}
		record, err := wordle.ParseGuess(word, strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		state, err = s.Advance(state, record)
		if err != nil {
			return err
		}
		if state.Phase == solver.Exhausted {
			break
		}
		result, err = s.Suggestions(state, limit)
		if err != nil {
			return err
		}
		printResult(w, "Top words for this try", result)
	}

	switch state.Phase {
	case solver.Resolved:
		fmt.Fprintln(w, "Found match.")
	case solver.Exhausted:
		fmt.Fprintln(w, "Unable to find match.")
	}
	return scanner.Err()
}
