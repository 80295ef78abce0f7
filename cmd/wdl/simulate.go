package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/powellquiring/wordle-solver/solver"
	"github.com/powellquiring/wordle-solver/wordle"
)

type game struct {
	target  wordle.Word
	records []wordle.GuessRecord
}

// simulate plays a game for each target, every dictionary word when targets is empty,
// then prints the games grouped by number of guesses.
func simulate(ctx context.Context, s *solver.Solver, w io.Writer, openers []wordle.Word, targets []wordle.Word) error {
	if len(targets) == 0 {
		targets = s.Dictionary().Words()
	}
	byGuesses := map[int][]game{}
	var failed []game
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		records, err := s.Simulate(target, openers...)
		switch {
		case errors.Is(err, solver.ErrNotSolved):
			failed = append(failed, game{target, records})
		case err != nil:
			return err
		default:
			byGuesses[len(records)] = append(byGuesses[len(records)], game{target, records})
		}
		fmt.Fprintf(w, "%d/%d %s\n", i+1, len(targets), formatGame(game{target, records}))
	}
	fmt.Fprintln(w, "---------------------")

	keys := make([]int, 0, len(byGuesses))
	for k := range byGuesses {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, numGuesses := range keys {
		fmt.Fprintf(w, "%d guesses: %d games\n", numGuesses, len(byGuesses[numGuesses]))
	}
	if len(failed) > 0 {
		fmt.Fprintf(w, "not solved: %d games\n", len(failed))
		for _, g := range failed {
			fmt.Fprintln(w, formatGame(g))
		}
	}
	return nil
}

func formatGame(g game) string {
	var b strings.Builder
	b.WriteString(g.target.String())
	b.WriteString(":")
	for _, r := range g.records {
		b.WriteString(" ")
		b.WriteString(r.String())
	}
	return b.String()
}
