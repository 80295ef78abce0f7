package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordle-solver/config"
	"github.com/powellquiring/wordle-solver/entropy"
	"github.com/powellquiring/wordle-solver/httpserver"
	"github.com/powellquiring/wordle-solver/solver"
	"github.com/powellquiring/wordle-solver/wordle"
	"github.com/powellquiring/wordle-solver/words"
)

type GlobalConfiguration struct {
	config config.Config
	logger zerolog.Logger
}

// newSolver loads the dictionary and computes its entropy table, the slow step.
func (g *GlobalConfiguration) newSolver(ctx context.Context) (*solver.Solver, error) {
	d, err := words.Load(g.config.Dictionary, g.logger)
	if err != nil {
		return nil, err
	}
	var bar *progressbar.ProgressBar
	if g.config.Progress {
		bar = progressbar.Default(int64(d.Len()), "entropy")
	} else {
		bar = progressbar.DefaultSilent(int64(d.Len()))
	}
	s, err := solver.New(ctx, d, g.logger, entropy.WithWorkers(g.config.Workers), entropy.WithProgress(bar))
	if err != nil {
		return nil, err
	}
	if err := bar.Finish(); err != nil {
		g.logger.Debug().Err(err).Msg("progress bar")
	}
	return s, nil
}

// printResult writes the ranked words the way every command shows them
func printResult(w io.Writer, title string, result solver.Result) {
	if result.Outcome == solver.Exhausted {
		fmt.Fprintln(w, "No match found.")
		return
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
	fmt.Fprintln(w, strings.Join(wordle.WordsToStrings(solver.WordsOf(result.Words)), ", "))
	if result.Candidates > len(result.Words) {
		fmt.Fprintf(w, "(%d of %d candidates)\n", len(result.Words), result.Candidates)
	}
}

// solve with guess/feedback pairs provided
func solve(ctx context.Context, globalConfig *GlobalConfiguration, w io.Writer, records []wordle.GuessRecord) error {
	s, err := globalConfig.newSolver(ctx)
	if err != nil {
		return err
	}
	result, err := s.Suggest(records, globalConfig.config.MaxWords)
	if err != nil {
		return err
	}
	printResult(w, "Top words", result)
	if result.Outcome == solver.Resolved {
		fmt.Fprintln(w, "Found match.")
	}
	return nil
}

func first(ctx context.Context, globalConfig *GlobalConfiguration, w io.Writer) error {
	s, err := globalConfig.newSolver(ctx)
	if err != nil {
		return err
	}
	result, err := s.Suggest(nil, globalConfig.config.MaxWords)
	if err != nil {
		return err
	}
	for _, scored := range result.Words {
		fmt.Fprintf(w, "%s %.4f\n", scored.Word, scored.Score)
	}
	return nil
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

// guessesFromCommand collects --word/--colour flags followed by positional guess feedback pairs
func guessesFromCommand(cmd *cli.Command) ([]wordle.GuessRecord, error) {
	guesses := cmd.StringSlice("word")
	colours := cmd.StringSlice("colour")
	if cmd.NArg()%2 != 0 {
		return nil, cli.Exit("must have pairs of guess feedback", 1)
	}
	args := cmd.Args().Slice()
	for i := 0; i < len(args); i += 2 {
		guesses = append(guesses, args[i])
		colours = append(colours, args[i+1])
	}
	records, err := wordle.ParseGuesses(guesses, colours)
	if err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}
	return records, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger(), nil
}

func newCommand() *cli.Command {
	globalConfig := &GlobalConfiguration{config: config.Default(), logger: zerolog.Nop()}
	var configPath string
	flags := globalConfig.config
	profile := false
	var stopProfile func()

	return &cli.Command{
		Name:  "wdl",
		Usage: "suggest the next guess of a five letter word puzzle, ranked by expected information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "YAML file with defaults for the other flags",
				Sources:     cli.EnvVars("WDL_CONFIG"),
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "dictionary",
				Aliases:     []string{"d"},
				Usage:       "word list file, whitespace separated 5 letter words, default is the built in list",
				Sources:     cli.EnvVars("WDL_DICTIONARY"),
				Destination: &flags.Dictionary,
			},
			&cli.IntFlag{
				Name:        "max",
				Aliases:     []string{"m"},
				Value:       flags.MaxWords,
				Usage:       "maximum number of words to show, 0 is all words",
				Sources:     cli.EnvVars("WDL_MAX_WORDS"),
				Destination: &flags.MaxWords,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "goroutines computing entropy, 0 is one per CPU",
				Sources:     cli.EnvVars("WDL_WORKERS"),
				Destination: &flags.Workers,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Sources:     cli.EnvVars("WDL_PROGRESS"),
				Destination: &flags.Progress,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       flags.LogLevel,
				Usage:       "trace, debug, info, warn, error",
				Sources:     cli.EnvVars("WDL_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			c, err := config.Load(configPath)
			if err != nil {
				return ctx, cli.Exit(err.Error(), 1)
			}
			// flags and environment win over the file
			if cmd.IsSet("dictionary") {
				c.Dictionary = flags.Dictionary
			}
			if cmd.IsSet("max") {
				c.MaxWords = flags.MaxWords
			}
			if cmd.IsSet("workers") {
				c.Workers = flags.Workers
			}
			if cmd.IsSet("progress") {
				c.Progress = flags.Progress
			}
			if cmd.IsSet("log-level") {
				c.LogLevel = flags.LogLevel
			}
			if c.MaxWords < 0 {
				return ctx, cli.Exit("max must not be negative", 1)
			}
			logger, err := newLogger(c.LogLevel)
			if err != nil {
				return ctx, cli.Exit(err.Error(), 1)
			}
			globalConfig.config = c
			globalConfig.logger = logger
			log.Logger = logger
			if profile {
				stop, err := cpuProfile()
				if err != nil {
					return ctx, err
				}
				stopProfile = stop
			}
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if stopProfile != nil {
				stopProfile()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name: "solve",
				Usage: `solve [--word guess --colour feedback]... [guess feedback]...
				print the best next guesses for the guesses so far.  Feedback has one symbol per
				letter: g correct, y present, * (or - r x) absent, for example: wdl solve crane *y**g
				`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "word",
						Aliases: []string{"w"},
						Usage:   "a word already tried, in the same order as --colour",
					},
					&cli.StringSliceFlag{
						Name:    "colour",
						Aliases: []string{"c", "color"},
						Usage:   "the feedback for the matching --word, e.g. gg*y*",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					records, err := guessesFromCommand(cmd)
					if err != nil {
						return err
					}
					return solve(ctx, globalConfig, cmd.Root().Writer, records)
				},
			},
			{
				Name: "play",
				Usage: `play
				interactive: enter each guess and its feedback until one word is left
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := globalConfig.newSolver(ctx)
					if err != nil {
						return err
					}
					return play(s, cmd.Root().Reader, cmd.Root().Writer, globalConfig.config.MaxWords)
				},
			},
			{
				Name: "sim",
				Usage: `sim [--first opener]... [target]...
				Simulate a game for each target, every dictionary word when no target is given.
				The openers are guessed in order before the ranked guesses.
				`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "first",
						Aliases: []string{"f"},
						Usage:   "--first first1 --first first2 ...",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					openers, err := wordle.ParseWords(cmd.StringSlice("first"))
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					targets, err := wordle.ParseWords(cmd.Args().Slice())
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					s, err := globalConfig.newSolver(ctx)
					if err != nil {
						return err
					}
					return simulate(ctx, s, cmd.Root().Writer, openers, targets)
				},
			},
			{
				Name: "first",
				Usage: `first
				list the best first guesses with their entropy in bits
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return first(ctx, globalConfig, cmd.Root().Writer)
				},
			},
			{
				Name:  "serve",
				Usage: "serve suggestions over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "listen address",
						Sources: cli.EnvVars("WDL_ADDR"),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					addr := globalConfig.config.Addr
					if cmd.IsSet("addr") {
						addr = cmd.String("addr")
					}
					s, err := globalConfig.newSolver(ctx)
					if err != nil {
						return err
					}
					return httpserver.New(s, globalConfig.logger, globalConfig.config.MaxWords).Run(ctx, addr)
				},
			},
		},
	}
}

func main() {
	_ = godotenv.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
