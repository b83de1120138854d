package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"github.com/vancomm/mints/internal/config"
	"github.com/vancomm/mints/internal/game"
	"github.com/vancomm/mints/internal/mines"
)

type options struct {
	difficulty string
	seed       uint64
	width      int
	height     int
	mines      int
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("mints", pflag.ContinueOnError)
	fs.StringVarP(&opts.difficulty, "difficulty", "d", "", "preset: easy, medium or hard (default $MINTS_DIFFICULTY or easy)")
	fs.Uint64Var(&opts.seed, "seed", 0, "fixed random seed (default $MINTS_SEED or random)")
	fs.IntVar(&opts.width, "width", 0, "custom board width")
	fs.IntVar(&opts.height, "height", 0, "custom board height")
	fs.IntVar(&opts.mines, "mines", 0, "custom mine count")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !fs.Changed("seed") {
		seed, ok, err := config.Seed()
		if err != nil {
			return nil, err
		}
		if !ok {
			seed = rand.Uint64()
		}
		opts.seed = seed
	}
	return opts, nil
}

func (o *options) params() (mines.GameParams, error) {
	d, err := config.Difficulty()
	if err != nil {
		return mines.GameParams{}, err
	}
	if o.difficulty != "" {
		if d, err = mines.ParseDifficulty(o.difficulty); err != nil {
			return mines.GameParams{}, err
		}
	}
	params := d.Params()
	if o.width != 0 {
		params.Width = o.width
	}
	if o.height != 0 {
		params.Height = o.height
	}
	if o.mines != 0 {
		params.MineCount = o.mines
	}
	return params, params.ValidateCustom()
}

func newLogger() *slog.Logger {
	if config.Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: config.LogLevel()}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel()}))
}

// readLines feeds stdin to the returned channel until EOF.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func play(ctx context.Context, s *game.Session, in io.Reader, out io.Writer) error {
	lines := readLines(in)
	for {
		if s.Status() == game.Playing {
			if err := s.Display(); err != nil {
				return err
			}
		}
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return nil
			}
			line = l
		}

		status, err := s.Exec(line)
		if err != nil {
			return err
		}
		if status == game.Quit {
			return nil
		}
	}
}

func main() {
	logger := newLogger()
	slog.SetDefault(logger)
	mines.Log = logger
	game.Log = logger

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Error("failed to parse flags", slog.Any("error", err))
		os.Exit(2)
	}

	params, err := opts.params()
	if err != nil {
		logger.Error("invalid game params", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Debug("starting session",
		slog.String("params", params.String()),
		slog.Uint64("seed", opts.seed),
	)

	rnd := rand.New(rand.NewPCG(opts.seed, opts.seed))
	session, err := game.NewSession(os.Stdout, params, rnd)
	if err != nil {
		logger.Error("failed to start session", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println("mints: minesweeper. Type !help for commands.")
	if err := play(ctx, session, os.Stdin, os.Stdout); err != nil {
		logger.Error("session failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := session.Farewell(); err != nil {
		logger.Error("failed to print farewell", slog.Any("error", err))
		os.Exit(1)
	}
}
