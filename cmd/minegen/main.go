package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vancomm/mints/internal/config"
	"github.com/vancomm/mints/internal/mines"
	"github.com/vancomm/mints/internal/render"
	"golang.org/x/sync/errgroup"
)

var log = logrus.New()

type options struct {
	count      int
	workers    int
	difficulty string
	preset     string
	seed       uint64
	width      int
	height     int
	mines      int
	table      bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("minegen", pflag.ContinueOnError)
	fs.IntVarP(&opts.count, "count", "n", 1, "number of boards to generate")
	fs.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "concurrent generators")
	fs.StringVarP(&opts.difficulty, "difficulty", "d", "easy", "preset: easy, medium or hard")
	fs.StringVar(&opts.preset, "params", "", "board as width:height:mines, replaces --difficulty")
	fs.Uint64Var(&opts.seed, "seed", 0, "base random seed (default $MINTS_SEED or random)")
	fs.IntVar(&opts.width, "width", 0, "custom board width")
	fs.IntVar(&opts.height, "height", 0, "custom board height")
	fs.IntVar(&opts.mines, "mines", 0, "custom mine count")
	fs.BoolVar(&opts.table, "table", false, "draw boards as bordered tables")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.count < 1 {
		return nil, fmt.Errorf("--count must be at least 1")
	}
	if opts.workers < 1 {
		opts.workers = 1
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
	var params mines.GameParams
	if o.preset != "" {
		p, err := mines.ParseSeed(o.preset)
		if err != nil {
			return mines.GameParams{}, err
		}
		params = *p
	} else {
		d, err := mines.ParseDifficulty(o.difficulty)
		if err != nil {
			return mines.GameParams{}, err
		}
		params = d.Params()
	}
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

type stats struct {
	Zeros    int // safe cells with no mined neighbours
	MaxCount int
	Mines    int
}

func (s stats) Fields() logrus.Fields {
	return logrus.Fields{"zeros": s.Zeros, "maxCount": s.MaxCount, "mines": s.Mines}
}

func boardStats(b *mines.Board) (s stats) {
	for _, c := range b.Cells() {
		if c.IsMine() {
			s.Mines++
			continue
		}
		if c.Adjacent == 0 {
			s.Zeros++
		}
		s.MaxCount = max(s.MaxCount, int(c.Adjacent))
	}
	return
}

// generateAll builds count boards on up to workers goroutines. Board i is
// seeded with (seed, i), so the output does not depend on scheduling.
func generateAll(ctx context.Context, params mines.GameParams, count, workers int, seed uint64) ([]*mines.Board, error) {
	boards := make([]*mines.Board, count)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range count {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			b, err := mines.Generate(params, rand.New(rand.NewPCG(seed, uint64(i))))
			if err != nil {
				return fmt.Errorf("board %d: %w", i, err)
			}
			boards[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boards, nil
}

func printBoards(w io.Writer, boards []*mines.Board, table bool) error {
	for i, b := range boards {
		s := boardStats(b)
		log.WithFields(s.Fields()).WithField("board", i).Debug("board stats")
		if _, err := fmt.Fprintf(w, "# board %d %s zeros=%d max=%d\n", i, b.Seed(), s.Zeros, s.MaxCount); err != nil {
			return err
		}
		if table {
			if err := render.Write(w, b, render.Cheat); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func main() {
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal("unable to parse flags: ", err)
	}
	params, err := opts.params()
	if err != nil {
		log.Fatal("invalid game params: ", err)
	}

	log.WithFields(logrus.Fields{
		"params":  params.String(),
		"count":   opts.count,
		"workers": opts.workers,
		"seed":    opts.seed,
	}).Info("generating boards")

	boards, err := generateAll(ctx, params, opts.count, opts.workers, opts.seed)
	if err != nil {
		log.Fatal("generation failed: ", err)
	}
	if err := printBoards(os.Stdout, boards, opts.table); err != nil {
		log.Fatal("unable to write boards: ", err)
	}
}
