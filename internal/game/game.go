package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/vancomm/mints/internal/command"
	"github.com/vancomm/mints/internal/mines"
	"github.com/vancomm/mints/internal/render"
)

var Log *slog.Logger = slog.Default()

type Status int

const (
	Playing Status = iota
	Lost
	Won
	Quit
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

const helpText = `Commands:
  !check X Y   (!c)   open the cell in column X, row Y
  !cheat              peek at the whole board
  !restart     (!r)   start over with a fresh board
  !new k=v...  (!n)   start over with width=, height=, mines= or difficulty=
  !help        (!h)   show this help
  !quit        (!q)   leave the game
`

// Session is one player's sitting: a sequence of rounds sharing a random
// source and an output. It is not safe for concurrent use.
type Session struct {
	out     io.Writer
	rnd     *rand.Rand
	now     func() time.Time
	params  mines.GameParams
	board   *mines.Board
	status  Status
	turn    int
	started time.Time
	rounds  int
}

type Option func(*Session)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession generates the first round. It fails only when params are
// invalid.
func NewSession(out io.Writer, params mines.GameParams, rnd *rand.Rand, opts ...Option) (*Session, error) {
	if rnd == nil {
		rnd = mines.NewRand()
	}
	s := &Session{out: out, rnd: rnd, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.now()
	if err := s.newRound(params); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newRound(params mines.GameParams) error {
	board, err := mines.Generate(params, s.rnd)
	if err != nil {
		return fmt.Errorf("unable to generate board: %w", err)
	}
	s.params = params
	s.board = board
	s.status = Playing
	s.rounds++
	Log.Info("new round", slog.String("params", params.String()), slog.Int("round", s.rounds))
	return nil
}

func (s *Session) Board() *mines.Board      { return s.board }
func (s *Session) Params() mines.GameParams { return s.params }
func (s *Session) Status() Status           { return s.status }
func (s *Session) Turn() int                { return s.turn }
func (s *Session) Rounds() int              { return s.rounds }

// Display draws the current board as the player sees it.
func (s *Session) Display() error {
	return render.Write(s.out, s.board, render.Normal)
}

// Exec parses and runs one line of input. Player mistakes are printed and
// leave the round untouched; the returned error is reserved for output
// failures.
func (s *Session) Exec(line string) (Status, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		var pe *command.ParseError
		if errors.As(err, &pe) {
			return s.status, s.println(pe.Message)
		}
		return s.status, err
	}
	s.turn++
	Log.Debug("command", slog.String("kind", cmd.Kind.String()), slog.Int("turn", s.turn))
	return s.Run(cmd)
}

func (s *Session) Run(cmd command.Command) (Status, error) {
	switch cmd.Kind {
	case command.Check:
		return s.check(cmd.X, cmd.Y)
	case command.Cheat:
		return s.status, render.Write(s.out, s.board, render.Cheat)
	case command.Restart:
		if err := s.newRound(s.params); err != nil {
			return s.status, err
		}
		return s.status, s.println("Restarting with a fresh board.")
	case command.New:
		params, err := cmd.New.Params(s.params)
		if err != nil {
			return s.status, s.println(fmt.Sprintf("Cannot start that game: %s", err))
		}
		if err := s.newRound(params); err != nil {
			return s.status, err
		}
		return s.status, s.println(fmt.Sprintf("New %s game.", params))
	case command.Help:
		return s.status, s.println(helpText)
	case command.Quit:
		s.status = Quit
		return s.status, nil
	default:
		return s.status, s.println(fmt.Sprintf("%s is not supported.", cmd.Name))
	}
}

func (s *Session) check(x, y int) (Status, error) {
	if s.status != Playing {
		return s.status, s.println("This round is over. Type !restart to play again.")
	}

	switch s.board.Reveal(x, y) {
	case mines.Exploded:
		s.status = Lost
		Log.Info("round lost", slog.Int("turn", s.turn))
		if err := s.println("That was a mine! Unlucky!"); err != nil {
			return s.status, err
		}
		return s.status, render.Write(s.out, s.board, render.Cheat)
	case mines.Ignored:
		if !s.params.ValidatePoint(x, y) {
			return s.status, s.println(fmt.Sprintf(
				"(%d, %d) is off the board.", x+1, y+1,
			))
		}
		return s.status, s.println("That cell is already open.")
	}

	if s.board.IsWon() {
		s.status = Won
		Log.Info("round won", slog.Int("turn", s.turn))
		if err := render.Write(s.out, s.board, render.Cheat); err != nil {
			return s.status, err
		}
		return s.status, s.println("You cleared the board!")
	}
	return s.status, nil
}

// Elapsed is the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.started)
}

// Farewell prints the session summary.
func (s *Session) Farewell() error {
	return s.println(fmt.Sprintf(
		"Thanks for playing! %d turns over %d rounds in %s.",
		s.turn, s.rounds, s.Elapsed().Round(time.Second),
	))
}

func (s *Session) println(msg string) error {
	_, err := fmt.Fprintln(s.out, msg)
	return err
}
