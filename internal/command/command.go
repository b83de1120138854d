// Package command turns one line of player input into a [Command].
//
// Coordinates are typed 1-indexed, matching the board headers, and are
// returned 0-indexed. Points past the far edge of the board are not
// rejected here; the engine treats them as no-ops.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	Check Kind = iota
	Cheat
	Restart
	New
	Help
	Quit
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case Check:
		return "check"
	case Cheat:
		return "cheat"
	case Restart:
		return "restart"
	case New:
		return "new"
	case Help:
		return "help"
	case Quit:
		return "quit"
	default:
		return "unsupported"
	}
}

type Command struct {
	Kind Kind
	Name string // as typed, lower-cased
	X, Y int
	New  *NewGame
}

type ParseError struct {
	Message string
}

// [ParseError] implements [error]
func (e *ParseError) Error() string {
	return e.Message
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

var commandKinds = map[string]Kind{
	"!check":   Check,
	"!c":       Check,
	"!cheat":   Cheat,
	"!restart": Restart,
	"!next":    Restart,
	"!reset":   Restart,
	"!r":       Restart,
	"!new":     New,
	"!n":       New,
	"!help":    Help,
	"!h":       Help,
	"!quit":    Quit,
	"!leave":   Quit,
	"!exit":    Quit,
	"!q":       Quit,
	"!flag":    Unsupported,
	"!f":       Unsupported,
	"!unflag":  Unsupported,
	"!u":       Unsupported,
	"!hint":    Unsupported,
}

// Maps commands with a fixed arity to their number of arguments
var commandNargs = map[Kind]int{
	Check:   2,
	Cheat:   0,
	Restart: 0,
	Help:    0,
	Quit:    0,
}

func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, parseErrorf("Type a command, e.g. !check 3 4 (or !help)")
	}

	name := strings.ToLower(parts[0])
	kind, ok := commandKinds[name]
	if !ok {
		return Command{}, parseErrorf("Unknown command!")
	}
	cmd := Command{Kind: kind, Name: name}
	args := parts[1:]

	if nargs, ok := commandNargs[kind]; ok && nargs != len(args) {
		if kind == Check {
			return cmd, parseErrorf("%s requires 2 arguments (E.g. %s 3 4)", name, name)
		}
		return cmd, parseErrorf("%s takes no arguments", name)
	}

	switch kind {
	case Check:
		x, y, err := parseXY(args)
		if err != nil {
			return cmd, parseErrorf("Make sure %s is formatted correctly! (E.g. %s 3 4): %s", name, name, err)
		}
		cmd.X, cmd.Y = x, y
	case New:
		ng, err := decodeNewGame(args)
		if err != nil {
			return cmd, parseErrorf("%s: %s (E.g. %s width=10 height=8 mines=12)", name, err, name)
		}
		cmd.New = ng
	}
	return cmd, nil
}

// parseXY converts two 1-indexed display coordinates to 0-indexed ones.
func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		return 0, 0, fmt.Errorf("first argument must be an int")
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		return 0, 0, fmt.Errorf("second argument must be an int")
	}
	if x < 1 || y < 1 {
		return 0, 0, fmt.Errorf("coordinates start at 1")
	}
	return x - 1, y - 1, nil
}
