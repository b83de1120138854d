package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/mints/internal/mines"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		x, y int
	}{
		{"!check 3 4", Check, 2, 3},
		{"!c 1 1", Check, 0, 0},
		{"  !CHECK   10 2 ", Check, 9, 1},
		{"!c 100 100", Check, 99, 99},
		{"!cheat", Cheat, 0, 0},
		{"!restart", Restart, 0, 0},
		{"!next", Restart, 0, 0},
		{"!reset", Restart, 0, 0},
		{"!r", Restart, 0, 0},
		{"!help", Help, 0, 0},
		{"!h", Help, 0, 0},
		{"!quit", Quit, 0, 0},
		{"!leave", Quit, 0, 0},
		{"!exit", Quit, 0, 0},
		{"!Q", Quit, 0, 0},
		{"!flag 1 2", Unsupported, 0, 0},
		{"!unflag", Unsupported, 0, 0},
		{"!hint", Unsupported, 0, 0},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			cmd, err := Parse(test.line)
			require.NoError(t, err)
			assert.Equal(t, test.kind, cmd.Kind)
			assert.Equal(t, test.x, cmd.X)
			assert.Equal(t, test.y, cmd.Y)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line    string
		message string
	}{
		{"", "Type a command"},
		{"   ", "Type a command"},
		{"hello", "Unknown command!"},
		{"!dig 1 1", "Unknown command!"},
		{"!check", "!check requires 2 arguments"},
		{"!c 1", "!c requires 2 arguments"},
		{"!c 1 2 3", "!c requires 2 arguments"},
		{"!c a 2", "first argument must be an int"},
		{"!c 2 b", "second argument must be an int"},
		{"!c 0 2", "coordinates start at 1"},
		{"!c 2 -1", "coordinates start at 1"},
		{"!cheat now", "!cheat takes no arguments"},
		{"!new width", "expected key=value"},
		{"!new width=", "expected key=value"},
		{"!new width=abc", "width must be a number"},
		{"!new colour=red", "unknown key colour"},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, err := Parse(test.line)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, pe.Message, test.message)
		})
	}
}

func TestParseNew(t *testing.T) {
	cmd, err := Parse("!new width=12 HEIGHT=8 mines=20")
	require.NoError(t, err)
	assert.Equal(t, New, cmd.Kind)
	require.NotNil(t, cmd.New)
	assert.Equal(t, NewGame{Width: 12, Height: 8, Mines: 20}, *cmd.New)

	cmd, err = Parse("!n difficulty=hard")
	require.NoError(t, err)
	assert.Equal(t, NewGame{Difficulty: "hard"}, *cmd.New)

	cmd, err = Parse("!new")
	require.NoError(t, err)
	assert.Equal(t, NewGame{}, *cmd.New)
}

func TestNewGameParams(t *testing.T) {
	current := mines.Easy.Params()

	tests := []struct {
		name string
		ng   NewGame
		want mines.GameParams
		ok   bool
	}{
		{"empty keeps current", NewGame{}, current, true},
		{"override mines", NewGame{Mines: 20}, mines.GameParams{Width: 9, Height: 9, MineCount: 20}, true},
		{"preset", NewGame{Difficulty: "medium"}, mines.Medium.Params(), true},
		{"preset with override", NewGame{Difficulty: "h", Mines: 120}, mines.GameParams{Width: 30, Height: 16, MineCount: 120}, true},
		{"custom", NewGame{Width: 4, Height: 3, Mines: 2}, mines.GameParams{Width: 4, Height: 3, MineCount: 2}, true},
		{"full board", NewGame{Width: 1, Height: 1, Mines: 1}, current, false},
		{"too dense", NewGame{Mines: 81}, current, false},
		{"negative", NewGame{Width: -2}, current, false},
		{"bad preset", NewGame{Difficulty: "brutal"}, current, false},
		{"largest custom", NewGame{Width: mines.MaxCustomSide, Height: mines.MaxCustomSide, Mines: 1}, mines.GameParams{Width: mines.MaxCustomSide, Height: mines.MaxCustomSide, MineCount: 1}, true},
		{"too wide", NewGame{Width: mines.MaxCustomSide + 1}, current, false},
		{"huge", NewGame{Width: 100000, Height: 100000, Mines: 1}, current, false},
		{"product wraps", NewGame{Width: 4611686018427387905, Height: 4, Mines: 1}, current, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.ng.Params(current)
			if test.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseNewHugeWidth(t *testing.T) {
	cmd, err := Parse("!new width=4611686018427387905 height=4 mines=1")
	require.NoError(t, err)
	_, err = cmd.New.Params(mines.Easy.Params())
	assert.ErrorIs(t, err, mines.ErrInvalidParams)
}

func TestParseNewErrorOrder(t *testing.T) {
	for range 20 {
		_, err := Parse("!new width=x mines=y height=z zoom=1")
		require.Error(t, err)
		assert.Contains(t, err.Error(),
			"height must be a number, mines must be a number, width must be a number, unknown key zoom")
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "check", Check.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "unsupported", Unsupported.String())
}
