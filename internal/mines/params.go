package mines

import (
	"fmt"
	"math"
	"strings"
)

// MaxCustomSide bounds the width and height of boards built from player or
// command-line input.
const MaxCustomSide = 256

type GameParams struct {
	Width, Height, MineCount int
}

// Validate reports a *ConfigError unless the board has at least one cell,
// at least one mine and at least one safe cell.
func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return &ConfigError{Params: p, Reason: "width must be positive"}
	case p.Height <= 0:
		return &ConfigError{Params: p, Reason: "height must be positive"}
	case p.Width > math.MaxInt/p.Height:
		return &ConfigError{Params: p, Reason: "board is too large"}
	case p.MineCount <= 0:
		return &ConfigError{Params: p, Reason: "mine count must be positive"}
	case p.MineCount >= p.Width*p.Height:
		return &ConfigError{Params: p, Reason: "mine count must be less than the number of cells"}
	}
	return nil
}

// ValidateCustom is [GameParams.Validate] plus the [MaxCustomSide] limit.
func (p GameParams) ValidateCustom() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Width > MaxCustomSide || p.Height > MaxCustomSide {
		return &ConfigError{
			Params: p,
			Reason: fmt.Sprintf("width and height must be at most %d", MaxCustomSide),
		}
	}
	return nil
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) ValidatePoint(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyParams = map[Difficulty]GameParams{
	Easy:   {Width: 9, Height: 9, MineCount: 10},
	Medium: {Width: 16, Height: 16, MineCount: 40},
	Hard:   {Width: 30, Height: 16, MineCount: 99},
}

func (d Difficulty) Params() GameParams {
	p, ok := difficultyParams[d]
	if !ok {
		return difficultyParams[Easy]
	}
	return p
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return Easy, nil
	case "medium", "m":
		return Medium, nil
	case "hard", "h":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}
