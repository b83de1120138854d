package mines

import (
	"fmt"
	"hash/maphash"
	"iter"
	"log/slog"
	"math/rand/v2"
	"strings"
)

var Log *slog.Logger = slog.Default()

// Board is a Width x Height grid of cells stored row-major. Its shape is
// fixed at generation; cells are mutated in place by [Board.Reveal].
type Board struct {
	GameParams
	cells     []Cell
	detonated int // index of the first mine hit, -1 until then
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Generate builds a board with exactly params.MineCount mines placed
// uniformly at random and every safe cell labelled with its number of mined
// neighbours. A nil r is replaced with a randomly seeded source.
//
// Placement is rejection sampling, so the expected number of draws grows
// without bound as the density approaches 1.
func Generate(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}

	b := newBoard(params)
	placed, draws := 0, 0
	for placed < params.MineCount {
		draws++
		i := b.index(r.IntN(params.Width), r.IntN(params.Height))
		if b.cells[i].Content == Mine {
			continue
		}
		b.cells[i].Content = Mine
		placed++
	}
	b.label()

	Log.Debug("generated board",
		slog.String("params", params.String()),
		slog.Int("draws", draws),
	)
	return b, nil
}

func newBoard(params GameParams) *Board {
	return &Board{
		GameParams: params,
		cells:      make([]Cell, params.CellCount()),
		detonated:  -1,
	}
}

// label stores the neighbour count of every safe cell. It reads the final
// mine layout, so it runs after all mines are placed.
func (b *Board) label() {
	for y := range b.Height {
		for x := range b.Width {
			c := &b.cells[b.index(x, y)]
			if c.Content == Mine {
				c.Adjacent = 0
				continue
			}
			c.Adjacent = int8(b.countAdjacentMines(x, y))
		}
	}
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

func (b *Board) point(i int) (x, y int) {
	return i % b.Width, i / b.Width
}

// Neighbours yields the in-bounds coordinates around (x, y): eight for an
// interior cell, five on an edge and three in a corner.
func (b *Board) Neighbours(x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !b.ValidatePoint(nx, ny) {
					continue
				}
				if !yield(nx, ny) {
					return
				}
			}
		}
	}
}

func (b *Board) countAdjacentMines(x, y int) (n int) {
	for nx, ny := range b.Neighbours(x, y) {
		if b.cells[b.index(nx, ny)].Content == Mine {
			n++
		}
	}
	return
}

// Cell returns the cell at (x, y), or false if the point is off the board.
func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.ValidatePoint(x, y) {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

// Cells yields every cell with its coordinates in row-major order.
func (b *Board) Cells() iter.Seq2[[2]int, Cell] {
	return func(yield func([2]int, Cell) bool) {
		for i, c := range b.cells {
			x, y := b.point(i)
			if !yield([2]int{x, y}, c) {
				return
			}
		}
	}
}

// String dumps the content of every cell regardless of visibility.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			fmt.Fprint(&sb, b.cells[b.index(x, y)].ContentString()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
