package mines

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// boardWithMines builds a labelled board with mines at the given points.
func boardWithMines(w, h int, points ...[2]int) *Board {
	b := newBoard(GameParams{Width: w, Height: h, MineCount: len(points)})
	for _, p := range points {
		b.cells[b.index(p[0], p[1])].Content = Mine
	}
	b.label()
	return b
}

// bruteCount counts mined neighbours without using Board.Neighbours.
func bruteCount(b *Board, x, y int) (n int) {
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if xx == x && yy == y {
				continue
			}
			if xx < 0 || yy < 0 || xx >= b.Width || yy >= b.Height {
				continue
			}
			if b.cells[yy*b.Width+xx].Content == Mine {
				n++
			}
		}
	}
	return
}

func visibility(b *Board) []Visibility {
	v := make([]Visibility, len(b.cells))
	for i, c := range b.cells {
		v[i] = c.Visibility
	}
	return v
}
