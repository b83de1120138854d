package mines

import "log/slog"

type Outcome int8

const (
	// Ignored means the request changed nothing: the point is off the board
	// or the cell is already revealed.
	Ignored Outcome = iota
	Opened
	Exploded
)

func (o Outcome) String() string {
	switch o {
	case Opened:
		return "opened"
	case Exploded:
		return "mine"
	default:
		return "ignored"
	}
}

// Reveal opens the cell at (x, y). A safe cell becomes Revealed and, if none
// of its neighbours are mines, so does every cell reachable through a chain
// of zero-count cells. A mine is reported as [Exploded] every time and stays
// hidden; the first one hit is kept for [Board.Detonated]. Ending the round
// is up to the caller.
func (b *Board) Reveal(x, y int) Outcome {
	if !b.ValidatePoint(x, y) {
		return Ignored
	}

	i := b.index(x, y)
	switch {
	case b.cells[i].Visibility == Revealed:
		return Ignored
	case b.cells[i].Content == Mine:
		if b.detonated < 0 {
			b.detonated = i
		}
		return Exploded
	}

	b.cells[i].Visibility = Revealed
	if b.cells[i].Adjacent != 0 {
		return Opened
	}

	/*
	 * Cascade with an explicit stack. A cell is pushed only when it flips
	 * from Hidden to Revealed, so each is expanded at most once.
	 */
	opened := 1
	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		jx, jy := b.point(j)
		for nx, ny := range b.Neighbours(jx, jy) {
			k := b.index(nx, ny)
			c := &b.cells[k]
			if c.Visibility == Revealed || c.Content == Mine {
				continue
			}
			c.Visibility = Revealed
			opened++
			if c.Adjacent == 0 {
				stack = append(stack, k)
			}
		}
	}

	Log.Debug("cascade",
		slog.Int("x", x), slog.Int("y", y),
		slog.Int("opened", opened),
	)
	return Opened
}

// IsMine reports whether (x, y) holds a mine. Points off the board are not
// mines.
func (b *Board) IsMine(x, y int) bool {
	return b.ValidatePoint(x, y) && b.cells[b.index(x, y)].Content == Mine
}

// IsWon reports whether every safe cell has been revealed.
func (b *Board) IsWon() bool {
	return b.Hidden() == 0
}

// Hidden counts the safe cells still to be revealed.
func (b *Board) Hidden() (n int) {
	for _, c := range b.cells {
		if c.Content == Empty && c.Visibility == Hidden {
			n++
		}
	}
	return
}

// Detonated returns the mine that ended the round, if any.
func (b *Board) Detonated() (x, y int, ok bool) {
	if b.detonated < 0 {
		return 0, 0, false
	}
	x, y = b.point(b.detonated)
	return x, y, true
}

// Revealed counts cells in the Revealed state.
func (b *Board) Revealed() (n int) {
	for _, c := range b.cells {
		if c.Visibility == Revealed {
			n++
		}
	}
	return
}
