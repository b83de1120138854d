package mines

import "strconv"

type Visibility int8

const (
	Hidden Visibility = iota
	Revealed
)

func (v Visibility) String() string {
	if v == Revealed {
		return "revealed"
	}
	return "hidden"
}

type Content int8

const (
	Empty Content = iota
	Mine
)

func (c Content) String() string {
	if c == Mine {
		return "mine"
	}
	return "empty"
}

// Cell is one grid position. Content and Adjacent are fixed once the board
// is generated; only Visibility changes, and only from Hidden to Revealed.
type Cell struct {
	Visibility Visibility
	Content    Content
	Adjacent   int8 // 0-8 mined neighbours, always 0 for mines
}

func (c Cell) IsMine() bool {
	return c.Content == Mine
}

func (c Cell) IsRevealed() bool {
	return c.Visibility == Revealed
}

// String renders the cell as the player sees it: " " for a hidden cell, "*"
// for a mine and the neighbour count otherwise.
func (c Cell) String() string {
	if c.Visibility == Hidden {
		return " "
	}
	return c.ContentString()
}

// ContentString ignores visibility.
func (c Cell) ContentString() string {
	if c.Content == Mine {
		return "*"
	}
	return strconv.Itoa(int(c.Adjacent))
}
