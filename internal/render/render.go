// Package render draws a [mines.Board] as a bordered table with 1-indexed
// column and row headers.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vancomm/mints/internal/mines"
)

type Mode int

const (
	Normal Mode = iota
	// Cheat shows the content of hidden cells.
	Cheat
)

var (
	header    = color.New(color.Bold)
	hidden    = color.New(color.FgWhite, color.Bold)
	mine      = color.New(color.FgHiRed, color.Bold)
	detonated = color.New(color.FgHiWhite, color.BgRed, color.Bold)

	countColors = [9]*color.Color{
		color.New(color.FgWhite),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgRed),
		color.New(color.FgCyan),
		color.New(color.FgMagenta),
		color.New(color.FgHiMagenta),
		color.New(color.FgYellow),
		color.New(color.FgHiWhite),
	}
)

// Tile returns the coloured single-character glyph for a cell.
func Tile(c mines.Cell, mode Mode) string {
	if c.Visibility == mines.Hidden && mode != Cheat {
		return hidden.Sprint("#")
	}
	if c.IsMine() {
		return mine.Sprint("*")
	}
	if c.Adjacent == 0 {
		return countColors[0].Sprint(" ")
	}
	return countColors[c.Adjacent].Sprint(c.Adjacent)
}

func label(n int) string {
	return header.Sprintf("%3d", n)
}

// Write draws b to w. The detonated mine, if any, is always shown.
func Write(w io.Writer, b *mines.Board, mode Mode) error {
	var sb strings.Builder
	divider := strings.Repeat("|---", b.Width+1) + "|\n"
	dx, dy, dead := b.Detonated()

	sb.WriteString(divider)
	sb.WriteString("|   |")
	for x := range b.Width {
		sb.WriteString(label(x + 1))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	sb.WriteString(divider)

	for y := range b.Height {
		sb.WriteString("|")
		sb.WriteString(label(y + 1))
		sb.WriteString("|")
		for x := range b.Width {
			c, _ := b.Cell(x, y)
			tile := Tile(c, mode)
			if dead && x == dx && y == dy {
				tile = detonated.Sprint("*")
			}
			fmt.Fprintf(&sb, " %s |", tile)
		}
		sb.WriteString("\n")
		sb.WriteString(divider)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
