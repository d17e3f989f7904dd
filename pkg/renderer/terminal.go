package renderer

import (
	"fmt"
	"strings"

	"github.com/ValonK1/Snake-game/pkg/game"
)

// ANSI attribute sequences, standing in for curses-style color pairs.
const (
	attrReset  = "\033[0m"
	attrSnake  = "\033[30;42m" // black on green
	attrTrophy = "\033[30;43m" // black on yellow
)

// Terminal draws the pit with ANSI escape codes. Cell updates accumulate in
// a buffer and go out in a single write per Refresh, so a frame never
// flickers half-drawn.
type Terminal struct {
	pit game.Pit
	buf strings.Builder
}

// NewTerminal creates a renderer for the given pit geometry.
func NewTerminal(pit game.Pit) *Terminal {
	return &Terminal{pit: pit}
}

// moveTo positions the cursor. ANSI rows and columns are 1-based.
func (t *Terminal) moveTo(c game.Coord) {
	fmt.Fprintf(&t.buf, "\033[%d;%dH", c.Row+1, c.Col+1)
}

// HideCursor hides the terminal cursor; call once on start.
func (t *Terminal) HideCursor() { fmt.Print("\033[?25l") }

// ShowCursor restores the cursor; call on exit.
func (t *Terminal) ShowCursor() { fmt.Print("\033[?25h") }

// Clear wipes the screen and scrollback.
func (t *Terminal) Clear() { fmt.Print("\033[H\033[2J\033[3J") }

// DrawBorder paints the pit wall with a title label on the top edge.
func (t *Terminal) DrawBorder(title string) {
	rows, cols := t.pit.Rows, t.pit.Cols

	t.moveTo(game.Coord{Row: 0, Col: 0})
	t.buf.WriteString("┌" + strings.Repeat("─", cols-2) + "┐")
	for r := 1; r < rows-1; r++ {
		t.moveTo(game.Coord{Row: r, Col: 0})
		t.buf.WriteString("│")
		t.moveTo(game.Coord{Row: r, Col: cols - 1})
		t.buf.WriteString("│")
	}
	t.moveTo(game.Coord{Row: rows - 1, Col: 0})
	t.buf.WriteString("└" + strings.Repeat("─", cols-2) + "┘")

	if len(title) < cols-2 {
		t.moveTo(game.Coord{Row: 0, Col: 1})
		t.buf.WriteString(title)
	}
	t.Refresh()
}

// EraseCell blanks a single cell (a vacated tail segment or expired trophy).
func (t *Terminal) EraseCell(c game.Coord) {
	t.moveTo(c)
	t.buf.WriteByte(' ')
}

// DrawTrophy paints the trophy as its digit value.
func (t *Terminal) DrawTrophy(c game.Coord, value int) {
	t.moveTo(c)
	t.buf.WriteString(attrTrophy)
	t.buf.WriteByte('0' + byte(value))
	t.buf.WriteString(attrReset)
}

// DrawSnake repaints the cells that change appearance on a move: the head
// glyph, the connector on the segment just behind it, and the tail tip.
func (t *Terminal) DrawSnake(b *game.Body) {
	t.buf.WriteString(attrSnake)

	t.moveTo(b.Head())
	t.buf.WriteString(headGlyph(b.Direction()))

	// The previous head becomes the "neck"; redraw it as a connector
	// joining the old direction to the new one. Drawn before the tail so
	// a length-2 snake shows head and tail, not head and neck.
	if neck, ok := b.Neck(); ok {
		t.moveTo(neck)
		t.buf.WriteString(neckGlyph(b.PrevDirection(), b.Direction()))
	}

	if tip, inner, ok := b.TailTip(); ok {
		t.moveTo(tip)
		t.buf.WriteString(tailGlyph(tip, inner))
	}

	t.buf.WriteString(attrReset)
}

// Refresh flushes buffered updates to the terminal.
func (t *Terminal) Refresh() {
	if t.buf.Len() == 0 {
		return
	}
	fmt.Print(t.buf.String())
	t.buf.Reset()
}

// ShowMessage writes a one-line status centered on the bottom border row.
func (t *Terminal) ShowMessage(text string) {
	col := t.pit.Cols/2 - len(text)/2
	if col < 1 {
		col = 1
	}
	t.moveTo(game.Coord{Row: t.pit.Rows - 1, Col: col})
	t.buf.WriteString(text)
	t.Refresh()
}

// headGlyph picks the braille "face" for the head by travel direction.
func headGlyph(d game.Direction) string {
	switch d {
	case game.Up:
		return "⠉"
	case game.Down:
		return "⣀"
	case game.Left:
		return "⠆"
	case game.Right:
		return "⠰"
	}
	return "@"
}

// neckGlyph joins the previous move's direction to the current one with a
// straight or corner box-drawing piece.
func neckGlyph(prev, cur game.Direction) string {
	if prev == cur {
		if cur == game.Up || cur == game.Down {
			return "║"
		}
		return "═"
	}
	switch {
	case prev == game.Right && cur == game.Up,
		prev == game.Down && cur == game.Left:
		return "╝"
	case prev == game.Left && cur == game.Up,
		prev == game.Down && cur == game.Right:
		return "╚"
	case prev == game.Right && cur == game.Down,
		prev == game.Up && cur == game.Left:
		return "╗"
	default: // left->down, up->right
		return "╔"
	}
}

// tailGlyph orients the tail tip away from its inner neighbor.
func tailGlyph(tip, inner game.Coord) string {
	switch {
	case tip.Row > inner.Row:
		return "╜" // ╜ tail below, moving up
	case tip.Row < inner.Row:
		return "╓" // ╓ tail above, moving down
	case tip.Col > inner.Col:
		return "╕" // ╕ tail right, moving left
	default:
		return "╘" // ╘ tail left, moving right
	}
}
