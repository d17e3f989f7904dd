package renderer

import (
	"strings"
	"testing"

	"github.com/ValonK1/Snake-game/pkg/game"
)

func TestHeadGlyph(t *testing.T) {
	cases := []struct {
		dir  game.Direction
		want string
	}{
		{game.Up, "⠉"},
		{game.Down, "⣀"},
		{game.Left, "⠆"},
		{game.Right, "⠰"},
	}
	for _, c := range cases {
		if got := headGlyph(c.dir); got != c.want {
			t.Errorf("headGlyph(%s) = %q, want %q", c.dir, got, c.want)
		}
	}
}

func TestNeckGlyph(t *testing.T) {
	cases := []struct {
		prev, cur game.Direction
		want      string
	}{
		{game.Up, game.Up, "║"},
		{game.Down, game.Down, "║"},
		{game.Left, game.Left, "═"},
		{game.Right, game.Right, "═"},
		{game.Right, game.Up, "╝"},
		{game.Down, game.Left, "╝"},
		{game.Left, game.Up, "╚"},
		{game.Down, game.Right, "╚"},
		{game.Right, game.Down, "╗"},
		{game.Up, game.Left, "╗"},
		{game.Left, game.Down, "╔"},
		{game.Up, game.Right, "╔"},
	}
	for _, c := range cases {
		if got := neckGlyph(c.prev, c.cur); got != c.want {
			t.Errorf("neckGlyph(%s, %s) = %q, want %q", c.prev, c.cur, got, c.want)
		}
	}
}

func TestTailGlyph(t *testing.T) {
	inner := game.Coord{Row: 5, Col: 5}
	cases := []struct {
		tip  game.Coord
		want string
	}{
		{game.Coord{Row: 6, Col: 5}, "╜"},
		{game.Coord{Row: 4, Col: 5}, "╓"},
		{game.Coord{Row: 5, Col: 6}, "╕"},
		{game.Coord{Row: 5, Col: 4}, "╘"},
	}
	for _, c := range cases {
		if got := tailGlyph(c.tip, inner); got != c.want {
			t.Errorf("tailGlyph(%v, %v) = %q, want %q", c.tip, inner, got, c.want)
		}
	}
}

// Buffered updates must not reach the terminal before Refresh.
func TestBufferedDrawing(t *testing.T) {
	term := NewTerminal(game.Pit{Rows: 10, Cols: 20})

	term.EraseCell(game.Coord{Row: 3, Col: 3})
	term.DrawTrophy(game.Coord{Row: 4, Col: 4}, 7)

	if term.buf.Len() == 0 {
		t.Fatal("draw calls left the buffer empty")
	}

	buf := term.buf.String()
	if want := "\033[5;5H"; !strings.Contains(buf, want) {
		t.Errorf("buffer missing 1-based cursor move %q:\n%q", want, buf)
	}
	if !strings.Contains(buf, attrTrophy+"7"+attrReset) {
		t.Errorf("buffer missing trophy digit with attributes:\n%q", buf)
	}
}
