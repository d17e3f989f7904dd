package renderer

import "github.com/ValonK1/Snake-game/pkg/game"

var winArt = []string{
	`__   __                     _       _ `,
	`\ \ / /                    (_)     | |`,
	` \ V /___  _   _  __      ___ _ __ | |`,
	`  \ // _ \| | | | \ \ /\ / / | '_ \| |`,
	`  | | (_) | |_| |  \ V  V /| | | | |_|`,
	`  \_/\___/ \__,_|   \_/\_/ |_|_| |_(_)`,
}

var loseArt = []string{
	`__   __            _`,
	`\ \ / /           | |`,
	` \ V /___  _   _  | | ___  ___  ___`,
	`  \ // _ \| | | | | |/ _ \/ __|/ _ \`,
	`  | | (_) | |_| | | | (_) \__ \  __/_ `,
	`  \_/\___/ \__,_| |_|\___/|___/\___(_)`,
}

// ShowBanner paints the end-of-game banner in the middle of the pit, with a
// plain-text fallback when the terminal is too short for the art.
func (t *Terminal) ShowBanner(res game.Result) {
	centerRow := t.pit.Rows / 2
	centerCol := t.pit.Cols / 2

	if t.pit.Rows < 6 {
		text := "You lose."
		if res == game.Win {
			text = "You win!"
		}
		t.moveTo(game.Coord{Row: centerRow, Col: centerCol - 4})
		t.buf.WriteString(text)
		t.Refresh()
		return
	}

	art := loseArt
	if res == game.Win {
		art = winArt
	}
	row := centerRow - 3
	col := centerCol - 19
	if col < 0 {
		col = 0
	}
	for i, line := range art {
		t.moveTo(game.Coord{Row: row + i, Col: col})
		t.buf.WriteString(line)
	}
	t.Refresh()
}
