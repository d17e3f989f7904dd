package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/ValonK1/Snake-game/pkg/config"
	"github.com/ValonK1/Snake-game/pkg/game"
	"github.com/ValonK1/Snake-game/pkg/input"
	"github.com/ValonK1/Snake-game/pkg/renderer"
)

func main() {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		fmt.Println("Error reading terminal size:", err)
		return
	}
	if rows < config.MinPitRows || cols < config.MinPitCols {
		fmt.Println("Terminal is too small for the pit.")
		return
	}

	kb := input.NewKeyboard()
	if err := kb.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer kb.Stop()

	pit := game.Pit{Rows: rows, Cols: cols}
	rend := renderer.NewTerminal(pit)
	rend.HideCursor()
	defer rend.ShowCursor()
	rend.Clear()
	rend.DrawBorder("Snake-2.0")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(pit, kb, rend, rend, rng)

	start := time.Now()
	result := g.Run()

	rend.ShowBanner(result)
	recordScore(result, g.Body().Len(), pit.WinLength(), time.Since(start))

	// Require a non-arrow key to quit, so arrows buffered during play
	// can't accidentally skip the banner.
	kb.WaitNonArrow()

	rend.Clear()
}

// recordScore appends the finished game to the local results database.
// Scorekeeping is best-effort; a broken database never spoils the game.
func recordScore(res game.Result, length, winLength int, d time.Duration) {
	db, err := game.OpenScoreDB(config.DefaultScoreDB)
	if err != nil {
		return
	}
	defer db.Close()
	_ = db.Record(res, length, winLength, d)
}
