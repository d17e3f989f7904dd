package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ValonK1/Snake-game/pkg/config"
)

// Renderer is the drawing surface collaborator. The core reports what
// changed each move (new head, rewritten neck and tail, vacated cells,
// trophy cells); every glyph and color decision lives behind this interface.
type Renderer interface {
	// DrawSnake repaints the head and, where drawn, the neck connector and
	// tail tip. The body carries the direction pair the renderer needs to
	// pick connector glyphs.
	DrawSnake(b *Body)
	EraseCell(c Coord)
	DrawTrophy(c Coord, value int)
	Refresh()
}

// NopRenderer is a Renderer that draws nothing. Headless front ends (the
// webserver reads state snapshots instead) and tests use it.
type NopRenderer struct{}

func (NopRenderer) DrawSnake(*Body)       {}
func (NopRenderer) EraseCell(Coord)       {}
func (NopRenderer) DrawTrophy(Coord, int) {}
func (NopRenderer) Refresh()              {}

// Messenger is the one-line status/feedback surface. The core announces
// state-changing events through it and does not care how they are shown.
type Messenger interface {
	ShowMessage(text string)
}

// Game owns the whole per-game state and drives it on a fixed tick.
type Game struct {
	pit   Pit
	body  *Body
	input InputSource
	rend  Renderer
	msg   Messenger
	rng   *rand.Rand

	result  Result
	lastMsg string

	trophy     Trophy
	trophyLive bool

	ticksPerMove   int
	ticksSinceMove int
}

// New creates a game in the given pit and resets it, ready to run. A nil
// renderer is replaced with NopRenderer, a nil messenger is silent, and a
// nil rng is seeded from the clock.
func New(pit Pit, in InputSource, rend Renderer, msg Messenger, rng *rand.Rand) *Game {
	if rend == nil {
		rend = NopRenderer{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		body:  &Body{},
		input: in,
		rend:  rend,
		msg:   msg,
		rng:   rng,
	}
	g.Reset(pit)
	return g
}

// Reset starts a fresh game. The body buffer is sized to the pit's win
// length and the win length then stays fixed for the whole game, even if
// the display is resized mid-play; only the next Reset recomputes it.
func (g *Game) Reset(pit Pit) {
	g.pit = pit

	g.body.Reset(pit.WinLength(), Direction(g.rng.Intn(4)))
	g.body.Grow(config.InitialLength - 1)
	g.body.CommitHead(pit.Center())

	g.result = Playing
	g.trophyLive = false
	g.trophy = Trophy{}

	g.ticksPerMove = ticksPerMove(g.body.Len(), pit.WinLength())
	// Move on the very first tick.
	g.ticksSinceMove = g.ticksPerMove

	g.rend.DrawSnake(g.body)
	g.rend.Refresh()
	g.say(fmt.Sprintf("Win: %d/%d", g.body.Len(), pit.WinLength()))
}

// Tick advances the game clock by one tick and returns the game state.
// Movement fires at the length-dependent cadence; the trophy countdown and
// regeneration run every tick. Once the result is terminal, Tick mutates
// nothing further.
func (g *Game) Tick() Result {
	if g.result != Playing {
		return g.result
	}

	g.ticksSinceMove++
	if g.trophyLive {
		g.trophy.TicksLeft--
	}

	if g.ticksSinceMove >= g.ticksPerMove {
		g.ticksSinceMove = 0
		g.move()
		if g.result != Playing {
			return g.result
		}
	}

	// The snake moves before the trophy is regenerated, so a head landing
	// on a trophy the tick it would expire still eats it: ties go to the
	// player.
	if !g.trophyLive || g.trophy.TicksLeft <= 0 {
		g.regenTrophy()
	}

	return g.result
}

// move performs one movement step: resolve input, award a reached trophy,
// commit the head, then check the win condition.
func (g *Game) move() {
	next, res := g.resolveMove(g.readInput())
	if res != Playing {
		g.result = res
		return
	}

	if value, ok := g.tryAward(next); ok {
		g.body.Grow(value)
		g.ticksPerMove = ticksPerMove(g.body.Len(), g.pit.WinLength())
		g.say(fmt.Sprintf("Win: %d/%d", g.body.Len(), g.pit.WinLength()))
	}

	vacated, wasLive := g.body.CommitHead(next)
	if wasLive {
		g.rend.EraseCell(vacated)
	}
	g.rend.DrawSnake(g.body)
	g.rend.Refresh()

	// Checked after the head has moved so the trophy is not left sitting
	// there "unconsumed" on the winning move.
	if g.body.Len() >= g.pit.WinLength() {
		g.result = Win
	}
}

// Run drives the fixed-rate tick loop to a terminal result. The loop ends
// the instant the result turns non-playing; the inter-tick sleep is the only
// suspension point.
func (g *Game) Run() Result {
	for {
		if res := g.Tick(); res != Playing {
			return res
		}
		time.Sleep(config.TickInterval)
	}
}

// ticksPerMove interpolates the movement interval from the slow maximum at
// length 0 down to the fast minimum at the win length, clamped so the snake
// never moves faster than the minimum interval.
func ticksPerMove(length, winLength int) int {
	delta := float64(config.TicksPerMoveMax - config.TicksPerMoveMin + 1)
	interval := config.TicksPerMoveMax - int(delta*float64(length)/float64(winLength))
	if interval < config.TicksPerMoveMin {
		interval = config.TicksPerMoveMin
	}
	return interval
}

func (g *Game) say(text string) {
	g.lastMsg = text
	if g.msg != nil {
		g.msg.ShowMessage(text)
	}
}

// Result returns the current game state.
func (g *Game) Result() Result { return g.result }

// Pit returns the pit geometry the game was reset with.
func (g *Game) Pit() Pit { return g.pit }

// Body exposes the snake body, read-only by convention.
func (g *Game) Body() *Body { return g.body }

// ActiveTrophy returns the live trophy, if one is on the board.
func (g *Game) ActiveTrophy() (Trophy, bool) {
	return g.trophy, g.trophyLive
}
