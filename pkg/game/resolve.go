package game

import "github.com/ValonK1/Snake-game/pkg/config"

// Key is a decoded input from an InputSource collaborator.
type Key int

const (
	KeyNone Key = iota // nothing pending
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCheatWin  // capital W: instant win
	KeyCheatLoss // capital L: instant loss
	KeyOther     // unrecognized: the snake keeps going as before
)

// InputSource supplies buffered keys without ever blocking the tick loop.
// PollKey returns false when no key is pending.
type InputSource interface {
	PollKey() (Key, bool)
}

// Result is the overall game state machine. Playing is the only non-terminal
// state; once Win or Loss is reached the game state no longer mutates.
type Result int

const (
	Playing Result = iota
	Win
	Loss
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "playing"
}

// readInput drains buffered keypresses, keeping only the most recent so a
// flooded queue cannot lag the snake. The drain is bounded; leftovers get
// picked up by the next move.
func (g *Game) readInput() Key {
	if g.input == nil {
		return KeyNone
	}
	key := KeyNone
	for i := 0; i < config.MaxInputDrain; i++ {
		k, ok := g.input.PollKey()
		if !ok {
			break
		}
		key = k
	}
	return key
}

// resolveMove interprets the latest buffered key against the current body
// state and either yields the next head cell or a terminal result. The
// direction pair is committed here, as part of resolution, whatever the
// outcome.
func (g *Game) resolveMove(key Key) (Coord, Result) {
	b := g.body
	b.prevDir = b.dir

	switch key {
	case KeyUp:
		b.dir = Up
	case KeyDown:
		b.dir = Down
	case KeyLeft:
		b.dir = Left
	case KeyRight:
		b.dir = Right
	case KeyCheatWin:
		g.say("You cheated!")
		return Coord{}, Win
	case KeyCheatLoss:
		g.say("You cheated!")
		return Coord{}, Loss
	default:
		// Unrecognized input keeps the previous direction.
	}

	// Reversing is a loss by direction alone, before the move is attempted:
	// it holds even for a snake too short to bite its own neck.
	if b.dir == b.prevDir.Opposite() {
		g.say("You can't go backwards!")
		return Coord{}, Loss
	}

	next := b.dir.Step(b.Head())

	if !g.pit.Inside(next) {
		g.say("You ran into the edge of the pit!")
		return Coord{}, Loss
	}

	if b.hits(next) {
		g.say("You hit yourself!")
		return Coord{}, Loss
	}

	return next, Playing
}
