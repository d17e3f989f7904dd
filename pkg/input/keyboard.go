package input

import (
	"github.com/eiannone/keyboard"

	"github.com/ValonK1/Snake-game/pkg/game"
)

// Keyboard decodes terminal keypresses into game keys on a background
// goroutine and hands them to the tick loop without ever blocking it.
type Keyboard struct {
	keys chan game.Key
}

// NewKeyboard creates an unstarted keyboard handler.
func NewKeyboard() *Keyboard {
	return &Keyboard{keys: make(chan game.Key, 32)}
}

// Start opens the terminal keyboard and begins decoding keys.
func (k *Keyboard) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	// The goroutine is the only sender, so it closes the channel on exit
	// (Stop makes GetKey fail); pollers and waiters then stop blocking.
	go func() {
		defer close(k.keys)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			select {
			case k.keys <- decode(char, key):
			default:
				// Queue full under a key flood; dropping is fine, the
				// game only wants the most recent key anyway.
			}
		}
	}()

	return nil
}

// Stop closes the terminal keyboard.
func (k *Keyboard) Stop() {
	keyboard.Close()
}

// PollKey implements game.InputSource: non-blocking, false when idle or
// when the key source has shut down.
func (k *Keyboard) PollKey() (game.Key, bool) {
	select {
	case key, ok := <-k.keys:
		if !ok {
			return game.KeyNone, false
		}
		return key, true
	default:
		return game.KeyNone, false
	}
}

// WaitNonArrow blocks until a key other than an arrow is pressed, so that
// arrow presses buffered during play cannot skip the end-of-game banner.
// It also returns if the key source shuts down, rather than waiting for a
// key that can never arrive.
func (k *Keyboard) WaitNonArrow() {
	for key := range k.keys {
		switch key {
		case game.KeyUp, game.KeyDown, game.KeyLeft, game.KeyRight:
		default:
			return
		}
	}
}

// decode maps a raw terminal key onto a game key. Only the arrow keys
// steer; capital W and L are the cheat codes, lowercase is ignored.
func decode(char rune, key keyboard.Key) game.Key {
	switch key {
	case keyboard.KeyArrowUp:
		return game.KeyUp
	case keyboard.KeyArrowDown:
		return game.KeyDown
	case keyboard.KeyArrowLeft:
		return game.KeyLeft
	case keyboard.KeyArrowRight:
		return game.KeyRight
	}

	switch char {
	case 'W':
		return game.KeyCheatWin
	case 'L':
		return game.KeyCheatLoss
	}

	return game.KeyOther
}
