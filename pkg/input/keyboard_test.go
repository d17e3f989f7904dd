package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"

	"github.com/ValonK1/Snake-game/pkg/game"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		char rune
		key  keyboard.Key
		want game.Key
	}{
		{"arrow up", 0, keyboard.KeyArrowUp, game.KeyUp},
		{"arrow down", 0, keyboard.KeyArrowDown, game.KeyDown},
		{"arrow left", 0, keyboard.KeyArrowLeft, game.KeyLeft},
		{"arrow right", 0, keyboard.KeyArrowRight, game.KeyRight},
		{"cheat win", 'W', 0, game.KeyCheatWin},
		{"cheat loss", 'L', 0, game.KeyCheatLoss},
		{"lowercase w is not a cheat", 'w', 0, game.KeyOther},
		{"lowercase l is not a cheat", 'l', 0, game.KeyOther},
		{"letter", 'q', 0, game.KeyOther},
		{"space", ' ', keyboard.KeySpace, game.KeyOther},
	}
	for _, c := range cases {
		if got := decode(c.char, c.key); got != c.want {
			t.Errorf("%s: decode(%q, %v) = %v, want %v", c.name, c.char, c.key, got, c.want)
		}
	}
}

func TestPollKeyIdle(t *testing.T) {
	k := NewKeyboard()
	if key, ok := k.PollKey(); ok || key != game.KeyNone {
		t.Errorf("PollKey on idle keyboard = %v, %v; want KeyNone, false", key, ok)
	}
}

// A dead key source (the decoder goroutine closes the channel on its way
// out) must unblock waiters instead of hanging the end-of-game prompt.
func TestWaitNonArrowReturnsWhenSourceShutsDown(t *testing.T) {
	k := NewKeyboard()
	k.keys <- game.KeyUp // buffered arrow, must not satisfy the wait
	close(k.keys)

	done := make(chan struct{})
	go func() {
		k.WaitNonArrow()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitNonArrow still blocked after the key source closed")
	}
}

func TestPollKeyAfterSourceShutsDown(t *testing.T) {
	k := NewKeyboard()
	close(k.keys)
	if key, ok := k.PollKey(); ok || key != game.KeyNone {
		t.Errorf("PollKey on closed source = %v, %v; want KeyNone, false", key, ok)
	}
}

func TestPollKeyDrainsQueue(t *testing.T) {
	k := NewKeyboard()
	k.keys <- game.KeyUp
	k.keys <- game.KeyLeft

	if key, ok := k.PollKey(); !ok || key != game.KeyUp {
		t.Errorf("first poll = %v, %v; want KeyUp, true", key, ok)
	}
	if key, ok := k.PollKey(); !ok || key != game.KeyLeft {
		t.Errorf("second poll = %v, %v; want KeyLeft, true", key, ok)
	}
	if _, ok := k.PollKey(); ok {
		t.Error("third poll reported a key on an empty queue")
	}
}
