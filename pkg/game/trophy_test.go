package game

import (
	"math/rand"
	"testing"

	"github.com/ValonK1/Snake-game/pkg/config"
)

func TestTrophySpawnAvoidsBody(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pit := Pit{Rows: 12, Cols: 12}

	var b Body
	b.Reset(pit.WinLength(), Right)
	b.Grow(5)
	commitRun(&b, Coord{5, 3}, Coord{5, 4}, Coord{5, 5}, Coord{5, 6}, Coord{5, 7}, Coord{5, 8})

	for i := 0; i < 200; i++ {
		trophy, ok := spawnTrophy(rng, pit, &b)
		if !ok {
			t.Fatal("spawn failed with a nearly empty pit")
		}
		if b.Occupies(trophy.Pos) {
			t.Fatalf("spawn %d landed on the body at %v", i, trophy.Pos)
		}
		if !pit.Inside(trophy.Pos) {
			t.Fatalf("spawn %d landed on or outside the wall at %v", i, trophy.Pos)
		}
		if trophy.Value < config.TrophyValueMin || trophy.Value > config.TrophyValueMax {
			t.Fatalf("spawn %d value = %d, want %d..%d",
				i, trophy.Value, config.TrophyValueMin, config.TrophyValueMax)
		}
		if trophy.TicksLeft < config.TrophyMinLifetimeTicks || trophy.TicksLeft > config.TrophyMaxLifetimeTicks {
			t.Fatalf("spawn %d lifetime = %d ticks, want %d..%d",
				i, trophy.TicksLeft, config.TrophyMinLifetimeTicks, config.TrophyMaxLifetimeTicks)
		}
	}
}

// A body covering the whole interior must make the spawner give up for the
// tick instead of sampling forever.
func TestTrophySpawnFullInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pit := Pit{Rows: 3, Cols: 4} // interior is just (1,1) and (1,2)

	var b Body
	b.Reset(pit.WinLength(), Right)
	b.Grow(1)
	commitRun(&b, Coord{1, 1}, Coord{1, 2})

	if _, ok := spawnTrophy(rng, pit, &b); ok {
		t.Error("spawn succeeded with no free interior cell")
	}
}

func TestTryAward(t *testing.T) {
	in := &stubInput{}
	g, _, _ := newTestGame(Pit{Rows: 20, Cols: 20}, in)

	g.trophy = Trophy{Pos: Coord{Row: 4, Col: 4}, Value: 6, TicksLeft: 50}
	g.trophyLive = true

	if v, ok := g.tryAward(Coord{Row: 4, Col: 5}); ok || v != 0 {
		t.Errorf("award off-target = %d,%v; want miss", v, ok)
	}
	if v, ok := g.tryAward(Coord{Row: 4, Col: 4}); !ok || v != 6 {
		t.Errorf("award on-target = %d,%v; want 6", v, ok)
	}
	if g.trophyLive {
		t.Error("trophy still live after being consumed")
	}
	if _, ok := g.tryAward(Coord{Row: 4, Col: 4}); ok {
		t.Error("consumed trophy awarded twice")
	}
}
