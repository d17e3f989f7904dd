package game

import (
	"math/rand"

	"github.com/ValonK1/Snake-game/pkg/config"
)

// Trophy is the single timed collectible. Eating it grows the snake by
// Value; an un-eaten trophy expires after TicksLeft ticks and is replaced.
type Trophy struct {
	Pos       Coord `json:"pos"`
	Value     int   `json:"value"`
	TicksLeft int   `json:"ticksLeft"`
}

// spawnTrophy rejection-samples an interior cell not occupied by the body
// and rolls a value and lifetime. Rejected samples have no side effects.
// It reports false when the body covers the whole interior (only possible
// right at the brink of a win); the caller skips the spawn for this tick
// and tries again on the next.
func spawnTrophy(rng *rand.Rand, pit Pit, body *Body) (Trophy, bool) {
	if body.Len() >= pit.InteriorArea() {
		return Trophy{}, false
	}

	var pos Coord
	for {
		pos = Coord{
			Row: rng.Intn(pit.Rows-2) + 1,
			Col: rng.Intn(pit.Cols-2) + 1,
		}
		if !body.Occupies(pos) {
			break
		}
	}

	return Trophy{
		Pos:       pos,
		Value:     config.TrophyValueMin + rng.Intn(config.TrophyValueMax-config.TrophyValueMin+1),
		TicksLeft: config.TrophyMinLifetimeTicks + rng.Intn(config.TrophyMaxLifetimeTicks-config.TrophyMinLifetimeTicks+1),
	}, true
}

// regenTrophy replaces the active trophy with a fresh one. A trophy that
// expired un-eaten is still on screen and gets erased; a consumed one is
// not, because the snake's head now covers its cell.
func (g *Game) regenTrophy() {
	if g.trophyLive {
		g.rend.EraseCell(g.trophy.Pos)
		g.trophyLive = false
	}

	trophy, ok := spawnTrophy(g.rng, g.pit, g.body)
	if !ok {
		return
	}

	g.trophy = trophy
	g.trophyLive = true
	g.rend.DrawTrophy(trophy.Pos, trophy.Value)
	g.rend.Refresh()
}

// tryAward returns the trophy's growth value if head lands on it. The caller
// grows the body and the trophy is considered consumed.
func (g *Game) tryAward(head Coord) (int, bool) {
	if !g.trophyLive || head != g.trophy.Pos {
		return 0, false
	}
	g.trophyLive = false
	return g.trophy.Value, true
}
