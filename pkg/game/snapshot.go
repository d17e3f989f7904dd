package game

import "github.com/ValonK1/Snake-game/pkg/config"

// TrophyInfo is the client-facing view of the active trophy.
type TrophyInfo struct {
	Pos         Coord `json:"pos"`
	Value       int   `json:"value"`
	SecondsLeft int   `json:"secondsLeft"`
}

// Snapshot is a copy of the observable game state for client
// synchronization: everything a remote front end needs to draw a frame.
type Snapshot struct {
	Pit       Pit         `json:"pit"`
	Cells     []Coord     `json:"cells"` // head first
	Direction string      `json:"direction"`
	Length    int         `json:"length"`
	WinLength int         `json:"winLength"`
	Trophy    *TrophyInfo `json:"trophy,omitempty"`
	Result    string      `json:"result"`
	Message   string      `json:"message,omitempty"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Pit:       g.pit,
		Cells:     g.body.Cells(nil),
		Direction: g.body.Direction().String(),
		Length:    g.body.Len(),
		WinLength: g.pit.WinLength(),
		Result:    g.result.String(),
		Message:   g.lastMsg,
	}
	if g.trophyLive {
		s.Trophy = &TrophyInfo{
			Pos:         g.trophy.Pos,
			Value:       g.trophy.Value,
			SecondsLeft: (g.trophy.TicksLeft + config.TicksPerSecond - 1) / config.TicksPerSecond,
		}
	}
	return s
}
