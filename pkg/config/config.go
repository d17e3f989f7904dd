package config

import "time"

// Tick timing. The game is tick-based so trophies can be generated at time
// intervals independently of movement cadence.
const (
	TicksPerSecond = 50
	TickInterval   = time.Second / TicksPerSecond
)

// Movement speed settings, expressed in ticks between moves. The interval is
// interpolated from Max down to Min as the snake approaches the win length.
const (
	TicksPerMoveMax = TicksPerSecond / 4
	TicksPerMoveMin = 3
)

// Snake settings
const (
	InitialLength = 3

	// MaxInputDrain bounds how many queued keypresses a single move will
	// read through looking for the most recent one.
	MaxInputDrain = 10
)

// Trophy settings
const (
	TrophyValueMin = 1
	TrophyValueMax = 9

	// Trophy lifetime: 1 to 9 seconds, in ticks.
	TrophyMinLifetimeTicks = TicksPerSecond
	TrophyMaxLifetimeTicks = TicksPerSecond * 9
)

// Smallest pit worth playing in: room for the wall, a few moves, and the
// bottom-row status line.
const (
	MinPitRows = 6
	MinPitCols = 12
)

// Webserver defaults, overridable via environment / .env
const (
	DefaultListenAddr = ":8080"
	DefaultPitRows    = 24
	DefaultPitCols    = 80
	DefaultScoreDB    = "data/scores.db"
)
