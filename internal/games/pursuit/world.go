// Package pursuit implements a turn-based pursuit-survival game: the player
// collects tokens on a walled grid while enemies hunt them down. Enemies
// spot the player by line-of-sight, relay alerts to nearby packs, and arrive
// in escalating waves that permanently raise their speed.
//
// The simulation core is pure and input-driven: one accepted player move
// advances the world by exactly one tick. All randomness flows through a
// single engine-owned source, so a fixed seed reproduces a full run.
package pursuit

import "math"

// Position is an integer grid coordinate. Value type; equality and
// Euclidean distance are the only operations.
type Position struct {
	X, Y int
}

// Dist returns the Euclidean distance to another position.
func (p Position) Dist(q Position) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// Direction is a single-cell player move. DirNone passes the turn:
// the player stays put while the rest of the tick still runs.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Token is a collectible. Collected tokens stay in the slice with the flag
// set: their cell remains reserved and they can never be collected twice.
type Token struct {
	Pos       Position
	Collected bool
}

// Player holds the player-controlled entity.
type Player struct {
	Pos         Position
	Alive       bool
	Moves       int // cumulative accepted moves, drives wave escalation
	Tokens      int
	TokensToWin int
}

// Won reports whether the player has collected enough tokens.
func (p *Player) Won() bool {
	return p.Tokens >= p.TokensToWin
}

// Enemy is a single pursuer. Speed only ever increases over its lifetime.
type Enemy struct {
	Pos         Position
	Speed       float64 // cells per tick before truncation
	VisionRange float64
	SeesPlayer  bool // recomputed every tick by alert propagation

	idleTicks int // wander state, private to the movement resolver
}

// EnemyPopulation owns all enemies together with the wave counters that
// govern them. Wave and SpeedMult are deliberately fields here rather than
// ambient state: the aggregate is owned by the engine and nothing else.
type EnemyPopulation struct {
	Enemies   []*Enemy
	Wave      int
	SpeedMult float64
}

// WorldConfig is the immutable per-difficulty tuning for one game.
// Constructed once at game start, read-only afterward.
type WorldConfig struct {
	// Grid dimensions including the one-cell border frame.
	Width  int
	Height int

	InitialEnemies  int
	EnemyBaseSpeed  float64 // cells per tick at multiplier 1.0
	BaseSpeedMult   float64
	PerWaveIncrease float64 // fractional speed bump per wave
	MovesPerWave    int

	VisionRange float64
	AlertRadius float64

	ObstacleCount int
	TokenCount    int
	TokensToWin   int

	WanderInterval int     // idle ticks before a wander attempt
	WanderChance   float64 // probability of actually stepping

	MinEnemyDistance float64 // enemy spawn distance from the player
	MaxPlaceAttempts int     // rejection-sampling budget per entity
}
