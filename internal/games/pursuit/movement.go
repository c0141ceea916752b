package pursuit

import (
	"math/rand"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

var cardinals = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// stepEnemy advances one enemy for this tick. Alerted enemies pursue the
// target greedily along one axis; idle enemies occasionally wander.
// Speed is truncated toward zero for the step magnitude, so fractional
// speed never accumulates into extra motion (a 1.02 speed still steps one
// cell). Preserved on purpose; see the config docs before changing it.
func stepEnemy(rng *rand.Rand, e *Enemy, target Position, obstacles map[Position]bool, interior core.Rect, wanderInterval int, wanderChance float64) {
	if e.SeesPlayer {
		pursue(e, target, obstacles, interior)
		return
	}
	wander(rng, e, obstacles, interior, wanderInterval, wanderChance)
}

// pursue moves along the axis of greater absolute delta, preferring the
// horizontal axis on ties. A candidate landing on an obstacle or outside
// the interior is rejected outright: the enemy stays in place this tick,
// with no sliding or alternate-axis retry.
func pursue(e *Enemy, target Position, obstacles map[Position]bool, interior core.Rect) {
	dx := target.X - e.Pos.X
	dy := target.Y - e.Pos.Y
	step := int(e.Speed)

	var cand Position
	switch {
	case dx != 0 && abs(dx) >= abs(dy):
		cand = Position{X: e.Pos.X + core.Sign(dx)*step, Y: e.Pos.Y}
	case dy != 0:
		cand = Position{X: e.Pos.X, Y: e.Pos.Y + core.Sign(dy)*step}
	default:
		return
	}

	if obstacles[cand] || !interior.Contains(cand.X, cand.Y) {
		return
	}
	e.Pos = cand
}

// wander counts idle ticks; once the interval is reached the enemy rolls
// wanderChance to attempt a single step in a random cardinal direction.
// The counter resets whether or not the enemy actually moved.
func wander(rng *rand.Rand, e *Enemy, obstacles map[Position]bool, interior core.Rect, wanderInterval int, wanderChance float64) {
	e.idleTicks++
	if e.idleTicks < wanderInterval {
		return
	}
	e.idleTicks = 0

	if rng.Float64() >= wanderChance {
		return
	}

	d := cardinals[rng.Intn(len(cardinals))]
	step := int(e.Speed)
	cand := Position{X: e.Pos.X + d[0]*step, Y: e.Pos.Y + d[1]*step}

	if !interior.Contains(cand.X, cand.Y) || obstacles[cand] {
		return
	}
	e.Pos = cand
}
