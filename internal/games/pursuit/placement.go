package pursuit

import (
	"math/rand"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

// samplePosition draws uniform candidates from the interior until one is
// free of the occupied set and at least minSep away from the anchor.
// Returns false once the attempt budget is exhausted: callers must treat
// requested entity counts as upper bounds, not guarantees.
func samplePosition(rng *rand.Rand, interior core.Rect, occupied map[Position]bool, anchor Position, minSep float64, maxAttempts int) (Position, bool) {
	for i := 0; i < maxAttempts; i++ {
		p := Position{
			X: interior.X + rng.Intn(interior.W),
			Y: interior.Y + rng.Intn(interior.H),
		}
		if occupied[p] {
			continue
		}
		if minSep > 0 && p.Dist(anchor) < minSep {
			continue
		}
		return p, true
	}
	return Position{}, false
}

// sampleBorder picks a spawn cell on the border frame: a random edge, then
// a random coordinate along it clamped off the corners. Used for wave
// reinforcements, which march in from the walls. Best-effort like
// samplePosition.
func sampleBorder(rng *rand.Rand, bounds core.Rect, occupied func(Position) bool, maxAttempts int) (Position, bool) {
	for i := 0; i < maxAttempts; i++ {
		var p Position
		switch rng.Intn(4) {
		case 0: // top
			p = Position{X: core.Clamp(rng.Intn(bounds.W), 1, bounds.W-2), Y: bounds.Y}
		case 1: // bottom
			p = Position{X: core.Clamp(rng.Intn(bounds.W), 1, bounds.W-2), Y: bounds.Bottom() - 1}
		case 2: // left
			p = Position{X: bounds.X, Y: core.Clamp(rng.Intn(bounds.H), 1, bounds.H-2)}
		case 3: // right
			p = Position{X: bounds.Right() - 1, Y: core.Clamp(rng.Intn(bounds.H), 1, bounds.H-2)}
		}
		if occupied(p) {
			continue
		}
		return p, true
	}
	return Position{}, false
}
