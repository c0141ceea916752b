package pursuit

import "testing"

func TestCanSeeRange(t *testing.T) {
	obstacles := map[Position]bool{}
	from := Position{X: 0, Y: 0}

	if !canSee(from, Position{X: 5, Y: 0}, obstacles, 5) {
		t.Error("Target exactly at range should be visible")
	}
	if canSee(from, Position{X: 6, Y: 0}, obstacles, 5) {
		t.Error("Target beyond range should not be visible")
	}
	if !canSee(from, from, obstacles, 5) {
		t.Error("Own cell should always be visible")
	}

	// Euclidean, not Chebyshev: (4,4) is dist ~5.66
	if canSee(from, Position{X: 4, Y: 4}, obstacles, 5) {
		t.Error("Diagonal distance must be Euclidean")
	}
	if !canSee(from, Position{X: 3, Y: 4}, obstacles, 5) {
		t.Error("(3,4) is exactly distance 5, should be visible")
	}
}

func TestCanSeeBlocked(t *testing.T) {
	from := Position{X: 0, Y: 0}
	to := Position{X: 6, Y: 0}

	obstacles := map[Position]bool{{X: 3, Y: 0}: true}
	if canSee(from, to, obstacles, 10) {
		t.Error("Obstacle on the line should block sight")
	}

	// Obstacle off the line does not block
	obstacles = map[Position]bool{{X: 3, Y: 2}: true}
	if !canSee(from, to, obstacles, 10) {
		t.Error("Obstacle off the line should not block sight")
	}
}

func TestCanSeeOriginNotBlocking(t *testing.T) {
	from := Position{X: 2, Y: 2}
	to := Position{X: 5, Y: 2}

	// Standing on an obstacle cell does not blind the viewer
	obstacles := map[Position]bool{from: true}
	if !canSee(from, to, obstacles, 10) {
		t.Error("Obstacle at the origin cell should not block the viewer")
	}
}

func TestCanSeeTargetBlocked(t *testing.T) {
	from := Position{X: 0, Y: 0}
	to := Position{X: 4, Y: 0}

	// The target cell itself being an obstacle blocks sight to it
	obstacles := map[Position]bool{to: true}
	if canSee(from, to, obstacles, 10) {
		t.Error("Obstacle at the target cell should block sight")
	}
}

func TestCanSeeDiagonalSymmetric(t *testing.T) {
	a := Position{X: 0, Y: 0}
	b := Position{X: 4, Y: 4}
	obstacles := map[Position]bool{{X: 2, Y: 2}: true}

	if canSee(a, b, obstacles, 10) != canSee(b, a, obstacles, 10) {
		t.Error("Line of sight along a pure diagonal should be symmetric")
	}
	if canSee(a, b, obstacles, 10) {
		t.Error("Obstacle on the diagonal should block")
	}
}
