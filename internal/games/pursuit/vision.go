package pursuit

// canSee is the discrete line-of-sight test between two grid cells.
// False beyond visionRange; otherwise the line is rasterized with the
// integer Bresenham algorithm and any obstacle after the origin cell
// blocks it. Grid-exact and symmetric: no partial occlusion.
func canSee(from, to Position, obstacles map[Position]bool, visionRange float64) bool {
	if from.Dist(to) > visionRange {
		return false
	}

	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if (x0 != from.X || y0 != from.Y) && obstacles[Position{X: x0, Y: y0}] {
			return false
		}
		if x0 == x1 && y0 == y1 {
			return true
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
