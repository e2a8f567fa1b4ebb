package core

// Interpolate returns every grid point on the segment from (x0, y0) to
// (x1, y1) inclusive using Bresenham's integer algorithm. Consecutive points
// differ by at most one in each axis.
func Interpolate(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	pts := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		pts = append(pts, Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			return pts
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
