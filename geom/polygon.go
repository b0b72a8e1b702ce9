package geom

// Polygon is an ordered sequence of points describing a simple, closed
// boundary. The edge from the last point back to the first is implicit.
type Polygon struct {
	points []Point
}

// NewPolygon builds a Polygon from the given points.
func NewPolygon(points ...Point) Polygon {
	return Polygon{points: append([]Point(nil), points...)}
}

// AddPoint appends a single point to the polygon boundary.
func (pg *Polygon) AddPoint(p Point) {
	pg.points = append(pg.points, p)
}

// AddPolyline appends every point of p to the polygon boundary, in order.
func (pg *Polygon) AddPolyline(p Polyline) {
	pg.points = append(pg.points, p...)
}

// Points returns the polygon's boundary points, in order.
func (pg Polygon) Points() []Point { return pg.points }

// NumPoints returns the number of boundary points.
func (pg Polygon) NumPoints() int { return len(pg.points) }

// Inside reports whether q lies inside or on the boundary of poly, using a
// vertical upward ray-cast with parity toggling on every non-vertical edge
// crossing strictly above q (a horizontal edge toggles like any other).
// Coincidence with a vertex, or with a vertical edge that contains q, or
// with any non-vertical edge whose y at q's x equals q's y, counts as
// inside.
func Inside(q Point, poly Polygon) bool {
	pts := poly.points
	n := len(pts)
	if n == 0 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		p1, p2 := pts[i], pts[j]

		if q.Equal(p1) {
			return true
		}

		if Default.IsZero(p1.X - p2.X) {
			// Vertical edge: on-edge if q shares its x and its y falls
			// within the edge's y-range.
			if Default.IsZero(q.X-p1.X) &&
				Default.GE(q.Y, minF(p1.Y, p2.Y)) && Default.LE(q.Y, maxF(p1.Y, p2.Y)) {
				return true
			}
			continue
		}

		if q.X <= minF(p1.X, p2.X) || q.X > maxF(p1.X, p2.X) {
			continue
		}

		t := (q.X - p1.X) / (p2.X - p1.X)
		yIntersect := p1.Y + t*(p2.Y-p1.Y)

		if Default.IsZero(yIntersect - q.Y) {
			return true
		}
		if yIntersect > q.Y {
			inside = !inside
		}
	}
	return inside
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
