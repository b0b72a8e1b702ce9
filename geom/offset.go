package geom

// Offset returns the polyline obtained by shifting p perpendicular to
// itself by the signed distance d (positive d shifts left of the
// traversal direction). The first and last vertices are shifted
// perpendicular to their single adjacent segment. Each interior vertex is
// the intersection of its two adjacent segments, each independently
// shifted by d along its own left normal; if those two shifted lines are
// parallel, the midpoint of their corresponding shifted endpoints is used
// instead. Offset returns an empty polyline if p has fewer than two
// vertices or if any adjacent pair of input vertices coincides.
func Offset(p Polyline, d float64) Polyline {
	if len(p) < 2 {
		return Polyline{}
	}

	result := make(Polyline, 0, len(p))
	for i := 0; i < len(p); i++ {
		switch {
		case i == 0:
			if p[0].Equal(p[1]) {
				return Polyline{}
			}
			result = append(result, PerpendicularPoint(p[0], p[1], d))
		case i == len(p)-1:
			if p[i].Equal(p[i-1]) {
				return Polyline{}
			}
			result = append(result, PerpendicularPoint(p[i], p[i-1], -d))
		default:
			prev, curr, next := p[i-1], p[i], p[i+1]
			if curr.Equal(next) {
				return Polyline{}
			}

			prevShift1 := result[len(result)-1]
			prevShift2 := PerpendicularPoint(curr, prev, -d)

			nextShift1 := PerpendicularPoint(curr, next, d)
			nextShift2 := PerpendicularPoint(next, curr, -d)

			if v, ok := LineLine(prevShift1, prevShift2, nextShift1, nextShift2, CollinearTolerance); ok {
				result = append(result, v)
			} else {
				mid := Point{
					X: (prevShift1.X + nextShift1.X) / 2,
					Y: (prevShift1.Y + nextShift1.Y) / 2,
				}
				result = append(result, mid)
			}
		}
	}
	return result
}
