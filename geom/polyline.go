package geom

// Polyline is an ordered, open chain of points connected by straight
// segments. A meaningful Polyline has at least two points; shorter slices
// are treated as degenerate by the functions that operate on them.
type Polyline []Point

// Clone returns an independent copy of p.
func (p Polyline) Clone() Polyline {
	out := make(Polyline, len(p))
	copy(out, p)
	return out
}

// Reversed returns a copy of p with its point order reversed.
func (p Polyline) Reversed() Polyline {
	out := make(Polyline, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Simplify removes every interior vertex whose neighbors render it
// collinear, keeping the first and last vertices unconditionally. Removal
// cascades: once a vertex is dropped, its former neighbors become adjacent
// and are re-tested against each other, which is what makes Simplify
// idempotent on its own output.
func Simplify(p Polyline, tol Tolerance) Polyline {
	if len(p) == 0 {
		return Polyline{}
	}
	result := make(Polyline, 0, len(p))
	result = append(result, p[0])

	for next := 1; next < len(p); next++ {
		curr := p[next]
		for len(result) >= 2 {
			prevPrev := result[len(result)-2]
			prev := result[len(result)-1]
			if !IsCollinear(prevPrev, prev, curr, tol) {
				break
			}
			result = result[:len(result)-1]
		}
		result = append(result, curr)
	}
	return result
}
