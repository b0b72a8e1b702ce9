package geom

// LineLine finds the intersection of the two infinite lines through (p1,p2)
// and (q1,q2). It returns ok=false when the lines are parallel (including
// coincident), without checking whether the intersection falls within
// either segment.
func LineLine(p1, p2, q1, q2 Point, tol Tolerance) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)

	det := d1.X*d2.Y - d1.Y*d2.X
	if tol.IsZero(det) {
		return Point{}, false
	}

	t := ((q1.X-p1.X)*d2.Y - (q1.Y-p1.Y)*d2.X) / det
	return p1.Add(d1.Scale(t)), true
}

// SegSeg finds the intersection of segment (p1,p2) with segment (p3,p4),
// solving the underlying 2x2 linear system for the two segment parameters
// t and u. It returns ok=false when the segments are parallel (including
// collinear and overlapping) or when the intersection of the two
// supporting lines falls outside either segment.
func SegSeg(p1, p2, p3, p4 Point, tol Tolerance) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)

	det := d2.X*d1.Y - d1.X*d2.Y
	if tol.IsZero(det) {
		return Point{}, false
	}

	t := ((d2.X)*(p3.Y-p1.Y) - (d2.Y)*(p3.X-p1.X)) / det
	u := ((d1.X)*(p3.Y-p1.Y) - (d1.Y)*(p3.X-p1.X)) / det

	if tol.GE(t, 0) && tol.LE(t, 1) && tol.GE(u, 0) && tol.LE(u, 1) {
		return p1.Add(d1.Scale(t)), true
	}
	return Point{}, false
}

// IsParallel reports whether segment (p1,p2) is parallel to segment
// (q1,q2).
func IsParallel(p1, p2, q1, q2 Point, tol Tolerance) bool {
	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)
	return tol.IsZero(d1.Cross(d2))
}

// IsCollinear reports whether a, b and c lie on a single line, using the
// signed triangle area normalized by the lengths of (b-a) and (c-a) so
// that the test is scale-invariant.
func IsCollinear(a, b, c Point, tol Tolerance) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	denom := ab.Norm() * ac.Norm()
	if denom == 0 {
		return true
	}
	return tol.IsZero(ab.Cross(ac) / denom)
}
