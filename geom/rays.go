package geom

// PerpendicularPoint returns the point offset perpendicularly from start,
// by a signed distance, relative to the direction from start to end: a
// positive offset moves left of that direction. It returns start unchanged
// if start and end coincide.
func PerpendicularPoint(start, end Point, offset float64) Point {
	dir := end.Sub(start)
	n := dir.Norm()
	if n == 0 {
		return start
	}
	perp := Point{X: -dir.Y / n * offset, Y: dir.X / n * offset}
	return start.Add(perp)
}

// Bisector returns the point at distance |length| from b along the
// bisector of the angle formed by a, b and c, signed so that a positive
// length points into the a-b-c angle. It returns b unchanged if either arm
// is degenerate.
func Bisector(a, b, c Point, length float64) Point {
	ba := a.Sub(b).Normalized()
	bc := c.Sub(b).Normalized()
	if ba.Norm() == 0 || bc.Norm() == 0 {
		return b
	}
	dir := ba.Add(bc)
	dirLen := dir.Norm()
	if dirLen == 0 {
		return b
	}
	return b.Add(dir.Scale(length / dirLen))
}

// Extend returns the point reached by following the direction from start
// to end for an additional distance beyond end. It returns end unchanged
// if start and end coincide.
func Extend(start, end Point, distance float64) Point {
	dir := end.Sub(start)
	n := dir.Norm()
	if n == 0 {
		return end
	}
	return end.Add(dir.Scale(distance / n))
}

// PointOnRay returns the point at the given distance from start, along the
// ray through direction. It returns start unchanged if start and direction
// coincide.
func PointOnRay(start, direction Point, distance float64) Point {
	dir := direction.Sub(start)
	n := dir.Norm()
	if n == 0 {
		return start
	}
	return start.Add(dir.Scale(distance / n))
}
