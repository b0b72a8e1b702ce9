package geom

import (
	"fmt"
	"math"
)

// Point is a location in the plane. Equality between two Points is always
// tolerance-based; see Equal.
type Point struct {
	X, Y float64
}

func (p Point) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }

// Add returns the sum of p and q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p minus q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by m.
func (p Point) Scale(m float64) Point { return Point{p.X * m, p.Y * m} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the 3D cross product of p and q,
// treated as vectors from the origin.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

// Normalized returns a unit vector in the direction of p, or the zero
// vector if p is the origin.
func (p Point) Normalized() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Norm() }

// Equal reports whether p and q are equal within PointTolerance.
func (p Point) Equal(q Point) bool {
	return PointTolerance.ApproxEqual(p.X, q.X) && PointTolerance.ApproxEqual(p.Y, q.Y)
}

// Left returns the left normal of p treated as a direction vector: a 90
// degree counterclockwise rotation. It is not normalized.
func (p Point) Left() Point { return Point{-p.Y, p.X} }
