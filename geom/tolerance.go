package geom

import "math"

// Tolerance bundles the absolute and relative epsilons used by every
// scalar comparison in this package. Predicates accept a Tolerance
// explicitly rather than reaching for a package-level constant so that
// tests can inject alternative values.
type Tolerance struct {
	Abs float64
	Rel float64
}

// Default is the general-purpose tolerance for arithmetic comparisons
// (segment parameters, determinants, and the like).
var Default = Tolerance{Abs: 1e-12, Rel: 1e-9}

// PointTolerance is used when comparing two Points for equality.
var PointTolerance = Tolerance{Abs: 1e-7, Rel: 1e-7}

// CollinearTolerance is used by Offset to decide whether two shifted
// segment lines are parallel.
var CollinearTolerance = Tolerance{Abs: 1e-8, Rel: 1e-8}

// ApproxEqual reports whether a and b are equal within t: |a-b| <=
// max(Abs, Rel*max(|a|,|b|)).
func (t Tolerance) ApproxEqual(a, b float64) bool {
	d := math.Abs(a - b)
	bound := t.Abs
	if r := t.Rel * math.Max(math.Abs(a), math.Abs(b)); r > bound {
		bound = r
	}
	return d <= bound
}

// IsZero reports whether x is zero within t: |x| <= max(Abs, Rel*|x|).
func (t Tolerance) IsZero(x float64) bool {
	bound := t.Abs
	if r := t.Rel * math.Abs(x); r > bound {
		bound = r
	}
	return math.Abs(x) <= bound
}

// LE reports whether a <= b, treating approximately-equal values as equal.
func (t Tolerance) LE(a, b float64) bool {
	return a <= b || t.ApproxEqual(a, b)
}

// GE reports whether a >= b, treating approximately-equal values as equal.
func (t Tolerance) GE(a, b float64) bool {
	return a >= b || t.ApproxEqual(a, b)
}
