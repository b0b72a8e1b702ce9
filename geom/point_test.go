package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 1, Y: 2}
	q := Point{X: 3, Y: -1}

	if got := p.Add(q); got != (Point{4, 1}) {
		t.Errorf("Add = %v, want (4, 1)", got)
	}
	if got := p.Sub(q); got != (Point{-2, 3}) {
		t.Errorf("Sub = %v, want (-2, 3)", got)
	}
	if got := p.Scale(2); got != (Point{2, 4}) {
		t.Errorf("Scale = %v, want (2, 4)", got)
	}
	if got := p.Dot(q); got != 1 {
		t.Errorf("Dot = %v, want 1", got)
	}
	if got := p.Cross(q); got != -7 {
		t.Errorf("Cross = %v, want -7", got)
	}
}

func TestPointNormAndNormalized(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
	n := p.Normalized()
	if !Default.ApproxEqual(n.Norm(), 1) {
		t.Errorf("Normalized().Norm() = %v, want 1", n.Norm())
	}

	zero := Point{}
	if got := zero.Normalized(); got != zero {
		t.Errorf("Normalized() of zero vector = %v, want zero", got)
	}
}

func TestPointDistance(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 3, Y: 4}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointEqual(t *testing.T) {
	p := Point{X: 1, Y: 1}
	q := Point{X: 1 + 1e-9, Y: 1 - 1e-9}
	if !p.Equal(q) {
		t.Errorf("Equal should tolerate PointTolerance-sized differences")
	}
	if p.Equal(Point{X: 2, Y: 1}) {
		t.Errorf("Equal should reject a 1-unit difference")
	}
}

func TestPointLeft(t *testing.T) {
	p := Point{X: 1, Y: 0}
	if got := p.Left(); got != (Point{0, 1}) {
		t.Errorf("Left() = %v, want (0, 1)", got)
	}
}
