package geom

import "testing"

func TestPerpendicularPoint(t *testing.T) {
	got := PerpendicularPoint(Point{0, 0}, Point{1, 0}, 1)
	if !got.Equal(Point{0, 1}) {
		t.Errorf("PerpendicularPoint = %v, want (0, 1)", got)
	}
}

func TestPerpendicularPointDegenerate(t *testing.T) {
	got := PerpendicularPoint(Point{3, 3}, Point{3, 3}, 1)
	if got != (Point{3, 3}) {
		t.Errorf("expected degenerate input to return start unchanged, got %v", got)
	}
}

func TestBisectorOfRightAngle(t *testing.T) {
	// a-b-c forms a right angle at b opening toward (1,1).
	got := Bisector(Point{1, 0}, Point{0, 0}, Point{0, 1}, 1)
	if got.X <= 0 || got.Y <= 0 {
		t.Errorf("expected bisector to point into the open angle, got %v", got)
	}
	if !Default.ApproxEqual(got.Norm(), 1) {
		t.Errorf("expected bisector point at distance 1 from b, got norm %v", got.Norm())
	}
}

func TestExtend(t *testing.T) {
	got := Extend(Point{0, 0}, Point{1, 0}, 2)
	if !got.Equal(Point{3, 0}) {
		t.Errorf("Extend = %v, want (3, 0)", got)
	}
}

func TestPointOnRay(t *testing.T) {
	got := PointOnRay(Point{0, 0}, Point{0, 1}, 5)
	if !got.Equal(Point{0, 5}) {
		t.Errorf("PointOnRay = %v, want (0, 5)", got)
	}
}
