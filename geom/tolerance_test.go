package geom

import "testing"

func TestToleranceApproxEqual(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1.0, 1.0, true},
		{1.0, 1.0 + 1e-13, true},
		{1.0, 1.01, false},
		{1e10, 1e10 + 1e-3, true},
		{0, 1e-13, true},
	}
	for _, tc := range tests {
		if got := Default.ApproxEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("Default.ApproxEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestToleranceIsZero(t *testing.T) {
	if !Default.IsZero(0) {
		t.Errorf("IsZero(0) = false, want true")
	}
	if Default.IsZero(1) {
		t.Errorf("IsZero(1) = true, want false")
	}
}

func TestToleranceLEGE(t *testing.T) {
	tol := Tolerance{Abs: 1e-6, Rel: 0}
	if !tol.LE(1.0000001, 1.0) {
		t.Errorf("LE should treat near-equal values as equal")
	}
	if !tol.GE(1.0, 1.0000001) {
		t.Errorf("GE should treat near-equal values as equal")
	}
	if tol.LE(2.0, 1.0) {
		t.Errorf("LE(2.0, 1.0) should be false")
	}
}
