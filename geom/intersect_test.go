package geom

import "testing"

func TestLineLineIntersectingLines(t *testing.T) {
	got, ok := LineLine(Point{0, 0}, Point{1, 0}, Point{0, -1}, Point{0, 1}, Default)
	if !ok {
		t.Fatalf("expected intersection")
	}
	if !got.Equal(Point{0, 0}) {
		t.Errorf("got %v, want (0, 0)", got)
	}
}

func TestLineLineParallelReturnsFalse(t *testing.T) {
	_, ok := LineLine(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}, Default)
	if ok {
		t.Errorf("expected ok=false for parallel lines")
	}
}

func TestLineLineCoincidentReturnsFalse(t *testing.T) {
	_, ok := LineLine(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0}, Default)
	if ok {
		t.Errorf("expected ok=false for coincident lines")
	}
}

func TestSegSegCrossing(t *testing.T) {
	got, ok := SegSeg(Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0}, Default)
	if !ok {
		t.Fatalf("expected intersection")
	}
	if !got.Equal(Point{1, 1}) {
		t.Errorf("got %v, want (1, 1)", got)
	}
}

func TestSegSegNonCrossingWithinLineBounds(t *testing.T) {
	// These lines would cross if extended infinitely, but the segments
	// themselves do not overlap.
	_, ok := SegSeg(Point{0, 0}, Point{1, 1}, Point{3, 0}, Point{4, -1}, Default)
	if ok {
		t.Errorf("expected ok=false when the segments themselves don't meet")
	}
}

func TestSegSegParallelReturnsFalse(t *testing.T) {
	_, ok := SegSeg(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}, Default)
	if ok {
		t.Errorf("expected ok=false for parallel segments")
	}
}

func TestSegSegTouchingAtEndpoint(t *testing.T) {
	got, ok := SegSeg(Point{0, 0}, Point{1, 0}, Point{1, 0}, Point{1, 1}, Default)
	if !ok {
		t.Fatalf("expected intersection at shared endpoint")
	}
	if !got.Equal(Point{1, 0}) {
		t.Errorf("got %v, want (1, 0)", got)
	}
}

func TestIsParallel(t *testing.T) {
	if !IsParallel(Point{0, 0}, Point{2, 0}, Point{5, 5}, Point{9, 5}, Default) {
		t.Errorf("expected horizontal segments to be parallel")
	}
	if IsParallel(Point{0, 0}, Point{2, 0}, Point{5, 5}, Point{5, 9}, Default) {
		t.Errorf("expected perpendicular segments to not be parallel")
	}
}

func TestIsCollinear(t *testing.T) {
	if !IsCollinear(Point{0, 0}, Point{1, 0}, Point{2, 0}, Default) {
		t.Errorf("expected collinear points to be reported collinear")
	}
	if IsCollinear(Point{0, 0}, Point{1, 0}, Point{1, 1}, Default) {
		t.Errorf("expected an L-shape to not be collinear")
	}
}

func TestIsCollinearDegenerateFirstPoint(t *testing.T) {
	if !IsCollinear(Point{1, 1}, Point{1, 1}, Point{5, 9}, Default) {
		t.Errorf("a degenerate first segment is trivially collinear")
	}
}
