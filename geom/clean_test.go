package geom

import "testing"

func TestCleanRemovesSelfIntersection(t *testing.T) {
	// A bowtie: (0,0)->(2,2)->(0,2)->(2,0) crosses itself once, at (1,1).
	p := Polyline{{0, 0}, {2, 2}, {0, 2}, {2, 0}}
	got := Clean(p)
	if len(got) != 3 {
		t.Fatalf("Clean(bowtie) = %v, want 3 points after splicing", got)
	}
	if !got[1].Equal(Point{1, 1}) {
		t.Errorf("Clean(bowtie)[1] = %v, want (1, 1)", got[1])
	}
}

func TestCleanLeavesNonIntersectingPolylineUnchanged(t *testing.T) {
	p := Polyline{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	got := Clean(p)
	if len(got) != len(p) {
		t.Fatalf("Clean() = %v, want unchanged %v", got, p)
	}
}

func TestCleanShortPolylineIsIdentity(t *testing.T) {
	p := Polyline{{0, 0}, {1, 1}, {2, 0}}
	got := Clean(p)
	if len(got) != 3 {
		t.Fatalf("Clean() on <4 vertices should be a no-op, got %v", got)
	}
}

func TestCleanIdempotent(t *testing.T) {
	p := Polyline{{0, 0}, {2, 2}, {0, 2}, {2, 0}}
	once := Clean(p)
	twice := Clean(once)
	if len(once) != len(twice) {
		t.Fatalf("Clean not idempotent: %v vs %v", once, twice)
	}
	for i := range once {
		if !once[i].Equal(twice[i]) {
			t.Fatalf("Clean not idempotent at %d: %v vs %v", i, once[i], twice[i])
		}
	}
}
