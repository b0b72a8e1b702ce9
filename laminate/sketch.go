package laminate

import (
	"github.com/pochishchalov/LaminateSketch/geom"
	"github.com/pochishchalov/LaminateSketch/rawsketch"
)

// Sketch is the stateful entry point for a single assembly session: it
// owns one normalized RawSketch's result (the original Laminate) and one
// optimized snapshot derived from it. Re-optimizing recomputes the
// snapshot from the original rather than mutating it in place, so callers
// get a fresh, independent result from every Optimize call. Sketch is not
// safe for concurrent use: callers must serialize their own calls.
type Sketch struct {
	original  *Laminate
	optimized *Laminate
	width     float64
	height    float64

	// baselineColumnDistance is computed once, from the pristine
	// (un-optimized) laminate, at Load time, and every later Optimize
	// call reuses it rather than recomputing it from the current state.
	baselineColumnDistance float64
}

// Load normalizes raw, assembles it into a laminate, and runs Optimize
// with the package defaults. It returns ok=false, leaving the Sketch
// empty, if assembly could not find a topmost ply for some remaining
// polyline (malformed input).
func (s *Sketch) Load(raw *rawsketch.RawSketch) bool {
	rawsketch.Normalize(raw)

	original, ok := Assemble(raw, DefaultAssembleOptions)
	if !ok || original.IsEmpty() {
		*s = Sketch{}
		return false
	}

	s.original = original
	s.baselineColumnDistance = MinColumnDistance(original)
	s.Optimize(DefaultOffset, DefaultSegLen)
	return true
}

// Optimize recomputes the optimized snapshot from the preserved original
// laminate, using offset as the target minimum column spacing and segMax
// as the maximum horizontal gap between adjacent columns.
func (s *Sketch) Optimize(offset, segMax float64) {
	optimized, width, height := Optimize(s.original, offset, segMax, s.baselineColumnDistance)
	s.optimized = optimized
	s.width = width
	s.height = height
}

// Scale multiplies every coordinate of the optimized snapshot by k; it
// does not touch the preserved original.
func (s *Sketch) Scale(k float64) {
	Scale(s.optimized, k)
	s.width *= k
	s.height *= k
}

// Raw serializes the optimized snapshot back into a RawSketch: one
// RawPolyline per ply, nodes in their stored order, orientation carried
// through unchanged.
func (s *Sketch) Raw() *rawsketch.RawSketch {
	var items []rawsketch.RawPolyline
	for _, layer := range s.optimized.Layers {
		for _, ply := range layer.Plies {
			pts := make(geom.Polyline, len(ply.Nodes))
			for i, n := range ply.Nodes {
				pts[i] = n.Point
			}
			items = append(items, rawsketch.RawPolyline{
				Polyline:    pts,
				Orientation: ply.Orientation,
			})
		}
	}
	return rawsketch.New(items...)
}

// Width returns the optimized snapshot's bounding-box width.
func (s *Sketch) Width() float64 { return s.width }

// Height returns the optimized snapshot's bounding-box height.
func (s *Sketch) Height() float64 { return s.height }

// IsEmpty reports whether the Sketch holds no assembled laminate.
func (s *Sketch) IsEmpty() bool { return s.original == nil || s.original.IsEmpty() }

// Layers returns the optimized snapshot's layers.
func (s *Sketch) Layers() []Layer {
	if s.optimized == nil {
		return nil
	}
	return s.optimized.Layers
}
