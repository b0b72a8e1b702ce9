package rawsketch

import "github.com/pochishchalov/LaminateSketch/geom"

// RawPolyline pairs a polyline with the orientation it was tagged with at
// ingest.
type RawPolyline struct {
	Polyline    geom.Polyline
	Orientation Orientation
}

// RawSketch is an unordered collection of RawPolyline supporting stable
// deletion of arbitrary elements; insertion order carries no meaning. It is
// the input to laminate assembly.
type RawSketch struct {
	items []*RawPolyline
}

// New builds a RawSketch from the given polylines.
func New(polylines ...RawPolyline) *RawSketch {
	s := &RawSketch{items: make([]*RawPolyline, 0, len(polylines))}
	for _, p := range polylines {
		p := p
		s.items = append(s.items, &p)
	}
	return s
}

// Len returns the number of polylines remaining in the sketch.
func (s *RawSketch) Len() int { return len(s.items) }

// IsEmpty reports whether the sketch has no polylines remaining.
func (s *RawSketch) IsEmpty() bool { return len(s.items) == 0 }

// All returns the sketch's remaining polylines. The returned slice shares
// no backing array with the sketch's internal storage, but its elements
// are the sketch's own *RawPolyline values: mutating a polyline through
// the returned slice mutates the sketch.
func (s *RawSketch) All() []*RawPolyline {
	out := make([]*RawPolyline, len(s.items))
	copy(out, s.items)
	return out
}

// Remove deletes p from the sketch by identity. It is a no-op if p is not
// present. Order among the remaining elements is not preserved.
func (s *RawSketch) Remove(p *RawPolyline) {
	for i, item := range s.items {
		if item == p {
			last := len(s.items) - 1
			s.items[i] = s.items[last]
			s.items[last] = nil
			s.items = s.items[:last]
			return
		}
	}
}
