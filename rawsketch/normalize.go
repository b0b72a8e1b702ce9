package rawsketch

import (
	"math"

	"github.com/pochishchalov/LaminateSketch/geom"
)

// IngestTolerance is the collinear-vertex simplification tolerance applied
// to every raw polyline at ingest.
var IngestTolerance = geom.Tolerance{Abs: 1e-3, Rel: 1e-3}

// Normalize applies the three steps required before assembly can begin:
// collinear-vertex simplification of every polyline, translation of the
// whole sketch so its minimum x and y are both 0, and reversal of any
// polyline that runs right-to-left so that every ply traverses left to
// right. It mutates the sketch in place.
func Normalize(s *RawSketch) {
	for _, p := range s.items {
		p.Polyline = geom.Simplify(p.Polyline, IngestTolerance)
	}

	translateToOrigin(s)

	for _, p := range s.items {
		if len(p.Polyline) == 0 {
			continue
		}
		first, last := p.Polyline[0], p.Polyline[len(p.Polyline)-1]
		if first.X > last.X {
			p.Polyline = p.Polyline.Reversed()
		}
	}
}

func translateToOrigin(s *RawSketch) {
	minX, minY := math.Inf(1), math.Inf(1)
	for _, p := range s.items {
		for _, pt := range p.Polyline {
			if pt.X < minX {
				minX = pt.X
			}
			if pt.Y < minY {
				minY = pt.Y
			}
		}
	}
	if math.IsInf(minX, 1) {
		return
	}

	shift := geom.Point{X: minX, Y: minY}
	for _, p := range s.items {
		for i, pt := range p.Polyline {
			p.Polyline[i] = pt.Sub(shift)
		}
	}
}
