package laminate

import (
	"github.com/pochishchalov/LaminateSketch/geom"
	"github.com/pochishchalov/LaminateSketch/rawsketch"
)

// bandHeight is the vertical band width used to probe for a polyline lying
// directly above another. No monolayer in the target material exceeds this
// many units of local thickness, so a 3-unit offset is enough to catch any
// stacked neighbor.
const bandHeight = 3.0

// IsTopmost reports whether target currently lies on the top boundary of
// the polylines remaining in sketch: no other remaining polyline sits in
// the bandHeight-wide band directly above it. It offsets target upward by
// bandHeight, cleans the result of self-intersections, and checks both
// that no other polyline crosses the band's end caps and that no other
// polyline has a vertex inside the band polygon.
//
// RemoveSelfIntersections (geom.Clean) can legitimately shrink the offset
// polyline below target's own vertex count; the band polygon is built from
// whatever survives, vertex-count mismatch and all. This is not corrected:
// it mirrors the original classifier exactly.
func IsTopmost(target *rawsketch.RawPolyline, sketch *rawsketch.RawSketch) bool {
	p := target.Polyline
	up := geom.Clean(geom.Offset(p, bandHeight))
	if len(up) == 0 {
		return true
	}

	for _, other := range sketch.All() {
		if other == target {
			continue
		}
		q := other.Polyline
		if segmentIntersectsPolyline(p[0], up[0], q) || segmentIntersectsPolyline(p[len(p)-1], up[len(up)-1], q) {
			return false
		}
	}

	var band geom.Polygon
	band.AddPolyline(p)
	band.AddPolyline(up.Reversed())

	for _, other := range sketch.All() {
		if other == target {
			continue
		}
		for _, v := range other.Polyline {
			if geom.Inside(v, band) {
				return false
			}
		}
	}

	return true
}

func segmentIntersectsPolyline(a, b geom.Point, q geom.Polyline) bool {
	for i := 0; i+1 < len(q); i++ {
		if _, ok := geom.SegSeg(a, b, q[i], q[i+1], geom.Default); ok {
			return true
		}
	}
	return false
}
