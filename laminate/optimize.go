package laminate

import "math"

// DefaultOffset and DefaultSegLen are the public defaults for Optimize's
// offsetGoal and segMax parameters, in domain units.
const (
	DefaultOffset = 1.0
	DefaultSegLen = 20.0
)

// Scale multiplies every node's coordinates in l by k.
func Scale(l *Laminate, k float64) {
	for li := range l.Layers {
		for pi := range l.Layers[li].Plies {
			for ni := range l.Layers[li].Plies[pi].Nodes {
				n := &l.Layers[li].Plies[pi].Nodes[ni]
				n.Point.X *= k
				n.Point.Y *= k
			}
		}
	}
}

// BoundingBox returns the width and height of l's axis-aligned bounding
// box, or (0, 0) if l has no nodes.
func BoundingBox(l *Laminate) (width, height float64) {
	left, bottom := math.Inf(1), math.Inf(1)
	right, top := math.Inf(-1), math.Inf(-1)

	for _, layer := range l.Layers {
		for _, ply := range layer.Plies {
			for _, n := range ply.Nodes {
				left = math.Min(left, n.Point.X)
				right = math.Max(right, n.Point.X)
				bottom = math.Min(bottom, n.Point.Y)
				top = math.Max(top, n.Point.Y)
			}
		}
	}

	if math.IsInf(left, 1) {
		return 0, 0
	}
	return right - left, top - bottom
}

// Optimize returns a rescaled, compressed copy of original. k =
// offsetGoal / baselineDistance is the uniform scale factor; the copy is
// compressed so that no adjacent-column gap exceeds segMax/k before being
// scaled by k, so that the post-scale gap is segMax. baselineDistance is
// supplied by the caller rather than recomputed from original, since a
// laminate's baseline minimum column distance is cached once at load time
// (see Sketch.Load).
func Optimize(original *Laminate, offsetGoal, segMax, baselineDistance float64) (optimized *Laminate, width, height float64) {
	cp := original.Clone()
	k := offsetGoal / baselineDistance
	Compress(cp, segMax/k)
	Scale(cp, k)
	width, height = BoundingBox(cp)
	return cp, width, height
}
