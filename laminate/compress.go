package laminate

import (
	"math"

	"github.com/pochishchalov/LaminateSketch/geom"
)

// nextColumn returns the position reached by stepping to pos's right-hand
// sibling in its ply, or, if pos is the last node of its ply, by following
// its Upper link and recursing. It reports ok=false once there is nowhere
// left to go.
func nextColumn(pos NodePos, l *Laminate) (NodePos, bool) {
	if !l.IsLastPlyNode(pos) {
		return NodePos{Layer: pos.Layer, Ply: pos.Ply, Node: pos.Node + 1}, true
	}
	if upper := l.Node(pos).Upper; upper != nil {
		return nextColumn(*upper, l)
	}
	return NodePos{}, false
}

func minDistanceGroupNodes(pos NodePos, l *Laminate) float64 {
	result := math.Inf(1)
	node := l.Node(pos)
	for node.Upper != nil {
		top := l.Node(*node.Upper)
		if d := node.Point.Distance(top.Point); d < result {
			result = d
		}
		node = top
	}
	return result
}

// MinColumnDistance returns the minimum euclidean distance between any two
// vertically linked (Upper-connected) nodes anywhere in l, starting from
// the root node and sweeping every column left to right.
func MinColumnDistance(l *Laminate) float64 {
	result := math.Inf(1)
	pos := l.FindRootNode()
	for {
		if d := minDistanceGroupNodes(pos, l); d < result {
			result = d
		}
		next, ok := nextColumn(pos, l)
		if !ok {
			break
		}
		pos = l.TraceToBottom(next)
	}
	return result
}

func minDistanceBetweenGroups(first, second NodePos, l *Laminate) float64 {
	f, s := l.Node(first), l.Node(second)
	result := f.Point.Distance(s.Point)
	for f.Upper != nil && s.Upper != nil {
		f = l.Node(*f.Upper)
		s = l.Node(*s.Upper)
		if d := f.Point.Distance(s.Point); d < result {
			result = d
		}
	}
	return result
}

func compressPairGroups(first, second NodePos, l *Laminate, maxDistance float64) {
	f, s := l.Node(first), l.Node(second)
	mid := geom.PointOnRay(f.Point, s.Point, maxDistance)
	dx := s.Point.X - mid.X
	dy := s.Point.Y - mid.Y

	pos := second
	for {
		temp := pos
		for {
			n := l.Node(temp)
			n.Point.X -= dx
			n.Point.Y -= dy
			if n.Upper == nil {
				break
			}
			temp = *n.Upper
		}
		next, ok := nextColumn(pos, l)
		if !ok {
			break
		}
		pos = l.TraceToBottom(next)
	}
}

// Compress walks adjacent column pairs left to right; whenever the minimum
// distance between the pair's aligned nodes exceeds maxDistance, it translates the
// second column and every column to its right so the gap becomes exactly
// maxDistance. A column already translated by one pair is free to be
// translated again by a later pair — this chain re-compression is
// confirmed behavior, not a defect (see DESIGN.md). A laminate with only a
// single column is left untouched.
func Compress(l *Laminate, maxDistance float64) {
	first := l.FindRootNode()
	next, ok := nextColumn(first, l)
	if !ok {
		return
	}
	second := l.TraceToBottom(next)

	for {
		if d := minDistanceBetweenGroups(first, second, l); maxDistance < d {
			compressPairGroups(first, second, l, maxDistance)
		}
		next, ok := nextColumn(second, l)
		if !ok {
			break
		}
		first = second
		second = l.TraceToBottom(next)
	}
}
