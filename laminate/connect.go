package laminate

import "github.com/pochishchalov/LaminateSketch/geom"

// AssembleOptions tunes the distances and tolerances the assembler's edge
// connection step probes with. The zero value is not useful; use
// DefaultAssembleOptions.
type AssembleOptions struct {
	// ProbeLength is how far the bisector and perpendicular probes extend
	// in each direction from a dangling node.
	ProbeLength float64
	// ProbeTolerance governs the segment-intersection computation between
	// a probe and the edge under test.
	ProbeTolerance geom.Tolerance
	// ConnectTolerance is the distance within which a probe's intersection
	// point must fall of an edge endpoint to count as hitting it.
	ConnectTolerance float64
}

// DefaultAssembleOptions mirrors the constants the assembler was built
// against: a 3-unit probe (no monolayer exceeds 3 units of local
// thickness), a tight determinant tolerance for the probe intersection
// itself, and a 0.01-unit endpoint coincidence tolerance.
var DefaultAssembleOptions = AssembleOptions{
	ProbeLength:      bandHeight,
	ProbeTolerance:   geom.Tolerance{Abs: 1e-3},
	ConnectTolerance: 0.01,
}

// connectEdge links unconsumed dangling nodes in pending to the segment
// aPos->bPos of a newly added ply, following the bisector-then-perpendicular
// probe protocol: for each candidate C with no Lower link yet, a bisector
// probe through C's two neighbors is tried first (when both neighbors
// exist), then a perpendicular probe through each neighbor in turn. The
// first probe whose intersection with aPos->bPos falls on bPos stops
// processing immediately, since later edges will pick up later candidates;
// a match on aPos lets the loop continue to the next candidate. Failing an
// endpoint match, up to two non-endpoint intersections are collected and
// the first (or, on a tie broken by parallelism with the right neighbor
// edge, the second) becomes a new node inserted into the ply at bPos.
func connectEdge(aPos, bPos NodePos, l *Laminate, pending []NodePos, opts AssembleOptions) {
	for _, cPos := range pending {
		if l.Node(cPos).Lower != nil {
			continue
		}

		isFirst := l.IsFirstPlyNode(cPos)
		isLast := l.IsLastPlyNode(cPos)

		var leftPos, rightPos NodePos
		haveLeft, haveRight := !isFirst, !isLast
		if haveLeft {
			leftPos = NodePos{Layer: cPos.Layer, Ply: cPos.Ply, Node: cPos.Node - 1}
		}
		if haveRight {
			rightPos = NodePos{Layer: cPos.Layer, Ply: cPos.Ply, Node: cPos.Node + 1}
		}

		if haveLeft && haveRight {
			p1 := geom.Bisector(l.Node(leftPos).Point, l.Node(cPos).Point, l.Node(rightPos).Point, opts.ProbeLength)
			p2 := geom.Bisector(l.Node(leftPos).Point, l.Node(cPos).Point, l.Node(rightPos).Point, -opts.ProbeLength)
			if v, ok := probe(l, aPos, bPos, p1, p2, opts); ok {
				if matchedA, matchedB := tryLink(l, aPos, bPos, cPos, v, opts.ConnectTolerance); matchedA || matchedB {
					if matchedB {
						return
					}
					continue
				}
			}
		}

		var neighbors []NodePos
		if haveLeft {
			neighbors = append(neighbors, leftPos)
		}
		if haveRight {
			neighbors = append(neighbors, rightPos)
		}

		var intersections []geom.Point
		complete := false
		for _, nPos := range neighbors {
			p1 := geom.PerpendicularPoint(l.Node(cPos).Point, l.Node(nPos).Point, opts.ProbeLength)
			p2 := geom.PerpendicularPoint(l.Node(cPos).Point, l.Node(nPos).Point, -opts.ProbeLength)
			v, ok := probe(l, aPos, bPos, p1, p2, opts)
			if !ok {
				continue
			}
			if matchedA, matchedB := tryLink(l, aPos, bPos, cPos, v, opts.ConnectTolerance); matchedA || matchedB {
				if matchedB {
					return
				}
				complete = true
				break
			}
			intersections = append(intersections, v)
		}
		if complete {
			continue
		}

		if len(intersections) > 0 {
			point := intersections[0]
			if len(intersections) == 2 && haveRight {
				a, b := l.Node(aPos).Point, l.Node(bPos).Point
				if geom.IsParallel(a, b, l.Node(cPos).Point, l.Node(rightPos).Point, opts.ProbeTolerance) {
					point = intersections[1]
				}
			}

			upper := cPos
			l.InsertNode(bPos, Node{Point: point, Upper: &upper})

			inserted := l.Node(bPos).Position
			l.Node(cPos).Lower = &inserted

			bPos.Node++
		}
	}
}

// probe intersects segment aPos->bPos with segment p1->p2 (a bisector or
// perpendicular probe line) under opts.ProbeTolerance.
func probe(l *Laminate, aPos, bPos NodePos, p1, p2 geom.Point, opts AssembleOptions) (geom.Point, bool) {
	return geom.SegSeg(l.Node(aPos).Point, l.Node(bPos).Point, p1, p2, opts.ProbeTolerance)
}

// tryLink checks whether v coincides (within tol) with the point at aPos or
// bPos, preferring aPos when both match, and if the matched endpoint has no
// Upper link yet and cPos has no Lower link yet, links them.
func tryLink(l *Laminate, aPos, bPos, cPos NodePos, v geom.Point, tol float64) (matchedA, matchedB bool) {
	isA := l.Node(aPos).Point.Distance(v) <= tol
	isB := l.Node(bPos).Point.Distance(v) <= tol
	if !isA && !isB {
		return false, false
	}

	targetPos := bPos
	if isA {
		targetPos = aPos
	}
	target := l.Node(targetPos)
	c := l.Node(cPos)
	if target.Upper != nil || c.Lower != nil {
		return false, false
	}

	tp := cPos
	target.Upper = &tp
	cp := targetPos
	c.Lower = &cp
	return isA, isB
}
