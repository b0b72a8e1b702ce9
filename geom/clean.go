package geom

// Clean repeatedly finds the lexicographically first pair of non-adjacent
// segments (i, j) with i+2 <= j that intersect, and splices the polyline
// to P[0..i] ++ intersection ++ P[j+1..]. It stops when no such pair
// remains or fewer than 4 vertices remain. The deterministic search order
// (smallest i, then smallest j) makes the result, and the number of
// splices applied, reproducible.
func Clean(p Polyline) Polyline {
	current := p.Clone()

	for {
		n := len(current)
		if n < 4 {
			return current
		}

		spliced := false
		for i := 0; i < n-1 && !spliced; i++ {
			for j := i + 2; j < n-1; j++ {
				v, ok := SegSeg(current[i], current[i+1], current[j], current[j+1], Default)
				if !ok {
					continue
				}
				next := make(Polyline, 0, i+2+(n-j-1))
				next = append(next, current[:i+1]...)
				next = append(next, v)
				next = append(next, current[j+1:]...)
				current = next
				spliced = true
				break
			}
		}
		if !spliced {
			return current
		}
	}
}
