package laminate

import (
	"sort"

	"github.com/pochishchalov/LaminateSketch/rawsketch"
)

// Assemble consumes raw, repeatedly peeling its topmost polylines into new
// layers and stitching vertical adjacency links to the layer below, until
// raw is empty. It returns ok=false if, at any point, polylines remain but
// none of them qualify as topmost (malformed, unstackable input); the
// returned Laminate is empty in that case. The layer order is reversed
// once assembly completes, so the first layer produced (the physical top)
// ends up last.
func Assemble(raw *rawsketch.RawSketch, opts AssembleOptions) (*Laminate, bool) {
	l := &Laminate{}
	var pending []NodePos

	for !raw.IsEmpty() {
		tops := topmostPolylines(raw)
		if len(tops) == 0 {
			return &Laminate{}, false
		}

		sort.Slice(tops, func(i, j int) bool {
			return tops[i].Polyline[0].X < tops[j].Polyline[0].X
		})

		addLayer(tops, l, &pending, opts)

		for _, t := range tops {
			raw.Remove(t)
		}
	}

	reverseLayers(l)
	return l, true
}

func topmostPolylines(raw *rawsketch.RawSketch) []*rawsketch.RawPolyline {
	var tops []*rawsketch.RawPolyline
	for _, p := range raw.All() {
		if IsTopmost(p, raw) {
			tops = append(tops, p)
		}
	}
	return tops
}

// addLayer appends a new layer built from tops (already sorted left to
// right), connecting each new ply's interior edges to the dangling nodes
// of the layers below (skipped for the very first layer, which has
// nothing below it to connect to), then folds the new layer's own nodes
// into pending once the ones that got consumed during connection are
// purged.
func addLayer(tops []*rawsketch.RawPolyline, l *Laminate, pending *[]NodePos, opts AssembleOptions) {
	layerPos := l.AddLayer()
	isFirstLayer := layerPos == 0

	for _, top := range tops {
		plyPos := l.Layers[layerPos].AddPly(top.Orientation)
		ply := &l.Layers[layerPos].Plies[plyPos]
		for i, pt := range top.Polyline {
			ply.Nodes = append(ply.Nodes, Node{
				Point:    pt,
				Position: NodePos{Layer: layerPos, Ply: plyPos, Node: i},
			})
		}

		if !isFirstLayer {
			connectNodes(layerPos, plyPos, l, *pending, opts)
		}
	}

	kept := (*pending)[:0]
	for _, p := range *pending {
		if l.Node(p).Lower == nil {
			kept = append(kept, p)
		}
	}
	*pending = kept

	for plyPos, ply := range l.Layers[layerPos].Plies {
		for nodePos := range ply.Nodes {
			*pending = append(*pending, NodePos{Layer: layerPos, Ply: plyPos, Node: nodePos})
		}
	}
}

// connectNodes walks the interior edges of the ply at (layerPos, plyPos)
// left to right, calling connectEdge on each. The ply's node count is
// re-read every iteration because connectEdge may insert new nodes into
// it as it runs.
func connectNodes(layerPos, plyPos int, l *Laminate, pending []NodePos, opts AssembleOptions) {
	for nodeIdx := 0; nodeIdx <= len(l.Layers[layerPos].Plies[plyPos].Nodes)-1; nodeIdx++ {
		if nodeIdx == 0 {
			continue
		}
		aPos := NodePos{Layer: layerPos, Ply: plyPos, Node: nodeIdx - 1}
		bPos := NodePos{Layer: layerPos, Ply: plyPos, Node: nodeIdx}
		connectEdge(aPos, bPos, l, pending, opts)
	}
}

// reverseLayers flips the layer sequence so the physically-topmost layer
// (assembled first) ends up last, rewriting every layerPos stored in node
// positions and cross-layer links to match.
func reverseLayers(l *Laminate) {
	correction := len(l.Layers) - 1

	for li := range l.Layers {
		for pi := range l.Layers[li].Plies {
			for ni := range l.Layers[li].Plies[pi].Nodes {
				n := &l.Layers[li].Plies[pi].Nodes[ni]
				n.Position.Layer = correction - n.Position.Layer
				if n.Upper != nil {
					n.Upper.Layer = correction - n.Upper.Layer
				}
				if n.Lower != nil {
					n.Lower.Layer = correction - n.Lower.Layer
				}
			}
		}
	}

	for i, j := 0, len(l.Layers)-1; i < j; i, j = i+1, j-1 {
		l.Layers[i], l.Layers[j] = l.Layers[j], l.Layers[i]
	}
}
