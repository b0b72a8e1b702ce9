// Package laminate builds a structured Layer -> Ply -> Node laminate from
// an unordered rawsketch.RawSketch, stitching vertical adjacency links
// between successive layers, and provides the post-assembly rescale and
// compression pass. NodePos is a logical (layer, ply, node) coordinate,
// never a pointer, so it survives the node insertions the assembler
// performs while stitching. Sketch is the public, stateful entry point
// that ties normalization, assembly and optimization together.
package laminate
