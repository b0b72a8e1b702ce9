// Package geom provides the 2D geometric primitives LaminateSketch is built
// on: points, polylines, polygons, and the tolerance-aware predicates used
// to compare them. Every predicate here is guaranteed to terminate and to
// never panic on finite input; none of them perform I/O.
package geom
