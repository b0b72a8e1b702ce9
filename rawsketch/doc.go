// Package rawsketch models the unordered input to laminate assembly: a
// collection of polylines, each tagged with the orientation class carried
// over from the source drawing's color encoding, plus the normalization
// steps (simplification, translation to origin, left-to-right traversal)
// applied before assembly begins.
package rawsketch
