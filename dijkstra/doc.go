// Package dijkstra computes single-source shortest paths over the direct
// edges of a dense input graph (*store.Graph before any APSP solver ran).
//
// It serves as an independent oracle for the all-pairs solvers: a row of an
// APSP result must match a Dijkstra run from the same source.
//
// Overview:
//
//   - Edges are the off-diagonal cells whose distance is not store.Unreachable.
//   - Distances accumulate in float64 and are returned with math.Inf(1) for
//     unreachable vertices; predecessors use store.NoPredecessor.
//   - A min-heap with lazy decrease-key expands the next-closest vertex.
//
// Performance and complexity:
//
//   - Time:  O(V² + E log V) on the dense layout (row scan per extracted vertex).
//   - Space: O(V + E) for the result slices and the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrSourceOutOfRange: src is not a vertex of g.
//   - store validation errors (nil graph, negative/NaN weights) wrapped with %w.
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics from option constructors.
package dijkstra
