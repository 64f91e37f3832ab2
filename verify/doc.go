// Package verify checks an all-pairs shortest-path result against the input
// graph it was computed from.
//
// Result runs, in order, and stops at the first violation:
//
//	diagonal   dist[i][i] = 0 and path[i][i] = NoPredecessor
//	sentinel   dist[i][j] = Unreachable exactly when path[i][j] = NoPredecessor,
//	           and no result distance exceeds the input distance
//	reach      a breadth-first search over the input edges reaches exactly the
//	           vertices the result marks reachable
//	triangle   dist[i][j] ≤ dist[i][k] + dist[k][j] for all finite pairs
//	route      following predecessors from j reaches i over input edges whose
//	           weights sum to dist[i][j]
//	oracle     (WithOracle) every row matches a Dijkstra run from that source
//
// Comparisons use a relative tolerance (WithTolerance, default 1e-5) so
// results from solvers with different summation orders verify alike.
// A failure is a *Violation whose Unwrap matches the Kind's sentinel.
package verify
