// Package bfs provides breadth-first search over the direct edges of a dense
// store.Graph, returning hop counts, parent links and visit order.
//
// What
//
//   - A cell (u,v) with u ≠ v and dist[u][v] ≠ store.Unreachable is an edge.
//   - Neighbours are scanned in ascending vertex order, so the visit sequence
//     is fully reproducible.
//   - Result holds:
//   - Order: visit sequence
//   - Depth: hop count from the start, -1 when unreached
//   - Parent: BFS-tree predecessor, store.NoPredecessor for the start and
//     unreached vertices
//   - Hooks: OnVisit (may abort with an error); neighbour filtering via
//     WithFilterNeighbor; MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Reachability is independent of weights, so it cross-checks a solved
//     distance matrix in O(n²) per source without trusting any relaxation.
//   - Hop counts bound the length of every shortest route.
//
// Complexity
//
//   - Time:   O(n²) per search (dense rows are scanned in full)
//   - Memory: O(n)
package bfs
