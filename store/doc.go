// Package store holds the dense Graph Store consumed by the APSP engines.
//
// A Graph is a pair of row-major n×n matrices:
//
//   - dist (float32): dist[i][j] is the weight of the best known i→j path,
//     or Unreachable when no path has been discovered; dist[i][i] = 0.
//   - path (int32):   path[i][j] is the vertex preceding j on that path,
//     or NoPredecessor (-1) when j is unreachable from i or j == i.
//
// The two matrices are updated jointly by every solver in this module:
//
//	if dist[i][k] + dist[k][j] < dist[i][j] {
//	    dist[i][j] = dist[i][k] + dist[k][j]
//	    path[i][j] = path[k][j]
//	}
//
// Unreachable is a finite sentinel (math.MaxFloat32). Relax is the single
// place where candidate paths are formed; it treats a sentinel operand as
// "no path" instead of adding it, so sentinel arithmetic can never produce a
// smaller-looking but wrong finite distance.
//
// Besides storage the package offers route reconstruction (Route), a
// sequential reference solver (FloydWarshall), bit-exact comparison (Equal,
// Checksum) and a gonum export (DistanceDense).
//
// A Graph is not safe for concurrent mutation; callers own it and lend it to
// a solver for the duration of one call.
package store
