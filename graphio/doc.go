// Package graphio reads and writes the plain-text edge-list format consumed by
// the apsp command, and renders computed results.
//
// Edge-list format:
//
//	num_vertices num_edges
//	src dst weight
//	...
//
// Exactly num_edges whitespace-separated triples must follow the header.
// Later duplicates overwrite earlier ones and self-loops are ignored, so the
// loaded graph always satisfies dist[i][i] = 0 and path[i][i] = -1.
//
// LoadFile memory-maps plain files and transparently decodes ".zst" (zstd)
// and ".lz4" inputs. WriteEdgeListFile picks the codec from the same
// extensions.
//
// Output:
//
//   - Format writes {"distances": [[…]], "path": [[…]]}, distances as %.2f,
//     unreachable cells as -1.
//   - FormatPretty writes the distance matrix through gonum's mat.Formatted.
package graphio
