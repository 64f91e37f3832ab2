// SPDX-License-Identifier: MIT

package store

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// checksumChunk is the number of cells encoded per hasher write.
const checksumChunk = 1024

// Checksum returns an xxh3-64 digest of the order and both matrices
// (little-endian IEEE-754 bits for distances, little-endian int32 for
// predecessors). Bit-identical graphs have equal checksums.
func (g *Graph) Checksum() uint64 {
	h := xxh3.New()

	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(g.n))
	_, _ = h.Write(hdr[:])

	buf := make([]byte, 0, checksumChunk*4)
	for start := 0; start < len(g.dist); start += checksumChunk {
		end := min(start+checksumChunk, len(g.dist))
		buf = buf[:0]
		for _, d := range g.dist[start:end] {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(d))
		}
		_, _ = h.Write(buf)
	}
	for start := 0; start < len(g.path); start += checksumChunk {
		end := min(start+checksumChunk, len(g.path))
		buf = buf[:0]
		for _, p := range g.path[start:end] {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(p))
		}
		_, _ = h.Write(buf)
	}

	return h.Sum64()
}
