// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/apsp/store"
)

// WriteEdgeList writes the direct edges of g in the format Load accepts.
// A cell i→j (i ≠ j) counts as a direct edge when path[i][j] == i and its
// distance is reachable. Edges are emitted in row-major order.
func WriteEdgeList(w io.Writer, g *store.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteEdgeList: %w", store.ErrNilGraph)
	}

	n := g.Order()
	dist, path := g.Distances(), g.Predecessors()
	direct := func(i, j int) bool {
		idx := i*n + j
		return i != j && path[idx] == int32(i) && dist[idx] != store.Unreachable
	}

	var m int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if direct(i, j) {
				m++
			}
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", n, m); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !direct(i, j) {
				continue
			}
			buf = strconv.AppendInt(buf[:0], int64(i), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(j), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(dist[i*n+j]), 'g', -1, 32)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteEdgeListFile writes g to path, compressing with zstd or lz4 when the
// extension asks for it (".zst"/".zstd", ".lz4").
func WriteEdgeListFile(path string, g *store.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: opWrite, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: opWrite, Path: path, Err: cerr}
		}
	}()

	c := codecFor(path)
	enc, err := c.encoder(f)
	if err != nil {
		return &IOError{Op: opWrite, Path: path, Err: fmt.Errorf("%s: %w", c, err)}
	}
	if err = WriteEdgeList(enc, g); err != nil {
		_ = enc.Close()
		return &IOError{Op: opWrite, Path: path, Err: err}
	}
	if err = enc.Close(); err != nil {
		return &IOError{Op: opWrite, Path: path, Err: fmt.Errorf("%s: %w", c, err)}
	}

	return nil
}
