// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/apsp/store"
	"gonum.org/v1/gonum/mat"
)

// PrettyExcerpt is the corner size FormatPretty keeps for graphs with more
// than 2*PrettyExcerpt vertices.
const PrettyExcerpt = 8

// Format writes g as
//
//	{
//	    "distances": [
//	        [0.00,1.50],
//	        [-1,0.00]
//	    ],
//	    "path": [
//	        [-1,0],
//	        [-1,-1]
//	    ]
//	}
//
// Distances use two decimals; unreachable cells are written as -1.
func Format(w io.Writer, g *store.Graph) error {
	if g == nil {
		return fmt.Errorf("Format: %w", store.ErrNilGraph)
	}

	n := g.Order()
	dist, path := g.Distances(), g.Predecessors()
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	writeMatrix := func(key string, cell func(buf []byte, idx int) []byte, last bool) {
		bw.WriteString("    \"" + key + "\": [\n")
		for i := 0; i < n; i++ {
			bw.WriteString("        [")
			for j := 0; j < n; j++ {
				if j > 0 {
					bw.WriteByte(',')
				}
				buf = cell(buf[:0], i*n+j)
				bw.Write(buf)
			}
			bw.WriteByte(']')
			if i != n-1 {
				bw.WriteByte(',')
			}
			bw.WriteByte('\n')
		}
		bw.WriteString("    ]")
		if !last {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("{\n")
	writeMatrix("distances", func(buf []byte, idx int) []byte {
		if dist[idx] == store.Unreachable {
			return append(buf, '-', '1')
		}
		return strconv.AppendFloat(buf, float64(dist[idx]), 'f', 2, 64)
	}, false)
	writeMatrix("path", func(buf []byte, idx int) []byte {
		return strconv.AppendInt(buf, int64(path[idx]), 10)
	}, true)
	bw.WriteString("}\n")

	// bufio.Writer keeps the first write error and reports it here.
	return bw.Flush()
}

// FormatPretty writes the distance matrix in gonum's aligned layout.
// Unreachable cells print as +Inf. Large graphs are excerpted to their
// PrettyExcerpt×PrettyExcerpt corners.
func FormatPretty(w io.Writer, g *store.Graph) error {
	if g == nil {
		return fmt.Errorf("FormatPretty: %w", store.ErrNilGraph)
	}

	opts := []mat.FormatOption{mat.Squeeze()}
	if g.Order() > 2*PrettyExcerpt {
		opts = append(opts, mat.Excerpt(PrettyExcerpt))
	}
	_, err := fmt.Fprintf(w, "%v\n", mat.Formatted(g.DistanceDense(), opts...))

	return err
}
