// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/apsp/store"
)

const (
	opOpen  = "open"
	opLoad  = "load"
	opRead  = "read"
	opMap   = "mmap"
	opWrite = "write"
)

// MaxVertices bounds num_vertices so a hostile header cannot request an
// n×n allocation the host will never satisfy.
const MaxVertices = 1 << 15

// maxLineBytes is the longest single line the scanner accepts.
const maxLineBytes = 1 << 26

// Load parses an edge list from r into a fresh graph.
func Load(r io.Reader) (*store.Graph, error) {
	return parse(r, "")
}

// LoadFile parses the edge list stored at path.
//
// Plain files are memory-mapped read-only; ".zst"/".zstd" and ".lz4" files
// are streamed through the matching decompressor. A missing file yields an
// *IOError matching ErrMissingInput.
func LoadFile(path string) (g *store.Graph, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &IOError{Op: opOpen, Path: path, Err: fmt.Errorf("%w: %w", ErrMissingInput, err)}
		}
		return nil, &IOError{Op: opOpen, Path: path, Err: err}
	}
	defer f.Close()

	c := codecFor(path)
	if c != codecPlain {
		r, done, err := c.decoder(f)
		if err != nil {
			return nil, &IOError{Op: opRead, Path: path, Err: fmt.Errorf("%s: %w", c, err)}
		}
		defer done()
		return parse(r, path)
	}

	st, err := f.Stat()
	if err != nil {
		return nil, &IOError{Op: opOpen, Path: path, Err: err}
	}
	if st.Size() == 0 {
		// mmap rejects empty files
		return nil, malformedf(path, 0, "missing header")
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &IOError{Op: opMap, Path: path, Err: err}
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil && err == nil {
			g, err = nil, &IOError{Op: opMap, Path: path, Err: uerr}
		}
	}()

	return parse(bytes.NewReader(m), path)
}

// tokenizer yields whitespace-separated tokens together with their line.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			return "", false
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]

	return tok, true
}

// parse reads the header and exactly num_edges triples.
func parse(r io.Reader, path string) (*store.Graph, error) {
	t := newTokenizer(r)

	// readErr reports a stream failure, or nil when the stream simply ended.
	readErr := func() error {
		if err := t.sc.Err(); err != nil {
			return &IOError{Op: opRead, Path: path, Line: t.line, Err: err}
		}
		return nil
	}
	integer := func(what string) (int, error) {
		tok, ok := t.next()
		if !ok {
			if err := readErr(); err != nil {
				return 0, err
			}
			return 0, malformedf(path, t.line, "missing %s", what)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, malformedf(path, t.line, "%s %q is not an integer", what, tok)
		}
		return v, nil
	}

	n, err := integer("num_vertices")
	if err != nil {
		return nil, err
	}
	if n < 1 || n > MaxVertices {
		return nil, malformedf(path, t.line, "num_vertices %d not in [1,%d]", n, MaxVertices)
	}
	m, err := integer("num_edges")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, malformedf(path, t.line, "num_edges %d is negative", m)
	}

	g, err := store.New(n)
	if err != nil {
		return nil, malformedf(path, t.line, "%v", err)
	}

	var (
		src, dst int
		tok      string
		ok       bool
		w        float64
	)
	for e := 0; e < m; e++ {
		if src, err = integer(fmt.Sprintf("src of edge %d", e)); err != nil {
			return nil, err
		}
		if dst, err = integer(fmt.Sprintf("dst of edge %d", e)); err != nil {
			return nil, err
		}
		if src < 0 || src >= n || dst < 0 || dst >= n {
			return nil, malformedf(path, t.line, "edge %d: %d→%d outside [0,%d)", e, src, dst, n)
		}
		if tok, ok = t.next(); !ok {
			if err = readErr(); err != nil {
				return nil, err
			}
			return nil, malformedf(path, t.line, "missing weight of edge %d", e)
		}
		if w, err = strconv.ParseFloat(tok, 32); err != nil || !store.ValidWeight(float32(w)) {
			return nil, malformedf(path, t.line, "edge %d: invalid weight %q", e, tok)
		}
		if err = g.SetEdge(src, dst, float32(w)); err != nil {
			return nil, malformedf(path, t.line, "edge %d: %v", e, err)
		}
	}

	if tok, ok = t.next(); ok {
		return nil, malformedf(path, t.line, "unexpected %q after %d edges", tok, m)
	}
	if err = readErr(); err != nil {
		return nil, err
	}
	if err = store.ValidateInput(g); err != nil {
		return nil, malformedf(path, 0, "%v", err)
	}

	return g, nil
}
