// SPDX-License-Identifier: MIT

package graphio

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	lz4 "github.com/pierrec/lz4/v4"
)

// codec selects the stream encoding of an edge-list file.
type codec uint8

const (
	codecPlain codec = iota
	codecZstd
	codecLZ4
)

func (c codec) String() string {
	switch c {
	case codecZstd:
		return "zstd"
	case codecLZ4:
		return "lz4"
	default:
		return "plain"
	}
}

// codecFor picks the codec from the file extension (case-insensitive).
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return codecZstd
	case ".lz4":
		return codecLZ4
	default:
		return codecPlain
	}
}

// decoder wraps r with the codec's decompressor. The returned close func
// must be called once the stream is consumed.
func (c codec) decoder(r io.Reader) (io.Reader, func(), error) {
	switch c {
	case codecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	case codecLZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}

// encoder wraps w with the codec's compressor. Closing the returned writer
// flushes the final frame but leaves w open.
func (c codec) encoder(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case codecZstd:
		return zstd.NewWriter(w)
	case codecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopCloser{w}, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
