// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/graphio"
	"github.com/katalvlaran/apsp/store"
)

func cmdGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", "random", "topology: chain|cycle|complete|grid|random")
	n := fs.Int("n", 0, "vertex count (grid defaults to rows*cols)")
	rows := fs.Int("rows", 0, "grid rows")
	cols := fs.Int("cols", 0, "grid columns")
	p := fs.Float64("p", 0.5, "edge probability (random)")
	seed := fs.Int64("seed", 1, "RNG seed")
	lo := fs.Float64("min", float64(builder.DefaultEdgeWeight), "minimum edge weight")
	hi := fs.Float64("max", float64(builder.DefaultEdgeWeight), "maximum edge weight")
	out := fs.String("out", "", "output file (.zst/.lz4 compress); stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	var con builder.Constructor
	switch *kind {
	case "chain":
		con = builder.Chain()
	case "cycle":
		con = builder.Cycle()
	case "complete":
		con = builder.Complete()
	case "grid":
		con = builder.Grid(*rows, *cols)
		if *n == 0 {
			*n = *rows * *cols
		}
	case "random":
		con = builder.RandomDense(*p)
	default:
		return fmt.Errorf("unknown -kind %q", *kind)
	}

	wlo, whi := float32(*lo), float32(*hi)
	if !store.ValidWeight(wlo) || !store.ValidWeight(whi) || whi < wlo {
		return fmt.Errorf("weights need 0 <= -min <= -max, got %g and %g", *lo, *hi)
	}

	g, err := builder.Build(*n,
		[]builder.BuilderOption{builder.WithSeed(*seed), builder.WithUniformWeight(wlo, whi)},
		con,
	)
	if err != nil {
		return err
	}

	if *out == "" {
		return graphio.WriteEdgeList(stdout, g)
	}

	return graphio.WriteEdgeListFile(*out, g)
}
