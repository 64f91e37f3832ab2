// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/katalvlaran/apsp/blockfw"
	"github.com/katalvlaran/apsp/device"
	"github.com/katalvlaran/apsp/graphio"
	"github.com/katalvlaran/apsp/store"
	"github.com/katalvlaran/apsp/verify"
)

const (
	algoBlocked   = "blocked"
	algoReference = "reference"
)

func cmdRun(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	block := fs.Int("block", blockfw.DefaultBlockSide, "tile side B (blocked algorithm)")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "simulated device worker count")
	algo := fs.String("algo", algoBlocked, "solver: blocked|reference")
	check := fs.Bool("verify", false, "verify the result against a Dijkstra oracle")
	checksum := fs.Bool("checksum", false, "print the xxh3 checksum of the result")
	pretty := fs.Bool("pretty", false, "print an aligned distance matrix instead of JSON")
	logLevel := fs.String("log-level", "info", "log level: trace|debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one edges file, got %d arguments", fs.NArg())
	}
	if *block < 1 {
		return fmt.Errorf("-block must be >= 1, got %d", *block)
	}
	if *workers < 1 {
		return fmt.Errorf("-workers must be >= 1, got %d", *workers)
	}

	logger, err := newLogger(*logLevel, stderr)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	g, err := graphio.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "path", path, "vertices", g.Order())

	var input *store.Graph
	if *check {
		input = g.Clone()
	}

	start := time.Now()
	switch *algo {
	case algoBlocked:
		err = blockfw.Compute(g,
			blockfw.WithBlockSide(*block),
			blockfw.WithLogger(logger.Named("blockfw")),
			blockfw.WithDrivers(device.CPU(device.WithWorkers(*workers))),
		)
	case algoReference:
		err = store.FloydWarshall(g)
	default:
		return fmt.Errorf("unknown -algo %q", *algo)
	}
	if err != nil {
		return err
	}
	logger.Info("solved", "algo", *algo, "vertices", g.Order(), "elapsed", time.Since(start))

	if *check {
		if err = verify.Result(input, g, verify.WithOracle()); err != nil {
			return err
		}
		logger.Info("verified", "vertices", g.Order())
	}

	if *pretty {
		err = graphio.FormatPretty(stdout, g)
	} else {
		err = graphio.Format(stdout, g)
	}
	if err != nil {
		return err
	}
	if *checksum {
		_, err = fmt.Fprintf(stdout, "xxh3 %016x\n", g.Checksum())
	}

	return err
}
