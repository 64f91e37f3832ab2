// SPDX-License-Identifier: MIT

// Command apsp solves all-pairs shortest paths for edge-list files and
// generates synthetic inputs.
//
//	apsp run [-block 16] [-workers N] [-algo blocked|reference] [-verify]
//	         [-checksum] [-pretty] [-log-level info] <edges-file>
//	apsp gen -kind chain|cycle|complete|grid|random -n N [-rows R -cols C]
//	         [-p P] [-seed S] [-min W] [-max W] [-out FILE]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain dispatches the subcommand and maps its error to an exit code.
func realMain(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "run":
		err = cmdRun(args[1:], stdout, stderr)
	case "gen":
		err = cmdGen(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 1
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(stderr, "apsp %s: %v\n", args[0], err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "apsp - blocked Floyd-Warshall all-pairs shortest paths")
	fmt.Fprintln(w, "usage: apsp <command> [args]")
	fmt.Fprintln(w, "  run [-block 16] [-workers N] [-algo blocked|reference] [-verify] [-checksum] [-pretty] [-log-level info] <edges-file>")
	fmt.Fprintln(w, "  gen -kind chain|cycle|complete|grid|random -n N [-rows R -cols C] [-p P] [-seed S] [-min W] [-max W] [-out FILE]")
}

// newLogger builds the command logger; level names follow hclog
// (trace, debug, info, warn, error).
func newLogger(level string, w io.Writer) (hclog.Logger, error) {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "apsp",
		Level:  lvl,
		Output: w,
	}), nil
}
