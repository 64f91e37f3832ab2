// Package apsp computes all-pairs shortest paths and predecessor chains for
// dense, directed, non-negatively weighted graphs with a blocked
// Floyd–Warshall that runs on a data-parallel compute device.
//
// 🚀 What is in the box?
//
//	• store/    the n×n distance + predecessor matrices, validation,
//	            route reconstruction and the sequential reference solver
//	• device/   an OpenCL-shaped device model (driver, context, in-order
//	            queue, programs, kernels, buffers) with a CPU worker-pool driver
//	• blockfw/  the three-phase tiled engine: padding, launch geometry,
//	            per-pivot scheduling and the device memory lifecycle
//	• graphio/  edge-list loading (plain, mmap, zstd, lz4) and result output
//	• builder/  deterministic fixture generators (chain, cycle, grid, random)
//	• bfs/      hop-count reachability over the direct edges
//	• dijkstra/ single-source oracle
//	• verify/   property checks on a solved result
//	• cmd/apsp  the `run` and `gen` command line
//
// ✨ Quick start
//
//	g, _ := graphio.LoadFile("edges.txt")
//	if err := blockfw.Compute(g, blockfw.WithBlockSide(16)); err != nil {
//		// *blockfw.ConfigurationError or *blockfw.DeviceError
//	}
//	_ = graphio.Format(os.Stdout, g)
//
// Errors are matched with errors.Is / errors.As; a failed Compute leaves the
// caller's matrices untouched.
package apsp
