// Package blockfw computes all-pairs shortest paths with a block-decomposed
// Floyd–Warshall on a compute device.
//
// The n×n distance and predecessor matrices are padded to a multiple of the
// tile side B and split into B×B tiles. For every pivot block k three
// launches run in order on one in-order queue:
//
//	Phase A  dependent            pivot tile (k,k)
//	Phase B  partially dependent  pivot row (k,x) and pivot column (x,k), x ≠ k
//	Phase C  independent          every other tile (y,x), y ≠ k, x ≠ k
//
// Each launch only reads tiles that earlier launches of the same pivot have
// finalized, so tiles of one launch never depend on each other. After the
// last pivot the matrices hold the same shortest distances as the classic
// sequential algorithm.
//
// Usage:
//
//	c, err := blockfw.Acquire(blockfw.WithBlockSide(16))
//	if err != nil { ... }
//	defer c.Release()
//	err = c.Run(g) // g is a *store.Graph; updated in place on success
//
// A Context is not safe for concurrent use: one Run at a time. The caller's
// graph is borrowed for the duration of Run and never retained. A failed Run
// leaves it untouched.
//
// Errors:
//   - *ConfigurationError (errors.Is ErrTooSmall / ErrCapabilitiesExceeded)
//     when the graph or the device cannot host the tiling.
//   - *DeviceError with the failing Stage and the driver status.
//   - ErrReleased when a released Context is used.
package blockfw
