// SPDX-License-Identifier: MIT
// Package: blockfw
//
// Purpose:
//   - Kernel source for the three phases, specialized for BLOCK_SIDE at build time.
//
// Work-group model:
//   - One work-group owns one B×B tile. Its body sweeps the pivot index l
//     outermost; the end of each sweep is the tile barrier.
//   - Row l and column l of a tile do not change during sweep l (the pivot
//     diagonal is 0), so cells within one sweep may be relaxed in any order.

package blockfw

import (
	"fmt"

	"github.com/katalvlaran/apsp/device"
	"github.com/katalvlaran/apsp/store"
)

// Kernel names, in launch order.
const (
	kernelDependent          = "dependent_phase"
	kernelPartiallyDependent = "partially_dependent_phase"
	kernelIndependent        = "independent_phase"
)

// Argument slots shared by the three kernels.
const (
	argPivot  = iota // pivot block index k
	argPadded        // row length of the padded matrices
	argDist          // float32 distances, padded²
	argPath          // int32 predecessors, padded²
	argCount
)

// defineBlockSide is the build define carrying B.
const defineBlockSide = "BLOCK_SIDE"

var kernelParams = []device.ArgKind{
	argPivot:  device.ArgInt,
	argPadded: device.ArgInt,
	argDist:   device.ArgFloat32Buffer,
	argPath:   device.ArgInt32Buffer,
}

// kernelSource returns the program source for tile side b.
func kernelSource(b int) device.Source {
	return device.Source{
		Name:     "blocked_floyd_warshall",
		Defines:  device.Defines{defineBlockSide: b},
		Generate: generateKernels,
	}
}

func generateKernels(defs device.Defines) ([]device.KernelSpec, error) {
	b, ok := defs[defineBlockSide]
	if !ok {
		return nil, fmt.Errorf("%s not defined", defineBlockSide)
	}
	if b < 1 {
		return nil, fmt.Errorf("%s=%d must be positive", defineBlockSide, b)
	}

	return []device.KernelSpec{
		{Name: kernelDependent, Params: kernelParams, Body: dependentPhase(b)},
		{Name: kernelPartiallyDependent, Params: kernelParams, Body: partiallyDependentPhase(b)},
		{Name: kernelIndependent, Params: kernelParams, Body: independentPhase(b)},
	}, nil
}

// tile is the rectangle a work-group relaxes, in padded coordinates.
type tile struct {
	row, col int // top-left cell
}

// sweep relaxes every cell of t through each l of the pivot range in
// increasing order, one full tile sweep per l.
func sweep(b, padded, pivot int, t tile, dist []float32, path []int32) {
	var (
		l, i, j, ij int
		il          float32
		cand        float32
		better      bool
	)
	for l = pivot; l < pivot+b; l++ {
		for i = t.row; i < t.row+b; i++ {
			il = dist[i*padded+l]
			if il == store.Unreachable {
				continue
			}
			for j = t.col; j < t.col+b; j++ {
				ij = i*padded + j
				if cand, better = store.Relax(il, dist[l*padded+j], dist[ij]); better {
					dist[ij] = cand
					path[ij] = path[l*padded+j]
				}
			}
		}
	}
}

// dependentPhase relaxes the pivot tile (k,k) through its own rows and columns.
// Launched as a single work-group.
func dependentPhase(b int) device.KernelFunc {
	return func(_ device.Group, args device.Args) {
		k, padded := args.Int(argPivot), args.Int(argPadded)
		base := k * b
		sweep(b, padded, base, tile{row: base, col: base}, args.Float32s(argDist), args.Int32s(argPath))
	}
}

// partiallyDependentPhase relaxes the pivot row and column tiles through the
// finished pivot tile. Group row 0 serves tile (k,x), group row 1 tile (x,k);
// the group with x == k has nothing to do.
func partiallyDependentPhase(b int) device.KernelFunc {
	return func(grp device.Group, args device.Args) {
		k, padded := args.Int(argPivot), args.Int(argPadded)
		if grp.ID.X == k {
			return
		}
		base := k * b
		t := tile{row: base, col: grp.ID.X * b}
		if grp.ID.Y == 1 {
			t = tile{row: grp.ID.X * b, col: base}
		}
		sweep(b, padded, base, t, args.Float32s(argDist), args.Int32s(argPath))
	}
}

// independentPhase relaxes tile (y,x) through the finished pivot row and
// column tiles. Its inputs do not change during the launch, so one pass suffices.
func independentPhase(b int) device.KernelFunc {
	return func(grp device.Group, args device.Args) {
		k, padded := args.Int(argPivot), args.Int(argPadded)
		if grp.ID.X == k || grp.ID.Y == k {
			return
		}
		sweep(b, padded, k*b, tile{row: grp.ID.Y * b, col: grp.ID.X * b}, args.Float32s(argDist), args.Int32s(argPath))
	}
}
