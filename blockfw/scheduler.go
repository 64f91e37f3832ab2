// SPDX-License-Identifier: MIT
// Package: blockfw
//
// Purpose:
//   - Issue the 3·num_blocks launches of one Run on the in-order queue.
//
// Ordering:
//   - A(k) → B(k) → C(k) → A(k+1) ...; the queue starts a command only after
//     the previous one completed, which is the only cross-launch barrier needed.
//   - Kernel arguments are captured at enqueue, so the pivot argument is
//     rewritten before each launch without waiting.

package blockfw

import (
	"github.com/hashicorp/go-hclog"
	"github.com/katalvlaran/apsp/device"
)

// phase is one of the three launches per pivot.
type phase struct {
	name   string
	kernel device.Kernel
	global device.NDRange
}

// bindStatic sets the arguments that stay fixed for the whole Run.
func bindStatic(kernels []device.Kernel, l layout, p *bufferPair) error {
	for _, k := range kernels {
		if err := k.SetArg(argPadded, l.padded); err != nil {
			return deviceError(StageSetArgs, err)
		}
		if err := k.SetArg(argDist, p.dist); err != nil {
			return deviceError(StageSetArgs, err)
		}
		if err := k.SetArg(argPath, p.path); err != nil {
			return deviceError(StageSetArgs, err)
		}
	}

	return nil
}

// schedule enqueues every phase of every pivot block and waits for the queue.
func schedule(q device.Queue, kernels []device.Kernel, l layout, logger hclog.Logger) error {
	phases := [...]phase{
		{name: "A", kernel: kernels[0], global: l.phaseA()},
		{name: "B", kernel: kernels[1], global: l.phaseB()},
		{name: "C", kernel: kernels[2], global: l.phaseC()},
	}
	local := l.local()

	var k int
	for k = 0; k < l.blocks; k++ {
		for _, ph := range phases {
			if err := ph.kernel.SetArg(argPivot, k); err != nil {
				return deviceError(StageSetArgs, err)
			}
			if err := q.EnqueueNDRange(ph.kernel, ph.global, local); err != nil {
				return deviceError(StageLaunch, err)
			}
			logger.Trace("launch", "phase", ph.name, "pivot", k, "global", ph.global, "local", local)
		}
	}
	if err := q.Flush(); err != nil {
		return deviceError(StageLaunch, err)
	}
	if err := q.Finish(); err != nil {
		return deviceError(StageFinish, err)
	}

	return nil
}
