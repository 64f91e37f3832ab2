// SPDX-License-Identifier: MIT
// Package: blockfw
//
// Purpose:
//   - Device Context: one device, one device context, one in-order queue and
//     the built program with its three kernels, reused across Runs.
//
// Lifecycle:
//   - Acquire discovers a capable device and builds the kernels before any
//     buffer exists, so build failures surface early.
//   - Run allocates buffers per call and releases them on every exit path.
//   - Release tears everything down, attempting every step; idempotent.

package blockfw

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/apsp/device"
	"github.com/katalvlaran/apsp/store"
)

// Context is an acquired device ready to run the blocked solver.
// It is not safe for concurrent use.
type Context struct {
	block  int
	logger hclog.Logger

	info    device.Info
	devCtx  device.Context
	queue   device.Queue
	program device.Program
	kernels []device.Kernel // dependent, partially dependent, independent

	released bool
}

// Acquire selects the first device whose capabilities fit the configured
// block side and prepares it.
//
// Errors:
//   - *DeviceError at StageDiscovery when no driver reports a device.
//   - *ConfigurationError (CapabilitiesExceeded) when no device can run a B×B tile.
//   - *DeviceError at StageContext, StageQueue, StageBuild or StageKernel.
func Acquire(opts ...Option) (*Context, error) {
	o := gatherOptions(opts...)
	c := &Context{block: o.blockSide, logger: o.logger}

	// Stage 1: discovery
	devs, err := device.Devices(o.drivers...)
	if err != nil {
		return nil, deviceError(StageDiscovery, err)
	}
	var (
		dev     device.Device
		lastErr error
	)
	for _, d := range devs {
		if lastErr = checkTile(d.Info().Capabilities, c.block); lastErr == nil {
			dev = d
			break
		}
		c.logger.Debug("device skipped", "device", d.Info().Name, "error", lastErr)
	}
	if dev == nil {
		return nil, lastErr
	}
	c.info = dev.Info()
	c.logger.Debug("device selected", "device", c.info.Name, "type", c.info.Type,
		"compute_units", c.info.Capabilities.ComputeUnits, "extensions", c.info.Extensions)

	// Stage 2: context and queue
	if c.devCtx, err = dev.CreateContext(); err != nil {
		return nil, deviceError(StageContext, err)
	}
	if c.queue, err = c.devCtx.NewQueue(); err != nil {
		return nil, c.abort(deviceError(StageQueue, err))
	}

	// Stage 3: program and kernels
	if c.program, err = c.devCtx.BuildProgram(kernelSource(c.block)); err != nil {
		return nil, c.abort(deviceError(StageBuild, err))
	}
	for _, name := range []string{kernelDependent, kernelPartiallyDependent, kernelIndependent} {
		k, err := c.program.Kernel(name)
		if err != nil {
			return nil, c.abort(deviceError(StageKernel, err))
		}
		c.kernels = append(c.kernels, k)
	}

	return c, nil
}

// abort releases a partially acquired context and returns cause.
func (c *Context) abort(cause error) error {
	if err := c.Release(); err != nil {
		c.logger.Warn("cleanup after failed acquire", "error", err)
	}

	return cause
}

// BlockSide returns the tile side B.
func (c *Context) BlockSide() int { return c.block }

// Device describes the selected device.
func (c *Context) Device() device.Info { return c.info }

// Run solves g in place.
//
// Preconditions: g passes store.ValidateInput and has at least 2·B vertices.
// On any error g is left exactly as it was.
//
// Complexity: O(n³) relaxations spread over the device, O(n²) host memory
// for the padded staging copies.
func (c *Context) Run(g *store.Graph) (err error) {
	if c.released {
		return ErrReleased
	}
	if err = store.ValidateInput(g); err != nil {
		return fmt.Errorf("blockfw: Run: %w", err)
	}

	// Stage 1: preconditions, before any allocation
	l := newLayout(g.Order(), c.block)
	if err = l.checkSize(); err != nil {
		return err
	}
	if err = l.checkCapabilities(c.info.Capabilities); err != nil {
		return err
	}
	start := time.Now()

	// Stage 2: staging and buffers
	s := stage(g, l)
	bufs, err := allocate(c.devCtx, l.cells())
	defer func() {
		if err != nil {
			// drain launches still queued against the buffers
			if ferr := c.queue.Finish(); ferr != nil {
				c.logger.Debug("drain after failed run", "error", ferr)
			}
		}
		if rerr := bufs.release(); rerr != nil {
			if err == nil {
				err = rerr
				return
			}
			c.logger.Warn("buffer release after failed run", "error", rerr)
		}
		if err == nil {
			s.commit(g, l)
			c.logger.Debug("run complete", "vertices", l.n, "padded", l.padded,
				"blocks", l.blocks, "launches", 3*l.blocks, "elapsed", time.Since(start))
		}
	}()
	if err != nil {
		return err
	}

	// Stage 3: copy in, schedule, copy out
	if err = bufs.write(c.queue, s); err != nil {
		return err
	}
	if err = bindStatic(c.kernels, l, bufs); err != nil {
		return err
	}
	if err = schedule(c.queue, c.kernels, l, c.logger); err != nil {
		return err
	}

	return bufs.read(c.queue, s)
}

// Release finishes the queue and releases kernels, program, queue and device
// context. Every step is attempted; failures are aggregated. Calling Release
// again returns nil.
func (c *Context) Release() error {
	if c.released {
		return nil
	}
	c.released = true

	var merr *multierror.Error
	if c.queue != nil {
		if err := c.queue.Finish(); err != nil {
			merr = multierror.Append(merr, deviceError(StageRelease, err))
		}
	}
	for _, k := range c.kernels {
		if err := k.Release(); err != nil {
			merr = multierror.Append(merr, deviceError(StageRelease, err))
		}
	}
	c.kernels = nil
	if c.program != nil {
		if err := c.program.Release(); err != nil {
			merr = multierror.Append(merr, deviceError(StageRelease, err))
		}
		c.program = nil
	}
	if c.queue != nil {
		if err := c.queue.Release(); err != nil {
			merr = multierror.Append(merr, deviceError(StageRelease, err))
		}
		c.queue = nil
	}
	if c.devCtx != nil {
		if err := c.devCtx.Release(); err != nil {
			merr = multierror.Append(merr, deviceError(StageRelease, err))
		}
		c.devCtx = nil
	}

	return merr.ErrorOrNil()
}
