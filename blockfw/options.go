// SPDX-License-Identifier: MIT
// Package: blockfw
//
// Purpose:
//   - Functional options for Acquire and Compute.
//   - WithX constructors panic on nonsensical values (programmer error).

package blockfw

import (
	"github.com/hashicorp/go-hclog"
	"github.com/katalvlaran/apsp/device"
)

// DefaultBlockSide is the tile side B used when WithBlockSide is not given.
const DefaultBlockSide = 16

const (
	panicBlockSideInvalid = "blockfw: WithBlockSide: side must be >= 1"
	panicLoggerNil        = "blockfw: WithLogger: logger must not be nil"
	panicDriversEmpty     = "blockfw: WithDrivers: at least one non-nil driver required"
)

// Option configures Acquire.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	blockSide int
	logger    hclog.Logger
	drivers   []device.Driver
}

// WithBlockSide sets the tile side B. It sizes the padded matrices, the launch
// geometry and the kernels' BLOCK_SIDE define. Powers of two are not required.
func WithBlockSide(side int) Option {
	if side < 1 {
		panic(panicBlockSideInvalid)
	}

	return func(o *Options) { o.blockSide = side }
}

// WithLogger routes engine logs to logger.
func WithLogger(logger hclog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithDrivers replaces the drivers probed for a device (default: device.CPU()).
func WithDrivers(drivers ...device.Driver) Option {
	kept := make([]device.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d != nil {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		panic(panicDriversEmpty)
	}

	return func(o *Options) { o.drivers = kept }
}

func gatherOptions(opts ...Option) Options {
	o := Options{blockSide: DefaultBlockSide}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = hclog.L().Named("blockfw")
	}
	if len(o.drivers) == 0 {
		o.drivers = []device.Driver{device.CPU()}
	}

	return o
}
