// SPDX-License-Identifier: MIT
// Package: device
//
// Purpose:
//   - CPU driver: one device whose NDRange launches run on a worker pool.
//   - Configurable capabilities and fault injection for every Op.
//
// Determinism:
//   - Work-groups of one launch may run in any order; kernels must write
//     disjoint cells per group for results to be schedule-independent.

package device

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Defaults of the CPU driver.
const (
	DefaultCPUName       = "cpu-pool"
	DefaultMaxDimensions = 3
	DefaultMaxItemSize   = 1024
	DefaultMaxItemSizeZ  = 64
	DefaultMaxGroupSize  = 1024
	DefaultMaxGroupCount = 1 << 16
)

const (
	panicWorkersInvalid = "device: WithWorkers: n must be >= 1"
	panicCapsInvalid    = "device: WithCapabilities: MaxWorkItemDimensions must be >= 1"
	panicFaultInvalid   = "device: WithFault: status must not be StatusSuccess"
	panicSkipInvalid    = "device: WithFaultAfter: skip must be >= 0"
)

// DefaultCapabilities returns the limits reported by the CPU driver.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		MaxWorkItemDimensions: DefaultMaxDimensions,
		MaxWorkItemSizes:      []int{DefaultMaxItemSize, DefaultMaxItemSize, DefaultMaxItemSizeZ},
		MaxWorkGroupSize:      DefaultMaxGroupSize,
		MaxGroupCount:         DefaultMaxGroupCount,
		ComputeUnits:          runtime.NumCPU(),
	}
}

// fault is an injected failure: the first skip calls succeed, every later call fails.
type fault struct {
	status Status
	skip   int
}

// cpuConfig is shared by the driver and every object it creates.
type cpuConfig struct {
	name    string
	caps    Capabilities
	workers int

	mu     sync.Mutex // guards faults
	faults map[Op]*fault

	live atomic.Int64 // objects created and not yet released
}

// check returns the injected failure for op, if any.
func (c *cpuConfig) check(op Op) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.faults[op]
	if !ok {
		return nil
	}
	if f.skip > 0 {
		f.skip--
		return nil
	}

	return newError(op, f.status, "injected fault")
}

// CPUOption configures the CPU driver.
type CPUOption func(*cpuConfig)

// WithName overrides the reported device name.
func WithName(name string) CPUOption {
	return func(c *cpuConfig) { c.name = name }
}

// WithWorkers sets the number of worker goroutines per launch.
// Panics if n < 1.
func WithWorkers(n int) CPUOption {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *cpuConfig) { c.workers = n }
}

// WithCapabilities replaces the reported and enforced device limits.
// Panics if caps.MaxWorkItemDimensions < 1.
func WithCapabilities(caps Capabilities) CPUOption {
	if caps.MaxWorkItemDimensions < 1 {
		panic(panicCapsInvalid)
	}
	sizes := append([]int(nil), caps.MaxWorkItemSizes...)

	return func(c *cpuConfig) {
		c.caps = caps
		c.caps.MaxWorkItemSizes = sizes
	}
}

// WithFault makes every call of op fail with status.
func WithFault(op Op, status Status) CPUOption {
	return WithFaultAfter(op, status, 0)
}

// WithFaultAfter lets the first skip calls of op succeed and fails every later one.
// A failing release still frees the object; only the error is reported.
func WithFaultAfter(op Op, status Status, skip int) CPUOption {
	if status == StatusSuccess {
		panic(panicFaultInvalid)
	}
	if skip < 0 {
		panic(panicSkipInvalid)
	}

	return func(c *cpuConfig) {
		c.faults[op] = &fault{status: status, skip: skip}
	}
}

// CPUDriver exposes a single CPU-backed device.
type CPUDriver struct {
	cfg *cpuConfig
}

// CPU creates the CPU driver.
func CPU(opts ...CPUOption) *CPUDriver {
	cfg := &cpuConfig{
		name:    DefaultCPUName,
		caps:    DefaultCapabilities(),
		workers: runtime.GOMAXPROCS(0),
		faults:  make(map[Op]*fault),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &CPUDriver{cfg: cfg}
}

// Name implements Driver.
func (d *CPUDriver) Name() string { return "cpu" }

// Devices implements Driver.
func (d *CPUDriver) Devices() ([]Device, error) {
	if err := d.cfg.check(OpDiscover); err != nil {
		return nil, err
	}

	return []Device{&cpuDevice{cfg: d.cfg}}, nil
}

// Live returns the number of objects (contexts, queues, programs, kernels,
// buffers) created through this driver and not yet released.
func (d *CPUDriver) Live() int64 { return d.cfg.live.Load() }

type cpuDevice struct {
	cfg *cpuConfig
}

func (d *cpuDevice) Info() Info {
	caps := d.cfg.caps
	caps.MaxWorkItemSizes = append([]int(nil), caps.MaxWorkItemSizes...)

	return Info{
		Name:         d.cfg.name,
		Vendor:       runtime.GOARCH,
		Driver:       "cpu",
		Type:         TypeCPU,
		Capabilities: caps,
		Extensions:   hostExtensions(),
	}
}

func (d *cpuDevice) CreateContext() (Context, error) {
	if err := d.cfg.check(OpCreateContext); err != nil {
		return nil, err
	}
	d.cfg.live.Add(1)

	return &cpuContext{cfg: d.cfg}, nil
}

type cpuContext struct {
	cfg      *cpuConfig
	released atomic.Bool
}

func (c *cpuContext) alive(op Op) error {
	if c.released.Load() {
		return newError(op, StatusInvalidContext, "context released")
	}

	return c.cfg.check(op)
}

func (c *cpuContext) NewQueue() (Queue, error) {
	if err := c.alive(OpCreateQueue); err != nil {
		return nil, err
	}
	c.cfg.live.Add(1)

	return newCPUQueue(c), nil
}

func (c *cpuContext) BuildProgram(src Source) (Program, error) {
	if err := c.alive(OpBuildProgram); err != nil {
		return nil, err
	}
	if src.Generate == nil {
		return nil, newError(OpBuildProgram, StatusInvalidProgram, "source %q has no generator", src.Name)
	}

	defs := make(Defines, len(src.Defines))
	for k, v := range src.Defines {
		defs[k] = v
	}
	specs, err := src.Generate(defs)
	if err != nil {
		return nil, newError(OpBuildProgram, StatusBuildProgramFailure, "%s: %v", src.Name, err)
	}

	byName := make(map[string]KernelSpec, len(specs))
	for _, spec := range specs {
		if spec.Name == "" || spec.Body == nil {
			return nil, newError(OpBuildProgram, StatusBuildProgramFailure, "%s: incomplete kernel %q", src.Name, spec.Name)
		}
		if _, dup := byName[spec.Name]; dup {
			return nil, newError(OpBuildProgram, StatusBuildProgramFailure, "%s: duplicate kernel %q", src.Name, spec.Name)
		}
		byName[spec.Name] = spec
	}
	c.cfg.live.Add(1)

	return &cpuProgram{ctx: c, name: src.Name, kernels: byName}, nil
}

func (c *cpuContext) CreateBuffer(kind Kind, length int) (Buffer, error) {
	if err := c.alive(OpCreateBuffer); err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, newError(OpCreateBuffer, StatusInvalidBufferSize, "length %d", length)
	}
	if limit := c.cfg.caps.MaxAllocElements; limit > 0 && length > limit {
		return nil, newError(OpCreateBuffer, StatusMemObjectAllocationFailure, "length %d exceeds %d", length, limit)
	}

	b := &cpuBuffer{ctx: c, kind: kind, length: length}
	switch kind {
	case KindFloat32:
		b.f32 = make([]float32, length)
	case KindInt32:
		b.i32 = make([]int32, length)
	default:
		return nil, newError(OpCreateBuffer, StatusInvalidValue, "unknown kind %s", kind)
	}
	c.cfg.live.Add(1)

	return b, nil
}

func (c *cpuContext) Release() error {
	if c.released.Swap(true) {
		return newError(OpRelease, StatusInvalidContext, "context already released")
	}
	c.cfg.live.Add(-1)

	return c.cfg.check(OpRelease)
}

// String is used in diagnostics.
func (c *cpuContext) String() string { return fmt.Sprintf("cpu-context(%s)", c.cfg.name) }
