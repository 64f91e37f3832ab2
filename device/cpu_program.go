// SPDX-License-Identifier: MIT

package device

import "sync/atomic"

type cpuProgram struct {
	ctx      *cpuContext
	name     string
	kernels  map[string]KernelSpec
	released atomic.Bool
}

func (p *cpuProgram) Kernel(name string) (Kernel, error) {
	if p.released.Load() {
		return nil, newError(OpCreateKernel, StatusInvalidProgram, "program %q released", p.name)
	}
	if err := p.ctx.cfg.check(OpCreateKernel); err != nil {
		return nil, err
	}
	spec, ok := p.kernels[name]
	if !ok {
		return nil, newError(OpCreateKernel, StatusInvalidKernelName, "%q not in program %q", name, p.name)
	}
	p.ctx.cfg.live.Add(1)

	return &cpuKernel{
		ctx:    p.ctx,
		spec:   spec,
		values: make([]any, len(spec.Params)),
		set:    make([]bool, len(spec.Params)),
	}, nil
}

func (p *cpuProgram) Release() error {
	if p.released.Swap(true) {
		return newError(OpRelease, StatusInvalidProgram, "program %q already released", p.name)
	}
	p.ctx.cfg.live.Add(-1)

	return p.ctx.cfg.check(OpRelease)
}

type cpuKernel struct {
	ctx      *cpuContext
	spec     KernelSpec
	values   []any // int or *cpuBuffer per parameter
	set      []bool
	released atomic.Bool
}

func (k *cpuKernel) Name() string { return k.spec.Name }

func (k *cpuKernel) SetArg(index int, value any) error {
	if k.released.Load() {
		return newError(OpSetArg, StatusInvalidKernel, "kernel %q released", k.spec.Name)
	}
	if err := k.ctx.cfg.check(OpSetArg); err != nil {
		return err
	}
	if index < 0 || index >= len(k.spec.Params) {
		return newError(OpSetArg, StatusInvalidArgIndex, "%s: index %d of %d", k.spec.Name, index, len(k.spec.Params))
	}

	switch k.spec.Params[index] {
	case ArgInt:
		switch v := value.(type) {
		case int:
			k.values[index] = v
		case int32:
			k.values[index] = int(v)
		default:
			return newError(OpSetArg, StatusInvalidArgValue, "%s: arg %d wants int, got %T", k.spec.Name, index, value)
		}
	case ArgFloat32Buffer, ArgInt32Buffer:
		b, ok := value.(*cpuBuffer)
		if !ok || b.ctx != k.ctx {
			return newError(OpSetArg, StatusInvalidMemObject, "%s: arg %d is not a buffer of this context", k.spec.Name, index)
		}
		want := KindFloat32
		if k.spec.Params[index] == ArgInt32Buffer {
			want = KindInt32
		}
		if b.kind != want {
			return newError(OpSetArg, StatusInvalidArgValue, "%s: arg %d wants %s buffer, got %s", k.spec.Name, index, want, b.kind)
		}
		k.values[index] = b
	}
	k.set[index] = true

	return nil
}

// snapshot captures the current arguments for one launch.
func (k *cpuKernel) snapshot() (Args, error) {
	vals := make([]any, len(k.values))
	for i, v := range k.values {
		if !k.set[i] {
			return Args{}, newError(OpEnqueue, StatusInvalidKernelArgs, "%s: arg %d not set", k.spec.Name, i)
		}
		switch a := v.(type) {
		case int:
			vals[i] = a
		case *cpuBuffer:
			if a.released.Load() {
				return Args{}, newError(OpEnqueue, StatusInvalidMemObject, "%s: arg %d buffer released", k.spec.Name, i)
			}
			if a.kind == KindFloat32 {
				vals[i] = a.f32
			} else {
				vals[i] = a.i32
			}
		}
	}

	return Args{values: vals}, nil
}

func (k *cpuKernel) Release() error {
	if k.released.Swap(true) {
		return newError(OpRelease, StatusInvalidKernel, "kernel %q already released", k.spec.Name)
	}
	k.ctx.cfg.live.Add(-1)

	return k.ctx.cfg.check(OpRelease)
}

type cpuBuffer struct {
	ctx      *cpuContext
	kind     Kind
	length   int
	f32      []float32
	i32      []int32
	released atomic.Bool
}

func (b *cpuBuffer) Kind() Kind { return b.kind }
func (b *cpuBuffer) Len() int   { return b.length }

func (b *cpuBuffer) Release() error {
	if b.released.Swap(true) {
		return newError(OpRelease, StatusInvalidMemObject, "buffer already released")
	}
	b.ctx.cfg.live.Add(-1)

	return b.ctx.cfg.check(OpRelease)
}
