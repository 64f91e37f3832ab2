// SPDX-License-Identifier: MIT

package device_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/apsp/device"
	"github.com/stretchr/testify/require"
)

// fillSource builds one kernel "fill" writing group-specific values into a
// float32 buffer of row length given by arg 0.
func fillSource() device.Source {
	return device.Source{
		Name:    "fill",
		Defines: device.Defines{"SCALE": 10},
		Generate: func(d device.Defines) ([]device.KernelSpec, error) {
			scale := d["SCALE"]
			return []device.KernelSpec{{
				Name:   "fill",
				Params: []device.ArgKind{device.ArgInt, device.ArgFloat32Buffer},
				Body: func(grp device.Group, args device.Args) {
					width, out := args.Int(0), args.Float32s(1)
					for ty := 0; ty < grp.Local.Y; ty++ {
						for tx := 0; tx < grp.Local.X; tx++ {
							x := grp.ID.X*grp.Local.X + tx
							y := grp.ID.Y*grp.Local.Y + ty
							out[y*width+x] = float32(scale*y + x)
						}
					}
				},
			}}, nil
		},
	}
}

type fixture struct {
	drv    *device.CPUDriver
	ctx    device.Context
	queue  device.Queue
	prog   device.Program
	kernel device.Kernel
	buf    device.Buffer
}

func newFixture(t *testing.T, opts ...device.CPUOption) *fixture {
	t.Helper()

	f := &fixture{drv: device.CPU(opts...)}
	devs, err := f.drv.Devices()
	require.NoError(t, err)
	require.Len(t, devs, 1)

	f.ctx, err = devs[0].CreateContext()
	require.NoError(t, err)
	f.queue, err = f.ctx.NewQueue()
	require.NoError(t, err)
	f.prog, err = f.ctx.BuildProgram(fillSource())
	require.NoError(t, err)
	f.kernel, err = f.prog.Kernel("fill")
	require.NoError(t, err)
	f.buf, err = f.ctx.CreateBuffer(device.KindFloat32, 64)
	require.NoError(t, err)

	return f
}

func (f *fixture) release(t *testing.T) {
	t.Helper()
	require.NoError(t, f.buf.Release())
	require.NoError(t, f.kernel.Release())
	require.NoError(t, f.prog.Release())
	require.NoError(t, f.queue.Release())
	require.NoError(t, f.ctx.Release())
	require.Zero(t, f.drv.Live())
}

func requireStatus(t *testing.T, err error, want device.Status) {
	t.Helper()
	require.Error(t, err)
	got, ok := device.StatusOf(err)
	require.True(t, ok, "error %v carries no status", err)
	require.Equal(t, want, got, "error: %v", err)
}

func TestCPU_LaunchCoversEveryWorkItem(t *testing.T) {
	t.Parallel()

	f := newFixture(t, device.WithWorkers(3))
	require.Equal(t, int64(5), f.drv.Live())

	require.NoError(t, f.kernel.SetArg(0, 8))
	require.NoError(t, f.kernel.SetArg(1, f.buf))
	require.NoError(t, f.queue.EnqueueNDRange(f.kernel, device.Range2(8, 8), device.Range2(4, 2)))
	require.NoError(t, f.queue.Finish())

	out := make([]float32, 64)
	require.NoError(t, f.queue.ReadFloat32(f.buf, out))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, float32(10*y+x), out[y*8+x])
		}
	}

	f.release(t)
}

func TestCPU_WriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	src := make([]float32, 64)
	for i := range src {
		src[i] = float32(i) / 2
	}
	require.NoError(t, f.queue.WriteFloat32(f.buf, src))

	dst := make([]float32, 64)
	require.NoError(t, f.queue.ReadFloat32(f.buf, dst))
	require.Equal(t, src, dst)

	ib, err := f.ctx.CreateBuffer(device.KindInt32, 4)
	require.NoError(t, err)
	require.NoError(t, f.queue.WriteInt32(ib, []int32{-1, 0, 1, 2}))
	got := make([]int32, 4)
	require.NoError(t, f.queue.ReadInt32(ib, got))
	require.Equal(t, []int32{-1, 0, 1, 2}, got)

	requireStatus(t, f.queue.ReadFloat32(ib, dst[:4]), device.StatusInvalidValue)
	requireStatus(t, f.queue.WriteInt32(ib, make([]int32, 5)), device.StatusInvalidValue)
	require.NoError(t, ib.Release())

	f.release(t)
}

func TestCPU_ArgumentsCapturedAtEnqueue(t *testing.T) {
	t.Parallel()

	var widths []int
	src := device.Source{
		Name: "probe",
		Generate: func(device.Defines) ([]device.KernelSpec, error) {
			return []device.KernelSpec{{
				Name:   "probe",
				Params: []device.ArgKind{device.ArgInt},
				Body:   func(_ device.Group, args device.Args) { widths = append(widths, args.Int(0)) },
			}}, nil
		},
	}
	drv := device.CPU(device.WithWorkers(1))
	devs, err := drv.Devices()
	require.NoError(t, err)
	ctx, err := devs[0].CreateContext()
	require.NoError(t, err)
	q, err := ctx.NewQueue()
	require.NoError(t, err)
	prog, err := ctx.BuildProgram(src)
	require.NoError(t, err)
	k, err := prog.Kernel("probe")
	require.NoError(t, err)

	for w := 1; w <= 3; w++ {
		require.NoError(t, k.SetArg(0, w))
		require.NoError(t, q.EnqueueNDRange(k, device.Range2(1, 1), device.Range2(1, 1)))
	}
	require.NoError(t, q.Finish())
	require.Equal(t, []int{1, 2, 3}, widths, "launches must run in order with their own arguments")

	require.NoError(t, k.Release())
	require.NoError(t, prog.Release())
	require.NoError(t, q.Release())
	require.NoError(t, ctx.Release())
	require.Zero(t, drv.Live())
}

func TestCPU_LaunchValidation(t *testing.T) {
	t.Parallel()

	caps := device.DefaultCapabilities()
	caps.MaxWorkItemSizes = []int{4, 4, 1}
	caps.MaxWorkGroupSize = 8
	caps.MaxGroupCount = 4
	f := newFixture(t, device.WithCapabilities(caps))

	// Stage 1: arguments missing
	requireStatus(t, f.queue.EnqueueNDRange(f.kernel, device.Range2(4, 4), device.Range2(2, 2)), device.StatusInvalidKernelArgs)

	require.NoError(t, f.kernel.SetArg(0, 8))
	require.NoError(t, f.kernel.SetArg(1, f.buf))

	// Stage 2: geometry
	cases := []struct {
		global, local device.NDRange
		want          device.Status
	}{
		{device.Range2(0, 4), device.Range2(2, 2), device.StatusInvalidGlobalWorkSize},
		{device.Range2(6, 4), device.Range2(4, 2), device.StatusInvalidWorkGroupSize},
		{device.Range2(8, 8), device.Range2(8, 1), device.StatusInvalidWorkItemSize},
		{device.Range2(8, 8), device.Range2(4, 4), device.StatusInvalidWorkGroupSize},
		{device.Range2(10, 2), device.Range2(2, 2), device.StatusInvalidGlobalWorkSize},
	}
	for _, tc := range cases {
		requireStatus(t, f.queue.EnqueueNDRange(f.kernel, tc.global, tc.local), tc.want)
	}
	require.NoError(t, f.queue.EnqueueNDRange(f.kernel, device.Range2(8, 8), device.Range2(4, 2)))
	require.NoError(t, f.queue.Finish())

	f.release(t)
}

func TestCPU_SetArgValidation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ib, err := f.ctx.CreateBuffer(device.KindInt32, 4)
	require.NoError(t, err)

	requireStatus(t, f.kernel.SetArg(2, 1), device.StatusInvalidArgIndex)
	requireStatus(t, f.kernel.SetArg(0, "wide"), device.StatusInvalidArgValue)
	requireStatus(t, f.kernel.SetArg(1, ib), device.StatusInvalidArgValue)
	requireStatus(t, f.kernel.SetArg(1, 3), device.StatusInvalidMemObject)
	require.NoError(t, f.kernel.SetArg(0, int32(8)))

	require.NoError(t, ib.Release())
	requireStatus(t, ib.Release(), device.StatusInvalidMemObject)
	f.release(t)
}

func TestCPU_BuildFailures(t *testing.T) {
	t.Parallel()

	drv := device.CPU()
	devs, err := drv.Devices()
	require.NoError(t, err)
	ctx, err := devs[0].CreateContext()
	require.NoError(t, err)

	_, err = ctx.BuildProgram(device.Source{Name: "none"})
	requireStatus(t, err, device.StatusInvalidProgram)

	_, err = ctx.BuildProgram(device.Source{
		Name: "broken",
		Generate: func(device.Defines) ([]device.KernelSpec, error) {
			return nil, errors.New("syntax error")
		},
	})
	requireStatus(t, err, device.StatusBuildProgramFailure)

	body := func(device.Group, device.Args) {}
	_, err = ctx.BuildProgram(device.Source{
		Name: "dup",
		Generate: func(device.Defines) ([]device.KernelSpec, error) {
			return []device.KernelSpec{{Name: "a", Body: body}, {Name: "a", Body: body}}, nil
		},
	})
	requireStatus(t, err, device.StatusBuildProgramFailure)

	prog, err := ctx.BuildProgram(fillSource())
	require.NoError(t, err)
	_, err = prog.Kernel("missing")
	requireStatus(t, err, device.StatusInvalidKernelName)

	require.NoError(t, prog.Release())
	require.NoError(t, ctx.Release())
	require.Zero(t, drv.Live())
}

func TestCPU_KernelPanicSurfacesOnFinish(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	src := device.Source{
		Name: "panic",
		Generate: func(device.Defines) ([]device.KernelSpec, error) {
			return []device.KernelSpec{
				{Name: "boom", Body: func(device.Group, device.Args) { panic("index out of range") }},
				{Name: "count", Body: func(device.Group, device.Args) { ran.Add(1) }},
			}, nil
		},
	}
	drv := device.CPU()
	devs, err := drv.Devices()
	require.NoError(t, err)
	ctx, err := devs[0].CreateContext()
	require.NoError(t, err)
	q, err := ctx.NewQueue()
	require.NoError(t, err)
	prog, err := ctx.BuildProgram(src)
	require.NoError(t, err)
	boom, err := prog.Kernel("boom")
	require.NoError(t, err)
	count, err := prog.Kernel("count")
	require.NoError(t, err)

	require.NoError(t, q.EnqueueNDRange(boom, device.Range2(2, 2), device.Range2(1, 1)))
	require.NoError(t, q.EnqueueNDRange(count, device.Range2(2, 2), device.Range2(1, 1)))
	requireStatus(t, q.Finish(), device.StatusOutOfResources)
	require.Zero(t, ran.Load(), "commands after a failed launch are skipped")

	require.NoError(t, q.EnqueueNDRange(count, device.Range2(2, 2), device.Range2(1, 1)))
	require.NoError(t, q.Finish())
	require.Equal(t, int32(4), ran.Load())

	require.NoError(t, count.Release())
	require.NoError(t, boom.Release())
	require.NoError(t, prog.Release())
	require.NoError(t, q.Release())
	require.NoError(t, ctx.Release())
	require.Zero(t, drv.Live())
}

func TestCPU_FaultInjection(t *testing.T) {
	t.Parallel()

	drv := device.CPU(device.WithFault(device.OpDiscover, device.StatusDeviceNotAvailable))
	_, err := drv.Devices()
	requireStatus(t, err, device.StatusDeviceNotAvailable)

	_, err = device.Devices(drv)
	requireStatus(t, err, device.StatusDeviceNotFound)

	devs, err := device.Devices(drv, device.CPU(device.WithName("spare")))
	require.NoError(t, err)
	require.Len(t, devs, 1)
	require.Equal(t, "spare", devs[0].Info().Name)

	drv = device.CPU(device.WithFaultAfter(device.OpCreateBuffer, device.StatusMemObjectAllocationFailure, 1))
	devs, err = drv.Devices()
	require.NoError(t, err)
	ctx, err := devs[0].CreateContext()
	require.NoError(t, err)
	first, err := ctx.CreateBuffer(device.KindFloat32, 4)
	require.NoError(t, err)
	_, err = ctx.CreateBuffer(device.KindFloat32, 4)
	requireStatus(t, err, device.StatusMemObjectAllocationFailure)
	require.Equal(t, int64(2), drv.Live())

	require.NoError(t, first.Release())
	require.NoError(t, ctx.Release())
	require.Zero(t, drv.Live())
}

func TestCPU_ReleasedObjects(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.release(t)

	requireStatus(t, f.queue.Finish(), device.StatusInvalidCommandQueue)
	requireStatus(t, f.queue.Release(), device.StatusInvalidCommandQueue)
	requireStatus(t, f.kernel.SetArg(0, 1), device.StatusInvalidKernel)
	_, err := f.prog.Kernel("fill")
	requireStatus(t, err, device.StatusInvalidProgram)
	_, err = f.ctx.CreateBuffer(device.KindFloat32, 1)
	requireStatus(t, err, device.StatusInvalidContext)
	require.Zero(t, f.drv.Live())
}

func TestCPU_ConcurrentReleaseCountsOnce(t *testing.T) {
	t.Parallel()

	const racers = 16
	f := newFixture(t)
	require.NoError(t, f.buf.Release())
	require.NoError(t, f.queue.Release())

	for _, tc := range []struct {
		name    string
		release func() error
		status  device.Status
	}{
		{"kernel", f.kernel.Release, device.StatusInvalidKernel},
		{"program", f.prog.Release, device.StatusInvalidProgram},
		{"context", f.ctx.Release, device.StatusInvalidContext},
	} {
		var ok atomic.Int32
		errs := make(chan error, racers)
		var wg sync.WaitGroup
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := tc.release(); err != nil {
					errs <- err
					return
				}
				ok.Add(1)
			}()
		}
		wg.Wait()
		close(errs)

		require.EqualValues(t, 1, ok.Load(), tc.name)
		for err := range errs {
			requireStatus(t, err, tc.status)
		}
	}
	require.Zero(t, f.drv.Live())
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { device.WithWorkers(0) })
	require.Panics(t, func() { device.WithCapabilities(device.Capabilities{}) })
	require.Panics(t, func() { device.WithFault(device.OpEnqueue, device.StatusSuccess) })
	require.Panics(t, func() { device.WithFaultAfter(device.OpEnqueue, device.StatusInvalidValue, -1) })
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "INVALID_VALUE(-30)", device.StatusInvalidValue.String())
	require.Equal(t, "STATUS(7)", device.Status(7).String())

	err := error(&device.Error{Op: device.OpEnqueue, Status: device.StatusInvalidKernelArgs})
	require.Equal(t, "device: enqueue: INVALID_KERNEL_ARGS(-52)", err.Error())
	st, ok := device.StatusOf(errors.New("plain"))
	require.False(t, ok)
	require.Equal(t, device.StatusSuccess, st)
}
