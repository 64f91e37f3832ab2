// SPDX-License-Identifier: MIT

package device

import (
	"fmt"
	"sync"
)

const queueDepth = 64

// command is one queued unit of work. done is nil for non-blocking commands.
type command struct {
	run  func() error
	done chan error
}

// cpuQueue executes commands in submission order on a single goroutine.
// The first execution error is sticky: later commands are skipped and report
// it until Finish hands it to the caller.
type cpuQueue struct {
	ctx     *cpuContext
	cmds    chan command
	stopped chan struct{}
	pending sync.WaitGroup

	mu       sync.Mutex // guards err and released
	err      error
	released bool
}

func newCPUQueue(ctx *cpuContext) *cpuQueue {
	q := &cpuQueue{
		ctx:     ctx,
		cmds:    make(chan command, queueDepth),
		stopped: make(chan struct{}),
	}
	go q.loop()

	return q
}

func (q *cpuQueue) loop() {
	defer close(q.stopped)
	for cmd := range q.cmds {
		q.mu.Lock()
		err := q.err
		q.mu.Unlock()

		if err == nil {
			if err = cmd.run(); err != nil {
				q.mu.Lock()
				q.err = err
				q.mu.Unlock()
			}
		}
		if cmd.done != nil {
			cmd.done <- err
		}
		q.pending.Done()
	}
}

func (q *cpuQueue) submit(run func() error, wait bool) error {
	cmd := command{run: run}
	if wait {
		cmd.done = make(chan error, 1)
	}
	q.pending.Add(1)
	q.cmds <- cmd
	if !wait {
		return nil
	}

	return <-cmd.done
}

func (q *cpuQueue) alive(op Op) error {
	q.mu.Lock()
	released := q.released
	q.mu.Unlock()
	if released {
		return newError(op, StatusInvalidCommandQueue, "queue released")
	}

	return q.ctx.cfg.check(op)
}

// buffer resolves b as a live buffer of this queue's context with at least n elements.
func (q *cpuQueue) buffer(op Op, b Buffer, kind Kind, n int) (*cpuBuffer, error) {
	cb, ok := b.(*cpuBuffer)
	if !ok || cb.ctx != q.ctx || cb.released.Load() {
		return nil, newError(op, StatusInvalidMemObject, "not a live buffer of this context")
	}
	if cb.kind != kind {
		return nil, newError(op, StatusInvalidValue, "buffer holds %s, want %s", cb.kind, kind)
	}
	if n > cb.length {
		return nil, newError(op, StatusInvalidValue, "%d elements exceed buffer length %d", n, cb.length)
	}

	return cb, nil
}

func (q *cpuQueue) WriteFloat32(buf Buffer, src []float32) error {
	if err := q.alive(OpWriteBuffer); err != nil {
		return err
	}
	cb, err := q.buffer(OpWriteBuffer, buf, KindFloat32, len(src))
	if err != nil {
		return err
	}

	return q.submit(func() error { copy(cb.f32, src); return nil }, true)
}

func (q *cpuQueue) WriteInt32(buf Buffer, src []int32) error {
	if err := q.alive(OpWriteBuffer); err != nil {
		return err
	}
	cb, err := q.buffer(OpWriteBuffer, buf, KindInt32, len(src))
	if err != nil {
		return err
	}

	return q.submit(func() error { copy(cb.i32, src); return nil }, true)
}

func (q *cpuQueue) ReadFloat32(buf Buffer, dst []float32) error {
	if err := q.alive(OpReadBuffer); err != nil {
		return err
	}
	cb, err := q.buffer(OpReadBuffer, buf, KindFloat32, len(dst))
	if err != nil {
		return err
	}

	return q.submit(func() error { copy(dst, cb.f32); return nil }, true)
}

func (q *cpuQueue) ReadInt32(buf Buffer, dst []int32) error {
	if err := q.alive(OpReadBuffer); err != nil {
		return err
	}
	cb, err := q.buffer(OpReadBuffer, buf, KindInt32, len(dst))
	if err != nil {
		return err
	}

	return q.submit(func() error { copy(dst, cb.i32); return nil }, true)
}

func (q *cpuQueue) EnqueueNDRange(k Kernel, global, local NDRange) error {
	if err := q.alive(OpEnqueue); err != nil {
		return err
	}
	ck, ok := k.(*cpuKernel)
	if !ok || ck.ctx != q.ctx || ck.released.Load() {
		return newError(OpEnqueue, StatusInvalidKernel, "not a live kernel of this context")
	}
	count, err := q.validateRange(global, local)
	if err != nil {
		return err
	}
	args, err := ck.snapshot()
	if err != nil {
		return err
	}

	cfg := q.ctx.cfg
	body := ck.spec.Body
	name := ck.spec.Name

	return q.submit(func() error {
		if err := cfg.check(OpExecute); err != nil {
			return err
		}

		return execute(name, body, args, count, local, cfg.workers)
	}, false)
}

// validateRange checks a launch against the device capabilities and returns
// the number of work-groups per dimension.
func (q *cpuQueue) validateRange(global, local NDRange) (NDRange, error) {
	caps := q.ctx.cfg.caps
	if caps.MaxWorkItemDimensions < 2 {
		return NDRange{}, newError(OpEnqueue, StatusInvalidWorkDimension, "device supports %d dimension(s)", caps.MaxWorkItemDimensions)
	}
	if global.X <= 0 || global.Y <= 0 {
		return NDRange{}, newError(OpEnqueue, StatusInvalidGlobalWorkSize, "global %s", global)
	}
	if local.X <= 0 || local.Y <= 0 || global.X%local.X != 0 || global.Y%local.Y != 0 {
		return NDRange{}, newError(OpEnqueue, StatusInvalidWorkGroupSize, "local %s does not divide global %s", local, global)
	}
	if local.X > caps.WorkItemSize(0) || local.Y > caps.WorkItemSize(1) {
		return NDRange{}, newError(OpEnqueue, StatusInvalidWorkItemSize, "local %s", local)
	}
	if local.X*local.Y > caps.MaxWorkGroupSize {
		return NDRange{}, newError(OpEnqueue, StatusInvalidWorkGroupSize, "local %s exceeds %d work-items", local, caps.MaxWorkGroupSize)
	}
	count := NDRange{X: global.X / local.X, Y: global.Y / local.Y}
	if caps.MaxGroupCount > 0 && (count.X > caps.MaxGroupCount || count.Y > caps.MaxGroupCount) {
		return NDRange{}, newError(OpEnqueue, StatusInvalidGlobalWorkSize, "%s groups exceed %d", count, caps.MaxGroupCount)
	}

	return count, nil
}

// execute runs every work-group of one launch on a bounded worker pool.
func execute(name string, body KernelFunc, args Args, count, local NDRange, workers int) error {
	total := count.X * count.Y
	if workers > total {
		workers = total
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	work := make(chan NDRange, workers)

	// Stage 1: workers
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range work {
				if err := runGroup(name, body, args, Group{ID: id, Count: count, Local: local}); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}

	// Stage 2: feed groups row by row
	for y := 0; y < count.Y; y++ {
		for x := 0; x < count.X; x++ {
			work <- NDRange{X: x, Y: y}
		}
	}
	close(work)
	wg.Wait()

	return firstErr
}

func runGroup(name string, body KernelFunc, args Args, grp Group) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(OpExecute, StatusOutOfResources, "%s group %s: %v", name, grp.ID, r)
		}
	}()
	body(grp, args)

	return nil
}

// Flush is a no-op beyond the liveness check: commands are dispatched on submission.
func (q *cpuQueue) Flush() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.released {
		return newError(OpFinish, StatusInvalidCommandQueue, "queue released")
	}

	return nil
}

func (q *cpuQueue) Finish() error {
	if err := q.alive(OpFinish); err != nil {
		return err
	}
	q.pending.Wait()

	q.mu.Lock()
	defer q.mu.Unlock()
	err := q.err
	q.err = nil

	return err
}

func (q *cpuQueue) Release() error {
	q.mu.Lock()
	if q.released {
		q.mu.Unlock()
		return newError(OpRelease, StatusInvalidCommandQueue, "queue already released")
	}
	q.released = true
	q.mu.Unlock()

	q.pending.Wait()
	close(q.cmds)
	<-q.stopped
	q.ctx.cfg.live.Add(-1)

	return q.ctx.cfg.check(OpRelease)
}

func (q *cpuQueue) String() string { return fmt.Sprintf("cpu-queue(%s)", q.ctx.cfg.name) }
