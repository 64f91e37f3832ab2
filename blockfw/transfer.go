// SPDX-License-Identifier: MIT
// Package: blockfw
//
// Purpose:
//   - Host staging of padded copies and the device buffer pair of one Run.
//
// Contract:
//   - The caller's matrices are read once (stage) and written once (commit);
//     commit happens only after every device step succeeded.
//   - bufferPair.release attempts every release and is safe to call twice.

package blockfw

import (
	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/apsp/device"
	"github.com/katalvlaran/apsp/store"
)

// staging holds padded host copies of the matrices.
type staging struct {
	dist []float32
	path []int32
}

// stage copies g into padded matrices. Padded cells are unreachable, the
// padded diagonal is 0 and every padded predecessor is NoPredecessor.
func stage(g *store.Graph, l layout) staging {
	s := staging{
		dist: make([]float32, l.cells()),
		path: make([]int32, l.cells()),
	}
	for i := range s.dist {
		s.dist[i] = store.Unreachable
		s.path[i] = store.NoPredecessor
	}
	for i := 0; i < l.padded; i++ {
		s.dist[i*l.padded+i] = 0
	}

	dist, path := g.Distances(), g.Predecessors()
	for i := 0; i < l.n; i++ {
		copy(s.dist[i*l.padded:i*l.padded+l.n], dist[i*l.n:(i+1)*l.n])
		copy(s.path[i*l.padded:i*l.padded+l.n], path[i*l.n:(i+1)*l.n])
	}

	return s
}

// commit copies the top-left n×n corner of s into g.
func (s staging) commit(g *store.Graph, l layout) {
	dist, path := g.Distances(), g.Predecessors()
	for i := 0; i < l.n; i++ {
		copy(dist[i*l.n:(i+1)*l.n], s.dist[i*l.padded:i*l.padded+l.n])
		copy(path[i*l.n:(i+1)*l.n], s.path[i*l.padded:i*l.padded+l.n])
	}
}

// bufferPair is the device-resident copy of both matrices.
type bufferPair struct {
	dist device.Buffer
	path device.Buffer
}

// allocate creates both buffers. The returned pair is never nil and holds
// whatever was created, so the caller's deferred release covers partial failure.
func allocate(ctx device.Context, cells int) (*bufferPair, error) {
	p := &bufferPair{}
	var err error
	if p.dist, err = ctx.CreateBuffer(device.KindFloat32, cells); err != nil {
		return p, deviceError(StageAllocate, err)
	}
	if p.path, err = ctx.CreateBuffer(device.KindInt32, cells); err != nil {
		return p, deviceError(StageAllocate, err)
	}

	return p, nil
}

// write uploads s into the pair.
func (p *bufferPair) write(q device.Queue, s staging) error {
	if err := q.WriteFloat32(p.dist, s.dist); err != nil {
		return deviceError(StageCopyIn, err)
	}
	if err := q.WriteInt32(p.path, s.path); err != nil {
		return deviceError(StageCopyIn, err)
	}

	return nil
}

// read downloads the pair into s.
func (p *bufferPair) read(q device.Queue, s staging) error {
	if err := q.ReadFloat32(p.dist, s.dist); err != nil {
		return deviceError(StageReadback, err)
	}
	if err := q.ReadInt32(p.path, s.path); err != nil {
		return deviceError(StageReadback, err)
	}

	return nil
}

// release frees both buffers, attempting each one.
func (p *bufferPair) release() error {
	var merr *multierror.Error
	if p.dist != nil {
		if err := p.dist.Release(); err != nil {
			merr = multierror.Append(merr, deviceError(StageRelease, err))
		}
		p.dist = nil
	}
	if p.path != nil {
		if err := p.path.Release(); err != nil {
			merr = multierror.Append(merr, deviceError(StageRelease, err))
		}
		p.path = nil
	}

	return merr.ErrorOrNil()
}
