// SPDX-License-Identifier: MIT

package blockfw

import "github.com/katalvlaran/apsp/device"

// layout is the tiling of an n-vertex graph with tile side block.
type layout struct {
	n      int // vertices
	block  int // tile side B
	padded int // ceil(n/B)·B
	blocks int // padded / B
}

func newLayout(n, block int) layout {
	blocks := (n + block - 1) / block

	return layout{n: n, block: block, padded: blocks * block, blocks: blocks}
}

// cells is the element count of one padded matrix.
func (l layout) cells() int { return l.padded * l.padded }

// local is the work-group extent of every launch.
func (l layout) local() device.NDRange { return device.Range2(l.block, l.block) }

func (l layout) phaseA() device.NDRange { return device.Range2(l.block, l.block) }
func (l layout) phaseB() device.NDRange { return device.Range2(l.padded, 2*l.block) }
func (l layout) phaseC() device.NDRange { return device.Range2(l.padded, l.padded) }

// checkSize enforces num_vertices ≥ 2·B.
func (l layout) checkSize() error {
	if l.n < 2*l.block {
		return configErrorf(TooSmall, "%d vertices, need at least %d for block side %d", l.n, 2*l.block, l.block)
	}

	return nil
}

// checkTile reports whether caps can run one B×B work-group.
func checkTile(caps device.Capabilities, block int) error {
	switch {
	case caps.MaxWorkItemDimensions < 2:
		return configErrorf(CapabilitiesExceeded, "%d work-item dimension(s), need 2", caps.MaxWorkItemDimensions)
	case caps.WorkItemSize(0) < block || caps.WorkItemSize(1) < block:
		return configErrorf(CapabilitiesExceeded, "work-item sizes %v below block side %d", caps.MaxWorkItemSizes, block)
	case caps.MaxWorkGroupSize < block*block:
		return configErrorf(CapabilitiesExceeded, "work-group size %d below %d", caps.MaxWorkGroupSize, block*block)
	}

	return nil
}

// checkCapabilities reports whether caps can run every launch of l.
func (l layout) checkCapabilities(caps device.Capabilities) error {
	if err := checkTile(caps, l.block); err != nil {
		return err
	}
	if caps.MaxGroupCount > 0 && caps.MaxGroupCount < l.blocks {
		return configErrorf(CapabilitiesExceeded, "%d blocks per dimension exceed group limit %d", l.blocks, caps.MaxGroupCount)
	}

	return nil
}
