// SPDX-License-Identifier: MIT

package device

import "fmt"

// Type classifies a device.
type Type int

const (
	TypeCPU Type = iota
	TypeGPU
	TypeAccelerator
)

func (t Type) String() string {
	switch t {
	case TypeCPU:
		return "cpu"
	case TypeGPU:
		return "gpu"
	case TypeAccelerator:
		return "accelerator"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Kind is the element type of a Buffer.
type Kind int

const (
	KindFloat32 Kind = iota
	KindInt32
)

func (k Kind) String() string {
	switch k {
	case KindFloat32:
		return "float32"
	case KindInt32:
		return "int32"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ArgKind is the declared type of a kernel parameter.
type ArgKind int

const (
	ArgInt ArgKind = iota
	ArgFloat32Buffer
	ArgInt32Buffer
)

// NDRange is a two-dimensional launch extent (work-items or work-groups).
type NDRange struct {
	X, Y int
}

// Range2 builds an NDRange.
func Range2(x, y int) NDRange { return NDRange{X: x, Y: y} }

func (r NDRange) String() string { return fmt.Sprintf("%dx%d", r.X, r.Y) }

// Capabilities are the parallelism limits of a device.
type Capabilities struct {
	// MaxWorkItemDimensions is the number of launch dimensions supported.
	MaxWorkItemDimensions int
	// MaxWorkItemSizes is the per-dimension limit of a work-group's extent.
	MaxWorkItemSizes []int
	// MaxWorkGroupSize bounds the number of work-items in one work-group.
	MaxWorkGroupSize int
	// MaxGroupCount bounds the number of work-groups per dimension.
	MaxGroupCount int
	// MaxAllocElements bounds a single buffer's length; 0 means unbounded.
	MaxAllocElements int
	// ComputeUnits is the number of independent execution units.
	ComputeUnits int
}

// WorkItemSize returns the work-group extent limit for dimension dim,
// or 0 when the dimension is not supported.
func (c Capabilities) WorkItemSize(dim int) int {
	if dim < 0 || dim >= len(c.MaxWorkItemSizes) || dim >= c.MaxWorkItemDimensions {
		return 0
	}

	return c.MaxWorkItemSizes[dim]
}

// Info describes a device.
type Info struct {
	Name         string
	Vendor       string
	Driver       string
	Type         Type
	Capabilities Capabilities
	Extensions   []string
}
