// SPDX-License-Identifier: MIT

package device

// Defines are named integer constants handed to a Source generator at build
// time, the equivalent of -D flags for a kernel compiler.
type Defines map[string]int

// KernelFunc is the body of a kernel. It is invoked once per work-group and
// is responsible for every work-item of that group.
type KernelFunc func(grp Group, args Args)

// KernelSpec declares one entry point of a Source.
type KernelSpec struct {
	Name   string
	Params []ArgKind
	Body   KernelFunc
}

// Source is the input of Context.BuildProgram. Generate is called with
// Defines during the build and returns the kernels it specializes for them.
type Source struct {
	Name     string
	Defines  Defines
	Generate func(Defines) ([]KernelSpec, error)
}

// Group identifies the work-group a KernelFunc invocation serves.
type Group struct {
	ID    NDRange // group index per dimension
	Count NDRange // number of groups per dimension
	Local NDRange // work-items per group per dimension
}

// Args are the argument values captured for one launch.
type Args struct {
	values []any
}

// Int returns an ArgInt argument.
func (a Args) Int(i int) int { return a.values[i].(int) }

// Float32s returns the storage of an ArgFloat32Buffer argument.
func (a Args) Float32s(i int) []float32 { return a.values[i].([]float32) }

// Int32s returns the storage of an ArgInt32Buffer argument.
func (a Args) Int32s(i int) []int32 { return a.values[i].([]int32) }

// Len returns the number of arguments.
func (a Args) Len() int { return len(a.values) }
