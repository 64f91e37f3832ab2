// SPDX-License-Identifier: MIT

package device

import "strings"

// Driver enumerates the devices of one platform.
type Driver interface {
	Name() string
	Devices() ([]Device, error)
}

// Device is a compute device able to host contexts.
type Device interface {
	Info() Info
	CreateContext() (Context, error)
}

// Context owns every object created on a device.
// Releasing the context does not release its children; callers release them first.
type Context interface {
	NewQueue() (Queue, error)
	BuildProgram(src Source) (Program, error)
	CreateBuffer(kind Kind, length int) (Buffer, error)
	Release() error
}

// Queue is an in-order command stream.
//
// Writes and reads block until they (and everything queued before them) have
// completed. EnqueueNDRange validates and submits a launch and returns without
// waiting; execution failures surface from the next Finish or blocking call.
type Queue interface {
	WriteFloat32(buf Buffer, src []float32) error
	WriteInt32(buf Buffer, src []int32) error
	ReadFloat32(buf Buffer, dst []float32) error
	ReadInt32(buf Buffer, dst []int32) error
	EnqueueNDRange(k Kernel, global, local NDRange) error
	Flush() error
	Finish() error
	Release() error
}

// Program is a built Source.
type Program interface {
	// Kernel creates a new kernel object for the named entry point.
	Kernel(name string) (Kernel, error)
	Release() error
}

// Kernel is one entry point of a Program with its own argument slots.
// Arguments are captured when a launch is enqueued.
type Kernel interface {
	Name() string
	SetArg(index int, value any) error
	Release() error
}

// Buffer is device-resident storage of Len elements of Kind.
type Buffer interface {
	Kind() Kind
	Len() int
	Release() error
}

// Devices lists the devices of every driver in order. A failing driver is
// skipped; when no device is found at all the result is a StatusDeviceNotFound
// error naming the driver failures.
func Devices(drivers ...Driver) ([]Device, error) {
	var (
		found    []Device
		failures []string
	)
	for _, drv := range drivers {
		if drv == nil {
			continue
		}
		devs, err := drv.Devices()
		if err != nil {
			failures = append(failures, drv.Name()+": "+err.Error())
			continue
		}
		found = append(found, devs...)
	}
	if len(found) == 0 {
		return nil, newError(OpDiscover, StatusDeviceNotFound, "%d driver(s) probed%s",
			len(drivers), joinFailures(failures))
	}

	return found, nil
}

func joinFailures(failures []string) string {
	if len(failures) == 0 {
		return ""
	}

	return "; " + strings.Join(failures, "; ")
}
