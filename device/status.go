// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"
)

// Status is a driver result code. Values follow the OpenCL numbering so logs
// read the same as native driver output.
type Status int

const (
	StatusSuccess                    Status = 0
	StatusDeviceNotFound             Status = -1
	StatusDeviceNotAvailable         Status = -2
	StatusMemObjectAllocationFailure Status = -4
	StatusOutOfResources             Status = -5
	StatusOutOfHostMemory            Status = -6
	StatusBuildProgramFailure        Status = -11
	StatusInvalidValue               Status = -30
	StatusInvalidContext             Status = -34
	StatusInvalidCommandQueue        Status = -36
	StatusInvalidMemObject           Status = -38
	StatusInvalidBuildOptions        Status = -43
	StatusInvalidProgram             Status = -44
	StatusInvalidKernelName          Status = -46
	StatusInvalidKernel              Status = -48
	StatusInvalidArgIndex            Status = -49
	StatusInvalidArgValue            Status = -50
	StatusInvalidKernelArgs          Status = -52
	StatusInvalidWorkDimension       Status = -53
	StatusInvalidWorkGroupSize       Status = -54
	StatusInvalidWorkItemSize        Status = -55
	StatusInvalidBufferSize          Status = -61
	StatusInvalidGlobalWorkSize      Status = -63
)

var statusNames = map[Status]string{
	StatusSuccess:                    "SUCCESS",
	StatusDeviceNotFound:             "DEVICE_NOT_FOUND",
	StatusDeviceNotAvailable:         "DEVICE_NOT_AVAILABLE",
	StatusMemObjectAllocationFailure: "MEM_OBJECT_ALLOCATION_FAILURE",
	StatusOutOfResources:             "OUT_OF_RESOURCES",
	StatusOutOfHostMemory:            "OUT_OF_HOST_MEMORY",
	StatusBuildProgramFailure:        "BUILD_PROGRAM_FAILURE",
	StatusInvalidValue:               "INVALID_VALUE",
	StatusInvalidContext:             "INVALID_CONTEXT",
	StatusInvalidCommandQueue:        "INVALID_COMMAND_QUEUE",
	StatusInvalidMemObject:           "INVALID_MEM_OBJECT",
	StatusInvalidBuildOptions:        "INVALID_BUILD_OPTIONS",
	StatusInvalidProgram:             "INVALID_PROGRAM",
	StatusInvalidKernelName:          "INVALID_KERNEL_NAME",
	StatusInvalidKernel:              "INVALID_KERNEL",
	StatusInvalidArgIndex:            "INVALID_ARG_INDEX",
	StatusInvalidArgValue:            "INVALID_ARG_VALUE",
	StatusInvalidKernelArgs:          "INVALID_KERNEL_ARGS",
	StatusInvalidWorkDimension:       "INVALID_WORK_DIMENSION",
	StatusInvalidWorkGroupSize:       "INVALID_WORK_GROUP_SIZE",
	StatusInvalidWorkItemSize:        "INVALID_WORK_ITEM_SIZE",
	StatusInvalidBufferSize:          "INVALID_BUFFER_SIZE",
	StatusInvalidGlobalWorkSize:      "INVALID_GLOBAL_WORK_SIZE",
}

// String renders the symbolic name with the numeric code, e.g. "INVALID_VALUE(-30)".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return fmt.Sprintf("%s(%d)", name, int(s))
	}

	return fmt.Sprintf("STATUS(%d)", int(s))
}

// Op names a driver operation; it tags errors and selects injected faults.
type Op string

const (
	OpDiscover      Op = "discover"
	OpCreateContext Op = "create-context"
	OpCreateQueue   Op = "create-queue"
	OpBuildProgram  Op = "build-program"
	OpCreateKernel  Op = "create-kernel"
	OpCreateBuffer  Op = "create-buffer"
	OpWriteBuffer   Op = "write-buffer"
	OpSetArg        Op = "set-arg"
	OpEnqueue       Op = "enqueue"
	OpExecute       Op = "execute"
	OpFinish        Op = "finish"
	OpReadBuffer    Op = "read-buffer"
	OpRelease       Op = "release"
)

// Error is the failure of one driver operation.
type Error struct {
	Op     Op
	Status Status
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("device: %s: %s", e.Op, e.Status)
	}

	return fmt.Sprintf("device: %s: %s: %s", e.Op, e.Status, e.Detail)
}

func newError(op Op, status Status, format string, args ...any) *Error {
	return &Error{Op: op, Status: status, Detail: fmt.Sprintf(format, args...)}
}

// StatusOf extracts the driver status carried by err.
// It returns StatusSuccess for nil and false when err holds no *Error.
func StatusOf(err error) (Status, bool) {
	if err == nil {
		return StatusSuccess, true
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Status, true
	}

	return StatusSuccess, false
}
