// SPDX-License-Identifier: MIT
// Package: blockfw
//
// Purpose:
//   - Sentinel errors and the two typed errors of the engine.
//   - ConfigurationError unwraps to its Kind's sentinel so callers can use
//     errors.Is without type assertions.

package blockfw

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/device"
)

var (
	// ErrTooSmall indicates a graph with fewer than two tiles of vertices.
	ErrTooSmall = errors.New("blockfw: graph smaller than two blocks")

	// ErrCapabilitiesExceeded indicates a tiling the device cannot launch.
	ErrCapabilitiesExceeded = errors.New("blockfw: device capabilities exceeded")

	// ErrReleased indicates use of a Context after Release.
	ErrReleased = errors.New("blockfw: context released")
)

// ConfigKind classifies a ConfigurationError.
type ConfigKind int

const (
	// TooSmall: num_vertices < 2·B.
	TooSmall ConfigKind = iota + 1
	// CapabilitiesExceeded: the device cannot launch the required geometry.
	CapabilitiesExceeded
)

func (k ConfigKind) String() string {
	switch k {
	case TooSmall:
		return "too-small"
	case CapabilitiesExceeded:
		return "capabilities-exceeded"
	default:
		return fmt.Sprintf("config-kind(%d)", int(k))
	}
}

// ConfigurationError reports a graph/device combination that cannot be tiled.
// It is detected before any device buffer is allocated.
type ConfigurationError struct {
	Kind   ConfigKind
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("blockfw: configuration %s: %s", e.Kind, e.Detail)
}

// Unwrap returns the sentinel matching Kind.
func (e *ConfigurationError) Unwrap() error {
	switch e.Kind {
	case TooSmall:
		return ErrTooSmall
	case CapabilitiesExceeded:
		return ErrCapabilitiesExceeded
	default:
		return nil
	}
}

func configErrorf(kind ConfigKind, format string, args ...any) error {
	return &ConfigurationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Stage names the step of the device lifecycle that failed.
type Stage string

const (
	StageDiscovery Stage = "discovery"
	StageContext   Stage = "context"
	StageQueue     Stage = "queue"
	StageBuild     Stage = "build"
	StageKernel    Stage = "kernel"
	StageAllocate  Stage = "allocate"
	StageCopyIn    Stage = "copy-in"
	StageSetArgs   Stage = "set-args"
	StageLaunch    Stage = "launch"
	StageFinish    Stage = "finish"
	StageReadback  Stage = "readback"
	StageRelease   Stage = "release"
)

// DeviceError is a driver failure at one lifecycle stage. Code is the driver
// status; it is device.StatusSuccess when the cause carried none.
type DeviceError struct {
	Stage Stage
	Code  device.Status
	Err   error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("blockfw: %s failed (%s): %v", e.Stage, e.Code, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

func deviceError(stage Stage, err error) error {
	code, _ := device.StatusOf(err)

	return &DeviceError{Stage: stage, Code: code, Err: err}
}
