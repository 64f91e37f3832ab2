// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
)

// Kind names the property a Violation breaks.
type Kind string

const (
	KindDiagonal Kind = "diagonal"
	KindSentinel Kind = "sentinel"
	KindReach    Kind = "reachability"
	KindTriangle Kind = "triangle"
	KindRoute    Kind = "route"
	KindOracle   Kind = "oracle"
)

var (
	ErrDiagonal = errors.New("verify: diagonal not zero")
	ErrSentinel = errors.New("verify: sentinel and predecessor disagree")
	ErrReach    = errors.New("verify: reachability differs from input")
	ErrTriangle = errors.New("verify: triangle inequality violated")
	ErrRoute    = errors.New("verify: route does not realize distance")
	ErrOracle   = errors.New("verify: distance differs from Dijkstra")
)

var kindErrors = map[Kind]error{
	KindDiagonal: ErrDiagonal,
	KindSentinel: ErrSentinel,
	KindReach:    ErrReach,
	KindTriangle: ErrTriangle,
	KindRoute:    ErrRoute,
	KindOracle:   ErrOracle,
}

// Violation locates a broken property. K is the intermediate vertex of a
// triangle violation and -1 otherwise.
type Violation struct {
	Kind   Kind
	I, J   int
	K      int
	Detail string
}

func (v *Violation) Error() string {
	if v.K >= 0 {
		return fmt.Sprintf("verify: %s at (%d,%d) via %d: %s", v.Kind, v.I, v.J, v.K, v.Detail)
	}

	return fmt.Sprintf("verify: %s at (%d,%d): %s", v.Kind, v.I, v.J, v.Detail)
}

// Unwrap returns the sentinel of v.Kind.
func (v *Violation) Unwrap() error { return kindErrors[v.Kind] }

func violation(kind Kind, i, j, k int, format string, args ...any) error {
	return &Violation{Kind: kind, I: i, J: j, K: k, Detail: fmt.Sprintf(format, args...)}
}
