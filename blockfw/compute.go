// SPDX-License-Identifier: MIT

package blockfw

import "github.com/katalvlaran/apsp/store"

// Compute acquires a device, solves g in place and releases the device.
// A release failure is reported only when the run itself succeeded.
func Compute(g *store.Graph, opts ...Option) error {
	c, err := Acquire(opts...)
	if err != nil {
		return err
	}
	runErr := c.Run(g)
	relErr := c.Release()
	if runErr != nil {
		if relErr != nil {
			c.logger.Warn("release after failed run", "error", relErr)
		}

		return runErr
	}

	return relErr
}
