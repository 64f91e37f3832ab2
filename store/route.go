// SPDX-License-Identifier: MIT

package store

import "fmt"

// Route reconstructs the u→v path by walking path[u][·] back from v.
//
// The result starts at u and ends at v. Route(u, u) is []int{u}.
// Returns ErrNoRoute when v is unreachable from u and ErrBrokenRoute when the
// predecessor chain does not reach u within n steps.
// Complexity: O(n).
func (g *Graph) Route(u, v int) ([]int, error) {
	if err := g.checkPair(u, v); err != nil {
		return nil, fmt.Errorf("Route: %w", err)
	}
	if u == v {
		return []int{u}, nil
	}
	if !g.Reachable(u, v) {
		return nil, fmt.Errorf("Route(%d,%d): %w", u, v, ErrNoRoute)
	}

	base := u * g.n
	rev := make([]int, 0, 8)
	rev = append(rev, v)
	cur := v
	for steps := 0; steps < g.n; steps++ {
		p := int(g.path[base+cur])
		if p < 0 || p >= g.n {
			return nil, fmt.Errorf("Route(%d,%d): predecessor %d of %d: %w", u, v, p, cur, ErrBrokenRoute)
		}
		rev = append(rev, p)
		if p == u {
			// reverse in place
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev, nil
		}
		cur = p
	}

	return nil, fmt.Errorf("Route(%d,%d): no source after %d steps: %w", u, v, g.n, ErrBrokenRoute)
}
