// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Authenticated Principal

// Principal is the identity attached to a request after its token key has
// been verified. It carries the cached user snapshot from the token, so
// authorization checks never need a user lookup.
type Principal struct {
	UserID string
	Groups []Group
}

// In reports whether the principal belongs to the given group, honoring the
// group hierarchy (an admin satisfies a staff requirement).
func (p *Principal) In(target Group) bool {
	if p == nil {
		return false
	}
	for _, g := range p.Groups {
		if g.AtLeast(target) {
			return true
		}
	}
	return false
}
