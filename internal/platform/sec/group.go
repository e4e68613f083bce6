// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Groups

// Group represents an authorization group granted to an account.
type Group string

const (
	// Unrestricted system access
	GroupAdmin Group = "admin"

	// Can curate shared sources, people, and organizations
	GroupStaff Group = "staff"

	// Default group for confirmed registered users
	GroupUsers Group = "users"
)

// Groups is the closed set of defined groups, in ascending privilege order.
// It is initialized once and never mutated.
var Groups = []Group{GroupUsers, GroupStaff, GroupAdmin}

// DefaultGroups are granted to a user when their account is confirmed.
var DefaultGroups = []Group{GroupUsers}

// ValidGroup reports whether the candidate names a defined group.
func ValidGroup(candidate string) bool {
	for _, g := range Groups {
		if string(g) == candidate {
			return true
		}
	}
	return false
}

// # Group Hierarchy

// AtLeast checks if the current group meets or exceeds the required target group.
func (g Group) AtLeast(target Group) bool {
	return g.level() >= target.level()
}

// level maps a group to a numeric hierarchy level for comparison logic.
func (g Group) level() int {

	// Linear scale (10-30) allows for future intermediate groups
	switch g {
	case GroupAdmin:
		return 30
	case GroupStaff:
		return 20
	case GroupUsers:
		return 10
	default:
		return 0
	}
}

// Strings converts a group list to its wire representation.
func Strings(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = string(g)
	}
	return out
}

// FromStrings converts wire strings back to groups without validating them.
// Callers that accept untrusted input must check [ValidGroup] first.
func FromStrings(values []string) []Group {
	out := make([]Group, len(values))
	for i, v := range values {
		out[i] = Group(v)
	}
	return out
}
