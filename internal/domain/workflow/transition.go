package workflow

import "strings"

// CanTransition reports whether a role may move an order into targetStatus.
//
// admin may set any status. Every other known role may only set statuses in
// its own namespace (prefix before " - "). Roles with no namespace (legacy
// list-only roles) and unknown roles may set nothing.
//
// The predicate is pure; it must be evaluated before any mutation is
// committed. Empty target statuses are a validation concern upstream and
// never reach this check.
func CanTransition(role, targetStatus string) bool {
	r, ok := Lookup(role)
	if !ok {
		return false
	}
	if r.Admin() {
		return true
	}
	if r.Namespace == "" {
		return false
	}
	return strings.HasPrefix(targetStatus, r.Namespace)
}
