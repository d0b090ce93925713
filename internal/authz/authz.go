// Package authz provides role-based authorization checks.
package authz

// Authorize reports whether a role is in the allowed set. An empty
// allowed set permits any authenticated caller.
func Authorize(role string, allowed ...string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
