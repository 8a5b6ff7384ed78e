package auth

import "github.com/ansj1105/coin-csms-sub001/internal/domain"

// Authorize reports whether a verified role is a member of the allowed set.
// It must only be called with a role taken from claims that already passed
// Verify; it performs no signature checks of its own. An empty allowed set
// denies everything.
func Authorize(role domain.Role, allowed ...domain.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
