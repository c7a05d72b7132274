package auth

import "github.com/spec-kit/saas-platform/internal/domain"

// Authorization policy: pure decision functions every handler applies after
// the gate has attached an Identity. ADMIN bypasses ownership for all
// resource types; there are no intermediate roles.

// IsAdmin reports whether the caller holds the ADMIN role.
func IsAdmin(id Identity) bool {
	return id.Role == domain.RoleAdmin
}

// CanAccessUser allows reading or mutating an account: self or admin.
func CanAccessUser(id Identity, targetUserID string) bool {
	return IsAdmin(id) || id.UserID == targetUserID
}

// CanTouchResource allows reading or mutating an owned resource (customer,
// support ticket, subscription): owner or admin.
func CanTouchResource(id Identity, ownerUserID string) bool {
	return IsAdmin(id) || id.UserID == ownerUserID
}

// SanitizeRoleUpdate strips a requested role change unless the caller is an
// admin. Returns the role to persist given the current one.
func SanitizeRoleUpdate(id Identity, current domain.Role, requested *domain.Role) domain.Role {
	if requested == nil || !IsAdmin(id) {
		return current
	}
	return *requested
}
