package auth

import (
	"testing"

	"github.com/spec-kit/saas-platform/internal/domain"
)

var (
	alice = Identity{UserID: "alice", Email: "alice@x.com", Role: domain.RoleUser}
	admin = Identity{UserID: "root", Email: "root@x.com", Role: domain.RoleAdmin}
)

func TestCanAccessUser(t *testing.T) {
	cases := []struct {
		name   string
		caller Identity
		target string
		want   bool
	}{
		{"self", alice, "alice", true},
		{"other user", alice, "bob", false},
		{"admin any", admin, "bob", true},
		{"admin self", admin, "root", true},
	}
	for _, tc := range cases {
		if got := CanAccessUser(tc.caller, tc.target); got != tc.want {
			t.Errorf("%s: CanAccessUser = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanTouchResource(t *testing.T) {
	cases := []struct {
		name   string
		caller Identity
		owner  string
		want   bool
	}{
		{"owner", alice, "alice", true},
		{"non-owner", alice, "bob", false},
		{"admin bypasses ownership", admin, "bob", true},
	}
	for _, tc := range cases {
		if got := CanTouchResource(tc.caller, tc.owner); got != tc.want {
			t.Errorf("%s: CanTouchResource = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSanitizeRoleUpdate(t *testing.T) {
	adminRole := domain.RoleAdmin

	if got := SanitizeRoleUpdate(alice, domain.RoleUser, &adminRole); got != domain.RoleUser {
		t.Errorf("non-admin role escalation not stripped: got %s", got)
	}
	if got := SanitizeRoleUpdate(admin, domain.RoleUser, &adminRole); got != domain.RoleAdmin {
		t.Errorf("admin role change rejected: got %s", got)
	}
	if got := SanitizeRoleUpdate(admin, domain.RoleUser, nil); got != domain.RoleUser {
		t.Errorf("nil role change altered role: got %s", got)
	}
}
