package permission

import (
	"strings"
	"testing"
)

func TestCatalogShape(t *testing.T) {
	seen := make(map[Permission]bool)
	for _, p := range AllPermissions() {
		if seen[p] {
			t.Errorf("duplicate permission in catalog: %s", p)
		}
		seen[p] = true

		parts := strings.Split(p.String(), ":")
		if len(parts) < 2 || len(parts) > 3 {
			t.Errorf("permission %q does not follow module:action or module:subfeature:action", p)
		}
		for _, part := range parts {
			if part == "" {
				t.Errorf("permission %q has an empty segment", p)
			}
		}
	}
}

func TestParsePermission(t *testing.T) {
	if p, ok := ParsePermission("assets:write"); !ok || p != AssetsWrite {
		t.Errorf("ParsePermission(assets:write) = (%s, %v)", p, ok)
	}
	if _, ok := ParsePermission("assets:frobnicate"); ok {
		t.Error("unknown permission must not validate against the catalog")
	}
}

func TestFromStringsPreservesUnknown(t *testing.T) {
	perms := FromStrings([]string{"assets:read", "future:module:read"})
	if len(perms) != 2 {
		t.Fatalf("FromStrings dropped entries: %v", perms)
	}
	if !Contains(perms, Permission("future:module:read")) {
		t.Error("unknown permission strings must be preserved for forward compatibility")
	}
}

func TestRoleMappingsOnlyCatalogPermissions(t *testing.T) {
	for role, perms := range RolePermissions {
		for _, p := range perms {
			if !p.IsValid() {
				t.Errorf("role %s grants permission %q that is not in the catalog", role, p)
			}
		}
	}
}
