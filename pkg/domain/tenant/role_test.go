package tenant

import "testing"

func TestRoleRankOrdering(t *testing.T) {
	if !(RoleViewer.Rank() < RoleMember.Rank() &&
		RoleMember.Rank() < RoleAdmin.Rank() &&
		RoleAdmin.Rank() < RoleOwner.Rank()) {
		t.Fatalf("role ranks out of order: viewer=%d member=%d admin=%d owner=%d",
			RoleViewer.Rank(), RoleMember.Rank(), RoleAdmin.Rank(), RoleOwner.Rank())
	}
}

func TestIsAtLeastMatchesRank(t *testing.T) {
	for _, candidate := range AllRoles {
		for _, required := range AllRoles {
			want := candidate.Rank() >= required.Rank()
			if got := candidate.IsAtLeast(required); got != want {
				t.Errorf("IsAtLeast(%s, %s) = %v, want %v", candidate, required, got, want)
			}
		}
	}
}

func TestIsAtLeastUnknownRoles(t *testing.T) {
	custom := Role("security-analyst")

	if custom.IsAtLeast(RoleViewer) {
		t.Error("unknown candidate role must not satisfy any minimum-role check")
	}
	if RoleOwner.IsAtLeast(custom) {
		t.Error("unknown required role must not be satisfied, even by owner")
	}
	if custom.IsAtLeast(custom) {
		t.Error("unknown roles must not satisfy each other")
	}
	if got := custom.Rank(); got != -1 {
		t.Errorf("unknown role rank = %d, want -1", got)
	}
}

func TestIsElevated(t *testing.T) {
	cases := map[Role]bool{
		RoleOwner:          true,
		RoleAdmin:          true,
		RoleMember:         false,
		RoleViewer:         false,
		Role("soc-intern"): false,
	}
	for role, want := range cases {
		if got := role.IsElevated(); got != want {
			t.Errorf("IsElevated(%s) = %v, want %v", role, got, want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("admin"); !ok || r != RoleAdmin {
		t.Errorf("ParseRole(admin) = (%s, %v)", r, ok)
	}
	if r, ok := ParseRole("auditor"); ok {
		t.Errorf("ParseRole(auditor) reported predefined, got %s", r)
	} else if r != Role("auditor") {
		t.Errorf("ParseRole must preserve custom role strings, got %s", r)
	}
}
