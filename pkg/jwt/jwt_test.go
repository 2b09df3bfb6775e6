package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager("test-secret-at-least-32-bytes-long!", "console-api", accessTTL, 24*time.Hour)
}

func TestGenerateValidateRoundTrip(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.Generate(Claims{
		UserID:   "user-1",
		Email:    "analyst@example.com",
		TenantID: "tenant-1",
		Tenants: []TenantMembership{
			{TenantID: "tenant-1", TenantSlug: "acme", Role: "member"},
			{TenantID: "tenant-2", Role: "viewer"},
		},
		Permissions: []string{"findings:read"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if got := claims.TenantRole("tenant-1"); got != "member" {
		t.Errorf("TenantRole(tenant-1) = %q, want member", got)
	}
	if got := claims.TenantRole("tenant-3"); got != "" {
		t.Errorf("TenantRole(tenant-3) = %q, want empty", got)
	}
	if !claims.HasTenantAccess("tenant-2") {
		t.Error("HasTenantAccess(tenant-2) = false")
	}
	if got := claims.ActiveTenantID(); got != "tenant-1" {
		t.Errorf("ActiveTenantID = %q, want tenant-1", got)
	}
	if len(claims.Permissions) != 1 || claims.Permissions[0] != "findings:read" {
		t.Errorf("Permissions = %v", claims.Permissions)
	}
}

func TestActiveTenantFallsBackToSoleMembership(t *testing.T) {
	c := Claims{Tenants: []TenantMembership{{TenantID: "only", Role: "owner"}}}
	if got := c.ActiveTenantID(); got != "only" {
		t.Errorf("ActiveTenantID = %q, want only", got)
	}

	c.Tenants = append(c.Tenants, TenantMembership{TenantID: "second", Role: "viewer"})
	if got := c.ActiveTenantID(); got != "" {
		t.Errorf("ambiguous membership must not pick a tenant, got %q", got)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.Generate(Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Validate expired = %v, want ErrExpiredToken", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	token, err := m.Generate(Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	other := NewManager("another-secret-that-does-not-match", "console-api", time.Hour, time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate with wrong secret = %v, want ErrInvalidToken", err)
	}
}

func TestGenerateRequiresUserID(t *testing.T) {
	m := newTestManager(time.Hour)
	if _, err := m.Generate(Claims{}); !errors.Is(err, ErrEmptyUserID) {
		t.Errorf("Generate without user = %v, want ErrEmptyUserID", err)
	}
}
