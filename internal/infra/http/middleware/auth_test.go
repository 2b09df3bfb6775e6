package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secposture/console-api/pkg/jwt"
	"github.com/secposture/console-api/pkg/logger"
)

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret-at-least-32-bytes-long!", "console-api", time.Hour, 24*time.Hour)
}

func testToken(t *testing.T, m *jwt.Manager, claims jwt.Claims) string {
	t.Helper()
	token, err := m.Generate(claims)
	require.NoError(t, err)
	return token
}

func authedRequest(token, tenantHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/navigation", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if tenantHeader != "" {
		req.Header.Set("X-Tenant-ID", tenantHeader)
	}
	return req
}

func TestAuthPopulatesContext(t *testing.T) {
	m := testManager()
	token := testToken(t, m, jwt.Claims{
		UserID: "user-1",
		Email:  "analyst@example.com",
		Tenants: []jwt.TenantMembership{
			{TenantID: "t1", Role: "member"},
		},
		Permissions: []string{"findings:read"},
	})

	var gotUser, gotTenant, gotRole string
	var gotPerms []string
	handler := Auth(m, logger.New(logger.Config{Level: "error"}))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser = GetUserID(r.Context())
			gotTenant = GetTenantID(r.Context())
			gotRole = GetRole(r.Context())
			gotPerms = GetPermissions(r.Context())
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUser)
	assert.Equal(t, "t1", gotTenant, "sole membership becomes active tenant")
	assert.Equal(t, "member", gotRole)
	assert.Equal(t, []string{"findings:read"}, gotPerms)
}

func TestAuthMissingToken(t *testing.T) {
	handler := Auth(testManager(), logger.New(logger.Config{Level: "error"}))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsRefreshToken(t *testing.T) {
	m := testManager()
	token, err := m.GenerateRefresh(jwt.Claims{UserID: "user-1"})
	require.NoError(t, err)

	handler := Auth(m, logger.New(logger.Config{Level: "error"}))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token, ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthTenantHeaderOverride(t *testing.T) {
	m := testManager()
	token := testToken(t, m, jwt.Claims{
		UserID: "user-1",
		Tenants: []jwt.TenantMembership{
			{TenantID: "t1", Role: "admin"},
			{TenantID: "t2", Role: "viewer"},
		},
		TenantID: "t1",
	})

	var gotTenant, gotRole string
	handler := Auth(m, logger.New(logger.Config{Level: "error"}))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotTenant = GetTenantID(r.Context())
			gotRole = GetRole(r.Context())
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token, "t2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t2", gotTenant)
	assert.Equal(t, "viewer", gotRole)
}

func TestAuthTenantHeaderWithoutMembership(t *testing.T) {
	m := testManager()
	token := testToken(t, m, jwt.Claims{
		UserID:  "user-1",
		Tenants: []jwt.TenantMembership{{TenantID: "t1", Role: "admin"}},
	})

	handler := Auth(m, logger.New(logger.Config{Level: "error"}))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token, "other"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireTenant(t *testing.T) {
	handler := RequireTenant()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
