package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secposture/console-api/internal/app"
	infrahttp "github.com/secposture/console-api/internal/infra/http"
	"github.com/secposture/console-api/internal/infra/http/middleware"
	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/navigation"
	"github.com/secposture/console-api/pkg/jwt"
	"github.com/secposture/console-api/pkg/logger"
	"github.com/secposture/console-api/pkg/validator"
)

type fakeSnapshots struct {
	snap module.Snapshot
}

func (f *fakeSnapshots) Snapshot(context.Context, string) module.Snapshot {
	return f.snap
}

func fullyEntitledSnapshot() module.Snapshot {
	ids := []string{
		module.ModuleDashboard, module.ModuleAssets, module.ModuleScope,
		module.ModuleFindings, module.ModuleCredentials, module.ModuleRemediation,
		module.ModuleScans, module.ModuleReports, module.ModuleAudit,
		module.ModuleTeam, module.ModuleIntegrations, module.ModuleBilling,
	}
	ents := make([]module.Entitlement, 0, len(ids))
	for _, id := range ids {
		ents = append(ents, module.Entitlement{
			ModuleID:       id,
			IncludedInPlan: true,
			Active:         true,
			ReleaseStatus:  module.ReleaseStatusReleased,
		})
	}
	return module.NewSnapshot(ents)
}

func newTestRouter(t *testing.T, snap module.Snapshot) (infrahttp.Router, *jwt.Manager) {
	t.Helper()

	log := logger.New(logger.Config{Level: "error"})
	navSvc := app.NewNavigationService(&fakeSnapshots{snap: snap}, navigation.DefaultTree(), log)
	manager := jwt.NewManager("test-secret-at-least-32-bytes-long!", "console-api", time.Hour, 24*time.Hour)

	router := infrahttp.NewChiRouter()
	authMw := middleware.Auth(manager, log)
	tenantMw := middleware.RequireTenant()

	navHandler := NewNavigationHandler(navSvc, validator.New(), log)
	moduleHandler := NewModuleHandler(navSvc, log)
	bootstrapHandler := NewBootstrapHandler(navSvc, log)

	router.Group("/api/v1", func(r infrahttp.Router) {
		r.GET("/me/bootstrap", bootstrapHandler.Bootstrap)
		r.GET("/me/permissions", navHandler.Permissions)
		r.GET("/me/navigation", navHandler.Navigation)
		r.POST("/me/navigation/preview", navHandler.Preview)
		r.GET("/modules", moduleHandler.Modules)
	}, authMw, tenantMw)

	return router, manager
}

func memberToken(t *testing.T, m *jwt.Manager, role string, perms []string) string {
	t.Helper()
	token, err := m.Generate(jwt.Claims{
		UserID:      "user-1",
		Email:       "analyst@example.com",
		Tenants:     []jwt.TenantMembership{{TenantID: "t1", Role: role}},
		Permissions: perms,
	})
	require.NoError(t, err)
	return token
}

func doRequest(router infrahttp.Router, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNavigationEndpoint(t *testing.T) {
	router, manager := newTestRouter(t, fullyEntitledSnapshot())
	token := memberToken(t, manager, "viewer", nil)

	rec := doRequest(router, "/api/v1/me/navigation", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp NavigationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Navigation.Groups)

	for _, g := range resp.Navigation.Groups {
		assert.NotEmpty(t, g.Items, "filtered groups must not be empty")
	}
}

func TestNavigationEndpointRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t, fullyEntitledSnapshot())

	rec := doRequest(router, "/api/v1/me/navigation", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPermissionsEndpointExplicitList(t *testing.T) {
	router, manager := newTestRouter(t, fullyEntitledSnapshot())
	token := memberToken(t, manager, "viewer", []string{"findings:write", "findings:read"})

	rec := doRequest(router, "/api/v1/me/permissions", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "viewer", resp.Role)
	assert.Equal(t, []string{"findings:read", "findings:write"}, resp.Permissions)
}

func TestModulesEndpointIncludesHidden(t *testing.T) {
	snap := module.NewSnapshot([]module.Entitlement{
		{ModuleID: module.ModuleScans, IncludedInPlan: true, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
		{ModuleID: module.ModuleBilling, IncludedInPlan: false, Active: true, ReleaseStatus: module.ReleaseStatusReleased},
	})
	router, manager := newTestRouter(t, snap)
	token := memberToken(t, manager, "owner", nil)

	rec := doRequest(router, "/api/v1/modules", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ModulesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Modules, 2)

	byID := map[string]app.ModuleStatus{}
	for _, st := range resp.Modules {
		byID[st.ModuleID] = st
	}
	assert.True(t, byID[module.ModuleScans].Visible)
	assert.False(t, byID[module.ModuleBilling].Visible, "role must not bypass plan gating")
}

func doPost(router infrahttp.Router, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNavigationPreview(t *testing.T) {
	router, manager := newTestRouter(t, fullyEntitledSnapshot())
	token := memberToken(t, manager, "owner", nil)

	ownerRec := doRequest(router, "/api/v1/me/navigation", token)
	require.Equal(t, http.StatusOK, ownerRec.Code)
	var ownerResp NavigationResponse
	require.NoError(t, json.Unmarshal(ownerRec.Body.Bytes(), &ownerResp))

	rec := doPost(router, "/api/v1/me/navigation/preview", token, `{"role":"viewer"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp NavigationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Navigation.Groups)

	count := func(tr navigation.Tree) int {
		n := 0
		for _, g := range tr.Groups {
			n += len(g.Items)
		}
		return n
	}
	assert.Less(t, count(resp.Navigation), count(ownerResp.Navigation),
		"viewer preview should show fewer items than the owner's own sidebar")
}

func TestNavigationPreviewRejectsUnknownRole(t *testing.T) {
	router, manager := newTestRouter(t, fullyEntitledSnapshot())
	token := memberToken(t, manager, "owner", nil)

	rec := doPost(router, "/api/v1/me/navigation/preview", token, `{"role":"superuser"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestNavigationPreviewRejectsMalformedBody(t *testing.T) {
	router, manager := newTestRouter(t, fullyEntitledSnapshot())
	token := memberToken(t, manager, "owner", nil)

	rec := doPost(router, "/api/v1/me/navigation/preview", token, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBootstrapEndpoint(t *testing.T) {
	router, manager := newTestRouter(t, fullyEntitledSnapshot())
	token := memberToken(t, manager, "member", nil)

	rec := doRequest(router, "/api/v1/me/bootstrap", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BootstrapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "t1", resp.TenantID)
	assert.Equal(t, "member", resp.Role)
	assert.NotEmpty(t, resp.Permissions)
	assert.NotEmpty(t, resp.Modules)
	assert.NotEmpty(t, resp.Navigation.Groups)
}
