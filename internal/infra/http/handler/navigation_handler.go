package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secposture/console-api/internal/app"
	"github.com/secposture/console-api/internal/infra/http/middleware"
	"github.com/secposture/console-api/pkg/apierror"
	"github.com/secposture/console-api/pkg/domain/navigation"
	"github.com/secposture/console-api/pkg/logger"
	"github.com/secposture/console-api/pkg/validator"
)

// NavigationHandler serves the session's filtered sidebar and effective
// permissions.
type NavigationHandler struct {
	navSvc    *app.NavigationService
	validator *validator.Validator
	logger    *logger.Logger
}

// NewNavigationHandler creates a new navigation handler.
func NewNavigationHandler(navSvc *app.NavigationService, v *validator.Validator, log *logger.Logger) *NavigationHandler {
	return &NavigationHandler{
		navSvc:    navSvc,
		validator: v,
		logger:    log,
	}
}

// NavigationResponse wraps the filtered sidebar tree.
type NavigationResponse struct {
	Navigation navigation.Tree `json:"navigation"`
}

// Navigation returns the sidebar filtered to the session: permission and
// role rules applied, module-gated entries resolved against the tenant's
// entitlements.
func (h *NavigationHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.MustGetTenantID(ctx)

	tree := h.navSvc.Sidebar(ctx, tenantID, middleware.GetRole(ctx), middleware.GetPermissions(ctx))

	respondJSON(w, http.StatusOK, NavigationResponse{Navigation: tree})
}

// PermissionsResponse lists the session's effective permissions.
type PermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Permissions returns the session's effective permission list: the
// token's explicit list when present, otherwise the role defaults.
func (h *NavigationHandler) Permissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	role := middleware.GetRole(ctx)

	set := h.navSvc.EffectivePermissions(role, middleware.GetPermissions(ctx))

	respondJSON(w, http.StatusOK, PermissionsResponse{
		Role:        role,
		Permissions: permissionStrings(set),
	})
}

// PreviewRequest describes the identity to filter the sidebar as.
type PreviewRequest struct {
	Role        string   `json:"role" validate:"required,tenant_role"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,permission"`
}

// Preview returns the sidebar as a member with the given role and explicit
// permission list would see it, resolved against the caller's tenant.
// Admins use this to check what a role change exposes before making it.
func (h *NavigationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.MustGetTenantID(ctx)

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apierror.BadRequest("Invalid request body"))
		return
	}

	if err := h.validator.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(w, r, apierror.ValidationFailed("Invalid preview request", verrs))
			return
		}
		writeError(w, r, apierror.BadRequest(err.Error()))
		return
	}

	tree := h.navSvc.Sidebar(ctx, tenantID, req.Role, req.Permissions)

	respondJSON(w, http.StatusOK, NavigationResponse{Navigation: tree})
}
