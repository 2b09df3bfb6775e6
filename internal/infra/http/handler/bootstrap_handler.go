package handler

import (
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/secposture/console-api/internal/app"
	"github.com/secposture/console-api/internal/infra/http/middleware"
	"github.com/secposture/console-api/pkg/apierror"
	"github.com/secposture/console-api/pkg/domain/navigation"
	"github.com/secposture/console-api/pkg/logger"
)

// BootstrapHandler handles the bootstrap endpoint that returns everything
// the console shell needs after login in a single API call.
type BootstrapHandler struct {
	navSvc *app.NavigationService
	logger *logger.Logger
}

// NewBootstrapHandler creates a new bootstrap handler.
func NewBootstrapHandler(navSvc *app.NavigationService, log *logger.Logger) *BootstrapHandler {
	return &BootstrapHandler{
		navSvc: navSvc,
		logger: log,
	}
}

// BootstrapUser identifies the session user.
type BootstrapUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// BootstrapResponse combines the initial console state: identity,
// effective permissions, module visibility and the filtered sidebar.
type BootstrapResponse struct {
	User        BootstrapUser      `json:"user"`
	TenantID    string             `json:"tenant_id"`
	Role        string             `json:"role"`
	Permissions []string           `json:"permissions"`
	Modules     []app.ModuleStatus `json:"modules"`
	Navigation  navigation.Tree    `json:"navigation"`
}

// Bootstrap returns the initial console state for the session.
func (h *BootstrapHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := middleware.GetUserID(ctx)
	tenantID := middleware.MustGetTenantID(ctx)
	role := middleware.GetRole(ctx)
	explicitPerms := middleware.GetPermissions(ctx)

	if userID == "" {
		writeError(w, r, apierror.Unauthorized("User context not found"))
		return
	}

	var (
		mu      sync.Mutex
		modules []app.ModuleStatus
		navTree navigation.Tree
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		statuses := h.navSvc.ModuleStatuses(gctx, tenantID)
		mu.Lock()
		modules = statuses
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		tree := h.navSvc.Sidebar(gctx, tenantID, role, explicitPerms)
		mu.Lock()
		navTree = tree
		mu.Unlock()
		return nil
	})
	if err := g.Wait(); err != nil {
		h.logger.Error("bootstrap failed", "tenant_id", tenantID, "error", err)
		writeError(w, r, apierror.InternalError(err))
		return
	}

	perms := h.navSvc.EffectivePermissions(role, explicitPerms)

	respondJSON(w, http.StatusOK, BootstrapResponse{
		User: BootstrapUser{
			ID:    userID,
			Email: middleware.GetEmail(ctx),
		},
		TenantID:    tenantID,
		Role:        role,
		Permissions: permissionStrings(perms),
		Modules:     modules,
		Navigation:  navTree,
	})
}
