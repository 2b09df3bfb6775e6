package handler

import (
	"net/http"

	"github.com/secposture/console-api/internal/app"
	"github.com/secposture/console-api/internal/infra/http/middleware"
	"github.com/secposture/console-api/pkg/logger"
)

// ModuleHandler serves per-tenant module visibility.
type ModuleHandler struct {
	navSvc *app.NavigationService
	logger *logger.Logger
}

// NewModuleHandler creates a new module handler.
func NewModuleHandler(navSvc *app.NavigationService, log *logger.Logger) *ModuleHandler {
	return &ModuleHandler{
		navSvc: navSvc,
		logger: log,
	}
}

// ModulesResponse lists the tenant's module visibility statuses.
type ModulesResponse struct {
	Modules []app.ModuleStatus `json:"modules"`
}

// Modules returns the visibility of every catalog module for the
// session's tenant. Hidden modules are included with visible=false so the
// frontend can distinguish "hidden" from "unknown".
func (h *ModuleHandler) Modules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.MustGetTenantID(ctx)

	statuses := h.navSvc.ModuleStatuses(ctx, tenantID)

	respondJSON(w, http.StatusOK, ModulesResponse{Modules: statuses})
}
