// Package routes registers all HTTP routes for the console API.
package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	infrahttp "github.com/secposture/console-api/internal/infra/http"
	"github.com/secposture/console-api/internal/infra/http/handler"
	"github.com/secposture/console-api/internal/infra/http/middleware"
	"github.com/secposture/console-api/pkg/jwt"
	"github.com/secposture/console-api/pkg/logger"
)

// Middleware is an alias to the http package's Middleware type.
type Middleware = infrahttp.Middleware

// Router is an alias to the http package's Router interface.
type Router = infrahttp.Router

// Handlers holds all HTTP handlers for route registration.
type Handlers struct {
	Health     *handler.HealthHandler
	Bootstrap  *handler.BootstrapHandler
	Navigation *handler.NavigationHandler
	Module     *handler.ModuleHandler
}

// Register wires every route: public health endpoints plus the
// authenticated, tenant-scoped console API.
func Register(router Router, h Handlers, jwtManager *jwt.Manager, log *logger.Logger) {
	registerHealthRoutes(router, h.Health)

	authMw := middleware.Auth(jwtManager, log)
	tenantMw := middleware.RequireTenant()

	router.Group("/api/v1", func(r Router) {
		r.GET("/me/bootstrap", h.Bootstrap.Bootstrap)
		r.GET("/me/permissions", h.Navigation.Permissions)
		r.GET("/me/navigation", h.Navigation.Navigation)
		r.POST("/me/navigation/preview", h.Navigation.Preview)
		r.GET("/modules", h.Module.Modules)
	}, authMw, tenantMw)
}

// registerHealthRoutes registers the public health and metrics endpoints.
func registerHealthRoutes(router Router, h *handler.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
}
