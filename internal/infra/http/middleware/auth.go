package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/secposture/console-api/pkg/apierror"
	"github.com/secposture/console-api/pkg/jwt"
	"github.com/secposture/console-api/pkg/logger"
)

// Auth-related context keys - use logger.ContextKey for consistency.
const (
	UserIDKey                        = logger.ContextKeyUserID
	TenantIDKey                      = logger.ContextKeyTenantID
	RoleKey        logger.ContextKey = "role"
	EmailKey       logger.ContextKey = "email"
	PermissionsKey logger.ContextKey = "permissions"
	ClaimsKey      logger.ContextKey = "jwt_claims"
)

// GetUserID extracts the user ID from context.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetTenantID extracts the active tenant ID from context.
func GetTenantID(ctx context.Context) string {
	if tenantID, ok := ctx.Value(TenantIDKey).(string); ok {
		return tenantID
	}
	return ""
}

// MustGetTenantID extracts the tenant ID from context or panics.
// Use only in handlers protected by RequireTenant; a panic indicates a
// missing middleware, not a user error.
func MustGetTenantID(ctx context.Context) string {
	tenantID := GetTenantID(ctx)
	if tenantID == "" {
		panic("MustGetTenantID: tenant ID not found in context - ensure RequireTenant() middleware is applied")
	}
	return tenantID
}

// GetRole extracts the tenant role from context.
func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(RoleKey).(string); ok {
		return role
	}
	return ""
}

// GetEmail extracts the user email from context.
func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	return ""
}

// GetPermissions extracts the explicit permission list from context.
// Nil means the session carries no explicit list and role defaults apply.
func GetPermissions(ctx context.Context) []string {
	if perms, ok := ctx.Value(PermissionsKey).([]string); ok {
		return perms
	}
	return nil
}

// GetClaims extracts the full JWT claims from context.
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}

// Auth validates the bearer token and populates the request context with
// the session identity: user, active tenant, tenant role, explicit
// permissions and the raw claims.
//
// The active tenant may be overridden per request with the X-Tenant-ID
// header, as long as the session has a membership there.
func Auth(manager *jwt.Manager, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeAuthError(w, r, apierror.Unauthorized("Missing bearer token"))
				return
			}

			claims, err := manager.Validate(token)
			if err != nil {
				log.Warn("token validation failed",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				writeAuthError(w, r, apierror.Unauthorized("Invalid or expired token"))
				return
			}
			if claims.TokenType != jwt.TokenTypeAccess {
				writeAuthError(w, r, apierror.Unauthorized("Access token required"))
				return
			}

			tenantID := claims.ActiveTenantID()
			if header := r.Header.Get("X-Tenant-ID"); header != "" {
				if !claims.HasTenantAccess(header) {
					writeAuthError(w, r, apierror.Forbidden("No access to requested tenant"))
					return
				}
				tenantID = header
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, EmailKey, claims.Email)
			ctx = context.WithValue(ctx, ClaimsKey, claims)
			if tenantID != "" {
				ctx = context.WithValue(ctx, TenantIDKey, tenantID)
				ctx = context.WithValue(ctx, RoleKey, claims.TenantRole(tenantID))
			}
			if claims.Permissions != nil {
				ctx = context.WithValue(ctx, PermissionsKey, claims.Permissions)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireTenant rejects requests whose session has no resolvable tenant
// context.
func RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetTenantID(r.Context()) == "" {
				writeAuthError(w, r, apierror.BadRequest("Tenant context required: set X-Tenant-ID or use a single-tenant session"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err *apierror.Error) {
	err.WriteJSONWithRequestID(w, GetRequestID(r.Context()))
}
