// Package jwt provides session token generation and validation for the
// console API.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when the token cannot be parsed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
	// ErrEmptyUserID is returned when a token is requested without a subject.
	ErrEmptyUserID = errors.New("user_id cannot be empty")
)

// TokenType represents the type of session token.
type TokenType string

const (
	// TokenTypeAccess is a short-lived access token.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh is a long-lived refresh token.
	TokenTypeRefresh TokenType = "refresh"
)

// TenantMembership is a user's membership in one tenant.
type TenantMembership struct {
	TenantID   string `json:"tenant_id"`
	TenantSlug string `json:"tenant_slug,omitempty"`
	Role       string `json:"role"` // owner, admin, member, viewer, or custom
}

// Claims is the session claim set.
//
// Role and Permissions feed the console's permission resolver: Permissions,
// when present, is the explicit list that takes priority over role-derived
// defaults. Tokens without it fall back to the role mapping.
type Claims struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	TokenType TokenType `json:"token_type,omitempty"`

	Tenants     []TenantMembership `json:"tenants,omitempty"`
	TenantID    string             `json:"tenant,omitempty"` // active tenant context
	Permissions []string           `json:"permissions,omitempty"`

	jwt.RegisteredClaims
}

// HasTenantAccess checks if the session includes a membership for a tenant.
func (c *Claims) HasTenantAccess(tenantID string) bool {
	for _, t := range c.Tenants {
		if t.TenantID == tenantID {
			return true
		}
	}
	return false
}

// TenantRole returns the session's role in a tenant, or "" when the session
// has no membership there.
func (c *Claims) TenantRole(tenantID string) string {
	for _, t := range c.Tenants {
		if t.TenantID == tenantID {
			return t.Role
		}
	}
	return ""
}

// ActiveTenantID returns the tenant the session is operating in: the
// explicit context when set, otherwise the sole membership.
func (c *Claims) ActiveTenantID() string {
	if c.TenantID != "" {
		return c.TenantID
	}
	if len(c.Tenants) == 1 {
		return c.Tenants[0].TenantID
	}
	return ""
}

// Manager signs and validates session tokens.
type Manager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a token manager.
func NewManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Generate signs an access token for the given claims. UserID is required;
// ID, issuer and the time window are filled in here.
func (m *Manager) Generate(claims Claims) (string, error) {
	return m.generate(claims, TokenTypeAccess, m.accessTTL)
}

// GenerateRefresh signs a refresh token.
func (m *Manager) GenerateRefresh(claims Claims) (string, error) {
	return m.generate(claims, TokenTypeRefresh, m.refreshTTL)
}

func (m *Manager) generate(claims Claims, typ TokenType, ttl time.Duration) (string, error) {
	if claims.UserID == "" {
		return "", ErrEmptyUserID
	}

	now := time.Now().UTC()
	claims.TokenType = typ
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    m.issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning its claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
