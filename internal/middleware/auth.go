package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextUserEmail = "userEmail"
)

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearer(c)
		if !ok {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization: Bearer <token> is required.")
			return
		}

		claims, err := issuer.Parse(raw)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is sent and otherwise
// lets the request through as public.
func OptionalAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearer(c); ok {
			if claims, err := issuer.Parse(raw); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsAdmin() {
			httperr.Forbidden(c, "forbidden", "Admin access required.")
			return
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated caller, or the public actor.
func ActorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.GetString(ContextUserID),
		Role:   c.GetString(ContextUserRole),
	}
}

func bearer(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	rol := claims.Rol
	if rol != models.RoleAdmin {
		rol = models.RoleOwner
	}
	c.Set(ContextUserID, claims.Subject)
	c.Set(ContextUserRole, rol)
	c.Set(ContextUserEmail, claims.Email)
}
