package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"event-booking/internal/domain/user"
	"event-booking/internal/handler/httperr"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrInsufficientRole = errs.New("insufficient role")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey         = "user_id"
	ctxUserRoleKey       = "user_role"
	ctxTokenIDKey        = "token_id"
	ctxTokenExpiresAtKey = "token_expires_at"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if errs.Is(err, usecase.ErrRevocationCheckFailed) {
			slog.Error("Token revocation lookup failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errs.ErrUnauthenticated), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, identity.UserID)
		c.Set(ctxUserRoleKey, identity.Role)
		c.Set(ctxTokenIDKey, identity.TokenID)
		c.Set(ctxTokenExpiresAtKey, identity.ExpiresAt)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, ErrInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetToken returns the id and expiry of the token that authenticated the request.
func GetToken(c *gin.Context) (string, time.Time, bool) {
	tokenID := c.GetString(ctxTokenIDKey)
	expiresAt := c.GetTime(ctxTokenExpiresAtKey)
	return tokenID, expiresAt, tokenID != ""
}
