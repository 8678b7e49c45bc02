package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errors.New("access token required")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffSubjectKey = "staff_subject"
	ctxStaffRoleKey    = "staff_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireStaff accepts only bearer tokens carrying the staff role.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			status := http.StatusUnauthorized
			if errors.Is(err, usecase.ErrNotStaff) {
				status = http.StatusForbidden
			}
			httperr.AbortWithError(c, status, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxStaffSubjectKey, subject)
		c.Set(ctxStaffRoleKey, role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetStaffSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxStaffSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}

func GetStaffRole(c *gin.Context) (jwt.Role, bool) {
	v, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(jwt.Role)
	return role, ok
}
