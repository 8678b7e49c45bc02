//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role jwt.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) StaffToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "front-desk", jwt.RoleStaff)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, role jwt.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
