//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/usecase"
	"venue-booking/tests/common/httptest"
	usecasemock "venue-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		token      string
		setup      func(m *usecasemock.MockTokenValidator)
		expectCode int
	}{
		{
			name:       "no token",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:  "invalid token",
			token: "garbage",
			setup: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("garbage").Return("", jwt.Role(""), errors.New("token is malformed"))
			},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:  "not staff",
			token: "guest-token",
			setup: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("guest-token").Return("", jwt.Role(""), usecase.ErrNotStaff)
			},
			expectCode: http.StatusForbidden,
		},
		{
			name:  "staff",
			token: "staff-token",
			setup: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("staff-token").Return("front-desk", jwt.RoleStaff, nil)
			},
			expectCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			if tt.setup != nil {
				tt.setup(validator)
			}

			r := gin.New()
			r.POST("/refresh", middleware.NewAuthMiddleware(validator).RequireStaff(), func(c *gin.Context) {
				subject, _ := middleware.GetStaffSubject(c)
				role, _ := middleware.GetStaffRole(c)
				c.JSON(http.StatusOK, gin.H{"subject": subject, "role": role})
			})

			rec := httptest.PerformRequest(t, r, http.MethodPost, "/refresh", nil, tt.token)
			assert.Equal(t, tt.expectCode, rec.Code, rec.Body.String())
			if tt.expectCode == http.StatusOK {
				assert.JSONEq(t, `{"subject":"front-desk","role":"staff"}`, rec.Body.String())
			}
		})
	}
}
