//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"charter-booking/internal/domain/user"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity service does.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
