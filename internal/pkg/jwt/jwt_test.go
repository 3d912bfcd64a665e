//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"charter-booking/internal/domain/user"
	"charter-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret", "identity")
	userID := uuid.New()

	t.Run("success: valid token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleOperator, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "operator", claims.Role)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleViewer, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", "identity").GenerateToken(userID, user.RoleViewer, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: wrong issuer", func(t *testing.T) {
		token, err := jwt.NewService("secret", "someone-else").GenerateToken(userID, user.RoleViewer, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
