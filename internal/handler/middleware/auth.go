package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"charter-booking/internal/domain/user"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = errs.New("unauthorized")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody("Access token required"))
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody("Invalid or expired token"))
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.KindInternal, errUnauthorized, "Internal server error", nil)
			return
		}

		if !principal.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.KindForbidden,
				errs.Newf("role %s below %s", principal.Role, minRole), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// SetPrincipal stores the caller for handlers and the request logger.
func SetPrincipal(c *gin.Context, p user.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set("jwt_claims", map[string]any{
		"user_id": p.ID.String(),
		"role":    p.Role.String(),
	})
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}

	p, ok := v.(user.Principal)
	return p, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func unauthorizedBody(msg string) gin.H {
	return gin.H{"error": gin.H{"kind": "UNAUTHORIZED", "message": msg}}
}
