//go:build unit

package api_test

import (
	"net/http"

	"charter-booking/internal/domain/user"
	"charter-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

// fakeAuth authenticates any request carrying a token as *actor.
func fakeAuth(actor *user.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"kind": "UNAUTHORIZED", "message": "Unauthorized"}})
			return
		}
		middleware.SetPrincipal(c, *actor)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func viewer() user.Principal { return user.NewPrincipal(uuid.New(), user.RoleViewer) }
