package api

import (
	"net/http"

	"charter-booking/internal/domain/user"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoPrincipal = errs.New("no authenticated principal")

// principal must only be called behind RequireAuth.
func principal(c *gin.Context) (user.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", errNoPrincipal, "Unauthorized", nil)
		return user.Principal{}, false
	}
	return p, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
