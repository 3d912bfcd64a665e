package httperr

import (
	"log/slog"
	"net/http"

	"charter-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var statusByKind = map[errs.Kind]int{
	errs.KindValidation:      http.StatusBadRequest,
	errs.KindConflict:        http.StatusConflict,
	errs.KindCapacity:        http.StatusUnprocessableEntity,
	errs.KindOverpayment:     http.StatusConflict,
	errs.KindStateTransition: http.StatusConflict,
	errs.KindNotFound:        http.StatusNotFound,
	errs.KindForbidden:       http.StatusForbidden,
}

// StatusOf maps a taxonomy kind to its HTTP status; unknown kinds are 500.
func StatusOf(kind errs.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, kind errs.Kind, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = string(kind)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError classifies a usecase error by its kind. Internal errors are logged
// and answered with a generic message.
func FromError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		AbortWithError(c, status, kind, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, kind, err, err.Error(), nil)
}

// BadRequest reports a malformed request that never reached a usecase.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, errs.KindValidation, err, msg, nil)
}
