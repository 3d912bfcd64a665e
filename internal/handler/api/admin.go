package api

import (
	"net/http"

	reqdto "charter-booking/internal/handler/dto/request"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds         commands.ReservationCommands
	defaultBatch int
}

func NewAdminHandler(cmds commands.ReservationCommands, cfg config.SweepConfig) *AdminHandler {
	return &AdminHandler{cmds: cmds, defaultBatch: int(cfg.Batch)}
}

// @Summary Complete ended reservations
// @Description Runs one completion sweep now
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SweepRequest false "Batch size"
// @Success 200 {object} resdto.SweepResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/sweep-completed [post]
func (h *AdminHandler) SweepCompleted(c *gin.Context) {
	var req reqdto.SweepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request")
			return
		}
	}
	limit := req.Limit
	if limit == 0 {
		limit = h.defaultBatch
	}

	n, err := h.cmds.SweepCompleted(c.Request.Context(), limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Completed: n})
}
