package api

import (
	"net/http"

	reqdto "charter-booking/internal/handler/dto/request"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	cmds commands.CalendarCommands
	q    queries.CalendarQueries
}

func NewCalendarHandler(cmds commands.CalendarCommands, q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{cmds: cmds, q: q}
}

// @Summary Get calendar range
// @Description Explicit calendar rows of a resource inside [start, end)
// @Tags calendar
// @Produce json
// @Param id path string true "Resource ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /resources/{id}/calendar [get]
func (h *CalendarHandler) GetRange(c *gin.Context) {
	resourceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	start, end, err := q.Dates()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	days, err := h.q.GetRange(c.Request.Context(), resourceID, start, end)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CalendarResponse{
		ResourceID: resourceID,
		Start:      start.String(),
		End:        end.String(),
		Days:       resdto.FromCalendarDays(days),
	})
}

// @Summary Set calendar days
// @Description Upsert a batch of per-day overrides; duplicate dates keep the last entry
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.SetCalendarDaysRequest true "Days"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /resources/{id}/calendar [put]
func (h *CalendarHandler) SetDays(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	resourceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetCalendarDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	inputs, err := req.ToInputs()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	days, err := h.cmds.SetDays(c.Request.Context(), actor, resourceID, inputs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDays(days))
}

// @Summary Update calendar day
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar day ID"
// @Param request body reqdto.PatchCalendarDayRequest true "Fields to change"
// @Success 200 {object} resdto.CalendarDayResponse
// @Failure 404 {object} httperr.Response
// @Router /calendar-days/{id} [patch]
func (h *CalendarHandler) PatchDay(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	dayID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PatchCalendarDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	day, err := h.cmds.SetDayStatus(c.Request.Context(), actor, dayID, req.ToPatch())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDayView(day))
}

// @Summary Delete calendar day
// @Tags calendar
// @Security BearerAuth
// @Param id path string true "Calendar day ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /calendar-days/{id} [delete]
func (h *CalendarHandler) DeleteDay(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	dayID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteDay(c.Request.Context(), actor, dayID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
