package api

import (
	"net/http"

	reqdto "charter-booking/internal/handler/dto/request"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Create a pending reservation; retries with the same Idempotency-Key replay the first result
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key (UUID)"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	key, err := uuid.Parse(c.GetHeader("Idempotency-Key"))
	if err != nil {
		httperr.BadRequest(c, err, "Idempotency-Key header must be a UUID")
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, input, key)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header("Idempotent-Replayed", "true")
	}
	c.Header("Location", "/api/reservations/"+result.Reservation.ID.String())
	c.JSON(status, resdto.FromReservationView(result.Reservation))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description Newest first, keyset paginated
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}

	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	items, next, err := h.q.ListForPrincipal(c.Request.Context(), actor, actor.ID, cursor, q.Limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary List reservations of a resource
// @Description Any status, intersecting [start, end), ordered by start
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 403 {object} httperr.Response
// @Router /resources/{id}/reservations [get]
func (h *ReservationHandler) ListForResource(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
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

	items, err := h.q.ListForResource(c.Request.Context(), actor, resourceID, start, end)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, nil))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Complete reservation
// @Description Confirmed reservations complete once their end date is reached
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/complete [post]
func (h *ReservationHandler) Complete(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.cmds.MarkCompleted(c.Request.Context(), actor, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Override-confirm reservation
// @Description Admin-only pending to confirmed without payment; always audited
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.OverrideConfirmRequest true "Reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/override-confirm [post]
func (h *ReservationHandler) OverrideConfirm(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.OverrideConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.cmds.OverrideConfirm(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
