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

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Record payment attempt
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPaymentRequest true "Attempt"
// @Success 201 {object} resdto.PaymentAttemptResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	attempt, err := h.cmds.RecordAttempt(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentAttemptView(attempt))
}

// @Summary Settle payment attempt
// @Description Applies the payment system's outcome once; settling a terminal attempt returns it unchanged
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attempt ID"
// @Param request body reqdto.SettlePaymentRequest true "Outcome"
// @Success 200 {object} resdto.SettleResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /payments/{id}/settle [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	attemptID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Settle(c.Request.Context(), actor, commands.SettleInput{
		AttemptID:   attemptID,
		Outcome:     req.Outcome,
		ExternalRef: req.ExternalRef,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettleResult(result))
}

// @Summary List payment attempts
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.PaymentSummaryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/payments [get]
func (h *PaymentHandler) ListForReservation(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	summary, err := h.q.ListAttempts(c.Request.Context(), actor, reservationID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentSummary(summary))
}
