package api

import (
	"net/http"

	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EligibilityHandler struct {
	loyalty commands.LoyaltyCommands
	q       queries.EligibilityQueries
}

func NewEligibilityHandler(loyalty commands.LoyaltyCommands, q queries.EligibilityQueries) *EligibilityHandler {
	return &EligibilityHandler{loyalty: loyalty, q: q}
}

// @Summary Review eligibility
// @Tags eligibility
// @Produce json
// @Security BearerAuth
// @Param id path string true "Principal ID"
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 403 {object} httperr.Response
// @Router /principals/{id}/eligibility/review [get]
func (h *EligibilityHandler) CanReview(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	principalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.CanReview(c.Request.Context(), actor, principalID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEligibilityView(view))
}

// @Summary Loyalty action eligibility
// @Tags eligibility
// @Produce json
// @Security BearerAuth
// @Param id path string true "Principal ID"
// @Param kind path string true "stay_bonus | review_bonus | referral | daily_checkin"
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 400 {object} httperr.Response
// @Router /principals/{id}/eligibility/loyalty/{kind} [get]
func (h *EligibilityHandler) CanPerformLoyaltyAction(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	principalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.CanPerformLoyaltyAction(c.Request.Context(), actor, principalID, c.Param("kind"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEligibilityView(view))
}

// @Summary Record loyalty action
// @Description Appends to the action log when eligible; the decision is returned either way
// @Tags eligibility
// @Produce json
// @Security BearerAuth
// @Param id path string true "Principal ID"
// @Param kind path string true "stay_bonus | review_bonus | referral | daily_checkin"
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 400 {object} httperr.Response
// @Router /principals/{id}/eligibility/loyalty/{kind} [post]
func (h *EligibilityHandler) RecordLoyaltyAction(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	principalID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.loyalty.RecordAction(c.Request.Context(), actor, principalID, c.Param("kind"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEligibilityView(view))
}
