//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/handler/api"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/usecase/queries"
	"charter-booking/tests/common/httptest"
	commandsmock "charter-booking/tests/mock/commands"
	queriesmock "charter-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EligibilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockLoyalty *commandsmock.MockLoyaltyCommands
	mockQueries *queriesmock.MockEligibilityQueries
	actor       user.Principal
}

func (s *EligibilityHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLoyalty = commandsmock.NewMockLoyaltyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEligibilityQueries(s.mockCtrl)
	s.actor = viewer()
	h := api.NewEligibilityHandler(s.mockLoyalty, s.mockQueries)

	auth := fakeAuth(&s.actor)
	s.router.GET("/principals/:id/eligibility/review", auth, h.CanReview)
	s.router.GET("/principals/:id/eligibility/loyalty/:kind", auth, h.CanPerformLoyaltyAction)
	s.router.POST("/principals/:id/eligibility/loyalty/:kind", auth, h.RecordLoyaltyAction)
}

func (s *EligibilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEligibilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(EligibilityHandlerTestSuite))
}

func (s *EligibilityHandlerTestSuite) base() string {
	return "/principals/" + s.actor.ID.String() + "/eligibility"
}

func (s *EligibilityHandlerTestSuite) TestCanReview() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().CanReview(gomock.Any(), s.actor, s.actor.ID).Return(&queries.EligibilityView{
			PrincipalID: s.actor.ID,
			Action:      "review",
			Eligible:    false,
			Reason:      string(eligibility.ReasonNoStay),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base()+"/review", nil, bearer)

		var body resdto.EligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Eligible)
		s.Equal("no_qualifying_stay", body.Reason)
	})

	s.Run("error: someone else's history", func() {
		s.mockQueries.EXPECT().CanReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrPrincipalAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base()+"/review", nil, bearer)
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *EligibilityHandlerTestSuite) TestLoyalty() {
	next := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	s.Run("check: cooldown carries next_eligible_at", func() {
		s.mockQueries.EXPECT().CanPerformLoyaltyAction(gomock.Any(), s.actor, s.actor.ID, "daily_checkin").Return(&queries.EligibilityView{
			PrincipalID:    s.actor.ID,
			Action:         "daily_checkin",
			Reason:         string(eligibility.ReasonCooldown),
			NextEligibleAt: &next,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base()+"/loyalty/daily_checkin", nil, bearer)

		var body resdto.EligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cooldown", body.Reason)
		s.Require().NotNil(body.NextEligibleAt)
		s.True(next.Equal(*body.NextEligibleAt))
	})

	s.Run("check: unknown kind", func() {
		s.mockQueries.EXPECT().CanPerformLoyaltyAction(gomock.Any(), gomock.Any(), gomock.Any(), "birthday").Return(nil, eligibility.ErrUnknownActionKind)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base()+"/loyalty/birthday", nil, bearer)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})

	s.Run("record: success", func() {
		s.mockLoyalty.EXPECT().RecordAction(gomock.Any(), s.actor, s.actor.ID, "referral").Return(&queries.EligibilityView{
			PrincipalID: s.actor.ID,
			Action:      "referral",
			Eligible:    true,
			Reason:      string(eligibility.ReasonEligible),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base()+"/loyalty/referral", nil, bearer)

		var body resdto.EligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Eligible)
	})

	s.Run("error: malformed principal id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/principals/me/eligibility/loyalty/referral", nil, bearer)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})
}
