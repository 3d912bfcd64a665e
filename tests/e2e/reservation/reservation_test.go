//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"charter-booking/internal/domain/user"
	"charter-booking/internal/handler/dto/request"
	"charter-booking/internal/handler/dto/response"
	"charter-booking/tests/common/authtest"
	"charter-booking/tests/common/builder"
	"charter-booking/tests/common/dbtest"
	"charter-booking/tests/common/httptest"
	"charter-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL   = "/api/reservations"
	reservationURL    = "/api/reservations/%s"
	cancelURL         = "/api/reservations/%s/cancel"
	reservationPayURL = "/api/reservations/%s/payments"
	paymentsURL       = "/api/payments"
	settleURL         = "/api/payments/%s/settle"
	calendarURL       = "/api/resources/%s/calendar"
)

type ReservationSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) create(t *testing.T, token string, body request.CreateReservationRequest, key uuid.UUID) (int, *response.ReservationResponse, map[string]string) {
	t.Helper()

	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
		map[string]string{"Idempotency-Key": key.String()})

	headers := map[string]string{
		"Location":            w.Header().Get("Location"),
		"Idempotent-Replayed": w.Header().Get("Idempotent-Replayed"),
	}
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		return w.Code, nil, headers
	}
	var res response.ReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return w.Code, &res, headers
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: guest books open dates and gets a pending quote", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Sea Breeze 42", 6, 10000)
		weekend := int64(15000)
		dbtest.CreateTestDay(t, s.DB, resourceID, "2026-06-11", &weekend, true)

		guestID := uuid.New()
		token := s.jwt.GenerateToken(t, guestID, user.RoleViewer)

		body := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = resourceID
			b.StartDate = "2026-06-10"
			b.EndDate = "2026-06-13"
			b.GuestCount = 2
		}).BuildCreateRequestDTO()

		status, res, headers := s.create(t, token, body, uuid.New())
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "/api/reservations/"+res.ID.String(), headers["Location"])

		expected := &response.ReservationResponse{
			ResourceID:      resourceID,
			ResourceName:    "Sea Breeze 42",
			PrincipalID:     guestID,
			StartDate:       "2026-06-10",
			EndDate:         "2026-06-13",
			GuestCount:      2,
			TotalPriceCents: 35000,
			Currency:        "USD",
			Status:          "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, res, opts...); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: overlapping stay is rejected, back-to-back stay is allowed", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Harbor Light", 4, 10000)
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)

		first := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-07-01", EndDate: "2026-07-04", GuestCount: 2}
		status, _, _ := s.create(t, token, first, uuid.New())
		require.Equal(t, http.StatusCreated, status)

		overlap := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-07-03", EndDate: "2026-07-05", GuestCount: 2}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, overlap, token,
			map[string]string{"Idempotency-Key": uuid.NewString()})
		httptest.AssertErrorKind(t, w, http.StatusConflict, "CONFLICT")

		adjacent := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-07-04", EndDate: "2026-07-06", GuestCount: 2}
		status, _, _ = s.create(t, token, adjacent, uuid.New())
		assert.Equal(t, http.StatusCreated, status)
	})

	s.Run("Error case: closed day inside the stay is a conflict", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Drydock", 4, 10000)
		dbtest.CreateTestDay(t, s.DB, resourceID, "2026-08-02", nil, false)
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)

		body := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-08-01", EndDate: "2026-08-04", GuestCount: 1}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
			map[string]string{"Idempotency-Key": uuid.NewString()})
		httptest.AssertErrorKind(t, w, http.StatusConflict, "CONFLICT")
	})

	s.Run("Error case: party larger than capacity", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Skiff", 2, 5000)
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)

		body := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-08-01", EndDate: "2026-08-02", GuestCount: 3}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
			map[string]string{"Idempotency-Key": uuid.NewString()})
		httptest.AssertErrorKind(t, w, http.StatusUnprocessableEntity, "CAPACITY")
	})

	s.Run("Idempotency: retry replays, different body with same key is rejected", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Replay", 4, 10000)
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)
		key := uuid.New()

		body := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-09-01", EndDate: "2026-09-03", GuestCount: 2}
		status, first, _ := s.create(t, token, body, key)
		require.Equal(t, http.StatusCreated, status)

		status, replay, headers := s.create(t, token, body, key)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "true", headers["Idempotent-Replayed"])
		assert.Equal(t, first.ID, replay.ID)

		body.GuestCount = 3
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
			map[string]string{"Idempotency-Key": key.String()})
		httptest.AssertErrorKind(t, w, http.StatusConflict, "CONFLICT")
	})

	s.Run("Concurrency: only one of many overlapping requests wins", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Race", 4, 10000)
		const n = 8

		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)
				body := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-10-01", EndDate: "2026-10-05", GuestCount: 2}
				w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
					map[string]string{"Idempotency-Key": uuid.NewString()})
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
			default:
				t.Errorf("unexpected status %d", code)
			}
		}
		assert.Equal(t, 1, created)
	})

	s.Run("Auth test - Unauthorized without token", func() {
		t := s.T()

		body := request.CreateReservationRequest{ResourceID: uuid.New(), StartDate: "2026-08-01", EndDate: "2026-08-02", GuestCount: 1}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, "",
			map[string]string{"Idempotency-Key": uuid.NewString()})
		httptest.AssertErrorKind(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func (s *ReservationSuite) TestPaymentLifecycle() {
	s.Run("Normal case: completed payments covering the total confirm the reservation", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Payday", 4, 10000)
		guestID := uuid.New()
		guestToken := s.jwt.GenerateToken(t, guestID, user.RoleViewer)
		operatorToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleOperator)

		body := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-06-01", EndDate: "2026-06-03", GuestCount: 2}
		status, res, _ := s.create(t, guestToken, body, uuid.New())
		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, int64(20000), res.TotalPriceCents)

		settle := func(amount int64) response.SettleResponse {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL,
				request.RecordPaymentRequest{ReservationID: res.ID, AmountCents: amount, Currency: "USD"}, guestToken)
			var attempt response.PaymentAttemptResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &attempt)

			w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(settleURL, attempt.ID),
				request.SettlePaymentRequest{Outcome: "completed"}, operatorToken)
			var settled response.SettleResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &settled)
			return settled
		}

		first := settle(12000)
		assert.True(t, first.Applied)
		assert.False(t, first.Confirmed)

		second := settle(8000)
		assert.True(t, second.Applied)
		assert.True(t, second.Confirmed)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, res.ID), nil, guestToken)
		var got response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "confirmed", got.Status)
		assert.Equal(t, int64(20000), got.PaidCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationPayURL, res.ID), nil, guestToken)
		var summary response.PaymentSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		assert.Len(t, summary.Attempts, 2)
	})

	s.Run("Error case: attempt beyond the outstanding amount is an overpayment", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Overpay", 4, 10000)
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)

		body := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-06-01", EndDate: "2026-06-02", GuestCount: 1}
		status, res, _ := s.create(t, token, body, uuid.New())
		require.Equal(t, http.StatusCreated, status)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL,
			request.RecordPaymentRequest{ReservationID: res.ID, AmountCents: 10001, Currency: "USD"}, token)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "OVERPAYMENT")
	})
}

func (s *ReservationSuite) TestCancelReleasesDates() {
	s.Run("Normal case: cancelled stay frees its dates for another guest", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Release", 4, 10000)
		ownerToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)
		otherToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)

		body := request.CreateReservationRequest{ResourceID: resourceID, StartDate: "2026-11-01", EndDate: "2026-11-03", GuestCount: 2}
		status, res, _ := s.create(t, ownerToken, body, uuid.New())
		require.Equal(t, http.StatusCreated, status)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, res.ID), nil, otherToken)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "FORBIDDEN")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, res.ID), nil, ownerToken)
		var cancelled response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		assert.Equal(t, "cancelled", cancelled.Status)

		status, _, _ = s.create(t, otherToken, body, uuid.New())
		assert.Equal(t, http.StatusCreated, status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, res.ID), nil, ownerToken)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "STATE_TRANSITION")
	})
}

func (s *ReservationSuite) TestCalendar() {
	s.Run("Normal case: operator sets days and the public range reflects them", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Calendar", 4, 10000)
		operatorToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleOperator)
		guestToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleViewer)

		open, closed := true, false
		price := int64(18000)
		req := request.SetCalendarDaysRequest{Days: []request.CalendarDayRequest{
			{Date: "2026-12-24", PriceCents: &price, Open: &open},
			{Date: "2026-12-25", Open: &closed},
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(calendarURL, resourceID), req, guestToken)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "FORBIDDEN")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(calendarURL, resourceID), req, operatorToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(calendarURL, resourceID)+"?start=2026-12-20&end=2027-01-01", nil, "")
		var cal response.CalendarResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cal)
		require.Len(t, cal.Days, 2)
		assert.Equal(t, "2026-12-24", cal.Days[0].Date)
		assert.Equal(t, &price, cal.Days[0].PriceCents)
		assert.False(t, cal.Days[1].Open)
	})
}
