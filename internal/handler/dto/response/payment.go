package response

import (
	"time"

	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentAttemptResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	AmountCents   int64      `json:"amount_cents"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	ExternalRef   *string    `json:"external_ref,omitempty"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type PaymentSummaryResponse struct {
	ReservationID   uuid.UUID                 `json:"reservation_id"`
	TotalPriceCents int64                     `json:"total_price_cents"`
	PaidCents       int64                     `json:"paid_cents"`
	Currency        string                    `json:"currency"`
	Attempts        []*PaymentAttemptResponse `json:"attempts"`
}

type SettleResponse struct {
	Attempt   *PaymentAttemptResponse `json:"attempt"`
	Applied   bool                    `json:"applied"`
	Confirmed bool                    `json:"reservation_confirmed"`
}

func FromPaymentAttemptView(v *queries.PaymentAttemptView) *PaymentAttemptResponse {
	res := &PaymentAttemptResponse{
		ID:            v.ID,
		ReservationID: v.ReservationID,
		AmountCents:   v.AmountCents,
		Currency:      v.Currency,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
	}
	if v.ExternalRef != nil {
		ref := *v.ExternalRef
		res.ExternalRef = &ref
	}
	if v.SettledAt != nil {
		at := *v.SettledAt
		res.SettledAt = &at
	}
	return res
}

func FromPaymentSummary(s *queries.PaymentSummary) *PaymentSummaryResponse {
	res := &PaymentSummaryResponse{
		ReservationID:   s.ReservationID,
		TotalPriceCents: s.TotalPriceCents,
		PaidCents:       s.PaidCents,
		Currency:        s.Currency,
		Attempts:        make([]*PaymentAttemptResponse, 0, len(s.Attempts)),
	}
	for _, a := range s.Attempts {
		res.Attempts = append(res.Attempts, FromPaymentAttemptView(a))
	}
	return res
}

func FromSettleResult(r *commands.SettleResult) *SettleResponse {
	return &SettleResponse{
		Attempt:   FromPaymentAttemptView(r.Attempt),
		Applied:   r.Applied,
		Confirmed: r.Confirmed,
	}
}
