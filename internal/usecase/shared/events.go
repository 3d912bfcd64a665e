package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationConfirmed = "reservation.confirmed"
	TopicReservationCancelled = "reservation.cancelled"
	TopicReservationCompleted = "reservation.completed"
	TopicPaymentSettled       = "payment.settled"
)

type ReservationEvent struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	PrincipalID     uuid.UUID `json:"principal_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Currency        string    `json:"currency"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// ReservationCancelledEvent carries what was paid so the payment system can refund.
type ReservationCancelledEvent struct {
	ReservationEvent
	PaidToDateCents int64     `json:"paid_to_date_cents"`
	CancelledBy     uuid.UUID `json:"cancelled_by"`
}

type PaymentSettledEvent struct {
	AttemptID     uuid.UUID `json:"attempt_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Outcome       string    `json:"outcome"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	ExternalRef   *string   `json:"external_ref,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
