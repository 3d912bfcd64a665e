package queries

import (
	"time"

	"github.com/google/uuid"
)

// CalendarDayView is an explicit calendar row. Dates are YYYY-MM-DD.
type CalendarDayView struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Date       string    `json:"date"`
	PriceCents *int64    `json:"price_cents,omitempty"`
	Open       bool      `json:"open"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	ResourceName    string    `json:"resource_name"`
	PrincipalID     uuid.UUID `json:"principal_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	GuestCount      int32     `json:"guest_count"`
	TotalPriceCents int64     `json:"total_price_cents"`
	PaidCents       int64     `json:"paid_cents"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	PrincipalID     uuid.UUID `json:"principal_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	GuestCount      int32     `json:"guest_count"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type PaymentAttemptView struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	AmountCents   int64      `json:"amount_cents"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	ExternalRef   *string    `json:"external_ref,omitempty"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type PaymentSummary struct {
	ReservationID   uuid.UUID             `json:"reservation_id"`
	TotalPriceCents int64                 `json:"total_price_cents"`
	PaidCents       int64                 `json:"paid_cents"`
	Currency        string                `json:"currency"`
	Attempts        []*PaymentAttemptView `json:"attempts"`
}

type EligibilityView struct {
	PrincipalID    uuid.UUID  `json:"principal_id"`
	Action         string     `json:"action"`
	Eligible       bool       `json:"eligible"`
	Reason         string     `json:"reason"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
}
