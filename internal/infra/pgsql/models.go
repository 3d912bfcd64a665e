package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Resources struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Capacity      int32              `json:"capacity"`
	BaseRateCents int64              `json:"base_rate_cents"`
	Currency      string             `json:"currency"`
	Active        bool               `json:"active"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type CalendarDays struct {
	ID         uuid.UUID          `json:"id"`
	ResourceID uuid.UUID          `json:"resource_id"`
	Day        pgtype.Date        `json:"day"`
	PriceCents pgtype.Int8        `json:"price_cents"`
	Open       bool               `json:"open"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type Reservations struct {
	ID              uuid.UUID          `json:"id"`
	ResourceID      uuid.UUID          `json:"resource_id"`
	PrincipalID     uuid.UUID          `json:"principal_id"`
	StartDate       pgtype.Date        `json:"start_date"`
	EndDate         pgtype.Date        `json:"end_date"`
	GuestCount      int32              `json:"guest_count"`
	TotalPriceCents int64              `json:"total_price_cents"`
	Currency        string             `json:"currency"`
	Status          string             `json:"status"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type PaymentAttempts struct {
	ID            uuid.UUID          `json:"id"`
	ReservationID uuid.UUID          `json:"reservation_id"`
	AmountCents   int64              `json:"amount_cents"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	ExternalRef   pgtype.Text        `json:"external_ref"`
	SettledAt     pgtype.Timestamptz `json:"settled_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type LoyaltyActions struct {
	ID          uuid.UUID          `json:"id"`
	PrincipalID uuid.UUID          `json:"principal_id"`
	Kind        string             `json:"kind"`
	PerformedAt pgtype.Timestamptz `json:"performed_at"`
}

type IdempotencyKeys struct {
	Key                 uuid.UUID          `json:"key"`
	PrincipalID         uuid.UUID          `json:"principal_id"`
	Endpoint            string             `json:"endpoint"`
	RequestHash         string             `json:"request_hash"`
	Status              string             `json:"status"`
	ResultReservationID pgtype.UUID        `json:"result_reservation_id"`
	ExpiresAt           pgtype.Timestamptz `json:"expires_at"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
}

type OutboxEvents struct {
	ID          uuid.UUID          `json:"id"`
	Topic       string             `json:"topic"`
	EventKey    string             `json:"event_key"`
	Payload     []byte             `json:"payload"`
	Status      string             `json:"status"`
	Attempts    int32              `json:"attempts"`
	LastError   pgtype.Text        `json:"last_error"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type ReservationAudit struct {
	ID            uuid.UUID          `json:"id"`
	ReservationID uuid.UUID          `json:"reservation_id"`
	ActorID       uuid.UUID          `json:"actor_id"`
	Action        string             `json:"action"`
	FromStatus    string             `json:"from_status"`
	ToStatus      string             `json:"to_status"`
	Reason        string             `json:"reason"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}
