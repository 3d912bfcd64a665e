//go:build unit || e2e

package builder

import (
	"time"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentAttemptBuilder struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AmountCents   int64
	Currency      string
	Status        payment.Status
	ExternalRef   *string
	SettledAt     *time.Time
	CreatedAt     time.Time
}

func NewPaymentAttemptBuilder() *PaymentAttemptBuilder {
	return &PaymentAttemptBuilder{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		AmountCents:   10000,
		Currency:      "USD",
		Status:        payment.StatusPending,
		CreatedAt:     time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (b *PaymentAttemptBuilder) With(mutate func(*PaymentAttemptBuilder)) *PaymentAttemptBuilder {
	mutate(b)
	return b
}

func (b *PaymentAttemptBuilder) BuildDomain() *payment.Attempt {
	return payment.ReconstructAttempt(
		b.ID,
		b.ReservationID,
		money.FromCents(b.AmountCents),
		money.Currency(b.Currency),
		b.Status,
		b.ExternalRef,
		b.SettledAt,
		b.CreatedAt,
	)
}

func (b *PaymentAttemptBuilder) BuildInfra() pgsql.PaymentAttempts {
	row := pgsql.PaymentAttempts{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		AmountCents:   b.AmountCents,
		Currency:      b.Currency,
		Status:        string(b.Status),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.ExternalRef != nil {
		row.ExternalRef = pgtype.Text{String: *b.ExternalRef, Valid: true}
	}
	if b.SettledAt != nil {
		row.SettledAt = pgtype.Timestamptz{Time: *b.SettledAt, Valid: true}
	}
	return row
}

func (b *PaymentAttemptBuilder) BuildView() *queries.PaymentAttemptView {
	return &queries.PaymentAttemptView{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		AmountCents:   b.AmountCents,
		Currency:      b.Currency,
		Status:        string(b.Status),
		ExternalRef:   b.ExternalRef,
		SettledAt:     b.SettledAt,
		CreatedAt:     b.CreatedAt,
	}
}
