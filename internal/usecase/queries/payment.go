package queries

import (
	"context"

	"charter-booking/internal/domain/user"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	FindAttemptsByReservation(ctx context.Context, reservationID uuid.UUID) ([]*PaymentAttemptView, error)
}

type PaymentQueries interface {
	// ListAttempts returns every attempt of a reservation, oldest first, with
	// the reservation's total and paid-to-date.
	ListAttempts(ctx context.Context, actor user.Principal, reservationID uuid.UUID) (*PaymentSummary, error)
}

type paymentQueriesImpl struct {
	reservations ReservationQueries
	store        PaymentReadStore
}

func NewPaymentQueries(reservations ReservationQueries, store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{reservations: reservations, store: store}
}

func (q *paymentQueriesImpl) ListAttempts(ctx context.Context, actor user.Principal, reservationID uuid.UUID) (*PaymentSummary, error) {
	view, err := q.reservations.GetByID(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}

	attempts, err := q.store.FindAttemptsByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []*PaymentAttemptView{}
	}

	return &PaymentSummary{
		ReservationID:   view.ID,
		TotalPriceCents: view.TotalPriceCents,
		PaidCents:       view.PaidCents,
		Currency:        view.Currency,
		Attempts:        attempts,
	}, nil
}
