package readstore

import (
	"context"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	ListPaymentAttemptsByReservation(ctx context.Context, db pgsql.DBTX, reservationID uuid.UUID) ([]pgsql.PaymentAttempts, error)
	SumCompletedPayments(ctx context.Context, db pgsql.DBTX, reservationID uuid.UUID) (int64, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      pgsql.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db pgsql.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindAttemptsByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.PaymentAttemptView, error) {
	rows, err := r.queries.ListPaymentAttemptsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment attempts", err)
	}

	result := make([]*queries.PaymentAttemptView, len(rows))
	for i, row := range rows {
		result[i] = &queries.PaymentAttemptView{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			AmountCents:   row.AmountCents,
			Currency:      row.Currency,
			Status:        row.Status,
			ExternalRef:   pgconv.StringPtrFromPgtype(row.ExternalRef),
			SettledAt:     pgconv.TimePtrFromPgtype(row.SettledAt),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *PaymentReadStore) PaidToDate(ctx context.Context, reservationID uuid.UUID) (money.Money, error) {
	cents, err := r.queries.SumCompletedPayments(ctx, r.db, reservationID)
	if err != nil {
		return money.Zero(), infra.WrapRepoErr("failed to sum completed payments", err)
	}
	return money.FromCents(cents), nil
}
