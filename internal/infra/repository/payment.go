package repository

import (
	"context"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/repository/converter"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePaymentAttempt(ctx context.Context, db pgsql.DBTX, arg pgsql.CreatePaymentAttemptParams) error
	GetPaymentAttemptForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.PaymentAttempts, error)
	SettlePaymentAttempt(ctx context.Context, db pgsql.DBTX, arg pgsql.SettlePaymentAttemptParams) (int64, error)
	SumCompletedPayments(ctx context.Context, db pgsql.DBTX, reservationID uuid.UUID) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      pgsql.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db pgsql.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, attempt *payment.Attempt) error {
	if err := r.queries.CreatePaymentAttempt(ctx, r.db, converter.AttemptToInfra(attempt)); err != nil {
		return infra.WrapRepoErr("failed to create payment attempt", err)
	}
	return nil
}

func (r *PaymentRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*payment.Attempt, error) {
	row, err := r.queries.GetPaymentAttemptForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment attempt", err)
	}
	return converter.AttemptFromRow(row)
}

// Settle only moves a pending row; the attempt must already be locked.
func (r *PaymentRepository) Settle(ctx context.Context, attempt *payment.Attempt) error {
	affected, err := r.queries.SettlePaymentAttempt(ctx, r.db, pgsql.SettlePaymentAttemptParams{
		ID:          attempt.ID(),
		Status:      string(attempt.Status()),
		ExternalRef: pgconv.StringPtrToPgtype(attempt.ExternalRef()),
		SettledAt:   pgconv.TimePtrToPgtype(attempt.SettledAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to settle payment attempt", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment attempt already settled", nil, infra.KindConflict)
	}
	return nil
}

func (r *PaymentRepository) SumCompleted(ctx context.Context, reservationID uuid.UUID) (money.Money, error) {
	cents, err := r.queries.SumCompletedPayments(ctx, r.db, reservationID)
	if err != nil {
		return money.Zero(), infra.WrapRepoErr("failed to sum completed payments", err)
	}
	return money.FromCents(cents), nil
}
