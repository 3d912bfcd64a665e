//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"charter-booking/internal/domain/payment"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentWriteQueries struct {
	mock.Mock
}

func (m *MockPaymentWriteQueries) CreatePaymentAttempt(ctx context.Context, db pgsql.DBTX, arg pgsql.CreatePaymentAttemptParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockPaymentWriteQueries) GetPaymentAttemptForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.PaymentAttempts, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.PaymentAttempts), args.Error(1)
}

func (m *MockPaymentWriteQueries) SettlePaymentAttempt(ctx context.Context, db pgsql.DBTX, arg pgsql.SettlePaymentAttemptParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentWriteQueries) SumCompletedPayments(ctx context.Context, db pgsql.DBTX, reservationID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).(int64), args.Error(1)
}

func TestPaymentRepository_Settle(t *testing.T) {
	ref := "psp-1"
	attempt := builder.NewPaymentAttemptBuilder().BuildDomain()
	require.True(t, attempt.Settle(payment.OutcomeCompleted, &ref, time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)))

	t.Run("success", func(t *testing.T) {
		q := new(MockPaymentWriteQueries)
		q.On("SettlePaymentAttempt", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgsql.SettlePaymentAttemptParams) bool {
			return p.ID == attempt.ID() && p.Status == "completed" && p.ExternalRef.String == ref && p.SettledAt.Valid
		})).Return(int64(1), nil)

		assert.NoError(t, NewPaymentRepository(q, nil).Settle(context.Background(), attempt))
		q.AssertExpectations(t)
	})

	t.Run("row no longer pending is a conflict", func(t *testing.T) {
		q := new(MockPaymentWriteQueries)
		q.On("SettlePaymentAttempt", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewPaymentRepository(q, nil).Settle(context.Background(), attempt)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("database error", func(t *testing.T) {
		q := new(MockPaymentWriteQueries)
		q.On("SettlePaymentAttempt", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		err := NewPaymentRepository(q, nil).Settle(context.Background(), attempt)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPaymentRepository_SumCompleted(t *testing.T) {
	reservationID := uuid.New()
	q := new(MockPaymentWriteQueries)
	q.On("SumCompletedPayments", mock.Anything, mock.Anything, reservationID).Return(int64(12500), nil)

	sum, err := NewPaymentRepository(q, nil).SumCompleted(context.Background(), reservationID)

	require.NoError(t, err)
	assert.Equal(t, int64(12500), sum.Cents())
}
