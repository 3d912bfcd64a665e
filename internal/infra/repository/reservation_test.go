//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) GetReservationForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReservationStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) ListBlockingOverlaps(ctx context.Context, db pgsql.DBTX, arg pgsql.ListBlockingOverlapsParams) ([]pgsql.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgsql.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) ListDueForCompletion(ctx context.Context, db pgsql.DBTX, arg pgsql.ListDueForCompletionParams) ([]pgsql.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgsql.Reservations), args.Error(1)
}

func TestReservationRepository_Create(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "exclusion violation is a conflict", mockErr: &pgconn.PgError{Code: "23P01"}, wantKind: infra.KindConflict},
		{name: "other failures", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			q.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgsql.CreateReservationParams) bool {
				return p.ID == res.ID() && p.Status == "pending" && p.TotalPriceCents == 30000
			})).Return(tt.mockErr)

			err := NewReservationRepository(q, nil).Create(context.Background(), res)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_GetForUpdate(t *testing.T) {
	row := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = reservation.StatusConfirmed
	}).BuildInfra()

	t.Run("success", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		res, err := NewReservationRepository(q, nil).GetForUpdate(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, "2026-06-10", res.Stay().Start().String())
		assert.Equal(t, 3, res.Stay().Nights())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationForUpdate", mock.Anything, mock.Anything, row.ID).Return(pgsql.Reservations{}, pgx.ErrNoRows)

		_, err := NewReservationRepository(q, nil).GetForUpdate(context.Background(), row.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown stored status is rejected", func(t *testing.T) {
		bad := row
		bad.Status = "archived"
		q := new(MockReservationWriteQueries)
		q.On("GetReservationForUpdate", mock.Anything, mock.Anything, row.ID).Return(bad, nil)

		_, err := NewReservationRepository(q, nil).GetForUpdate(context.Background(), row.ID)
		assert.ErrorIs(t, err, reservation.ErrUnknownStatus)
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, res.Confirm(time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)))

	t.Run("success", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("UpdateReservationStatus", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgsql.UpdateReservationStatusParams) bool {
			return p.ID == res.ID() && p.Status == "confirmed"
		})).Return(int64(1), nil)

		assert.NoError(t, NewReservationRepository(q, nil).UpdateStatus(context.Background(), res))
		q.AssertExpectations(t)
	})

	t.Run("missing row", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewReservationRepository(q, nil).UpdateStatus(context.Background(), res)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
