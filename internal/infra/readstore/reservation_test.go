//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/readstore"
	readstoremock "charter-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func pgDate(s string) pgtype.Date {
	t, _ := time.Parse(calendar.DateLayout, s)
	return pgtype.Date{Time: t, Valid: true}
}

func reservationRow(principalID uuid.UUID, createdAt time.Time) pgsql.Reservations {
	return pgsql.Reservations{
		ID:              uuid.New(),
		ResourceID:      uuid.New(),
		PrincipalID:     principalID,
		StartDate:       pgDate("2025-07-01"),
		EndDate:         pgDate("2025-07-05"),
		GuestCount:      2,
		TotalPriceCents: 400000,
		Currency:        "USD",
		Status:          "pending",
		CreatedAt:       pgtype.Timestamptz{Time: createdAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: createdAt, Valid: true},
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockReservationReadQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation found",
			setupMock: func(mock *readstoremock.MockReservationReadQueries, id uuid.UUID) {
				row := pgsql.GetReservationViewByIDRow{
					ID:              id,
					ResourceID:      uuid.New(),
					ResourceName:    "Sea Breeze",
					PrincipalID:     uuid.New(),
					StartDate:       pgDate("2025-07-01"),
					EndDate:         pgDate("2025-07-05"),
					GuestCount:      2,
					TotalPriceCents: 400000,
					PaidCents:       100000,
					Currency:        "USD",
					Status:          "pending",
					CreatedAt:       pgtype.Timestamptz{Time: time.Now(), Valid: true},
					UpdatedAt:       pgtype.Timestamptz{Time: time.Now(), Valid: true},
				}
				mock.EXPECT().GetReservationViewByID(ctx, gomock.Any(), id).Return(row, nil)
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *readstoremock.MockReservationReadQueries, id uuid.UUID) {
				mock.EXPECT().GetReservationViewByID(ctx, gomock.Any(), id).Return(pgsql.GetReservationViewByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReservationReadQueries, id uuid.UUID) {
				mock.EXPECT().GetReservationViewByID(ctx, gomock.Any(), id).Return(pgsql.GetReservationViewByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, reservationID)

			result, actualError := store.FindByID(ctx, reservationID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, reservationID, result.ID)
				assert.Equal(t, "2025-07-01", result.StartDate)
				assert.Equal(t, "2025-07-05", result.EndDate)
				assert.Equal(t, int64(100000), result.PaidCents)
				assert.Equal(t, "Sea Breeze", result.ResourceName)
			}
		})
	}
}

// =============================================================================
// Principal pagination Tests
// =============================================================================

func TestReservationReadStore_FindByPrincipal(t *testing.T) {
	ctx := context.Background()
	principalID := uuid.New()
	now := time.Now()

	t.Run("first page passes limit through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		rows := []pgsql.Reservations{reservationRow(principalID, now), reservationRow(principalID, now.Add(-time.Hour))}
		mockQueries.EXPECT().
			ListReservationsByPrincipalFirstPage(ctx, gomock.Any(), pgsql.ListReservationsByPrincipalFirstPageParams{PrincipalID: principalID, Limit: 21}).
			Return(rows, nil)

		result, err := store.FindByPrincipalFirstPage(ctx, principalID, 21)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, rows[0].ID, result[0].ID)
		assert.Equal(t, "pending", result[0].Status)
	})

	t.Run("keyset forwards the cursor position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		lastID := uuid.New()
		mockQueries.EXPECT().
			ListReservationsByPrincipalKeyset(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, arg pgsql.ListReservationsByPrincipalKeysetParams) ([]pgsql.Reservations, error) {
				assert.Equal(t, principalID, arg.PrincipalID)
				assert.Equal(t, lastID, arg.ID)
				assert.True(t, arg.CreatedAt.Time.Equal(now))
				assert.Equal(t, int32(5), arg.Limit)
				return []pgsql.Reservations{}, nil
			})

		result, err := store.FindByPrincipalKeyset(ctx, principalID, now, lastID, 5)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListReservationsByPrincipalFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		result, err := store.FindByPrincipalFirstPage(ctx, principalID, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}

func TestReservationReadStore_FindByResourceWindow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

	resourceID := uuid.New()
	start, _ := calendar.ParseDate("2025-07-01")
	end, _ := calendar.ParseDate("2025-07-10")
	window, err := calendar.NewRange(start, end)
	require.NoError(t, err)

	mockQueries.EXPECT().
		ListReservationsForResource(ctx, gomock.Any(), pgsql.ListReservationsForResourceParams{
			ResourceID: resourceID,
			StartDate:  pgDate("2025-07-01"),
			EndDate:    pgDate("2025-07-10"),
		}).
		Return([]pgsql.Reservations{reservationRow(uuid.New(), time.Now())}, nil)

	result, err := store.FindByResourceWindow(ctx, resourceID, window)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
