//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/readstore"
	readstoremock "charter-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalendarReadStore_FindRange(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	start, _ := calendar.ParseDate("2025-06-09")
	end, _ := calendar.ParseDate("2025-06-12")
	rng, err := calendar.NewRange(start, end)
	require.NoError(t, err)

	t.Run("success: rows become views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCalendarReadQueries(ctrl)
		store := readstore.NewCalendarReadStore(mockQueries, &mockDBTX{})

		rows := []pgsql.CalendarDays{
			{ID: uuid.New(), ResourceID: resourceID, Day: pgDate("2025-06-10"), Open: false, UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true}},
			{ID: uuid.New(), ResourceID: resourceID, Day: pgDate("2025-06-11"), PriceCents: pgtype.Int8{Int64: 120000, Valid: true}, Open: true},
		}
		mockQueries.EXPECT().
			ListCalendarDaysInRange(ctx, gomock.Any(), pgsql.ListCalendarDaysInRangeParams{
				ResourceID: resourceID,
				StartDay:   pgDate("2025-06-09"),
				EndDay:     pgDate("2025-06-12"),
			}).
			Return(rows, nil)

		result, err := store.FindRange(ctx, resourceID, rng)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "2025-06-10", result[0].Date)
		assert.False(t, result[0].Open)
		assert.Nil(t, result[0].PriceCents)
		require.NotNil(t, result[1].PriceCents)
		assert.Equal(t, int64(120000), *result[1].PriceCents)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCalendarReadQueries(ctrl)
		store := readstore.NewCalendarReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListCalendarDaysInRange(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		result, err := store.FindRange(ctx, resourceID, rng)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}
