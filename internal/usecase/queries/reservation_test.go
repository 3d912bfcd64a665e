//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/usecase/queries"
	"charter-booking/tests/common/builder"
	"charter-booking/tests/common/memstore"
	queriesmock "charter-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedReservations(store *memstore.Store, principalID uuid.UUID, n int) {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		store.AddReservation(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.PrincipalID = principalID
			b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		}).BuildDomain())
	}
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	owner := user.NewPrincipal(uuid.New(), user.RoleViewer)
	res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.PrincipalID = owner.ID }).BuildDomain()
	store.AddReservation(res)
	q := queries.NewReservationQueries(store)

	t.Run("owner and staff can read", func(t *testing.T) {
		view, err := q.GetByID(ctx, owner, res.ID())
		require.NoError(t, err)
		assert.Equal(t, res.ID(), view.ID)

		_, err = q.GetByID(ctx, user.NewPrincipal(uuid.New(), user.RoleOperator), res.ID())
		assert.NoError(t, err)
	})

	t.Run("other guests are forbidden", func(t *testing.T) {
		_, err := q.GetByID(ctx, user.NewPrincipal(uuid.New(), user.RoleViewer), res.ID())
		assert.ErrorIs(t, err, queries.ErrReservationAccess)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetByID(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("store failures pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockReservationReadStore(ctrl)
		boom := errors.New("boom")
		rs.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := queries.NewReservationQueries(rs).GetByIDSystem(ctx, uuid.New())
		assert.ErrorIs(t, err, boom)
	})
}

func TestReservationQueries_ListForPrincipal(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	owner := user.NewPrincipal(uuid.New(), user.RoleViewer)
	seedReservations(store, owner.ID, 5)
	seedReservations(store, uuid.New(), 2)
	q := queries.NewReservationQueries(store)

	t.Run("walks all pages newest first without repeats", func(t *testing.T) {
		var seen []uuid.UUID
		var cursor *queries.Cursor
		pages := 0
		for {
			items, next, err := q.ListForPrincipal(ctx, owner, owner.ID, cursor, 2)
			require.NoError(t, err)
			pages++
			for _, it := range items {
				assert.Equal(t, owner.ID, it.PrincipalID)
				seen = append(seen, it.ID)
			}
			if next == nil {
				break
			}
			cursor = next
		}

		assert.Equal(t, 3, pages)
		assert.Len(t, seen, 5)
		uniq := map[uuid.UUID]struct{}{}
		for _, id := range seen {
			uniq[id] = struct{}{}
		}
		assert.Len(t, uniq, 5)
	})

	t.Run("default limit", func(t *testing.T) {
		items, next, err := q.ListForPrincipal(ctx, owner, owner.ID, nil, 0)
		require.NoError(t, err)
		assert.Len(t, items, 5)
		assert.Nil(t, next)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		_, _, err := q.ListForPrincipal(ctx, owner, owner.ID, &queries.Cursor{After: "!!"}, 2)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("another guest's list is forbidden", func(t *testing.T) {
		_, _, err := q.ListForPrincipal(ctx, user.NewPrincipal(uuid.New(), user.RoleViewer), owner.ID, nil, 2)
		assert.ErrorIs(t, err, queries.ErrPrincipalAccess)
	})
}

func TestReservationQueries_ListForResource(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	resourceID := uuid.New()
	for _, st := range []struct {
		start, end string
		status     reservation.Status
	}{
		{"2026-06-01", "2026-06-05", reservation.StatusCancelled},
		{"2026-06-05", "2026-06-08", reservation.StatusConfirmed},
		{"2026-06-20", "2026-06-22", reservation.StatusPending},
	} {
		store.AddReservation(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = resourceID
			b.StartDate, b.EndDate = st.start, st.end
			b.Status = st.status
		}).BuildDomain())
	}
	q := queries.NewReservationQueries(store)
	d := func(s string) calendar.Date {
		v, err := calendar.ParseDate(s)
		require.NoError(t, err)
		return v
	}

	t.Run("any status intersecting the window, ordered by start", func(t *testing.T) {
		items, err := q.ListForResource(ctx, user.NewPrincipal(uuid.New(), user.RoleOperator), resourceID, d("2026-06-04"), d("2026-06-20"))
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "cancelled", items[0].Status)
		assert.Equal(t, "confirmed", items[1].Status)
	})

	t.Run("guests are forbidden", func(t *testing.T) {
		_, err := q.ListForResource(ctx, user.NewPrincipal(uuid.New(), user.RoleViewer), resourceID, d("2026-06-01"), d("2026-07-01"))
		assert.ErrorIs(t, err, queries.ErrReservationAccess)
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := q.ListForResource(ctx, user.NewPrincipal(uuid.New(), user.RoleAdmin), resourceID, d("2026-07-01"), d("2026-06-01"))
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
	})

	t.Run("window longer than the cap", func(t *testing.T) {
		_, err := q.ListForResource(ctx, user.NewPrincipal(uuid.New(), user.RoleAdmin), resourceID, d("2026-06-01"), d("2030-06-01"))
		assert.ErrorIs(t, err, calendar.ErrRangeTooLong)
	})
}
