//go:build unit

package conflict_test

import (
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/conflict"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(t *testing.T, start, end string) calendar.Range {
	t.Helper()
	s, err := calendar.ParseDate(start)
	require.NoError(t, err)
	e, err := calendar.ParseDate(end)
	require.NoError(t, err)
	r, err := calendar.NewRange(s, e)
	require.NoError(t, err)
	return r
}

func existing(t *testing.T, start, end string, status reservation.Status) *reservation.Reservation {
	now := time.Now()
	return reservation.ReconstructReservation(uuid.New(), uuid.New(), uuid.New(), rng(t, start, end), 2,
		money.FromCents(10000), "USD", status, now, now)
}

func closedDay(t *testing.T, date string) *calendar.Day {
	d, err := calendar.ParseDate(date)
	require.NoError(t, err)
	return calendar.ReconstructDay(uuid.New(), uuid.New(), d, nil, false, time.Now(), time.Now())
}

func TestDetect(t *testing.T) {
	window := rng(t, "2026-03-10", "2026-03-14")

	testCases := []struct {
		name     string
		days     []*calendar.Day
		existing []*reservation.Reservation
		errIs    error
	}{
		{name: "free window"},
		{
			name:     "back-to-back before",
			existing: []*reservation.Reservation{existing(t, "2026-03-06", "2026-03-10", reservation.StatusConfirmed)},
		},
		{
			name:     "back-to-back after",
			existing: []*reservation.Reservation{existing(t, "2026-03-14", "2026-03-18", reservation.StatusPending)},
		},
		{
			name:     "overlap with pending",
			existing: []*reservation.Reservation{existing(t, "2026-03-12", "2026-03-16", reservation.StatusPending)},
			errIs:    conflict.ErrOverlap,
		},
		{
			name:     "contained confirmed",
			existing: []*reservation.Reservation{existing(t, "2026-03-11", "2026-03-12", reservation.StatusConfirmed)},
			errIs:    conflict.ErrOverlap,
		},
		{
			name: "cancelled and completed never block",
			existing: []*reservation.Reservation{
				existing(t, "2026-03-10", "2026-03-14", reservation.StatusCancelled),
				existing(t, "2026-03-09", "2026-03-12", reservation.StatusCompleted),
			},
		},
		{
			name:  "closed day inside window",
			days:  []*calendar.Day{closedDay(t, "2026-03-13")},
			errIs: conflict.ErrClosedDay,
		},
		{
			name: "closed day on end date is outside window",
			days: []*calendar.Day{closedDay(t, "2026-03-14")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := conflict.Detect(window, tc.days, tc.existing)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrConflict))
		})
	}
}
