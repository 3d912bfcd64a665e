//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewDate_NormalizesToMidnightUTC(t *testing.T) {
	la := time.FixedZone("PDT", -7*60*60)

	testCases := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "utc afternoon", in: time.Date(2026, 6, 1, 15, 4, 5, 0, time.UTC), want: "2026-06-01"},
		{name: "late evening west of utc rolls forward", in: time.Date(2026, 6, 1, 20, 0, 0, 0, la), want: "2026-06-02"},
		{name: "already midnight", in: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), want: "2026-06-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := calendar.NewDate(tc.in)
			assert.Equal(t, tc.want, d.String())
			assert.Equal(t, time.UTC, d.Time().Location())
			assert.Zero(t, d.Time().Hour())
		})
	}
}

func TestParseDate(t *testing.T) {
	d := date(t, "2026-02-28")
	assert.Equal(t, "2026-03-01", d.AddDays(1).String())

	_, err := calendar.ParseDate("28/02/2026")
	require.Error(t, err)
	assert.True(t, errs.Is(err, calendar.ErrInvalidDate))
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestRange(t *testing.T) {
	start := date(t, "2026-06-01")
	end := date(t, "2026-06-05")

	t.Run("valid range", func(t *testing.T) {
		r, err := calendar.NewRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, 4, r.Nights())
		assert.Len(t, r.Days(), 4)
		assert.Equal(t, "2026-06-04", r.Days()[3].String())
		assert.True(t, r.Contains(start))
		assert.False(t, r.Contains(end), "end is exclusive")
		assert.Equal(t, "[2026-06-01,2026-06-05)", r.String())
	})

	t.Run("inverted and empty ranges are rejected", func(t *testing.T) {
		_, err := calendar.NewRange(end, start)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)

		_, err = calendar.NewRange(start, start)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
	})

	t.Run("bounded range caps caller input", func(t *testing.T) {
		r, err := calendar.NewBoundedRange(start, start.AddDays(calendar.MaxRangeDays))
		require.NoError(t, err)
		assert.Equal(t, calendar.MaxRangeDays, r.Nights())

		_, err = calendar.NewBoundedRange(start, start.AddDays(calendar.MaxRangeDays+1))
		assert.ErrorIs(t, err, calendar.ErrRangeTooLong)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = calendar.NewBoundedRange(start, date(t, "9999-12-31"))
		assert.ErrorIs(t, err, calendar.ErrRangeTooLong)

		_, err = calendar.NewBoundedRange(end, start)
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
	})

	t.Run("half-open overlap", func(t *testing.T) {
		r, err := calendar.NewRange(start, end)
		require.NoError(t, err)

		assert.False(t, r.Overlaps(end, end.AddDays(2)), "back-to-back after")
		assert.False(t, r.Overlaps(start.AddDays(-3), start), "back-to-back before")
		assert.True(t, r.Overlaps(end.AddDays(-1), end.AddDays(1)))
		assert.True(t, r.Overlaps(start.AddDays(1), start.AddDays(2)), "contained")
		assert.True(t, r.Overlaps(start.AddDays(-1), end.AddDays(1)), "containing")
	})
}

func TestNormalizeBatch(t *testing.T) {
	price := func(v int64) *int64 { return &v }

	t.Run("duplicates collapse to the last value and output is sorted", func(t *testing.T) {
		out, err := calendar.NormalizeBatch([]calendar.DayInput{
			{Date: date(t, "2026-06-03"), PriceCents: price(100), Open: true},
			{Date: date(t, "2026-06-01"), PriceCents: price(200), Open: true},
			{Date: date(t, "2026-06-03"), PriceCents: price(300), Open: false},
		})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "2026-06-01", out[0].Date.String())
		assert.Equal(t, "2026-06-03", out[1].Date.String())
		assert.Equal(t, int64(300), *out[1].PriceCents)
		assert.False(t, out[1].Open)
	})

	t.Run("nil price is allowed", func(t *testing.T) {
		out, err := calendar.NormalizeBatch([]calendar.DayInput{{Date: date(t, "2026-06-01"), Open: false}})
		require.NoError(t, err)
		assert.Nil(t, out[0].PriceCents)
	})

	t.Run("validation errors", func(t *testing.T) {
		_, err := calendar.NormalizeBatch(nil)
		assert.ErrorIs(t, err, calendar.ErrEmptyBatch)

		_, err = calendar.NormalizeBatch([]calendar.DayInput{{Date: date(t, "2026-06-01"), PriceCents: price(-1)}})
		assert.ErrorIs(t, err, calendar.ErrNegativePrice)

		_, err = calendar.NormalizeBatch([]calendar.DayInput{{}})
		assert.ErrorIs(t, err, calendar.ErrInvalidDate)

		big := make([]calendar.DayInput, calendar.MaxBatchSize+1)
		_, err = calendar.NormalizeBatch(big)
		assert.ErrorIs(t, err, calendar.ErrBatchTooLarge)
	})
}

func TestClosedWithin(t *testing.T) {
	resourceID := uuid.New()
	now := time.Now()
	p := money.FromCents(5000)
	days := []*calendar.Day{
		calendar.ReconstructDay(uuid.New(), resourceID, date(t, "2026-06-01"), &p, true, now, now),
		calendar.ReconstructDay(uuid.New(), resourceID, date(t, "2026-06-02"), nil, false, now, now),
		calendar.ReconstructDay(uuid.New(), resourceID, date(t, "2026-06-09"), nil, false, now, now),
	}

	r, err := calendar.NewRange(date(t, "2026-06-01"), date(t, "2026-06-05"))
	require.NoError(t, err)

	closed := calendar.ClosedWithin(days, r)
	require.Len(t, closed, 1)
	assert.Equal(t, "2026-06-02", closed[0].String())
}
