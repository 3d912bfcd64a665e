//go:build unit

package reservation_test

import (
	"math"
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyPolicy_FactorPercent(t *testing.T) {
	p := reservation.NewOccupancyPolicy(2, 10)

	assert.Equal(t, int64(100), p.FactorPercent(1))
	assert.Equal(t, int64(100), p.FactorPercent(2))
	assert.Equal(t, int64(120), p.FactorPercent(4))
}

func TestQuote(t *testing.T) {
	stay := mustRange(t, "2026-03-10", "2026-03-14")
	base := money.FromCents(10000)
	policy := reservation.NewOccupancyPolicy(2, 10)
	resourceID := uuid.New()

	day := func(date string, cents int64) *calendar.Day {
		d, _ := calendar.ParseDate(date)
		price := money.FromCents(cents)
		return calendar.ReconstructDay(uuid.New(), resourceID, d, &price, true, time.Now(), time.Now())
	}

	t.Run("base rate only", func(t *testing.T) {
		q, err := reservation.Quote(stay, nil, base, 2, policy)
		require.NoError(t, err)
		assert.Len(t, q.Nights, 4)
		assert.Equal(t, int64(40000), q.Subtotal.Cents())
		assert.Equal(t, int64(40000), q.Total.Cents())
	})

	t.Run("overrides replace base rate on their nights", func(t *testing.T) {
		days := []*calendar.Day{day("2026-03-11", 15000), day("2026-03-20", 99999)}
		q, err := reservation.Quote(stay, days, base, 2, policy)
		require.NoError(t, err)
		assert.Equal(t, int64(45000), q.Subtotal.Cents())
		assert.True(t, q.Nights[1].IsOverride)
		assert.False(t, q.Nights[0].IsOverride)
	})

	t.Run("extra guests scale the subtotal", func(t *testing.T) {
		q, err := reservation.Quote(stay, nil, base, 3, policy)
		require.NoError(t, err)
		assert.Equal(t, int64(110), q.FactorPercent)
		assert.Equal(t, int64(44000), q.Total.Cents())
	})

	t.Run("open day without price uses base rate", func(t *testing.T) {
		d, _ := calendar.ParseDate("2026-03-12")
		open := calendar.ReconstructDay(uuid.New(), resourceID, d, nil, true, time.Now(), time.Now())
		q, err := reservation.Quote(stay, []*calendar.Day{open}, base, 1, policy)
		require.NoError(t, err)
		assert.Equal(t, int64(40000), q.Total.Cents())
	})

	t.Run("total beyond int64 cents is rejected", func(t *testing.T) {
		_, err := reservation.Quote(stay, nil, money.FromCents(math.MaxInt64/3), 2, policy)
		assert.ErrorIs(t, err, money.ErrAmountOverflow)

		_, err = reservation.Quote(mustRange(t, "2026-03-10", "2026-03-11"), nil, money.FromCents(math.MaxInt64/100), 6, policy)
		assert.ErrorIs(t, err, money.ErrAmountOverflow)
	})
}
