//go:build unit

package money_test

import (
	"math"
	"testing"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := money.New(1500)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), m.Cents())

	_, err = money.New(-1)
	assert.ErrorIs(t, err, money.ErrNegativeAmount)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := money.FromCents(10000)
	b := money.FromCents(2500)

	assert.Equal(t, int64(12500), a.Add(b).Cents())
	assert.Equal(t, int64(7500), a.Sub(b).Cents())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, a.GreaterOrEqual(money.FromCents(10000)))
	assert.True(t, money.Zero().IsZero())
}

func TestMoney_MulPercent(t *testing.T) {
	testCases := []struct {
		name  string
		cents int64
		pct   int64
		want  int64
	}{
		{name: "identity", cents: 40000, pct: 100, want: 40000},
		{name: "ten percent surcharge", cents: 40000, pct: 110, want: 44000},
		{name: "rounds half up", cents: 5, pct: 110, want: 6},
		{name: "rounds down below half", cents: 3, pct: 110, want: 3},
		{name: "zero", cents: 0, pct: 130, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.FromCents(tc.cents).MulPercent(tc.pct)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Cents())
		})
	}

	t.Run("overflow is a validation error", func(t *testing.T) {
		_, err := money.FromCents(math.MaxInt64 / 100).MulPercent(130)
		assert.ErrorIs(t, err, money.ErrAmountOverflow)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestMoney_AddChecked(t *testing.T) {
	sum, err := money.FromCents(100).AddChecked(money.FromCents(250))
	require.NoError(t, err)
	assert.Equal(t, int64(350), sum.Cents())

	_, err = money.FromCents(math.MaxInt64 - 10).AddChecked(money.FromCents(11))
	assert.ErrorIs(t, err, money.ErrAmountOverflow)
}

func TestNewCurrency(t *testing.T) {
	for _, ok := range []string{"USD", "EUR", "JPY"} {
		c, err := money.NewCurrency(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, c.String())
	}
	for _, bad := range []string{"", "usd", "US", "USDT", "U$D"} {
		_, err := money.NewCurrency(bad)
		assert.ErrorIs(t, err, money.ErrInvalidCurrency, bad)
	}
}
