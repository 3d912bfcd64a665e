package money

import (
	"math"

	"charter-booking/internal/pkg/errs"
)

var (
	ErrNegativeAmount  = errs.NewKind("amount cannot be negative", errs.ErrValidation)
	ErrInvalidCurrency = errs.NewKind("currency must be a three-letter ISO code", errs.ErrValidation)
	ErrAmountOverflow  = errs.NewKind("amount is too large", errs.ErrValidation)
)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromCents trusts its input; use it when reading persisted values.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func Zero() Money { return Money{} }

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// AddChecked is Add for non-negative amounts that may not fit in int64.
func (m Money) AddChecked(other Money) (Money, error) {
	if other.cents > 0 && m.cents > math.MaxInt64-other.cents {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: m.cents + other.cents}, nil
}

// MulPercent multiplies a non-negative amount by pct/100, rounding half up.
func (m Money) MulPercent(pct int64) (Money, error) {
	if pct < 0 || m.cents < 0 {
		return Money{}, errs.Newf("percent of negative value: %d * %d%%", m.cents, pct)
	}
	if pct > 0 && m.cents > (math.MaxInt64-50)/pct {
		return Money{}, ErrAmountOverflow
	}
	return Money{cents: (m.cents*pct + 50) / 100}, nil
}

func (m Money) GreaterThan(other Money) bool { return m.cents > other.cents }

func (m Money) GreaterOrEqual(other Money) bool { return m.cents >= other.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

type Currency string

func NewCurrency(code string) (Currency, error) {
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return Currency(code), nil
}

func (c Currency) String() string { return string(c) }
