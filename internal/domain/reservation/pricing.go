package reservation

import (
	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
)

// OccupancyPolicy scales the nightly subtotal by party size:
// factor = 100% + ExtraGuestPercent% for every guest above IncludedGuests.
type OccupancyPolicy struct {
	IncludedGuests    int
	ExtraGuestPercent int64
}

func NewOccupancyPolicy(includedGuests int, extraGuestPercent int64) OccupancyPolicy {
	if includedGuests < 0 {
		includedGuests = 0
	}
	if extraGuestPercent < 0 {
		extraGuestPercent = 0
	}
	return OccupancyPolicy{IncludedGuests: includedGuests, ExtraGuestPercent: extraGuestPercent}
}

func (p OccupancyPolicy) FactorPercent(guestCount int) int64 {
	extra := guestCount - p.IncludedGuests
	if extra < 0 {
		extra = 0
	}
	return 100 + p.ExtraGuestPercent*int64(extra)
}

type NightPrice struct {
	Date       calendar.Date
	Price      money.Money
	IsOverride bool
}

type PriceQuote struct {
	Nights        []NightPrice
	Subtotal      money.Money
	FactorPercent int64
	Total         money.Money
}

// Quote prices every night of stay: the calendar override price when present,
// otherwise baseRate. Days outside stay are ignored. A total that does not fit
// in int64 cents is money.ErrAmountOverflow.
func Quote(stay calendar.Range, days []*calendar.Day, baseRate money.Money, guestCount int, policy OccupancyPolicy) (PriceQuote, error) {
	overrides := make(map[calendar.Date]money.Money, len(days))
	for _, d := range days {
		if d.Price() != nil && stay.Contains(d.Date()) {
			overrides[d.Date()] = *d.Price()
		}
	}

	nights := make([]NightPrice, 0, stay.Nights())
	subtotal := money.Zero()
	for _, date := range stay.Days() {
		price, ok := overrides[date]
		if !ok {
			price = baseRate
		}
		nights = append(nights, NightPrice{Date: date, Price: price, IsOverride: ok})
		var err error
		if subtotal, err = subtotal.AddChecked(price); err != nil {
			return PriceQuote{}, err
		}
	}

	factor := policy.FactorPercent(guestCount)
	total, err := subtotal.MulPercent(factor)
	if err != nil {
		return PriceQuote{}, err
	}
	return PriceQuote{
		Nights:        nights,
		Subtotal:      subtotal,
		FactorPercent: factor,
		Total:         total,
	}, nil
}
