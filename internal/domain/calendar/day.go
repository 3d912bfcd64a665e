package calendar

import (
	"sort"
	"time"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyBatch    = errs.NewKind("calendar batch cannot be empty", errs.ErrValidation)
	ErrNegativePrice = errs.NewKind("calendar price cannot be negative", errs.ErrValidation)
	ErrBatchTooLarge = errs.NewKind("calendar batch too large", errs.ErrValidation)
)

const MaxBatchSize = 366

// Day is an explicit per-day override for a resource. A nil price falls back
// to the resource base rate; a closed day is unbookable.
type Day struct {
	id         uuid.UUID
	resourceID uuid.UUID
	date       Date
	price      *money.Money
	open       bool
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructDay(id, resourceID uuid.UUID, date Date, price *money.Money, open bool, createdAt, updatedAt time.Time) *Day {
	return &Day{
		id:         id,
		resourceID: resourceID,
		date:       date,
		price:      price,
		open:       open,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (d *Day) ID() uuid.UUID         { return d.id }
func (d *Day) ResourceID() uuid.UUID { return d.resourceID }
func (d *Day) Date() Date            { return d.date }
func (d *Day) Price() *money.Money   { return d.price }
func (d *Day) IsOpen() bool          { return d.open }
func (d *Day) CreatedAt() time.Time  { return d.createdAt }
func (d *Day) UpdatedAt() time.Time  { return d.updatedAt }

// DayInput is one entry of a setDays batch.
type DayInput struct {
	Date       Date
	PriceCents *int64
	Open       bool
}

// NormalizeBatch validates a batch and collapses duplicate dates, keeping the
// last entry for each date. The result is ordered by date.
func NormalizeBatch(in []DayInput) ([]DayInput, error) {
	if len(in) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(in) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	byDate := make(map[Date]DayInput, len(in))
	for _, d := range in {
		if d.Date.IsZero() {
			return nil, ErrInvalidDate
		}
		if d.PriceCents != nil && *d.PriceCents < 0 {
			return nil, ErrNegativePrice
		}
		byDate[d.Date] = d
	}

	out := make([]DayInput, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ClosedWithin returns the closed days of days that fall inside r.
func ClosedWithin(days []*Day, r Range) []Date {
	var closed []Date
	for _, d := range days {
		if !d.open && r.Contains(d.date) {
			closed = append(closed, d.date)
		}
	}
	return closed
}
