package resource

import (
	"time"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrResourceInactive = errs.NewKind("resource is not active", errs.ErrValidation)
	ErrCapacityExceeded = errs.NewKind("guest count exceeds resource capacity", errs.ErrCapacity)
	ErrInvalidGuests    = errs.NewKind("guest count must be at least 1", errs.ErrValidation)
)

// Resource is a bookable vessel. The catalog owns it; this service only reads it.
type Resource struct {
	id        uuid.UUID
	name      string
	capacity  int
	baseRate  money.Money
	currency  money.Currency
	active    bool
	updatedAt time.Time
}

func ReconstructResource(id uuid.UUID, name string, capacity int, baseRate money.Money, currency money.Currency, active bool, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		name:      name,
		capacity:  capacity,
		baseRate:  baseRate,
		currency:  currency,
		active:    active,
		updatedAt: updatedAt,
	}
}

// CheckBookable validates a party size against the resource.
func (r *Resource) CheckBookable(guestCount int) error {
	if !r.active {
		return ErrResourceInactive
	}
	if guestCount < 1 {
		return ErrInvalidGuests
	}
	if guestCount > r.capacity {
		return ErrCapacityExceeded
	}
	return nil
}

func (r *Resource) ID() uuid.UUID            { return r.id }
func (r *Resource) Name() string             { return r.name }
func (r *Resource) Capacity() int            { return r.capacity }
func (r *Resource) BaseRate() money.Money    { return r.baseRate }
func (r *Resource) Currency() money.Currency { return r.currency }
func (r *Resource) IsActive() bool           { return r.active }
func (r *Resource) UpdatedAt() time.Time     { return r.updatedAt }
