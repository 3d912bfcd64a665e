package reservation

import (
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/resource"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errs.NewKind("reservation status does not allow this transition", errs.ErrStateTransition)
	ErrStayNotEnded      = errs.NewKind("reservation cannot complete before its end date", errs.ErrStateTransition)
	ErrNonPositiveTotal  = errs.NewKind("total price must be positive", errs.ErrValidation)
)

type Reservation struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	principalID uuid.UUID
	stay        calendar.Range
	guestCount  int
	totalPrice  money.Money
	currency    money.Currency
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation creates a pending reservation. Availability is the caller's
// concern; this only checks the resource itself.
func NewReservation(res *resource.Resource, principalID uuid.UUID, stay calendar.Range, guestCount int, total money.Money, now time.Time) (*Reservation, error) {
	if err := res.CheckBookable(guestCount); err != nil {
		return nil, err
	}
	// A zero total could never be settled, so it would block its dates for good.
	if total.Cents() <= 0 {
		return nil, ErrNonPositiveTotal
	}

	return &Reservation{
		id:          uuid.New(),
		resourceID:  res.ID(),
		principalID: principalID,
		stay:        stay,
		guestCount:  guestCount,
		totalPrice:  total,
		currency:    res.Currency(),
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, resourceID, principalID uuid.UUID,
	stay calendar.Range,
	guestCount int,
	totalPrice money.Money,
	currency money.Currency,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		resourceID:  resourceID,
		principalID: principalID,
		stay:        stay,
		guestCount:  guestCount,
		totalPrice:  totalPrice,
		currency:    currency,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// Confirm moves pending to confirmed once payment covers the total.
func (r *Reservation) Confirm(now time.Time) error {
	return r.transition(StatusConfirmed, now)
}

func (r *Reservation) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

// Complete is a no-op on an already completed reservation and reports whether
// the status changed.
func (r *Reservation) Complete(now time.Time) (bool, error) {
	if r.status == StatusCompleted {
		return false, nil
	}
	if r.status != StatusConfirmed {
		return false, errs.Wrapf(ErrInvalidTransition, "%s -> %s", r.status, StatusCompleted)
	}
	if !r.HasEnded(now) {
		return false, ErrStayNotEnded
	}
	return true, r.transition(StatusCompleted, now)
}

// HasEnded is true from midnight UTC of the end date onwards.
func (r *Reservation) HasEnded(now time.Time) bool {
	return !now.Before(r.stay.End().Time())
}

func (r *Reservation) IsBlocking() bool {
	return r.status.IsBlocking()
}

// IsFullyPaid compares paid-to-date against the total price.
func (r *Reservation) IsFullyPaid(paid money.Money) bool {
	return paid.GreaterOrEqual(r.totalPrice)
}

// Outstanding is what may still be paid without exceeding the total.
func (r *Reservation) Outstanding(paid money.Money) money.Money {
	if paid.GreaterOrEqual(r.totalPrice) {
		return money.Zero()
	}
	return r.totalPrice.Sub(paid)
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) ResourceID() uuid.UUID    { return r.resourceID }
func (r *Reservation) PrincipalID() uuid.UUID   { return r.principalID }
func (r *Reservation) Stay() calendar.Range     { return r.stay }
func (r *Reservation) GuestCount() int          { return r.guestCount }
func (r *Reservation) TotalPrice() money.Money  { return r.totalPrice }
func (r *Reservation) Currency() money.Currency { return r.currency }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
