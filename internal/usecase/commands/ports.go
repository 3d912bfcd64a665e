package commands

import (
	"context"

	"github.com/google/uuid"
)

// CalendarInvalidator drops cached calendar ranges after a write.
type CalendarInvalidator interface {
	InvalidateResource(ctx context.Context, resourceID uuid.UUID) error
}

// Observer receives domain counters; *metrics.Metrics implements it.
type Observer interface {
	ReservationCreated()
	ReservationRejected(kind string)
	ReservationTransitioned(to string)
	PaymentSettled(outcome string)
}

type NopObserver struct{}

func (NopObserver) ReservationCreated()            {}
func (NopObserver) ReservationRejected(string)     {}
func (NopObserver) ReservationTransitioned(string) {}
func (NopObserver) PaymentSettled(string)          {}
