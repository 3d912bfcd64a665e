package commands

import (
	"context"
	"log/slog"
	"time"

	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/usecase/shared"
)

// SettlementEngine runs inside the transaction of every completed settlement.
// It is the only unaudited way a reservation leaves pending.
type SettlementEngine struct {
	observer Observer
}

func NewSettlementEngine(observer Observer) *SettlementEngine {
	return &SettlementEngine{observer: observer}
}

// Apply confirms res when the completed payments cover its total. res must be
// locked by the caller's transaction.
func (e *SettlementEngine) Apply(ctx context.Context, tx shared.Tx, res *reservation.Reservation, now time.Time) (bool, error) {
	if res.Status() != reservation.StatusPending {
		return false, nil
	}

	paid, err := tx.Payments().SumCompleted(ctx, res.ID())
	if err != nil {
		return false, err
	}
	if !res.IsFullyPaid(paid) {
		return false, nil
	}

	if err := res.Confirm(now); err != nil {
		return false, err
	}
	if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
		return false, err
	}
	if err := tx.Outbox().Enqueue(ctx, reservationEvent(shared.TopicReservationConfirmed, res, now)); err != nil {
		return false, err
	}

	e.observer.ReservationTransitioned(reservation.StatusConfirmed.String())
	slog.Info("reservation confirmed by settlement",
		"reservation_id", res.ID().String(),
		"paid_cents", paid.Cents(),
		"total_cents", res.TotalPrice().Cents())
	return true, nil
}

func reservationEvent(topic string, res *reservation.Reservation, now time.Time) shared.OutboxEvent {
	return shared.OutboxEvent{
		Topic:   topic,
		Key:     res.ID().String(),
		Payload: reservationPayload(res, now),
		RunAt:   now,
	}
}

func reservationPayload(res *reservation.Reservation, now time.Time) shared.ReservationEvent {
	return shared.ReservationEvent{
		ReservationID:   res.ID(),
		ResourceID:      res.ResourceID(),
		PrincipalID:     res.PrincipalID(),
		StartDate:       res.Stay().Start().String(),
		EndDate:         res.Stay().End().String(),
		Status:          res.Status().String(),
		TotalPriceCents: res.TotalPrice().Cents(),
		Currency:        res.Currency().String(),
		OccurredAt:      now,
	}
}
