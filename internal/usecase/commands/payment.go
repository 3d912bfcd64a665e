package commands

import (
	"context"
	"log/slog"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/infra"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/tracing"
	"charter-booking/internal/usecase/queries"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordAttemptInput struct {
	ReservationID uuid.UUID
	AmountCents   int64
	Currency      string
}

type SettleInput struct {
	AttemptID   uuid.UUID
	Outcome     string
	ExternalRef *string
}

type SettleResult struct {
	Attempt *queries.PaymentAttemptView
	// Applied is false when the attempt was already terminal.
	Applied bool
	// Confirmed reports that this settlement confirmed the reservation.
	Confirmed bool
}

type PaymentCommands interface {
	RecordAttempt(ctx context.Context, actor user.Principal, in RecordAttemptInput) (*queries.PaymentAttemptView, error)
	Settle(ctx context.Context, actor user.Principal, in SettleInput) (*SettleResult, error)
}

type paymentCommandsImpl struct {
	uow        shared.UnitOfWork
	settlement *SettlementEngine
	observer   Observer
	clock      clock.Clock
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	settlement *SettlementEngine,
	observer Observer,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:        uow,
		settlement: settlement,
		observer:   observer,
		clock:      clock,
	}
}

func (p *paymentCommandsImpl) RecordAttempt(ctx context.Context, actor user.Principal, in RecordAttemptInput) (view *queries.PaymentAttemptView, err error) {
	ctx, span := tracing.StartSpan(ctx, "PaymentCommands.RecordAttempt")
	defer func() { tracing.EndSpan(span, err) }()

	currency, err := money.NewCurrency(in.Currency)
	if err != nil {
		return nil, err
	}

	var attempt *payment.Attempt
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, in.ReservationID)
		if err != nil {
			return err
		}
		if !actor.CanActFor(res.PrincipalID()) {
			return ErrNotOwner
		}
		if !res.Status().AcceptsPayments() {
			return errs.Wrapf(ErrReservationClosed, "status %s", res.Status())
		}

		a, err := payment.NewAttempt(res.ID(), in.AmountCents, currency, res.Currency(), p.clock.Now())
		if err != nil {
			return err
		}
		paid, err := tx.Payments().SumCompleted(ctx, res.ID())
		if err != nil {
			return err
		}
		if err := payment.CheckOverpayment(paid, a.Amount(), res.TotalPrice()); err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, a); err != nil {
			return err
		}
		attempt = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payment attempt recorded",
		"attempt_id", attempt.ID().String(),
		"reservation_id", attempt.ReservationID().String(),
		"amount_cents", attempt.Amount().Cents())
	return attemptView(attempt), nil
}

func (p *paymentCommandsImpl) Settle(ctx context.Context, actor user.Principal, in SettleInput) (result *SettleResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "PaymentCommands.Settle")
	defer func() { tracing.EndSpan(span, err) }()

	if !actor.IsStaff() {
		return nil, ErrOperatorRequired
	}
	outcome, err := payment.ParseOutcome(in.Outcome)
	if err != nil {
		return nil, err
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &SettleResult{}
		now := p.clock.Now()

		attempt, err := tx.Payments().GetForUpdate(ctx, in.AttemptID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAttemptNotFound
			}
			return err
		}
		if attempt.Status().IsTerminal() {
			result.Attempt = attemptView(attempt)
			return nil
		}

		var res *reservation.Reservation
		if outcome == payment.OutcomeCompleted {
			res, err = lockReservation(ctx, tx, attempt.ReservationID())
			if err != nil {
				return err
			}
			paid, err := tx.Payments().SumCompleted(ctx, res.ID())
			if err != nil {
				return err
			}
			if err := payment.CheckOverpayment(paid, attempt.Amount(), res.TotalPrice()); err != nil {
				return err
			}
		}

		attempt.Settle(outcome, in.ExternalRef, now)
		if err := tx.Payments().Settle(ctx, attempt); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrAttemptAlreadySettled
			}
			return err
		}
		if err := tx.Outbox().Enqueue(ctx, shared.OutboxEvent{
			Topic: shared.TopicPaymentSettled,
			Key:   attempt.ReservationID().String(),
			Payload: shared.PaymentSettledEvent{
				AttemptID:     attempt.ID(),
				ReservationID: attempt.ReservationID(),
				Outcome:       string(outcome),
				AmountCents:   attempt.Amount().Cents(),
				Currency:      attempt.Currency().String(),
				ExternalRef:   attempt.ExternalRef(),
				OccurredAt:    now,
			},
			RunAt: now,
		}); err != nil {
			return err
		}

		result.Applied = true
		result.Attempt = attemptView(attempt)
		if res == nil {
			return nil
		}
		result.Confirmed, err = p.settlement.Apply(ctx, tx, res, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Applied {
		p.observer.PaymentSettled(string(outcome))
		slog.Info("payment attempt settled",
			"attempt_id", in.AttemptID.String(),
			"outcome", string(outcome),
			"confirmed", result.Confirmed)
	} else {
		slog.Info("payment attempt already terminal", "attempt_id", in.AttemptID.String())
	}
	return result, nil
}

func lockReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().GetForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func attemptView(a *payment.Attempt) *queries.PaymentAttemptView {
	return &queries.PaymentAttemptView{
		ID:            a.ID(),
		ReservationID: a.ReservationID(),
		AmountCents:   a.Amount().Cents(),
		Currency:      a.Currency().String(),
		Status:        string(a.Status()),
		ExternalRef:   a.ExternalRef(),
		SettledAt:     a.SettledAt(),
		CreatedAt:     a.CreatedAt(),
	}
}
