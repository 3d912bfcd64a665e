package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/conflict"
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

const (
	createEndpoint = "POST /reservations"
	idempotencyTTL = 24 * time.Hour
	MaxSweepBatch  = 1000
)

type CreateReservationInput struct {
	ResourceID uuid.UUID
	Start      calendar.Date
	End        calendar.Date
	GuestCount int
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	Create(ctx context.Context, actor user.Principal, in CreateReservationInput, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	Cancel(ctx context.Context, actor user.Principal, id uuid.UUID) (*queries.ReservationView, error)
	MarkCompleted(ctx context.Context, actor user.Principal, id uuid.UUID) (*queries.ReservationView, error)
	// SweepCompleted completes up to limit confirmed reservations whose stay has ended.
	SweepCompleted(ctx context.Context, limit int) (int, error)
	OverrideConfirm(ctx context.Context, actor user.Principal, id uuid.UUID, reason string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	policy             reservation.OccupancyPolicy
	observer           Observer
	clock              clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	policy reservation.OccupancyPolicy,
	observer Observer,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		policy:             policy,
		observer:           observer,
		clock:              clock,
	}
}

func (r *reservationCommandsImpl) Create(
	ctx context.Context,
	actor user.Principal,
	in CreateReservationInput,
	idempotencyKey uuid.UUID,
) (result *CreateReservationResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "ReservationCommands.Create")
	defer func() { tracing.EndSpan(span, err) }()

	stay, err := calendar.NewBoundedRange(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(actor.ID, in)

	var createdID uuid.UUID
	var replayID *uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		replay, err := r.claimIdempotencyKey(ctx, tx, idempotencyKey, actor.ID, requestHash, now)
		if err != nil {
			return err
		}
		if replay != nil {
			replayID = replay
			return nil
		}

		res, err := r.createInTx(ctx, tx, actor, in, stay, now)
		if err != nil {
			return err
		}
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, actor.ID, res.ID()); err != nil {
			return err
		}
		createdID = res.ID()
		return nil
	})
	if err != nil {
		if kind := errs.KindOf(err); kind != errs.KindInternal {
			r.observer.ReservationRejected(string(kind))
		}
		return nil, err
	}

	if replayID != nil {
		view, err := r.reservationQueries.GetByIDSystem(ctx, *replayID)
		if err != nil {
			return nil, err
		}
		slog.Info("reservation create replayed", "reservation_id", replayID.String(), "idempotency_key", idempotencyKey.String())
		return &CreateReservationResult{Reservation: view, IsReplayed: true}, nil
	}

	r.observer.ReservationCreated()
	view, err := r.reservationQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, err
	}
	slog.Info("reservation created",
		"reservation_id", createdID.String(),
		"resource_id", in.ResourceID.String(),
		"principal_id", actor.ID.String(),
		"total_cents", view.TotalPriceCents)
	return &CreateReservationResult{Reservation: view}, nil
}

// claimIdempotencyKey returns the reservation to replay, or nil when this
// request owns the key and should proceed.
func (r *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, principalID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(idempotencyTTL)
	inserted, err := tx.Idempotency().TryInsert(ctx, key, principalID, createEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().GetForUpdate(ctx, key, principalID)
	if err != nil {
		return nil, err
	}

	if !now.Before(existing.ExpiresAt) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, key, principalID, requestHash, expiresAt)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrDuplicateRequest
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.New("completed idempotency record missing reservation id")
		}
		return existing.ResultReservationID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (r *reservationCommandsImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	actor user.Principal,
	in CreateReservationInput,
	stay calendar.Range,
	now time.Time,
) (*reservation.Reservation, error) {
	// The resource lock makes check-then-insert atomic per resource.
	res, err := tx.Resources().LockForUpdate(ctx, in.ResourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if err := res.CheckBookable(in.GuestCount); err != nil {
		return nil, err
	}

	days, err := tx.Calendar().ListInRange(ctx, res.ID(), stay)
	if err != nil {
		return nil, err
	}
	blocking, err := tx.Reservations().ListBlockingOverlaps(ctx, res.ID(), stay)
	if err != nil {
		return nil, err
	}
	if err := conflict.Detect(stay, days, blocking); err != nil {
		return nil, err
	}

	quote, err := reservation.Quote(stay, days, res.BaseRate(), in.GuestCount, r.policy)
	if err != nil {
		return nil, err
	}
	entity, err := reservation.NewReservation(res, actor.ID, stay, in.GuestCount, quote.Total, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Reservations().Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, err
	}
	if err := tx.Outbox().Enqueue(ctx, reservationEvent(shared.TopicReservationCreated, entity, now)); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, actor user.Principal, id uuid.UUID) (view *queries.ReservationView, err error) {
	ctx, span := tracing.StartSpan(ctx, "ReservationCommands.Cancel")
	defer func() { tracing.EndSpan(span, err) }()

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		res, err := lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if !actor.CanActFor(res.PrincipalID()) {
			return ErrNotOwner
		}
		if err := res.Cancel(now); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return err
		}

		paid, err := tx.Payments().SumCompleted(ctx, res.ID())
		if err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, shared.OutboxEvent{
			Topic: shared.TopicReservationCancelled,
			Key:   res.ID().String(),
			Payload: shared.ReservationCancelledEvent{
				ReservationEvent: reservationPayload(res, now),
				PaidToDateCents:  paid.Cents(),
				CancelledBy:      actor.ID,
			},
			RunAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	r.observer.ReservationTransitioned(reservation.StatusCancelled.String())
	slog.Info("reservation cancelled", "reservation_id", id.String(), "actor_id", actor.ID.String())
	return r.reservationQueries.GetByIDSystem(ctx, id)
}

func (r *reservationCommandsImpl) MarkCompleted(ctx context.Context, actor user.Principal, id uuid.UUID) (view *queries.ReservationView, err error) {
	ctx, span := tracing.StartSpan(ctx, "ReservationCommands.MarkCompleted")
	defer func() { tracing.EndSpan(span, err) }()

	if !actor.IsStaff() {
		return nil, ErrOperatorRequired
	}

	var changed bool
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		changed, err = completeInTx(ctx, tx, res, r.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	if changed {
		r.observer.ReservationTransitioned(reservation.StatusCompleted.String())
		slog.Info("reservation completed", "reservation_id", id.String(), "actor_id", actor.ID.String())
	}
	return r.reservationQueries.GetByIDSystem(ctx, id)
}

func (r *reservationCommandsImpl) SweepCompleted(ctx context.Context, limit int) (completed int, err error) {
	ctx, span := tracing.StartSpan(ctx, "ReservationCommands.SweepCompleted")
	defer func() { tracing.EndSpan(span, err) }()

	if limit <= 0 || limit > MaxSweepBatch {
		return 0, ErrInvalidLimit
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		completed = 0
		now := r.clock.Now()
		due, err := tx.Reservations().ListDueForCompletion(ctx, calendar.NewDate(now), int32(limit)) // #nosec G115 -- bounded above
		if err != nil {
			return err
		}
		for _, res := range due {
			changed, err := completeInTx(ctx, tx, res, now)
			if err != nil {
				return errs.Wrapf(err, "reservation %s", res.ID())
			}
			if changed {
				completed++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for i := 0; i < completed; i++ {
		r.observer.ReservationTransitioned(reservation.StatusCompleted.String())
	}
	if completed > 0 {
		slog.Info("completed ended reservations", "count", completed)
	}
	return completed, nil
}

func (r *reservationCommandsImpl) OverrideConfirm(ctx context.Context, actor user.Principal, id uuid.UUID, reason string) (view *queries.ReservationView, err error) {
	ctx, span := tracing.StartSpan(ctx, "ReservationCommands.OverrideConfirm")
	defer func() { tracing.EndSpan(span, err) }()

	if !actor.Role.AtLeast(user.RoleAdmin) {
		return nil, ErrAdminRequired
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		res, err := lockReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		from := res.Status()
		if from != reservation.StatusPending {
			return errs.Wrapf(reservation.ErrInvalidTransition, "override from %s", from)
		}
		if err := res.Confirm(now); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return err
		}
		if err := tx.Audit().Record(ctx, shared.AuditEntry{
			ReservationID: res.ID(),
			ActorID:       actor.ID,
			Action:        "override_confirm",
			FromStatus:    from.String(),
			ToStatus:      res.Status().String(),
			Reason:        reason,
			At:            now,
		}); err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, reservationEvent(shared.TopicReservationConfirmed, res, now))
	})
	if err != nil {
		return nil, err
	}

	r.observer.ReservationTransitioned(reservation.StatusConfirmed.String())
	slog.Warn("reservation confirmed by override",
		"reservation_id", id.String(),
		"actor_id", actor.ID.String(),
		"reason", reason)
	return r.reservationQueries.GetByIDSystem(ctx, id)
}

// completeInTx persists the transition and its event when Complete changed the status.
func completeInTx(ctx context.Context, tx shared.Tx, res *reservation.Reservation, now time.Time) (bool, error) {
	changed, err := res.Complete(now)
	if err != nil || !changed {
		return false, err
	}
	if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
		return false, err
	}
	if err := tx.Outbox().Enqueue(ctx, reservationEvent(shared.TopicReservationCompleted, res, now)); err != nil {
		return false, err
	}
	return true, nil
}

type requestFingerprint struct {
	PrincipalID uuid.UUID `json:"principal_id"`
	ResourceID  uuid.UUID `json:"resource_id"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	GuestCount  int       `json:"guest_count"`
}

func calculateRequestHash(principalID uuid.UUID, in CreateReservationInput) string {
	data, _ := json.Marshal(requestFingerprint{
		PrincipalID: principalID,
		ResourceID:  in.ResourceID,
		Start:       in.Start.String(),
		End:         in.End.String(),
		GuestCount:  in.GuestCount,
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
