package commands

import (
	"context"
	"log/slog"

	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/tracing"
	"charter-booking/internal/usecase/queries"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoyaltyCommands interface {
	// RecordAction appends to the action log when the gate allows it and
	// returns the decision either way.
	RecordAction(ctx context.Context, actor user.Principal, principalID uuid.UUID, kind string) (*queries.EligibilityView, error)
}

type loyaltyCommandsImpl struct {
	uow   shared.UnitOfWork
	rules eligibility.Rules
	clock clock.Clock
}

func NewLoyaltyCommands(uow shared.UnitOfWork, rules eligibility.Rules, clock clock.Clock) LoyaltyCommands {
	return &loyaltyCommandsImpl{
		uow:   uow,
		rules: rules,
		clock: clock,
	}
}

func (l *loyaltyCommandsImpl) RecordAction(ctx context.Context, actor user.Principal, principalID uuid.UUID, kind string) (view *queries.EligibilityView, err error) {
	ctx, span := tracing.StartSpan(ctx, "LoyaltyCommands.RecordAction")
	defer func() { tracing.EndSpan(span, err) }()

	if !actor.CanActFor(principalID) {
		return nil, ErrPrincipalAccess
	}
	k, err := eligibility.ParseActionKind(kind)
	if err != nil {
		return nil, err
	}

	var decision eligibility.Decision
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := l.clock.Now()
		// Two concurrent records for one principal must not both pass the cooldown.
		if err := tx.Loyalty().LockPrincipal(ctx, principalID); err != nil {
			return err
		}

		stay, err := tx.Reads().HasQualifyingStay(ctx, principalID)
		if err != nil {
			return err
		}
		last, err := tx.Loyalty().LastPerformedAt(ctx, principalID, k)
		if err != nil {
			return err
		}

		decision, err = l.rules.Evaluate(k, eligibility.History{HasQualifyingStay: stay, LastPerformedAt: last}, now)
		if err != nil || !decision.Eligible {
			return err
		}
		return tx.Loyalty().Record(ctx, principalID, k, now)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("loyalty action evaluated",
		"principal_id", principalID.String(),
		"kind", k.String(),
		"recorded", decision.Eligible,
		"reason", string(decision.Reason))
	return queries.NewEligibilityView(principalID, k.String(), decision), nil
}
