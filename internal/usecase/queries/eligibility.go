package queries

import (
	"context"
	"time"

	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type EligibilityReadStore interface {
	// HasQualifyingStay is true when any reservation is confirmed or completed.
	HasQualifyingStay(ctx context.Context, principalID uuid.UUID) (bool, error)
	LastLoyaltyAction(ctx context.Context, principalID uuid.UUID, kind eligibility.ActionKind) (*time.Time, error)
}

type EligibilityQueries interface {
	CanReview(ctx context.Context, actor user.Principal, principalID uuid.UUID) (*EligibilityView, error)
	CanPerformLoyaltyAction(ctx context.Context, actor user.Principal, principalID uuid.UUID, kind string) (*EligibilityView, error)
}

type eligibilityQueriesImpl struct {
	store EligibilityReadStore
	rules eligibility.Rules
	clock clock.Clock
}

func NewEligibilityQueries(store EligibilityReadStore, rules eligibility.Rules, clk clock.Clock) EligibilityQueries {
	return &eligibilityQueriesImpl{store: store, rules: rules, clock: clk}
}

const reviewAction = "review"

func (q *eligibilityQueriesImpl) CanReview(ctx context.Context, actor user.Principal, principalID uuid.UUID) (*EligibilityView, error) {
	if !actor.CanActFor(principalID) {
		return nil, ErrPrincipalAccess
	}

	stay, err := q.store.HasQualifyingStay(ctx, principalID)
	if err != nil {
		return nil, err
	}

	d := eligibility.CanReview(eligibility.History{HasQualifyingStay: stay})
	return NewEligibilityView(principalID, reviewAction, d), nil
}

func (q *eligibilityQueriesImpl) CanPerformLoyaltyAction(ctx context.Context, actor user.Principal, principalID uuid.UUID, kind string) (*EligibilityView, error) {
	if !actor.CanActFor(principalID) {
		return nil, ErrPrincipalAccess
	}

	k, err := eligibility.ParseActionKind(kind)
	if err != nil {
		return nil, err
	}

	stay, err := q.store.HasQualifyingStay(ctx, principalID)
	if err != nil {
		return nil, err
	}
	last, err := q.store.LastLoyaltyAction(ctx, principalID, k)
	if err != nil {
		return nil, err
	}

	d, err := q.rules.Evaluate(k, eligibility.History{HasQualifyingStay: stay, LastPerformedAt: last}, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return NewEligibilityView(principalID, k.String(), d), nil
}

func NewEligibilityView(principalID uuid.UUID, action string, d eligibility.Decision) *EligibilityView {
	return &EligibilityView{
		PrincipalID:    principalID,
		Action:         action,
		Eligible:       d.Eligible,
		Reason:         string(d.Reason),
		NextEligibleAt: d.NextEligibleAt,
	}
}
