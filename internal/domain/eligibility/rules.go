// Package eligibility decides whether a principal's reservation history allows
// a review or a loyalty action.
package eligibility

import (
	"time"

	"charter-booking/internal/pkg/errs"
)

var ErrUnknownActionKind = errs.NewKind("unknown loyalty action kind", errs.ErrValidation)

type ActionKind string

const (
	ActionStayBonus    ActionKind = "stay_bonus"
	ActionReviewBonus  ActionKind = "review_bonus"
	ActionReferral     ActionKind = "referral"
	ActionDailyCheckin ActionKind = "daily_checkin"
)

func ParseActionKind(s string) (ActionKind, error) {
	switch k := ActionKind(s); k {
	case ActionStayBonus, ActionReviewBonus, ActionReferral, ActionDailyCheckin:
		return k, nil
	default:
		return "", errs.Wrapf(ErrUnknownActionKind, "%q", s)
	}
}

func (k ActionKind) String() string {
	return string(k)
}

// Rule is the cooldown between two performances of an action and whether the
// principal must have a confirmed or completed stay first.
type Rule struct {
	Cooldown     time.Duration
	RequiresStay bool
}

type Rules map[ActionKind]Rule

func DefaultRules() Rules {
	return Rules{
		ActionStayBonus:    {Cooldown: 30 * 24 * time.Hour, RequiresStay: true},
		ActionReviewBonus:  {Cooldown: 7 * 24 * time.Hour, RequiresStay: true},
		ActionReferral:     {Cooldown: 24 * time.Hour, RequiresStay: false},
		ActionDailyCheckin: {Cooldown: 24 * time.Hour, RequiresStay: false},
	}
}

// WithCooldowns returns a copy of r with the cooldowns replaced for the kinds
// named in overrides. An unknown kind or a negative duration is rejected.
func (r Rules) WithCooldowns(overrides map[string]time.Duration) (Rules, error) {
	out := make(Rules, len(r))
	for k, rule := range r {
		out[k] = rule
	}
	for name, cooldown := range overrides {
		kind, err := ParseActionKind(name)
		if err != nil {
			return nil, err
		}
		if cooldown < 0 {
			return nil, errs.Newf("negative cooldown for %s", name)
		}
		rule := out[kind]
		rule.Cooldown = cooldown
		out[kind] = rule
	}
	return out, nil
}

type Reason string

const (
	ReasonEligible Reason = "eligible"
	ReasonNoStay   Reason = "no_qualifying_stay"
	ReasonCooldown Reason = "cooldown"
)

// History is what the gate needs to know about a principal.
type History struct {
	HasQualifyingStay bool
	LastPerformedAt   *time.Time
}

type Decision struct {
	Eligible       bool
	Reason         Reason
	NextEligibleAt *time.Time
}

// Evaluate never errors for a known kind: denials are decisions.
// A denial for a missing stay has no NextEligibleAt since no time will fix it.
func (r Rules) Evaluate(kind ActionKind, h History, now time.Time) (Decision, error) {
	rule, ok := r[kind]
	if !ok {
		return Decision{}, errs.Wrapf(ErrUnknownActionKind, "%q", kind)
	}

	if rule.RequiresStay && !h.HasQualifyingStay {
		return Decision{Eligible: false, Reason: ReasonNoStay}, nil
	}

	if h.LastPerformedAt != nil {
		next := h.LastPerformedAt.Add(rule.Cooldown)
		if now.Before(next) {
			return Decision{Eligible: false, Reason: ReasonCooldown, NextEligibleAt: &next}, nil
		}
	}

	return Decision{Eligible: true, Reason: ReasonEligible}, nil
}

// CanReview allows a review once any reservation was confirmed or completed.
func CanReview(h History) Decision {
	if !h.HasQualifyingStay {
		return Decision{Eligible: false, Reason: ReasonNoStay}
	}
	return Decision{Eligible: true, Reason: ReasonEligible}
}
