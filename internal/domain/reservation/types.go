package reservation

import (
	"charter-booking/internal/pkg/errs"
)

var ErrUnknownStatus = errs.NewKind("unknown reservation status", errs.ErrValidation)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// allowed transitions; nothing re-enters pending
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsBlocking reports whether a reservation in this status holds its dates.
func (s Status) IsBlocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// AcceptsPayments is false once the reservation is cancelled or completed.
func (s Status) AcceptsPayments() bool {
	return !s.IsTerminal()
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// GrantsEligibility reports whether the status proves a real stay for review and loyalty purposes.
func (s Status) GrantsEligibility() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus is the only way external strings become a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}
