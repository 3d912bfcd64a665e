package payment

import (
	"time"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount = errs.NewKind("payment amount must be positive", errs.ErrValidation)
	ErrCurrencyMismatch  = errs.NewKind("payment currency does not match reservation", errs.ErrValidation)
	ErrUnknownOutcome    = errs.NewKind("unknown settlement outcome", errs.ErrValidation)
	ErrExceedsTotal      = errs.NewKind("payment would exceed reservation total", errs.ErrOverpayment)
	ErrUnknownStatus     = errs.NewKind("unknown payment status", errs.ErrValidation)
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusFailed:
		return Status(s), nil
	default:
		return "", errs.Wrapf(ErrUnknownStatus, "%q", s)
	}
}

// Outcome is what the payment system reports for an attempt.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
)

func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeCompleted, OutcomeFailed:
		return Outcome(s), nil
	default:
		return "", ErrUnknownOutcome
	}
}

type Attempt struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        money.Money
	currency      money.Currency
	status        Status
	externalRef   *string
	settledAt     *time.Time
	createdAt     time.Time
}

// NewAttempt creates a pending attempt. Overpayment is checked separately
// because it needs the reservation's paid-to-date.
func NewAttempt(reservationID uuid.UUID, amountCents int64, currency, reservationCurrency money.Currency, now time.Time) (*Attempt, error) {
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if currency != reservationCurrency {
		return nil, ErrCurrencyMismatch
	}
	return &Attempt{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        money.FromCents(amountCents),
		currency:      currency,
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func ReconstructAttempt(id, reservationID uuid.UUID, amount money.Money, currency money.Currency, status Status, externalRef *string, settledAt *time.Time, createdAt time.Time) *Attempt {
	return &Attempt{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		currency:      currency,
		status:        status,
		externalRef:   externalRef,
		settledAt:     settledAt,
		createdAt:     createdAt,
	}
}

// Settle applies outcome once. A terminal attempt is left untouched and
// Settle reports false, whatever the outcome.
func (a *Attempt) Settle(outcome Outcome, externalRef *string, now time.Time) bool {
	if a.status.IsTerminal() {
		return false
	}
	a.status = Status(outcome)
	if externalRef != nil {
		a.externalRef = externalRef
	}
	a.settledAt = &now
	return true
}

// CheckOverpayment rejects amount when paid plus amount would exceed total.
func CheckOverpayment(paid, amount, total money.Money) error {
	if paid.Add(amount).GreaterThan(total) {
		return errs.Wrapf(ErrExceedsTotal, "paid %d + %d > total %d", paid.Cents(), amount.Cents(), total.Cents())
	}
	return nil
}

// PaidToDate sums the completed attempts.
func PaidToDate(attempts []*Attempt) money.Money {
	sum := money.Zero()
	for _, a := range attempts {
		if a.status == StatusCompleted {
			sum = sum.Add(a.amount)
		}
	}
	return sum
}

func (a *Attempt) ID() uuid.UUID            { return a.id }
func (a *Attempt) ReservationID() uuid.UUID { return a.reservationID }
func (a *Attempt) Amount() money.Money      { return a.amount }
func (a *Attempt) Currency() money.Currency { return a.currency }
func (a *Attempt) Status() Status           { return a.status }
func (a *Attempt) ExternalRef() *string     { return a.externalRef }
func (a *Attempt) SettledAt() *time.Time    { return a.settledAt }
func (a *Attempt) CreatedAt() time.Time     { return a.createdAt }
