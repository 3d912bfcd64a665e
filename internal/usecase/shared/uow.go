package shared

import (
	"context"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one open transaction.
type Tx interface {
	Resources() ResourceRepository
	Calendar() CalendarRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Loyalty() LoyaltyRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Audit() AuditRepository
	Reads() CommandReads
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	PaidToDate(ctx context.Context, reservationID uuid.UUID) (money.Money, error)
	HasQualifyingStay(ctx context.Context, principalID uuid.UUID) (bool, error)
}

type ResourceRepository interface {
	// LockForUpdate serializes writers that check availability on the resource.
	LockForUpdate(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
}

type CalendarRepository interface {
	Upsert(ctx context.Context, resourceID uuid.UUID, days []calendar.DayInput) ([]*calendar.Day, error)
	ListInRange(ctx context.Context, resourceID uuid.UUID, r calendar.Range) ([]*calendar.Day, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*calendar.Day, error)
	Update(ctx context.Context, id uuid.UUID, priceCents *int64, open bool) (*calendar.Day, error)
	Delete(ctx context.Context, id uuid.UUID) (*calendar.Day, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
	// ListBlockingOverlaps returns pending and confirmed reservations intersecting r.
	ListBlockingOverlaps(ctx context.Context, resourceID uuid.UUID, r calendar.Range) ([]*reservation.Reservation, error)
	// ListDueForCompletion locks confirmed reservations that ended on or before today.
	ListDueForCompletion(ctx context.Context, today calendar.Date, limit int32) ([]*reservation.Reservation, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, attempt *payment.Attempt) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*payment.Attempt, error)
	Settle(ctx context.Context, attempt *payment.Attempt) error
	SumCompleted(ctx context.Context, reservationID uuid.UUID) (money.Money, error)
}

type LoyaltyRepository interface {
	// LockPrincipal holds a transaction-scoped lock for the principal.
	LockPrincipal(ctx context.Context, principalID uuid.UUID) error
	LastPerformedAt(ctx context.Context, principalID uuid.UUID, kind eligibility.ActionKind) (*time.Time, error)
	Record(ctx context.Context, principalID uuid.UUID, kind eligibility.ActionKind, performedAt time.Time) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was new.
	TryInsert(ctx context.Context, key, principalID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	GetForUpdate(ctx context.Context, key, principalID uuid.UUID) (*IdempotencyRecord, error)
	ClaimExpired(ctx context.Context, key, principalID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key, principalID, reservationID uuid.UUID) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event OutboxEvent) error
}

type AuditRepository interface {
	Record(ctx context.Context, entry AuditEntry) error
}
