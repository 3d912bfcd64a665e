package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/resource"
	"charter-booking/internal/infra/metrics"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/readstore"
	"charter-booking/internal/infra/repository"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool    *pgxpool.Pool
	q       *pgsql.Queries
	metrics *metrics.Metrics
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries, m *metrics.Metrics) shared.UnitOfWork {
	return &PostgresUoW{
		pool:    pool,
		q:       q,
		metrics: m,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)
		if u.metrics != nil {
			u.metrics.TxRetried()
		}

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgsql.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	resourceRepo    shared.ResourceRepository
	calendarRepo    shared.CalendarRepository
	reservationRepo shared.ReservationRepository
	paymentRepo     shared.PaymentRepository
	loyaltyRepo     shared.LoyaltyRepository
	idempotencyRepo shared.IdempotencyRepository
	outboxRepo      shared.OutboxRepository
	auditRepo       shared.AuditRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q, t.dbtx)
	}
	return t.resourceRepo
}

func (t *pgTx) Calendar() shared.CalendarRepository {
	if t.calendarRepo == nil {
		t.calendarRepo = repository.NewCalendarRepository(t.uow.q, t.dbtx)
	}
	return t.calendarRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Loyalty() shared.LoyaltyRepository {
	if t.loyaltyRepo == nil {
		t.loyaltyRepo = repository.NewLoyaltyRepository(t.uow.q, t.dbtx)
	}
	return t.loyaltyRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository(t.uow.q, t.dbtx)
	}
	return t.auditRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgsql.DBTX

	// Lazy-initialized readstores
	resourceStore    *readstore.ResourceReadStore
	paymentStore     *readstore.PaymentReadStore
	eligibilityStore *readstore.EligibilityReadStore
}

func (r *commandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	if r.resourceStore == nil {
		r.resourceStore = readstore.NewResourceReadStore(r.uow.q, r.dbtx)
	}
	return r.resourceStore.FindByID(ctx, id)
}

func (r *commandReads) PaidToDate(ctx context.Context, reservationID uuid.UUID) (money.Money, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.uow.q, r.dbtx)
	}
	return r.paymentStore.PaidToDate(ctx, reservationID)
}

func (r *commandReads) HasQualifyingStay(ctx context.Context, principalID uuid.UUID) (bool, error) {
	if r.eligibilityStore == nil {
		r.eligibilityStore = readstore.NewEligibilityReadStore(r.uow.q, r.dbtx)
	}
	return r.eligibilityStore.HasQualifyingStay(ctx, principalID)
}
