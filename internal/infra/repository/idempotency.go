package repository

import (
	"context"
	"time"

	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgsql.DBTX, arg pgsql.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKeyForUpdate(ctx context.Context, db pgsql.DBTX, arg pgsql.GetIdempotencyKeyParams) (pgsql.IdempotencyKeys, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateIdempotencyKeyCompletedParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db pgsql.DBTX, arg pgsql.ClaimExpiredIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db pgsql.DBTX) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      pgsql.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db pgsql.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, principalID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := pgsql.TryInsertIdempotencyKeyParams{
		Key:         key,
		PrincipalID: principalID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return inserted == 1, nil
}

func (r *IdempotencyRepository) GetForUpdate(ctx context.Context, key, principalID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKeyForUpdate(ctx, r.db, pgsql.GetIdempotencyKeyParams{
		Key:         key,
		PrincipalID: principalID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:                 row.Key,
		PrincipalID:         row.PrincipalID,
		Endpoint:            row.Endpoint,
		Status:              row.Status,
		RequestHash:         row.RequestHash,
		ResultReservationID: pgconv.UUIDPtrFromPgtype(row.ResultReservationID),
		ExpiresAt:           pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, key, principalID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	claimed, err := r.queries.ClaimExpiredIdempotencyKey(ctx, r.db, pgsql.ClaimExpiredIdempotencyKeyParams{
		Key:         key,
		PrincipalID: principalID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return claimed == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key, principalID, reservationID uuid.UUID) error {
	params := pgsql.UpdateIdempotencyKeyCompletedParams{
		Key:                 key,
		PrincipalID:         principalID,
		ResultReservationID: pgconv.UUIDToPgtype(reservationID),
	}

	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
