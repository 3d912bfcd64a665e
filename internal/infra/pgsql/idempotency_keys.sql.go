package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `-- name: TryInsertIdempotencyKey :execrows
INSERT INTO idempotency_keys (key, principal_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, principal_id) DO NOTHING
`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID          `json:"key"`
	PrincipalID uuid.UUID          `json:"principal_id"`
	Endpoint    string             `json:"endpoint"`
	RequestHash string             `json:"request_hash"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
}

// TryInsertIdempotencyKey reports 1 when the key was new.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.PrincipalID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getIdempotencyKeyForUpdate = `-- name: GetIdempotencyKeyForUpdate :one
SELECT key, principal_id, endpoint, request_hash, status, result_reservation_id, expires_at, created_at
FROM idempotency_keys
WHERE key = $1 AND principal_id = $2
FOR UPDATE
`

type GetIdempotencyKeyParams struct {
	Key         uuid.UUID `json:"key"`
	PrincipalID uuid.UUID `json:"principal_id"`
}

func (q *Queries) GetIdempotencyKeyForUpdate(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKeys, error) {
	row := db.QueryRow(ctx, getIdempotencyKeyForUpdate, arg.Key, arg.PrincipalID)
	var i IdempotencyKeys
	err := row.Scan(
		&i.Key,
		&i.PrincipalID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultReservationID,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const updateIdempotencyKeyCompleted = `-- name: UpdateIdempotencyKeyCompleted :exec
UPDATE idempotency_keys
SET status = 'completed',
    result_reservation_id = $3
WHERE key = $1 AND principal_id = $2
`

type UpdateIdempotencyKeyCompletedParams struct {
	Key                 uuid.UUID   `json:"key"`
	PrincipalID         uuid.UUID   `json:"principal_id"`
	ResultReservationID pgtype.UUID `json:"result_reservation_id"`
}

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) error {
	_, err := db.Exec(ctx, updateIdempotencyKeyCompleted, arg.Key, arg.PrincipalID, arg.ResultReservationID)
	return err
}

const claimExpiredIdempotencyKey = `-- name: ClaimExpiredIdempotencyKey :execrows
UPDATE idempotency_keys
SET request_hash = $3,
    status = 'processing',
    result_reservation_id = NULL,
    expires_at = $4
WHERE key = $1
  AND principal_id = $2
  AND expires_at < now()
`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID          `json:"key"`
	PrincipalID uuid.UUID          `json:"principal_id"`
	RequestHash string             `json:"request_hash"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, claimExpiredIdempotencyKey, arg.Key, arg.PrincipalID, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredIdempotencyKeys = `-- name: DeleteExpiredIdempotencyKeys :execrows
DELETE FROM idempotency_keys
WHERE expires_at < now()
`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredIdempotencyKeys)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
