package pgsql

import (
	"context"

	"github.com/google/uuid"
)

const getResourceByID = `-- name: GetResourceByID :one
SELECT id, name, capacity, base_rate_cents, currency, active, created_at, updated_at
FROM resources
WHERE id = $1
`

func (q *Queries) GetResourceByID(ctx context.Context, db DBTX, id uuid.UUID) (Resources, error) {
	row := db.QueryRow(ctx, getResourceByID, id)
	var i Resources
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Capacity,
		&i.BaseRateCents,
		&i.Currency,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockResourceForUpdate = `-- name: LockResourceForUpdate :one
SELECT id, name, capacity, base_rate_cents, currency, active, created_at, updated_at
FROM resources
WHERE id = $1
FOR UPDATE
`

// Serializes check-then-insert on one resource.
func (q *Queries) LockResourceForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Resources, error) {
	row := db.QueryRow(ctx, lockResourceForUpdate, id)
	var i Resources
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Capacity,
		&i.BaseRateCents,
		&i.Currency,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
