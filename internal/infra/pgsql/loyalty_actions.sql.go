package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const advisoryXactLock = `-- name: AdvisoryXactLock :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

// AdvisoryXactLock holds a transaction-scoped lock on an arbitrary key.
func (q *Queries) AdvisoryXactLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, advisoryXactLock, key)
	return err
}

const getLastLoyaltyAction = `-- name: GetLastLoyaltyAction :one
SELECT performed_at
FROM loyalty_actions
WHERE principal_id = $1
  AND kind = $2
ORDER BY performed_at DESC
LIMIT 1
`

type GetLastLoyaltyActionParams struct {
	PrincipalID uuid.UUID `json:"principal_id"`
	Kind        string    `json:"kind"`
}

func (q *Queries) GetLastLoyaltyAction(ctx context.Context, db DBTX, arg GetLastLoyaltyActionParams) (pgtype.Timestamptz, error) {
	var performedAt pgtype.Timestamptz
	err := db.QueryRow(ctx, getLastLoyaltyAction, arg.PrincipalID, arg.Kind).Scan(&performedAt)
	return performedAt, err
}

const insertLoyaltyAction = `-- name: InsertLoyaltyAction :one
INSERT INTO loyalty_actions (principal_id, kind, performed_at)
VALUES ($1, $2, $3)
RETURNING id, principal_id, kind, performed_at
`

type InsertLoyaltyActionParams struct {
	PrincipalID uuid.UUID          `json:"principal_id"`
	Kind        string             `json:"kind"`
	PerformedAt pgtype.Timestamptz `json:"performed_at"`
}

func (q *Queries) InsertLoyaltyAction(ctx context.Context, db DBTX, arg InsertLoyaltyActionParams) (LoyaltyActions, error) {
	row := db.QueryRow(ctx, insertLoyaltyAction, arg.PrincipalID, arg.Kind, arg.PerformedAt)
	var i LoyaltyActions
	err := row.Scan(
		&i.ID,
		&i.PrincipalID,
		&i.Kind,
		&i.PerformedAt,
	)
	return i, err
}
