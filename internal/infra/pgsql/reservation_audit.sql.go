package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertReservationAudit = `-- name: InsertReservationAudit :exec
INSERT INTO reservation_audit (reservation_id, actor_id, action, from_status, to_status, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type InsertReservationAuditParams struct {
	ReservationID uuid.UUID          `json:"reservation_id"`
	ActorID       uuid.UUID          `json:"actor_id"`
	Action        string             `json:"action"`
	FromStatus    string             `json:"from_status"`
	ToStatus      string             `json:"to_status"`
	Reason        string             `json:"reason"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertReservationAudit(ctx context.Context, db DBTX, arg InsertReservationAuditParams) error {
	_, err := db.Exec(ctx, insertReservationAudit,
		arg.ReservationID,
		arg.ActorID,
		arg.Action,
		arg.FromStatus,
		arg.ToStatus,
		arg.Reason,
		arg.CreatedAt,
	)
	return err
}

const listReservationAudit = `-- name: ListReservationAudit :many
SELECT id, reservation_id, actor_id, action, from_status, to_status, reason, created_at
FROM reservation_audit
WHERE reservation_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListReservationAudit(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]ReservationAudit, error) {
	rows, err := db.Query(ctx, listReservationAudit, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ReservationAudit{}
	for rows.Next() {
		var i ReservationAudit
		if err := rows.Scan(
			&i.ID,
			&i.ReservationID,
			&i.ActorID,
			&i.Action,
			&i.FromStatus,
			&i.ToStatus,
			&i.Reason,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
