package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, resource_id, principal_id, start_date, end_date, guest_count, total_price_cents, currency, status, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.ResourceID,
		&i.PrincipalID,
		&i.StartDate,
		&i.EndDate,
		&i.GuestCount,
		&i.TotalPriceCents,
		&i.Currency,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectReservations(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
	Close()
}) ([]Reservations, error) {
	defer rows.Close()
	items := []Reservations{}
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (
    id, resource_id, principal_id, start_date, end_date, guest_count,
    total_price_cents, currency, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type CreateReservationParams struct {
	ID              uuid.UUID          `json:"id"`
	ResourceID      uuid.UUID          `json:"resource_id"`
	PrincipalID     uuid.UUID          `json:"principal_id"`
	StartDate       pgtype.Date        `json:"start_date"`
	EndDate         pgtype.Date        `json:"end_date"`
	GuestCount      int32              `json:"guest_count"`
	TotalPriceCents int64              `json:"total_price_cents"`
	Currency        string             `json:"currency"`
	Status          string             `json:"status"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.ResourceID,
		arg.PrincipalID,
		arg.StartDate,
		arg.EndDate,
		arg.GuestCount,
		arg.TotalPriceCents,
		arg.Currency,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getReservationByID = `-- name: GetReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, id))
}

const updateReservationStatus = `-- name: UpdateReservationStatus :execrows
UPDATE reservations
SET status = $2,
    updated_at = $3
WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listBlockingOverlaps = `-- name: ListBlockingOverlaps :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE resource_id = $1
  AND status IN ('pending', 'confirmed')
  AND start_date < $3
  AND end_date > $2
ORDER BY start_date
`

type ListBlockingOverlapsParams struct {
	ResourceID uuid.UUID   `json:"resource_id"`
	StartDate  pgtype.Date `json:"start_date"`
	EndDate    pgtype.Date `json:"end_date"`
}

func (q *Queries) ListBlockingOverlaps(ctx context.Context, db DBTX, arg ListBlockingOverlapsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listBlockingOverlaps, arg.ResourceID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listReservationsForResource = `-- name: ListReservationsForResource :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE resource_id = $1
  AND start_date < $3
  AND end_date > $2
ORDER BY start_date, id
`

type ListReservationsForResourceParams struct {
	ResourceID uuid.UUID   `json:"resource_id"`
	StartDate  pgtype.Date `json:"start_date"`
	EndDate    pgtype.Date `json:"end_date"`
}

func (q *Queries) ListReservationsForResource(ctx context.Context, db DBTX, arg ListReservationsForResourceParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsForResource, arg.ResourceID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listReservationsByPrincipalFirstPage = `-- name: ListReservationsByPrincipalFirstPage :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE principal_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListReservationsByPrincipalFirstPageParams struct {
	PrincipalID uuid.UUID `json:"principal_id"`
	Limit       int32     `json:"limit"`
}

func (q *Queries) ListReservationsByPrincipalFirstPage(ctx context.Context, db DBTX, arg ListReservationsByPrincipalFirstPageParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByPrincipalFirstPage, arg.PrincipalID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listReservationsByPrincipalKeyset = `-- name: ListReservationsByPrincipalKeyset :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE principal_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListReservationsByPrincipalKeysetParams struct {
	PrincipalID uuid.UUID          `json:"principal_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	ID          uuid.UUID          `json:"id"`
	Limit       int32              `json:"limit"`
}

func (q *Queries) ListReservationsByPrincipalKeyset(ctx context.Context, db DBTX, arg ListReservationsByPrincipalKeysetParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByPrincipalKeyset, arg.PrincipalID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listDueForCompletion = `-- name: ListDueForCompletion :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE status = 'confirmed'
  AND end_date <= $1
ORDER BY end_date, id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ListDueForCompletionParams struct {
	Today pgtype.Date `json:"today"`
	Limit int32       `json:"limit"`
}

func (q *Queries) ListDueForCompletion(ctx context.Context, db DBTX, arg ListDueForCompletionParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listDueForCompletion, arg.Today, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const hasQualifyingReservation = `-- name: HasQualifyingReservation :one
SELECT EXISTS (
    SELECT 1 FROM reservations
    WHERE principal_id = $1
      AND status IN ('confirmed', 'completed')
)
`

func (q *Queries) HasQualifyingReservation(ctx context.Context, db DBTX, principalID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, hasQualifyingReservation, principalID).Scan(&exists)
	return exists, err
}

const getReservationViewByID = `-- name: GetReservationViewByID :one
SELECT r.id, r.resource_id, res.name AS resource_name, r.principal_id, r.start_date, r.end_date,
       r.guest_count, r.total_price_cents,
       COALESCE((
           SELECT SUM(p.amount_cents) FROM payment_attempts p
           WHERE p.reservation_id = r.id AND p.status = 'completed'
       ), 0)::bigint AS paid_cents,
       r.currency, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN resources res ON res.id = r.resource_id
WHERE r.id = $1
`

type GetReservationViewByIDRow struct {
	ID              uuid.UUID          `json:"id"`
	ResourceID      uuid.UUID          `json:"resource_id"`
	ResourceName    string             `json:"resource_name"`
	PrincipalID     uuid.UUID          `json:"principal_id"`
	StartDate       pgtype.Date        `json:"start_date"`
	EndDate         pgtype.Date        `json:"end_date"`
	GuestCount      int32              `json:"guest_count"`
	TotalPriceCents int64              `json:"total_price_cents"`
	PaidCents       int64              `json:"paid_cents"`
	Currency        string             `json:"currency"`
	Status          string             `json:"status"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) GetReservationViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetReservationViewByIDRow, error) {
	row := db.QueryRow(ctx, getReservationViewByID, id)
	var i GetReservationViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.ResourceID,
		&i.ResourceName,
		&i.PrincipalID,
		&i.StartDate,
		&i.EndDate,
		&i.GuestCount,
		&i.TotalPriceCents,
		&i.PaidCents,
		&i.Currency,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
