package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentAttemptColumns = `id, reservation_id, amount_cents, currency, status, external_ref, settled_at, created_at`

func scanPaymentAttempt(row interface{ Scan(...any) error }) (PaymentAttempts, error) {
	var i PaymentAttempts
	err := row.Scan(
		&i.ID,
		&i.ReservationID,
		&i.AmountCents,
		&i.Currency,
		&i.Status,
		&i.ExternalRef,
		&i.SettledAt,
		&i.CreatedAt,
	)
	return i, err
}

const createPaymentAttempt = `-- name: CreatePaymentAttempt :exec
INSERT INTO payment_attempts (id, reservation_id, amount_cents, currency, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreatePaymentAttemptParams struct {
	ID            uuid.UUID          `json:"id"`
	ReservationID uuid.UUID          `json:"reservation_id"`
	AmountCents   int64              `json:"amount_cents"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreatePaymentAttempt(ctx context.Context, db DBTX, arg CreatePaymentAttemptParams) error {
	_, err := db.Exec(ctx, createPaymentAttempt,
		arg.ID,
		arg.ReservationID,
		arg.AmountCents,
		arg.Currency,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const getPaymentAttemptByID = `-- name: GetPaymentAttemptByID :one
SELECT ` + paymentAttemptColumns + `
FROM payment_attempts
WHERE id = $1
`

func (q *Queries) GetPaymentAttemptByID(ctx context.Context, db DBTX, id uuid.UUID) (PaymentAttempts, error) {
	return scanPaymentAttempt(db.QueryRow(ctx, getPaymentAttemptByID, id))
}

const getPaymentAttemptForUpdate = `-- name: GetPaymentAttemptForUpdate :one
SELECT ` + paymentAttemptColumns + `
FROM payment_attempts
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetPaymentAttemptForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (PaymentAttempts, error) {
	return scanPaymentAttempt(db.QueryRow(ctx, getPaymentAttemptForUpdate, id))
}

const settlePaymentAttempt = `-- name: SettlePaymentAttempt :execrows
UPDATE payment_attempts
SET status = $2,
    external_ref = COALESCE($3, external_ref),
    settled_at = $4
WHERE id = $1
  AND status = 'pending'
`

type SettlePaymentAttemptParams struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"`
	ExternalRef pgtype.Text        `json:"external_ref"`
	SettledAt   pgtype.Timestamptz `json:"settled_at"`
}

func (q *Queries) SettlePaymentAttempt(ctx context.Context, db DBTX, arg SettlePaymentAttemptParams) (int64, error) {
	result, err := db.Exec(ctx, settlePaymentAttempt, arg.ID, arg.Status, arg.ExternalRef, arg.SettledAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const sumCompletedPayments = `-- name: SumCompletedPayments :one
SELECT COALESCE(SUM(amount_cents), 0)::bigint
FROM payment_attempts
WHERE reservation_id = $1
  AND status = 'completed'
`

func (q *Queries) SumCompletedPayments(ctx context.Context, db DBTX, reservationID uuid.UUID) (int64, error) {
	var sum int64
	err := db.QueryRow(ctx, sumCompletedPayments, reservationID).Scan(&sum)
	return sum, err
}

const listPaymentAttemptsByReservation = `-- name: ListPaymentAttemptsByReservation :many
SELECT ` + paymentAttemptColumns + `
FROM payment_attempts
WHERE reservation_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListPaymentAttemptsByReservation(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]PaymentAttempts, error) {
	rows, err := db.Query(ctx, listPaymentAttemptsByReservation, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []PaymentAttempts{}
	for rows.Next() {
		i, err := scanPaymentAttempt(rows)
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
