package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const calendarDayColumns = `id, resource_id, day, price_cents, open, created_at, updated_at`

func scanCalendarDay(row interface{ Scan(...any) error }) (CalendarDays, error) {
	var i CalendarDays
	err := row.Scan(
		&i.ID,
		&i.ResourceID,
		&i.Day,
		&i.PriceCents,
		&i.Open,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertCalendarDay = `-- name: UpsertCalendarDay :one
INSERT INTO calendar_days (resource_id, day, price_cents, open)
VALUES ($1, $2, $3, $4)
ON CONFLICT (resource_id, day) DO UPDATE
SET price_cents = EXCLUDED.price_cents,
    open        = EXCLUDED.open,
    updated_at  = now()
RETURNING ` + calendarDayColumns

type UpsertCalendarDayParams struct {
	ResourceID uuid.UUID   `json:"resource_id"`
	Day        pgtype.Date `json:"day"`
	PriceCents pgtype.Int8 `json:"price_cents"`
	Open       bool        `json:"open"`
}

func (q *Queries) UpsertCalendarDay(ctx context.Context, db DBTX, arg UpsertCalendarDayParams) (CalendarDays, error) {
	row := db.QueryRow(ctx, upsertCalendarDay, arg.ResourceID, arg.Day, arg.PriceCents, arg.Open)
	return scanCalendarDay(row)
}

const listCalendarDaysInRange = `-- name: ListCalendarDaysInRange :many
SELECT ` + calendarDayColumns + `
FROM calendar_days
WHERE resource_id = $1
  AND day >= $2
  AND day < $3
ORDER BY day
`

type ListCalendarDaysInRangeParams struct {
	ResourceID uuid.UUID   `json:"resource_id"`
	StartDay   pgtype.Date `json:"start_day"`
	EndDay     pgtype.Date `json:"end_day"`
}

func (q *Queries) ListCalendarDaysInRange(ctx context.Context, db DBTX, arg ListCalendarDaysInRangeParams) ([]CalendarDays, error) {
	rows, err := db.Query(ctx, listCalendarDaysInRange, arg.ResourceID, arg.StartDay, arg.EndDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CalendarDays{}
	for rows.Next() {
		i, err := scanCalendarDay(rows)
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

const getCalendarDayForUpdate = `-- name: GetCalendarDayForUpdate :one
SELECT ` + calendarDayColumns + `
FROM calendar_days
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetCalendarDayForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (CalendarDays, error) {
	row := db.QueryRow(ctx, getCalendarDayForUpdate, id)
	return scanCalendarDay(row)
}

const updateCalendarDay = `-- name: UpdateCalendarDay :one
UPDATE calendar_days
SET price_cents = $2,
    open        = $3,
    updated_at  = now()
WHERE id = $1
RETURNING ` + calendarDayColumns

type UpdateCalendarDayParams struct {
	ID         uuid.UUID   `json:"id"`
	PriceCents pgtype.Int8 `json:"price_cents"`
	Open       bool        `json:"open"`
}

func (q *Queries) UpdateCalendarDay(ctx context.Context, db DBTX, arg UpdateCalendarDayParams) (CalendarDays, error) {
	row := db.QueryRow(ctx, updateCalendarDay, arg.ID, arg.PriceCents, arg.Open)
	return scanCalendarDay(row)
}

const deleteCalendarDay = `-- name: DeleteCalendarDay :one
DELETE FROM calendar_days
WHERE id = $1
RETURNING ` + calendarDayColumns

func (q *Queries) DeleteCalendarDay(ctx context.Context, db DBTX, id uuid.UUID) (CalendarDays, error) {
	row := db.QueryRow(ctx, deleteCalendarDay, id)
	return scanCalendarDay(row)
}
