package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const enqueueOutboxEvent = `-- name: EnqueueOutboxEvent :exec
INSERT INTO outbox_events (topic, event_key, payload, run_at)
VALUES ($1, $2, $3, $4)
`

type EnqueueOutboxEventParams struct {
	Topic    string             `json:"topic"`
	EventKey string             `json:"event_key"`
	Payload  []byte             `json:"payload"`
	RunAt    pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) EnqueueOutboxEvent(ctx context.Context, db DBTX, arg EnqueueOutboxEventParams) error {
	_, err := db.Exec(ctx, enqueueOutboxEvent, arg.Topic, arg.EventKey, arg.Payload, arg.RunAt)
	return err
}

const claimDueOutboxEvents = `-- name: ClaimDueOutboxEvents :many
SELECT id, topic, event_key, payload, status, attempts, last_error, run_at, published_at, created_at
FROM outbox_events
WHERE status = 'queued'
  AND run_at <= $1
ORDER BY run_at, created_at
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimDueOutboxEventsParams struct {
	Now   pgtype.Timestamptz `json:"now"`
	Limit int32              `json:"limit"`
}

// ClaimDueOutboxEvents locks due rows so concurrent relays never publish the same event.
func (q *Queries) ClaimDueOutboxEvents(ctx context.Context, db DBTX, arg ClaimDueOutboxEventsParams) ([]OutboxEvents, error) {
	rows, err := db.Query(ctx, claimDueOutboxEvents, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OutboxEvents{}
	for rows.Next() {
		var i OutboxEvents
		if err := rows.Scan(
			&i.ID,
			&i.Topic,
			&i.EventKey,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.RunAt,
			&i.PublishedAt,
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

const markOutboxEventPublished = `-- name: MarkOutboxEventPublished :exec
UPDATE outbox_events
SET status = 'published',
    attempts = attempts + 1,
    published_at = $2
WHERE id = $1
`

type MarkOutboxEventPublishedParams struct {
	ID          uuid.UUID          `json:"id"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`
}

func (q *Queries) MarkOutboxEventPublished(ctx context.Context, db DBTX, arg MarkOutboxEventPublishedParams) error {
	_, err := db.Exec(ctx, markOutboxEventPublished, arg.ID, arg.PublishedAt)
	return err
}

const markOutboxEventRetry = `-- name: MarkOutboxEventRetry :exec
UPDATE outbox_events
SET attempts = attempts + 1,
    last_error = $2,
    run_at = $3,
    status = CASE WHEN attempts + 1 >= $4 THEN 'failed' ELSE 'queued' END
WHERE id = $1
`

type MarkOutboxEventRetryParams struct {
	ID          uuid.UUID          `json:"id"`
	LastError   pgtype.Text        `json:"last_error"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	MaxAttempts int32              `json:"max_attempts"`
}

func (q *Queries) MarkOutboxEventRetry(ctx context.Context, db DBTX, arg MarkOutboxEventRetryParams) error {
	_, err := db.Exec(ctx, markOutboxEventRetry, arg.ID, arg.LastError, arg.RunAt, arg.MaxAttempts)
	return err
}
