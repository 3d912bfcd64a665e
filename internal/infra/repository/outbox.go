package repository

import (
	"context"
	"encoding/json"

	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/shared"
)

type OutboxWriteQueries interface {
	EnqueueOutboxEvent(ctx context.Context, db pgsql.DBTX, arg pgsql.EnqueueOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      pgsql.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db pgsql.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, event shared.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return errs.Wrapf(err, "failed to marshal %s payload", event.Topic)
	}

	params := pgsql.EnqueueOutboxEventParams{
		Topic:    event.Topic,
		EventKey: event.Key,
		Payload:  payload,
		RunAt:    pgconv.TimeToPgtype(event.RunAt),
	}

	if err := r.queries.EnqueueOutboxEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}

	return nil
}
