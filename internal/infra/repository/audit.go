package repository

import (
	"context"

	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/shared"
)

type AuditWriteQueries interface {
	InsertReservationAudit(ctx context.Context, db pgsql.DBTX, arg pgsql.InsertReservationAuditParams) error
}

type AuditRepository struct {
	queries AuditWriteQueries
	db      pgsql.DBTX
}

func NewAuditRepository(queries AuditWriteQueries, db pgsql.DBTX) *AuditRepository {
	return &AuditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditRepository) Record(ctx context.Context, entry shared.AuditEntry) error {
	err := r.queries.InsertReservationAudit(ctx, r.db, pgsql.InsertReservationAuditParams{
		ReservationID: entry.ReservationID,
		ActorID:       entry.ActorID,
		Action:        entry.Action,
		FromStatus:    entry.FromStatus,
		ToStatus:      entry.ToStatus,
		Reason:        entry.Reason,
		CreatedAt:     pgconv.TimeToPgtype(entry.At),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record reservation audit", err)
	}
	return nil
}
