package repository

import (
	"context"
	"time"

	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LoyaltyWriteQueries interface {
	AdvisoryXactLock(ctx context.Context, db pgsql.DBTX, key string) error
	GetLastLoyaltyAction(ctx context.Context, db pgsql.DBTX, arg pgsql.GetLastLoyaltyActionParams) (pgtype.Timestamptz, error)
	InsertLoyaltyAction(ctx context.Context, db pgsql.DBTX, arg pgsql.InsertLoyaltyActionParams) (pgsql.LoyaltyActions, error)
}

type LoyaltyRepository struct {
	queries LoyaltyWriteQueries
	db      pgsql.DBTX
}

func NewLoyaltyRepository(queries LoyaltyWriteQueries, db pgsql.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LoyaltyRepository) LockPrincipal(ctx context.Context, principalID uuid.UUID) error {
	if err := r.queries.AdvisoryXactLock(ctx, r.db, "loyalty:"+principalID.String()); err != nil {
		return infra.WrapRepoErr("failed to lock principal", err)
	}
	return nil
}

// LastPerformedAt returns nil when the principal never performed kind.
func (r *LoyaltyRepository) LastPerformedAt(ctx context.Context, principalID uuid.UUID, kind eligibility.ActionKind) (*time.Time, error) {
	at, err := r.queries.GetLastLoyaltyAction(ctx, r.db, pgsql.GetLastLoyaltyActionParams{
		PrincipalID: principalID,
		Kind:        kind.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get last loyalty action", err)
	}
	return pgconv.TimePtrFromPgtype(at), nil
}

func (r *LoyaltyRepository) Record(ctx context.Context, principalID uuid.UUID, kind eligibility.ActionKind, performedAt time.Time) error {
	_, err := r.queries.InsertLoyaltyAction(ctx, r.db, pgsql.InsertLoyaltyActionParams{
		PrincipalID: principalID,
		Kind:        kind.String(),
		PerformedAt: pgconv.TimeToPgtype(performedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record loyalty action", err)
	}
	return nil
}
