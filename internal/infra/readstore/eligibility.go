package readstore

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

type EligibilityReadQueries interface {
	HasQualifyingReservation(ctx context.Context, db pgsql.DBTX, principalID uuid.UUID) (bool, error)
	GetLastLoyaltyAction(ctx context.Context, db pgsql.DBTX, arg pgsql.GetLastLoyaltyActionParams) (pgtype.Timestamptz, error)
}

type EligibilityReadStore struct {
	queries EligibilityReadQueries
	db      pgsql.DBTX
}

func NewEligibilityReadStore(queries EligibilityReadQueries, db pgsql.DBTX) *EligibilityReadStore {
	return &EligibilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EligibilityReadStore) HasQualifyingStay(ctx context.Context, principalID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasQualifyingReservation(ctx, r.db, principalID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check qualifying reservation", err)
	}
	return ok, nil
}

// LastLoyaltyAction returns nil when the principal never performed kind.
func (r *EligibilityReadStore) LastLoyaltyAction(ctx context.Context, principalID uuid.UUID, kind eligibility.ActionKind) (*time.Time, error) {
	ts, err := r.queries.GetLastLoyaltyAction(ctx, r.db, pgsql.GetLastLoyaltyActionParams{
		PrincipalID: principalID,
		Kind:        kind.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get last loyalty action", err)
	}
	return pgconv.TimePtrFromPgtype(ts), nil
}
