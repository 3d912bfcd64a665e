package readstore

import (
	"context"

	"charter-booking/internal/domain/resource"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/repository/converter"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Resources, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      pgsql.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db pgsql.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return converter.ResourceFromRow(row), nil
}
