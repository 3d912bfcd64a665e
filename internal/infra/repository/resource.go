package repository

import (
	"context"

	"charter-booking/internal/domain/resource"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	LockResourceForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Resources, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      pgsql.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db pgsql.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) LockForUpdate(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.LockResourceForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}
	return converter.ResourceFromRow(row), nil
}
