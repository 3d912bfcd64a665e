//go:build unit || e2e

package builder

import (
	"time"

	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/resource"
	"charter-booking/internal/infra/pgsql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceBuilder struct {
	ID            uuid.UUID
	Name          string
	Capacity      int
	BaseRateCents int64
	Currency      string
	Active        bool
	UpdatedAt     time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:            uuid.New(),
		Name:          "Sea Breeze 42",
		Capacity:      8,
		BaseRateCents: 10000,
		Currency:      "USD",
		Active:        true,
		UpdatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(
		b.ID,
		b.Name,
		b.Capacity,
		money.FromCents(b.BaseRateCents),
		money.Currency(b.Currency),
		b.Active,
		b.UpdatedAt,
	)
}

func (b *ResourceBuilder) BuildInfra() pgsql.Resources {
	return pgsql.Resources{
		ID:            b.ID,
		Name:          b.Name,
		Capacity:      int32(b.Capacity),
		BaseRateCents: b.BaseRateCents,
		Currency:      b.Currency,
		Active:        b.Active,
		CreatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}
