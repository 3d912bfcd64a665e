package repository

import (
	"context"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/repository/converter"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CalendarWriteQueries interface {
	UpsertCalendarDay(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertCalendarDayParams) (pgsql.CalendarDays, error)
	ListCalendarDaysInRange(ctx context.Context, db pgsql.DBTX, arg pgsql.ListCalendarDaysInRangeParams) ([]pgsql.CalendarDays, error)
	GetCalendarDayForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CalendarDays, error)
	UpdateCalendarDay(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCalendarDayParams) (pgsql.CalendarDays, error)
	DeleteCalendarDay(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.CalendarDays, error)
}

type CalendarRepository struct {
	queries CalendarWriteQueries
	db      pgsql.DBTX
}

func NewCalendarRepository(queries CalendarWriteQueries, db pgsql.DBTX) *CalendarRepository {
	return &CalendarRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert writes a normalized batch; rows come back in input order.
func (r *CalendarRepository) Upsert(ctx context.Context, resourceID uuid.UUID, days []calendar.DayInput) ([]*calendar.Day, error) {
	out := make([]*calendar.Day, 0, len(days))
	for _, d := range days {
		row, err := r.queries.UpsertCalendarDay(ctx, r.db, pgsql.UpsertCalendarDayParams{
			ResourceID: resourceID,
			Day:        pgconv.DateToPgtype(d.Date.Time()),
			PriceCents: pgconv.Int64PtrToPgtype(d.PriceCents),
			Open:       d.Open,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to upsert calendar day", err)
		}
		out = append(out, converter.CalendarDayFromRow(row))
	}
	return out, nil
}

func (r *CalendarRepository) ListInRange(ctx context.Context, resourceID uuid.UUID, rng calendar.Range) ([]*calendar.Day, error) {
	rows, err := r.queries.ListCalendarDaysInRange(ctx, r.db, pgsql.ListCalendarDaysInRangeParams{
		ResourceID: resourceID,
		StartDay:   pgconv.DateToPgtype(rng.Start().Time()),
		EndDay:     pgconv.DateToPgtype(rng.End().Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar days", err)
	}
	return converter.CalendarDaysFromRows(rows), nil
}

func (r *CalendarRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*calendar.Day, error) {
	row, err := r.queries.GetCalendarDayForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock calendar day", err)
	}
	return converter.CalendarDayFromRow(row), nil
}

func (r *CalendarRepository) Update(ctx context.Context, id uuid.UUID, priceCents *int64, open bool) (*calendar.Day, error) {
	row, err := r.queries.UpdateCalendarDay(ctx, r.db, pgsql.UpdateCalendarDayParams{
		ID:         id,
		PriceCents: pgconv.Int64PtrToPgtype(priceCents),
		Open:       open,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update calendar day", err)
	}
	return converter.CalendarDayFromRow(row), nil
}

func (r *CalendarRepository) Delete(ctx context.Context, id uuid.UUID) (*calendar.Day, error) {
	row, err := r.queries.DeleteCalendarDay(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete calendar day", err)
	}
	return converter.CalendarDayFromRow(row), nil
}
