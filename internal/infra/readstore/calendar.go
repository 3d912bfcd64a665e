package readstore

import (
	"context"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CalendarReadQueries interface {
	ListCalendarDaysInRange(ctx context.Context, db pgsql.DBTX, arg pgsql.ListCalendarDaysInRangeParams) ([]pgsql.CalendarDays, error)
}

type CalendarReadStore struct {
	queries CalendarReadQueries
	db      pgsql.DBTX
}

func NewCalendarReadStore(queries CalendarReadQueries, db pgsql.DBTX) *CalendarReadStore {
	return &CalendarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarReadStore) FindRange(ctx context.Context, resourceID uuid.UUID, rng calendar.Range) ([]*queries.CalendarDayView, error) {
	rows, err := r.queries.ListCalendarDaysInRange(ctx, r.db, pgsql.ListCalendarDaysInRangeParams{
		ResourceID: resourceID,
		StartDay:   pgconv.DateToPgtype(rng.Start().Time()),
		EndDay:     pgconv.DateToPgtype(rng.End().Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar days", err)
	}

	result := make([]*queries.CalendarDayView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CalendarDayView{
			ID:         row.ID,
			ResourceID: row.ResourceID,
			Date:       pgconv.DateFromPgtype(row.Day).Format(calendar.DateLayout),
			PriceCents: pgconv.Int64PtrFromPgtype(row.PriceCents),
			Open:       row.Open,
			UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
