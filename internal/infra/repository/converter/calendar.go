package converter

import (
	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/resource"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/pgconv"
)

func CalendarDayFromRow(row pgsql.CalendarDays) *calendar.Day {
	var price *money.Money
	if cents := pgconv.Int64PtrFromPgtype(row.PriceCents); cents != nil {
		m := money.FromCents(*cents)
		price = &m
	}

	return calendar.ReconstructDay(
		row.ID,
		row.ResourceID,
		calendar.NewDate(pgconv.DateFromPgtype(row.Day)),
		price,
		row.Open,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func CalendarDaysFromRows(rows []pgsql.CalendarDays) []*calendar.Day {
	out := make([]*calendar.Day, len(rows))
	for i, row := range rows {
		out[i] = CalendarDayFromRow(row)
	}
	return out
}

func ResourceFromRow(row pgsql.Resources) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.Name,
		int(row.Capacity),
		money.FromCents(row.BaseRateCents),
		money.Currency(row.Currency),
		row.Active,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
