//go:build unit || e2e

package builder

import (
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarDayBuilder struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Date       string
	PriceCents *int64
	Open       bool
	UpdatedAt  time.Time
}

func NewCalendarDayBuilder() *CalendarDayBuilder {
	return &CalendarDayBuilder{
		ID:         uuid.New(),
		ResourceID: uuid.New(),
		Date:       "2026-06-10",
		Open:       true,
		UpdatedAt:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CalendarDayBuilder) With(mutate func(*CalendarDayBuilder)) *CalendarDayBuilder {
	mutate(b)
	return b
}

func (b *CalendarDayBuilder) date() calendar.Date {
	d, err := calendar.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	return d
}

func (b *CalendarDayBuilder) BuildDomain() *calendar.Day {
	var price *money.Money
	if b.PriceCents != nil {
		p := money.FromCents(*b.PriceCents)
		price = &p
	}
	return calendar.ReconstructDay(b.ID, b.ResourceID, b.date(), price, b.Open, b.UpdatedAt, b.UpdatedAt)
}

func (b *CalendarDayBuilder) BuildInfra() pgsql.CalendarDays {
	price := pgtype.Int8{}
	if b.PriceCents != nil {
		price = pgtype.Int8{Int64: *b.PriceCents, Valid: true}
	}
	return pgsql.CalendarDays{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		Day:        pgtype.Date{Time: b.date().Time(), Valid: true},
		PriceCents: price,
		Open:       b.Open,
		CreatedAt:  pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *CalendarDayBuilder) BuildView() *queries.CalendarDayView {
	return &queries.CalendarDayView{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		Date:       b.Date,
		PriceCents: b.PriceCents,
		Open:       b.Open,
		UpdatedAt:  b.UpdatedAt,
	}
}
