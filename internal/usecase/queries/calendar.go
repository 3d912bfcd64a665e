package queries

import (
	"context"

	"charter-booking/internal/domain/calendar"

	"github.com/google/uuid"
)

type CalendarReadStore interface {
	FindRange(ctx context.Context, resourceID uuid.UUID, r calendar.Range) ([]*CalendarDayView, error)
}

type CalendarQueries interface {
	// GetRange returns the explicit rows inside [start, end), ordered by date.
	GetRange(ctx context.Context, resourceID uuid.UUID, start, end calendar.Date) ([]*CalendarDayView, error)
}

type calendarQueriesImpl struct {
	store CalendarReadStore
}

func NewCalendarQueries(store CalendarReadStore) CalendarQueries {
	return &calendarQueriesImpl{store: store}
}

func (q *calendarQueriesImpl) GetRange(ctx context.Context, resourceID uuid.UUID, start, end calendar.Date) ([]*CalendarDayView, error) {
	rng, err := calendar.NewBoundedRange(start, end)
	if err != nil {
		return nil, err
	}
	return q.store.FindRange(ctx, resourceID, rng)
}
