package response

import (
	"time"

	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CalendarDayResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Date       string    `json:"date"`
	PriceCents *int64    `json:"price_cents,omitempty"`
	Open       bool      `json:"open"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CalendarResponse struct {
	ResourceID uuid.UUID              `json:"resource_id"`
	Start      string                 `json:"start"`
	End        string                 `json:"end"`
	Days       []*CalendarDayResponse `json:"days"`
}

func FromCalendarDayView(v *queries.CalendarDayView) *CalendarDayResponse {
	res := &CalendarDayResponse{
		ID:         v.ID,
		ResourceID: v.ResourceID,
		Date:       v.Date,
		Open:       v.Open,
		UpdatedAt:  v.UpdatedAt,
	}
	if v.PriceCents != nil {
		price := *v.PriceCents
		res.PriceCents = &price
	}
	return res
}

func FromCalendarDays(views []*queries.CalendarDayView) []*CalendarDayResponse {
	out := make([]*CalendarDayResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCalendarDayView(v))
	}
	return out
}
