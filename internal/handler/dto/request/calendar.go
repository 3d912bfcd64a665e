package request

import (
	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/usecase/commands"
)

type CalendarDayRequest struct {
	Date       string `json:"date" binding:"required"`
	PriceCents *int64 `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	Open       *bool  `json:"open" binding:"required"`
}

type SetCalendarDaysRequest struct {
	Days []CalendarDayRequest `json:"days" binding:"required,min=1,max=366,dive"`
}

func (r SetCalendarDaysRequest) ToInputs() ([]calendar.DayInput, error) {
	out := make([]calendar.DayInput, 0, len(r.Days))
	for _, d := range r.Days {
		date, err := calendar.ParseDate(d.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, calendar.DayInput{
			Date:       date,
			PriceCents: d.PriceCents,
			Open:       *d.Open,
		})
	}
	return out, nil
}

type PatchCalendarDayRequest struct {
	Open       *bool  `json:"open,omitempty"`
	PriceCents *int64 `json:"price_cents,omitempty" binding:"omitempty,min=0"`
}

func (r PatchCalendarDayRequest) ToPatch() commands.DayPatch {
	return commands.DayPatch{Open: r.Open, PriceCents: r.PriceCents}
}
