package request

import (
	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
	GuestCount int       `json:"guest_count" binding:"required,min=1"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	start, err := calendar.ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	end, err := calendar.ParseDate(r.EndDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		ResourceID: r.ResourceID,
		Start:      start,
		End:        end,
		GuestCount: r.GuestCount,
	}, nil
}

type OverrideConfirmRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ListReservationsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// DateRangeQuery is a half-open [start, end) window of YYYY-MM-DD dates.
type DateRangeQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

func (q DateRangeQuery) Dates() (calendar.Date, calendar.Date, error) {
	start, err := calendar.ParseDate(q.Start)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	end, err := calendar.ParseDate(q.End)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	return start, end, nil
}
