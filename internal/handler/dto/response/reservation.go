package response

import (
	"time"

	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	ResourceName    string    `json:"resource_name"`
	PrincipalID     uuid.UUID `json:"principal_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	GuestCount      int32     `json:"guest_count"`
	TotalPriceCents int64     `json:"total_price_cents"`
	PaidCents       int64     `json:"paid_cents"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationListItemResponse struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	PrincipalID     uuid.UUID `json:"principal_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	GuestCount      int32     `json:"guest_count"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor *string                        `json:"next_cursor,omitempty"`
}

type SweepResponse struct {
	Completed int `json:"completed"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		ResourceID:      v.ResourceID,
		ResourceName:    v.ResourceName,
		PrincipalID:     v.PrincipalID,
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		GuestCount:      v.GuestCount,
		TotalPriceCents: v.TotalPriceCents,
		PaidCents:       v.PaidCents,
		Currency:        v.Currency,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	out := &ReservationListResponse{Items: make([]*ReservationListItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, &ReservationListItemResponse{
			ID:              it.ID,
			ResourceID:      it.ResourceID,
			PrincipalID:     it.PrincipalID,
			StartDate:       it.StartDate,
			EndDate:         it.EndDate,
			GuestCount:      it.GuestCount,
			TotalPriceCents: it.TotalPriceCents,
			Currency:        it.Currency,
			Status:          it.Status,
			CreatedAt:       it.CreatedAt,
		})
	}
	if next != nil {
		out.NextCursor = &next.After
	}
	return out
}
