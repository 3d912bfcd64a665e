//go:build unit || e2e

package builder

import (
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/reservation"
	reqdto "charter-booking/internal/handler/dto/request"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	ResourceName    string
	PrincipalID     uuid.UUID
	StartDate       string
	EndDate         string
	GuestCount      int
	TotalPriceCents int64
	PaidCents       int64
	Currency        string
	Status          reservation.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:              uuid.New(),
		ResourceID:      uuid.New(),
		ResourceName:    "Sea Breeze 42",
		PrincipalID:     uuid.New(),
		StartDate:       "2026-06-10",
		EndDate:         "2026-06-13",
		GuestCount:      2,
		TotalPriceCents: 30000,
		Currency:        "USD",
		Status:          reservation.StatusPending,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) stay() calendar.Range {
	start, err := calendar.ParseDate(b.StartDate)
	if err != nil {
		panic(err)
	}
	end, err := calendar.ParseDate(b.EndDate)
	if err != nil {
		panic(err)
	}
	rng, err := calendar.NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return rng
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID,
		b.ResourceID,
		b.PrincipalID,
		b.stay(),
		b.GuestCount,
		money.FromCents(b.TotalPriceCents),
		money.Currency(b.Currency),
		b.Status,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() pgsql.Reservations {
	stay := b.stay()
	return pgsql.Reservations{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		PrincipalID:     b.PrincipalID,
		StartDate:       pgtype.Date{Time: stay.Start().Time(), Valid: true},
		EndDate:         pgtype.Date{Time: stay.End().Time(), Valid: true},
		GuestCount:      int32(b.GuestCount),
		TotalPriceCents: b.TotalPriceCents,
		Currency:        b.Currency,
		Status:          b.Status.String(),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		ResourceName:    b.ResourceName,
		PrincipalID:     b.PrincipalID,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		GuestCount:      int32(b.GuestCount),
		TotalPriceCents: b.TotalPriceCents,
		PaidCents:       b.PaidCents,
		Currency:        b.Currency,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		PrincipalID:     b.PrincipalID,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		GuestCount:      int32(b.GuestCount),
		TotalPriceCents: b.TotalPriceCents,
		Currency:        b.Currency,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ResourceID: b.ResourceID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		GuestCount: b.GuestCount,
	}
}
