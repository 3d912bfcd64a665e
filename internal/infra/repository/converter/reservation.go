package converter

import (
	"fmt"
	"math"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) pgsql.CreateReservationParams {
	guests := res.GuestCount()
	if guests > math.MaxInt32 {
		panic(fmt.Sprintf("guest count out of int32 range: %d", guests))
	}

	return pgsql.CreateReservationParams{
		ID:              res.ID(),
		ResourceID:      res.ResourceID(),
		PrincipalID:     res.PrincipalID(),
		StartDate:       pgconv.DateToPgtype(res.Stay().Start().Time()),
		EndDate:         pgconv.DateToPgtype(res.Stay().End().Time()),
		GuestCount:      int32(guests), // #nosec G115 -- bounds checked above
		TotalPriceCents: res.TotalPrice().Cents(),
		Currency:        res.Currency().String(),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow fails only on rows the schema should have rejected.
func ReservationFromRow(row pgsql.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}

	stay, err := calendar.NewRange(
		calendar.NewDate(pgconv.DateFromPgtype(row.StartDate)),
		calendar.NewDate(pgconv.DateFromPgtype(row.EndDate)),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.ResourceID,
		row.PrincipalID,
		stay,
		int(row.GuestCount),
		money.FromCents(row.TotalPriceCents),
		money.Currency(row.Currency),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromRows(rows []pgsql.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
