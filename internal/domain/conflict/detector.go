// Package conflict decides whether a requested stay can be booked against the
// calendar and the reservations that already hold dates on the resource.
package conflict

import (
	"strings"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/pkg/errs"
)

var (
	ErrClosedDay = errs.NewKind("requested range includes a closed day", errs.ErrConflict)
	ErrOverlap   = errs.NewKind("requested range overlaps an existing reservation", errs.ErrConflict)
)

// Detect returns nil when window is free. Closed days are reported before
// overlaps. Only pending and confirmed reservations block.
func Detect(window calendar.Range, days []*calendar.Day, existing []*reservation.Reservation) error {
	if closed := calendar.ClosedWithin(days, window); len(closed) > 0 {
		dates := make([]string, 0, len(closed))
		for _, d := range closed {
			dates = append(dates, d.String())
		}
		return errs.Wrapf(ErrClosedDay, "closed: %s", strings.Join(dates, ","))
	}

	for _, r := range existing {
		if !r.IsBlocking() {
			continue
		}
		if r.Stay().Overlaps(window.Start(), window.End()) {
			return errs.Wrapf(ErrOverlap, "reservation %s holds %s", r.ID(), r.Stay())
		}
	}
	return nil
}
