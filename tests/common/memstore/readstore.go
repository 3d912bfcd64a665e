//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.ReservationReadStore = (*Store)(nil)
	_ queries.CalendarReadStore    = (*Store)(nil)
	_ queries.PaymentReadStore     = (*Store)(nil)
	_ queries.EligibilityReadStore = (*Store)(nil)
)

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.state.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	view := &queries.ReservationView{
		ID:              r.ID(),
		ResourceID:      r.ResourceID(),
		PrincipalID:     r.PrincipalID(),
		StartDate:       r.Stay().Start().String(),
		EndDate:         r.Stay().End().String(),
		GuestCount:      int32(r.GuestCount()), // #nosec G115 -- test data
		TotalPriceCents: r.TotalPrice().Cents(),
		PaidCents:       paidToDate(&s.state, r.ID()).Cents(),
		Currency:        r.Currency().String(),
		Status:          r.Status().String(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
	if res, ok := s.state.resources[r.ResourceID()]; ok {
		view.ResourceName = res.Name()
	}
	return view, nil
}

func (s *Store) FindByPrincipalFirstPage(_ context.Context, principalID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	return s.listForPrincipal(principalID, nil, limit), nil
}

func (s *Store) FindByPrincipalKeyset(_ context.Context, principalID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	after := func(r *reservation.Reservation) bool {
		if r.CreatedAt().Equal(lastCreatedAt) {
			return r.ID().String() < lastID.String()
		}
		return r.CreatedAt().Before(lastCreatedAt)
	}
	return s.listForPrincipal(principalID, after, limit), nil
}

func (s *Store) listForPrincipal(principalID uuid.UUID, keep func(*reservation.Reservation) bool, limit int32) []*queries.ReservationListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []*reservation.Reservation
	for _, r := range s.state.reservations {
		if r.PrincipalID() == principalID && (keep == nil || keep(r)) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt().Equal(rows[j].CreatedAt()) {
			return rows[i].ID().String() > rows[j].ID().String()
		}
		return rows[i].CreatedAt().After(rows[j].CreatedAt())
	})
	if len(rows) > int(limit) {
		rows = rows[:limit]
	}
	return listItems(rows)
}

func (s *Store) FindByResourceWindow(_ context.Context, resourceID uuid.UUID, window calendar.Range) ([]*queries.ReservationListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []*reservation.Reservation
	for _, r := range s.state.reservations {
		if r.ResourceID() == resourceID && window.Overlaps(r.Stay().Start(), r.Stay().End()) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Stay().Start().Before(rows[j].Stay().Start()) })
	return listItems(rows), nil
}

func (s *Store) FindRange(_ context.Context, resourceID uuid.UUID, r calendar.Range) ([]*queries.CalendarDayView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := daysInRange(&s.state, resourceID, r)
	out := make([]*queries.CalendarDayView, 0, len(days))
	for _, d := range days {
		view := &queries.CalendarDayView{
			ID:         d.ID(),
			ResourceID: d.ResourceID(),
			Date:       d.Date().String(),
			Open:       d.IsOpen(),
			UpdatedAt:  d.UpdatedAt(),
		}
		if d.Price() != nil {
			cents := d.Price().Cents()
			view.PriceCents = &cents
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Store) FindAttemptsByReservation(_ context.Context, reservationID uuid.UUID) ([]*queries.PaymentAttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var attempts []*payment.Attempt
	for _, a := range s.state.attempts {
		if a.ReservationID() == reservationID {
			attempts = append(attempts, a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].CreatedAt().Before(attempts[j].CreatedAt()) })

	out := make([]*queries.PaymentAttemptView, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, &queries.PaymentAttemptView{
			ID:            a.ID(),
			ReservationID: a.ReservationID(),
			AmountCents:   a.Amount().Cents(),
			Currency:      a.Currency().String(),
			Status:        string(a.Status()),
			ExternalRef:   a.ExternalRef(),
			SettledAt:     a.SettledAt(),
			CreatedAt:     a.CreatedAt(),
		})
	}
	return out, nil
}

func (s *Store) HasQualifyingStay(_ context.Context, principalID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return hasQualifyingStay(&s.state, principalID), nil
}

func (s *Store) LastLoyaltyAction(_ context.Context, principalID uuid.UUID, kind eligibility.ActionKind) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lastLoyalty(&s.state, principalID, kind), nil
}

func listItems(rows []*reservation.Reservation) []*queries.ReservationListItem {
	out := make([]*queries.ReservationListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, &queries.ReservationListItem{
			ID:              r.ID(),
			ResourceID:      r.ResourceID(),
			PrincipalID:     r.PrincipalID(),
			StartDate:       r.Stay().Start().String(),
			EndDate:         r.Stay().End().String(),
			GuestCount:      int32(r.GuestCount()), // #nosec G115 -- test data
			TotalPriceCents: r.TotalPrice().Cents(),
			Currency:        r.Currency().String(),
			Status:          r.Status().String(),
			CreatedAt:       r.CreatedAt(),
		})
	}
	return out
}
