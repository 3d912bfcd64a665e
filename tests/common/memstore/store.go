//go:build unit || e2e

// Package memstore is an in-memory unit of work for usecase tests. Within
// holds a single lock for the whole transaction and restores a snapshot when
// fn fails, so commands see the same all-or-nothing behaviour as PostgreSQL.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/money"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/domain/resource"
	"charter-booking/internal/infra"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type idempotencyKey struct {
	key         uuid.UUID
	principalID uuid.UUID
}

type loyaltyRow struct {
	principalID uuid.UUID
	kind        eligibility.ActionKind
	performedAt time.Time
}

type state struct {
	resources    map[uuid.UUID]*resource.Resource
	days         map[uuid.UUID]*calendar.Day
	reservations map[uuid.UUID]*reservation.Reservation
	attempts     map[uuid.UUID]*payment.Attempt
	idempotency  map[idempotencyKey]shared.IdempotencyRecord
	loyalty      []loyaltyRow
	outbox       []shared.OutboxEvent
	audit        []shared.AuditEntry
}

func (s state) clone() state {
	c := state{
		resources:    make(map[uuid.UUID]*resource.Resource, len(s.resources)),
		days:         make(map[uuid.UUID]*calendar.Day, len(s.days)),
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(s.reservations)),
		attempts:     make(map[uuid.UUID]*payment.Attempt, len(s.attempts)),
		idempotency:  make(map[idempotencyKey]shared.IdempotencyRecord, len(s.idempotency)),
		loyalty:      append([]loyaltyRow(nil), s.loyalty...),
		outbox:       append([]shared.OutboxEvent(nil), s.outbox...),
		audit:        append([]shared.AuditEntry(nil), s.audit...),
	}
	for k, v := range s.resources {
		c.resources[k] = v
	}
	for k, v := range s.days {
		c.days[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.attempts {
		c.attempts[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	return c
}

// Store implements shared.UnitOfWork and the query read stores. Entities are
// stored as copies, so mutating a value returned from a repository has no
// effect until it is written back.
type Store struct {
	mu    sync.Mutex
	state state
	// Commits counts successful Within calls.
	Commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: state{}.clone()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(ctx, &memTx{st: &s.state}); err != nil {
		s.state = snapshot
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return lockedReads{s: s}
}

// Seeding and inspection helpers.

func (s *Store) AddResource(r *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.resources[r.ID()] = r
}

func (s *Store) AddDay(d *calendar.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.days[d.ID()] = d
}

func (s *Store) AddReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *r
	s.state.reservations[r.ID()] = &c
}

func (s *Store) AddAttempt(a *payment.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *a
	s.state.attempts[a.ID()] = &c
}

func (s *Store) AddLoyaltyAction(principalID uuid.UUID, kind eligibility.ActionKind, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.loyalty = append(s.state.loyalty, loyaltyRow{principalID: principalID, kind: kind, performedAt: at})
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.reservations[id]
	if !ok {
		return nil, false
	}
	c := *r
	return &c, true
}

func (s *Store) Attempt(id uuid.UUID) (*payment.Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.attempts[id]
	if !ok {
		return nil, false
	}
	c := *a
	return &c, true
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.state.reservations))
	for _, r := range s.state.reservations {
		c := *r
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Days() []*calendar.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*calendar.Day, 0, len(s.state.days))
	for _, d := range s.state.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date().Before(out[j].Date()) })
	return out
}

func (s *Store) Outbox() []shared.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.OutboxEvent(nil), s.state.outbox...)
}

// Topics lists the outbox topics in enqueue order.
func (s *Store) Topics() []string {
	events := s.Outbox()
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Topic)
	}
	return out
}

func (s *Store) Audit() []shared.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.AuditEntry(nil), s.state.audit...)
}

func (s *Store) LoyaltyCount(principalID uuid.UUID, kind eligibility.ActionKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, row := range s.state.loyalty {
		if row.principalID == principalID && row.kind == kind {
			n++
		}
	}
	return n
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func paidToDate(st *state, reservationID uuid.UUID) money.Money {
	sum := money.Zero()
	for _, a := range st.attempts {
		if a.ReservationID() == reservationID && a.Status() == payment.StatusCompleted {
			sum = sum.Add(a.Amount())
		}
	}
	return sum
}

func hasQualifyingStay(st *state, principalID uuid.UUID) bool {
	for _, r := range st.reservations {
		if r.PrincipalID() == principalID && r.Status().GrantsEligibility() {
			return true
		}
	}
	return false
}

func lastLoyalty(st *state, principalID uuid.UUID, kind eligibility.ActionKind) *time.Time {
	var last *time.Time
	for _, row := range st.loyalty {
		if row.principalID != principalID || row.kind != kind {
			continue
		}
		if last == nil || row.performedAt.After(*last) {
			at := row.performedAt
			last = &at
		}
	}
	return last
}
