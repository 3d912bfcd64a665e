//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
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

type memTx struct {
	st *state
}

func (t *memTx) Resources() shared.ResourceRepository       { return resourceRepo{t.st} }
func (t *memTx) Calendar() shared.CalendarRepository        { return calendarRepo{t.st} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.st} }
func (t *memTx) Payments() shared.PaymentRepository         { return paymentRepo{t.st} }
func (t *memTx) Loyalty() shared.LoyaltyRepository          { return loyaltyRepo{t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository  { return idempotencyRepo{t.st} }
func (t *memTx) Outbox() shared.OutboxRepository            { return outboxRepo{t.st} }
func (t *memTx) Audit() shared.AuditRepository              { return auditRepo{t.st} }
func (t *memTx) Reads() shared.CommandReads                 { return txReads{t.st} }

type resourceRepo struct{ st *state }

func (r resourceRepo) LockForUpdate(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, ok := r.st.resources[id]
	if !ok {
		return nil, notFound("resource")
	}
	return res, nil
}

type calendarRepo struct{ st *state }

func (r calendarRepo) Upsert(_ context.Context, resourceID uuid.UUID, days []calendar.DayInput) ([]*calendar.Day, error) {
	now := time.Now()
	out := make([]*calendar.Day, 0, len(days))
	for _, in := range days {
		id, createdAt := uuid.New(), now
		for _, existing := range r.st.days {
			if existing.ResourceID() == resourceID && existing.Date().Equal(in.Date) {
				id, createdAt = existing.ID(), existing.CreatedAt()
				break
			}
		}
		d := calendar.ReconstructDay(id, resourceID, in.Date, centsToMoney(in.PriceCents), in.Open, createdAt, now)
		r.st.days[id] = d
		out = append(out, d)
	}
	return out, nil
}

func (r calendarRepo) ListInRange(_ context.Context, resourceID uuid.UUID, rng calendar.Range) ([]*calendar.Day, error) {
	return daysInRange(r.st, resourceID, rng), nil
}

func (r calendarRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*calendar.Day, error) {
	d, ok := r.st.days[id]
	if !ok {
		return nil, notFound("calendar day")
	}
	return d, nil
}

func (r calendarRepo) Update(_ context.Context, id uuid.UUID, priceCents *int64, open bool) (*calendar.Day, error) {
	d, ok := r.st.days[id]
	if !ok {
		return nil, notFound("calendar day")
	}
	updated := calendar.ReconstructDay(d.ID(), d.ResourceID(), d.Date(), centsToMoney(priceCents), open, d.CreatedAt(), time.Now())
	r.st.days[id] = updated
	return updated, nil
}

func (r calendarRepo) Delete(_ context.Context, id uuid.UUID) (*calendar.Day, error) {
	d, ok := r.st.days[id]
	if !ok {
		return nil, notFound("calendar day")
	}
	delete(r.st.days, id)
	return d, nil
}

type reservationRepo struct{ st *state }

// Create rejects overlapping blocking reservations like the exclusion constraint does.
func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if res.IsBlocking() {
		for _, other := range r.st.reservations {
			if other.ResourceID() == res.ResourceID() && other.IsBlocking() &&
				other.Stay().Overlaps(res.Stay().Start(), res.Stay().End()) {
				return infra.WrapRepoErr("reservation overlaps", nil, infra.KindConflict)
			}
		}
	}
	c := *res
	r.st.reservations[res.ID()] = &c
	return nil
}

func (r reservationRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.st.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	c := *res
	return &c, nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.st.reservations[res.ID()]; !ok {
		return notFound("reservation")
	}
	c := *res
	r.st.reservations[res.ID()] = &c
	return nil
}

func (r reservationRepo) ListBlockingOverlaps(_ context.Context, resourceID uuid.UUID, rng calendar.Range) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.st.reservations {
		if res.ResourceID() == resourceID && res.IsBlocking() && rng.Overlaps(res.Stay().Start(), res.Stay().End()) {
			c := *res
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stay().Start().Before(out[j].Stay().Start()) })
	return out, nil
}

func (r reservationRepo) ListDueForCompletion(_ context.Context, today calendar.Date, limit int32) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.st.reservations {
		if res.Status() == reservation.StatusConfirmed && !res.Stay().End().After(today) {
			c := *res
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stay().End().Before(out[j].Stay().End()) })
	if len(out) > int(limit) {
		out = out[:limit]
	}
	return out, nil
}

type paymentRepo struct{ st *state }

func (r paymentRepo) Create(_ context.Context, attempt *payment.Attempt) error {
	c := *attempt
	r.st.attempts[attempt.ID()] = &c
	return nil
}

func (r paymentRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*payment.Attempt, error) {
	a, ok := r.st.attempts[id]
	if !ok {
		return nil, notFound("payment attempt")
	}
	c := *a
	return &c, nil
}

func (r paymentRepo) Settle(_ context.Context, attempt *payment.Attempt) error {
	stored, ok := r.st.attempts[attempt.ID()]
	if !ok {
		return notFound("payment attempt")
	}
	if stored.Status() != payment.StatusPending {
		return infra.WrapRepoErr("payment attempt already settled", nil, infra.KindConflict)
	}
	c := *attempt
	r.st.attempts[attempt.ID()] = &c
	return nil
}

func (r paymentRepo) SumCompleted(_ context.Context, reservationID uuid.UUID) (money.Money, error) {
	return paidToDate(r.st, reservationID), nil
}

type loyaltyRepo struct{ st *state }

func (r loyaltyRepo) LockPrincipal(context.Context, uuid.UUID) error { return nil }

func (r loyaltyRepo) LastPerformedAt(_ context.Context, principalID uuid.UUID, kind eligibility.ActionKind) (*time.Time, error) {
	return lastLoyalty(r.st, principalID, kind), nil
}

func (r loyaltyRepo) Record(_ context.Context, principalID uuid.UUID, kind eligibility.ActionKind, performedAt time.Time) error {
	r.st.loyalty = append(r.st.loyalty, loyaltyRow{principalID: principalID, kind: kind, performedAt: performedAt})
	return nil
}

type idempotencyRepo struct{ st *state }

func (r idempotencyRepo) TryInsert(_ context.Context, key, principalID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idempotencyKey{key: key, principalID: principalID}
	if _, ok := r.st.idempotency[k]; ok {
		return false, nil
	}
	r.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		PrincipalID: principalID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) GetForUpdate(_ context.Context, key, principalID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idempotency[idempotencyKey{key: key, principalID: principalID}]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

func (r idempotencyRepo) ClaimExpired(_ context.Context, key, principalID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	k := idempotencyKey{key: key, principalID: principalID}
	rec, ok := r.st.idempotency[k]
	if !ok {
		return false, nil
	}
	rec.Status = shared.IdempotencyStatusProcessing
	rec.RequestHash = requestHash
	rec.ResultReservationID = nil
	rec.ExpiresAt = expiresAt
	r.st.idempotency[k] = rec
	return true, nil
}

func (r idempotencyRepo) UpdateStatusCompleted(_ context.Context, key, principalID, reservationID uuid.UUID) error {
	k := idempotencyKey{key: key, principalID: principalID}
	rec, ok := r.st.idempotency[k]
	if !ok {
		return notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultReservationID = &reservationID
	r.st.idempotency[k] = rec
	return nil
}

// ExpireIdempotencyKeys moves every key's expiry into the past.
func (s *Store) ExpireIdempotencyKeys() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, rec := range s.state.idempotency {
		rec.ExpiresAt = time.Time{}
		s.state.idempotency[k] = rec
	}
}

type outboxRepo struct{ st *state }

func (r outboxRepo) Enqueue(_ context.Context, event shared.OutboxEvent) error {
	r.st.outbox = append(r.st.outbox, event)
	return nil
}

type auditRepo struct{ st *state }

func (r auditRepo) Record(_ context.Context, entry shared.AuditEntry) error {
	r.st.audit = append(r.st.audit, entry)
	return nil
}

type txReads struct{ st *state }

func (r txReads) ResourceByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, ok := r.st.resources[id]
	if !ok {
		return nil, notFound("resource")
	}
	return res, nil
}

func (r txReads) PaidToDate(_ context.Context, reservationID uuid.UUID) (money.Money, error) {
	return paidToDate(r.st, reservationID), nil
}

func (r txReads) HasQualifyingStay(_ context.Context, principalID uuid.UUID) (bool, error) {
	return hasQualifyingStay(r.st, principalID), nil
}

type lockedReads struct{ s *Store }

func (r lockedReads) ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return txReads{&r.s.state}.ResourceByID(ctx, id)
}

func (r lockedReads) PaidToDate(ctx context.Context, reservationID uuid.UUID) (money.Money, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return txReads{&r.s.state}.PaidToDate(ctx, reservationID)
}

func (r lockedReads) HasQualifyingStay(ctx context.Context, principalID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return txReads{&r.s.state}.HasQualifyingStay(ctx, principalID)
}

func centsToMoney(cents *int64) *money.Money {
	if cents == nil {
		return nil
	}
	m := money.FromCents(*cents)
	return &m
}

func daysInRange(st *state, resourceID uuid.UUID, rng calendar.Range) []*calendar.Day {
	var out []*calendar.Day
	for _, d := range st.days {
		if d.ResourceID() == resourceID && rng.Contains(d.Date()) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date().Before(out[j].Date()) })
	return out
}
