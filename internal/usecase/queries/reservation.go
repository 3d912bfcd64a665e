package queries

import (
	"context"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/infra"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByPrincipalFirstPage(ctx context.Context, principalID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByPrincipalKeyset(ctx context.Context, principalID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByResourceWindow(ctx context.Context, resourceID uuid.UUID, window calendar.Range) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips ownership checks; used for idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListForPrincipal(ctx context.Context, actor user.Principal, principalID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	// ListForResource returns reservations of any status intersecting [start, end), ordered by start.
	ListForResource(ctx context.Context, actor user.Principal, resourceID uuid.UUID, start, end calendar.Date) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanActFor(view.PrincipalID) {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForPrincipal(ctx context.Context, actor user.Principal, principalID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if !actor.CanActFor(principalID) {
		return nil, nil, ErrPrincipalAccess
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByPrincipalFirstPage(ctx, principalID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByPrincipalKeyset(ctx, principalID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListForResource(ctx context.Context, actor user.Principal, resourceID uuid.UUID, start, end calendar.Date) ([]*ReservationListItem, error) {
	if !actor.IsStaff() {
		return nil, ErrReservationAccess
	}
	window, err := calendar.NewBoundedRange(start, end)
	if err != nil {
		return nil, err
	}
	return q.repo.FindByResourceWindow(ctx, resourceID, window)
}
