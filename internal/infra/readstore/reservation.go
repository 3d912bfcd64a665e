package readstore

import (
	"context"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationViewByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.GetReservationViewByIDRow, error)
	ListReservationsByPrincipalFirstPage(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReservationsByPrincipalFirstPageParams) ([]pgsql.Reservations, error)
	ListReservationsByPrincipalKeyset(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReservationsByPrincipalKeysetParams) ([]pgsql.Reservations, error)
	ListReservationsForResource(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReservationsForResourceParams) ([]pgsql.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return &queries.ReservationView{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		ResourceName:    row.ResourceName,
		PrincipalID:     row.PrincipalID,
		StartDate:       formatDate(row.StartDate),
		EndDate:         formatDate(row.EndDate),
		GuestCount:      row.GuestCount,
		TotalPriceCents: row.TotalPriceCents,
		PaidCents:       row.PaidCents,
		Currency:        row.Currency,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByPrincipalFirstPage(ctx context.Context, principalID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByPrincipalFirstPage(ctx, r.db, pgsql.ListReservationsByPrincipalFirstPageParams{
		PrincipalID: principalID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations first page by principal", err)
	}
	return mapReservationRows(rows), nil
}

func (r *ReservationReadStore) FindByPrincipalKeyset(ctx context.Context, principalID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByPrincipalKeyset(ctx, r.db, pgsql.ListReservationsByPrincipalKeysetParams{
		PrincipalID: principalID,
		CreatedAt:   pgconv.TimeToPgtype(lastCreatedAt),
		ID:          lastID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations keyset by principal", err)
	}
	return mapReservationRows(rows), nil
}

func (r *ReservationReadStore) FindByResourceWindow(ctx context.Context, resourceID uuid.UUID, window calendar.Range) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsForResource(ctx, r.db, pgsql.ListReservationsForResourceParams{
		ResourceID: resourceID,
		StartDate:  pgconv.DateToPgtype(window.Start().Time()),
		EndDate:    pgconv.DateToPgtype(window.End().Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for resource", err)
	}
	return mapReservationRows(rows), nil
}

func mapReservationRows(rows []pgsql.Reservations) []*queries.ReservationListItem {
	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:              row.ID,
			ResourceID:      row.ResourceID,
			PrincipalID:     row.PrincipalID,
			StartDate:       formatDate(row.StartDate),
			EndDate:         formatDate(row.EndDate),
			GuestCount:      row.GuestCount,
			TotalPriceCents: row.TotalPriceCents,
			Currency:        row.Currency,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
