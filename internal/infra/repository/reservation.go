package repository

import (
	"context"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/pgsql"
	"charter-booking/internal/infra/repository/converter"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) error
	GetReservationForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReservationStatusParams) (int64, error)
	ListBlockingOverlaps(ctx context.Context, db pgsql.DBTX, arg pgsql.ListBlockingOverlapsParams) ([]pgsql.Reservations, error)
	ListDueForCompletion(ctx context.Context, db pgsql.DBTX, arg pgsql.ListDueForCompletionParams) ([]pgsql.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgsql.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgsql.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create surfaces an exclusion-constraint violation as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, pgsql.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ListBlockingOverlaps(ctx context.Context, resourceID uuid.UUID, rng calendar.Range) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListBlockingOverlaps(ctx, r.db, pgsql.ListBlockingOverlapsParams{
		ResourceID: resourceID,
		StartDate:  pgconv.DateToPgtype(rng.Start().Time()),
		EndDate:    pgconv.DateToPgtype(rng.End().Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}
	return converter.ReservationsFromRows(rows)
}

func (r *ReservationRepository) ListDueForCompletion(ctx context.Context, today calendar.Date, limit int32) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListDueForCompletion(ctx, r.db, pgsql.ListDueForCompletionParams{
		Today: pgconv.DateToPgtype(today.Time()),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations due for completion", err)
	}
	return converter.ReservationsFromRows(rows)
}
