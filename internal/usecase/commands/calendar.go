package commands

import (
	"context"
	"log/slog"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/resource"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/infra"
	"charter-booking/internal/pkg/patch"
	"charter-booking/internal/pkg/tracing"
	"charter-booking/internal/usecase/queries"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// DayPatch is a partial update of one calendar row. Nil fields keep the stored value.
type DayPatch struct {
	Open       *bool
	PriceCents *int64
}

type CalendarCommands interface {
	SetDays(ctx context.Context, actor user.Principal, resourceID uuid.UUID, days []calendar.DayInput) ([]*queries.CalendarDayView, error)
	SetDayStatus(ctx context.Context, actor user.Principal, dayID uuid.UUID, p DayPatch) (*queries.CalendarDayView, error)
	DeleteDay(ctx context.Context, actor user.Principal, dayID uuid.UUID) error
}

type calendarCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator CalendarInvalidator
}

func NewCalendarCommands(uow shared.UnitOfWork, invalidator CalendarInvalidator) CalendarCommands {
	return &calendarCommandsImpl{
		uow:         uow,
		invalidator: invalidator,
	}
}

func (c *calendarCommandsImpl) SetDays(ctx context.Context, actor user.Principal, resourceID uuid.UUID, days []calendar.DayInput) (views []*queries.CalendarDayView, err error) {
	ctx, span := tracing.StartSpan(ctx, "CalendarCommands.SetDays")
	defer func() { tracing.EndSpan(span, err) }()

	if !actor.IsStaff() {
		return nil, ErrOperatorRequired
	}
	batch, err := calendar.NormalizeBatch(days)
	if err != nil {
		return nil, err
	}

	var written []*calendar.Day
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Holding the resource lock orders this batch against concurrent creates.
		res, err := tx.Resources().LockForUpdate(ctx, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return err
		}
		if !res.IsActive() {
			return resource.ErrResourceInactive
		}

		written, err = tx.Calendar().Upsert(ctx, resourceID, batch)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, resourceID)
	slog.Info("calendar days set", "resource_id", resourceID.String(), "count", len(written))
	return dayViews(written), nil
}

func (c *calendarCommandsImpl) SetDayStatus(ctx context.Context, actor user.Principal, dayID uuid.UUID, p DayPatch) (view *queries.CalendarDayView, err error) {
	ctx, span := tracing.StartSpan(ctx, "CalendarCommands.SetDayStatus")
	defer func() { tracing.EndSpan(span, err) }()

	if !actor.IsStaff() {
		return nil, ErrOperatorRequired
	}
	if p.PriceCents != nil && *p.PriceCents < 0 {
		return nil, calendar.ErrNegativePrice
	}

	var updated *calendar.Day
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		day, err := tx.Calendar().GetForUpdate(ctx, dayID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCalendarDayNotFound
			}
			return err
		}

		open := patch.Coalesce(p.Open, day.IsOpen())
		price := p.PriceCents
		if price == nil {
			price = storedPriceCents(day)
		}
		updated, err = tx.Calendar().Update(ctx, dayID, price, open)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, updated.ResourceID())
	slog.Info("calendar day updated",
		"day_id", dayID.String(),
		"date", updated.Date().String(),
		"open", updated.IsOpen())
	return dayView(updated), nil
}

func (c *calendarCommandsImpl) DeleteDay(ctx context.Context, actor user.Principal, dayID uuid.UUID) (err error) {
	ctx, span := tracing.StartSpan(ctx, "CalendarCommands.DeleteDay")
	defer func() { tracing.EndSpan(span, err) }()

	if !actor.IsStaff() {
		return ErrOperatorRequired
	}

	var deleted *calendar.Day
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		day, err := tx.Calendar().Delete(ctx, dayID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCalendarDayNotFound
			}
			return err
		}
		deleted = day
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidate(ctx, deleted.ResourceID())
	slog.Info("calendar day deleted", "day_id", dayID.String(), "date", deleted.Date().String())
	return nil
}

// invalidate runs after commit; a failure leaves stale entries until their TTL.
func (c *calendarCommandsImpl) invalidate(ctx context.Context, resourceID uuid.UUID) {
	if err := c.invalidator.InvalidateResource(ctx, resourceID); err != nil {
		slog.Warn("failed to invalidate calendar cache", "resource_id", resourceID.String(), "error", err)
	}
}

func storedPriceCents(day *calendar.Day) *int64 {
	if day.Price() == nil {
		return nil
	}
	cents := day.Price().Cents()
	return &cents
}

func dayView(d *calendar.Day) *queries.CalendarDayView {
	return &queries.CalendarDayView{
		ID:         d.ID(),
		ResourceID: d.ResourceID(),
		Date:       d.Date().String(),
		PriceCents: storedPriceCents(d),
		Open:       d.IsOpen(),
		UpdatedAt:  d.UpdatedAt(),
	}
}

func dayViews(days []*calendar.Day) []*queries.CalendarDayView {
	out := make([]*queries.CalendarDayView, 0, len(days))
	for _, d := range days {
		out = append(out, dayView(d))
	}
	return out
}
