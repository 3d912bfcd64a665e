package commands

import (
	"charter-booking/internal/pkg/errs"
)

var (
	ErrResourceNotFound    = errs.NewKind("resource not found", errs.ErrValidation)
	ErrCalendarDayNotFound = errs.NewKind("calendar day not found", errs.ErrNotFound)
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrAttemptNotFound     = errs.NewKind("payment attempt not found", errs.ErrNotFound)

	ErrOperatorRequired = errs.NewKind("operator role required", errs.ErrForbidden)
	ErrAdminRequired    = errs.NewKind("admin role required", errs.ErrForbidden)
	ErrNotOwner         = errs.NewKind("principal may not act on this reservation", errs.ErrForbidden)
	ErrPrincipalAccess  = errs.NewKind("principal access denied", errs.ErrForbidden)

	ErrReservationConflict   = errs.NewKind("reservation overlaps an existing booking", errs.ErrConflict)
	ErrDuplicateRequest      = errs.NewKind("idempotency key reused with a different request", errs.ErrConflict)
	ErrIdempotencyInProgress = errs.NewKind("request with this idempotency key is still processing", errs.ErrConflict)
	ErrAttemptAlreadySettled = errs.NewKind("payment attempt changed concurrently", errs.ErrConflict)

	ErrReservationClosed = errs.NewKind("reservation no longer accepts payments", errs.ErrStateTransition)
	ErrReasonRequired    = errs.NewKind("override reason is required", errs.ErrValidation)
	ErrInvalidLimit      = errs.NewKind("limit must be positive", errs.ErrValidation)
)
