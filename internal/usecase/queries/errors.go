package queries

import (
	"charter-booking/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrReservationAccess   = errs.NewKind("reservation access denied", errs.ErrForbidden)
	ErrPrincipalAccess     = errs.NewKind("principal access denied", errs.ErrForbidden)
	ErrInvalidCursor       = errs.NewKind("invalid cursor", errs.ErrValidation)
)
