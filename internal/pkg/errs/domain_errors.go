package errs

import (
	"errors"
)

// Error kinds shared by every layer. Domain and usecase errors are marked with
// one of these so handlers can map them without knowing the concrete sentinel.
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict error")
	ErrCapacity        = errors.New("capacity error")
	ErrOverpayment     = errors.New("overpayment error")
	ErrStateTransition = errors.New("state transition error")
	ErrNotFound        = errors.New("not found error")
	ErrForbidden       = errors.New("forbidden error")
)

type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindConflict        Kind = "CONFLICT"
	KindCapacity        Kind = "CAPACITY"
	KindOverpayment     Kind = "OVERPAYMENT"
	KindStateTransition Kind = "STATE_TRANSITION"
	KindNotFound        Kind = "NOT_FOUND"
	KindForbidden       Kind = "FORBIDDEN"
	KindInternal        Kind = "INTERNAL"
)

var kindByErr = []struct {
	err  error
	kind Kind
}{
	{ErrValidation, KindValidation},
	{ErrConflict, KindConflict},
	{ErrCapacity, KindCapacity},
	{ErrOverpayment, KindOverpayment},
	{ErrStateTransition, KindStateTransition},
	{ErrNotFound, KindNotFound},
	{ErrForbidden, KindForbidden},
}

// KindOf reports the first taxonomy kind err is marked with, or KindInternal.
func KindOf(err error) Kind {
	for _, k := range kindByErr {
		if Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// NewKind creates a sentinel already marked with a taxonomy kind.
func NewKind(msg string, kind error) error {
	return Mark(New(msg), kind)
}
