//go:build unit

package uow

import (
	"testing"
	"time"

	"charter-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "commit"), want: true},
		{name: "exclusion violation is final", err: &pgconn.PgError{Code: "23P01"}, want: false},
		{name: "plain error", err: errs.New("boom"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry_StopsAtMax(t *testing.T) {
	err := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(err, 0, 3))
	assert.True(t, shouldRetry(err, 2, 3))
	assert.False(t, shouldRetry(err, 3, 3))
}

func TestCalculateBackoff_GrowsWithBoundedJitter(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
