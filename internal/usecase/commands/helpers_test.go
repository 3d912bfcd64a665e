//go:build unit

package commands_test

import (
	"sync"
	"testing"
	"time"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func date(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}

func guest() user.Principal    { return user.NewPrincipal(uuid.New(), user.RoleViewer) }
func operator() user.Principal { return user.NewPrincipal(uuid.New(), user.RoleOperator) }
func admin() user.Principal    { return user.NewPrincipal(uuid.New(), user.RoleAdmin) }

// recordingObserver counts domain signals.
type recordingObserver struct {
	mu          sync.Mutex
	created     int
	rejected    map[string]int
	transitions map[string]int
	settled     map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		rejected:    map[string]int{},
		transitions: map[string]int{},
		settled:     map[string]int{},
	}
}

func (o *recordingObserver) ReservationCreated() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created++
}

func (o *recordingObserver) ReservationRejected(kind string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected[kind]++
}

func (o *recordingObserver) ReservationTransitioned(to string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.transitions[to]++
}

func (o *recordingObserver) PaymentSettled(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.settled[outcome]++
}
