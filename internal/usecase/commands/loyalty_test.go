//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/usecase/commands"
	"charter-booking/tests/common/builder"
	"charter-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoyaltyCommands(store *memstore.Store, clk clock.Clock) commands.LoyaltyCommands {
	return commands.NewLoyaltyCommands(store, eligibility.DefaultRules(), clk)
}

func addStay(store *memstore.Store, principalID uuid.UUID, status reservation.Status) {
	store.AddReservation(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.PrincipalID = principalID
		b.Status = status
	}).BuildDomain())
}

func TestLoyaltyCommands_RecordAction(t *testing.T) {
	ctx := context.Background()

	t.Run("success: records when eligible", func(t *testing.T) {
		store := memstore.New()
		actor := guest()
		addStay(store, actor.ID, reservation.StatusCompleted)
		cmds := newLoyaltyCommands(store, clock.NewMockClock(testNow))

		view, err := cmds.RecordAction(ctx, actor, actor.ID, "stay_bonus")

		require.NoError(t, err)
		assert.True(t, view.Eligible)
		assert.Equal(t, "eligible", view.Reason)
		assert.Equal(t, 1, store.LoyaltyCount(actor.ID, eligibility.ActionStayBonus))
	})

	t.Run("cooldown: second action inside the window is not recorded", func(t *testing.T) {
		store := memstore.New()
		actor := guest()
		clk := clock.NewMockClock(testNow)
		cmds := newLoyaltyCommands(store, clk)

		_, err := cmds.RecordAction(ctx, actor, actor.ID, "daily_checkin")
		require.NoError(t, err)

		clk.Add(23 * time.Hour)
		view, err := cmds.RecordAction(ctx, actor, actor.ID, "daily_checkin")

		require.NoError(t, err)
		assert.False(t, view.Eligible)
		assert.Equal(t, "cooldown", view.Reason)
		require.NotNil(t, view.NextEligibleAt)
		assert.Equal(t, testNow.Add(24*time.Hour), *view.NextEligibleAt)
		assert.Equal(t, 1, store.LoyaltyCount(actor.ID, eligibility.ActionDailyCheckin))

		clk.Add(time.Hour)
		view, err = cmds.RecordAction(ctx, actor, actor.ID, "daily_checkin")
		require.NoError(t, err)
		assert.True(t, view.Eligible)
		assert.Equal(t, 2, store.LoyaltyCount(actor.ID, eligibility.ActionDailyCheckin))
	})

	t.Run("no stay: pending or cancelled reservations do not qualify", func(t *testing.T) {
		store := memstore.New()
		actor := guest()
		addStay(store, actor.ID, reservation.StatusPending)
		addStay(store, actor.ID, reservation.StatusCancelled)
		cmds := newLoyaltyCommands(store, clock.NewMockClock(testNow))

		view, err := cmds.RecordAction(ctx, actor, actor.ID, "review_bonus")

		require.NoError(t, err)
		assert.False(t, view.Eligible)
		assert.Equal(t, "no_qualifying_stay", view.Reason)
		assert.Nil(t, view.NextEligibleAt)
		assert.Zero(t, store.LoyaltyCount(actor.ID, eligibility.ActionReviewBonus))
	})

	t.Run("operators may record for a principal", func(t *testing.T) {
		store := memstore.New()
		principalID := uuid.New()
		cmds := newLoyaltyCommands(store, clock.NewMockClock(testNow))

		view, err := cmds.RecordAction(ctx, operator(), principalID, "referral")

		require.NoError(t, err)
		assert.True(t, view.Eligible)
		assert.Equal(t, principalID, view.PrincipalID)
	})

	t.Run("error: guests may not record for someone else", func(t *testing.T) {
		cmds := newLoyaltyCommands(memstore.New(), clock.NewMockClock(testNow))

		_, err := cmds.RecordAction(ctx, user.NewPrincipal(uuid.New(), user.RoleViewer), uuid.New(), "referral")
		assert.ErrorIs(t, err, commands.ErrPrincipalAccess)
	})

	t.Run("error: unknown action kind", func(t *testing.T) {
		cmds := newLoyaltyCommands(memstore.New(), clock.NewMockClock(testNow))
		actor := guest()

		_, err := cmds.RecordAction(ctx, actor, actor.ID, "birthday")
		assert.ErrorIs(t, err, eligibility.ErrUnknownActionKind)
	})
}
