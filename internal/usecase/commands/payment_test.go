//go:build unit

package commands_test

import (
	"context"
	"testing"

	"charter-booking/internal/domain/eligibility"
	"charter-booking/internal/domain/payment"
	"charter-booking/internal/domain/reservation"
	"charter-booking/internal/domain/user"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"
	"charter-booking/internal/usecase/shared"
	"charter-booking/tests/common/builder"
	"charter-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentCommandsSuite struct {
	suite.Suite
	store    *memstore.Store
	observer *recordingObserver
	cmds     commands.PaymentCommands
	owner    uuid.UUID
	res      *reservation.Reservation
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsSuite))
}

func (s *PaymentCommandsSuite) SetupTest() {
	s.store = memstore.New()
	s.observer = newRecordingObserver()
	s.owner = uuid.New()
	s.res = builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.PrincipalID = s.owner
		b.TotalPriceCents = 20000
	}).BuildDomain()
	s.store.AddReservation(s.res)
	s.cmds = commands.NewPaymentCommands(
		s.store,
		commands.NewSettlementEngine(s.observer),
		s.observer,
		clock.NewMockClock(testNow),
	)
}

func (s *PaymentCommandsSuite) record(amount int64) *payment.Attempt {
	a := builder.NewPaymentAttemptBuilder().With(func(b *builder.PaymentAttemptBuilder) {
		b.ReservationID = s.res.ID()
		b.AmountCents = amount
	}).BuildDomain()
	s.store.AddAttempt(a)
	return a
}

func (s *PaymentCommandsSuite) paidToDate() int64 {
	summary, err := queries.NewPaymentQueries(queries.NewReservationQueries(s.store), s.store).
		ListAttempts(context.Background(), operator(), s.res.ID())
	require.NoError(s.T(), err)
	return summary.PaidCents
}

func (s *PaymentCommandsSuite) settle(id uuid.UUID, outcome string) (*commands.SettleResult, error) {
	return s.cmds.Settle(context.Background(), operator(), commands.SettleInput{AttemptID: id, Outcome: outcome})
}

func (s *PaymentCommandsSuite) TestRecordAttempt() {
	ctx := context.Background()
	owner := func() user.Principal { return user.NewPrincipal(s.owner, user.RoleViewer) }

	s.Run("success: owner records a pending attempt", func() {
		s.SetupTest()
		view, err := s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
			ReservationID: s.res.ID(),
			AmountCents:   12000,
			Currency:      "USD",
		})

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "pending", view.Status)
		assert.Equal(s.T(), int64(12000), view.AmountCents)
		_, ok := s.store.Attempt(view.ID)
		assert.True(s.T(), ok)
	})

	s.Run("success: pending attempts do not count towards the total", func() {
		s.SetupTest()
		s.record(15000)

		_, err := s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
			ReservationID: s.res.ID(),
			AmountCents:   15000,
			Currency:      "USD",
		})
		assert.NoError(s.T(), err)
	})

	s.Run("error: amount above what is left to pay", func() {
		s.SetupTest()
		paid := s.record(15000)
		_, err := s.settle(paid.ID(), "completed")
		require.NoError(s.T(), err)

		_, err = s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
			ReservationID: s.res.ID(),
			AmountCents:   5001,
			Currency:      "USD",
		})
		assert.ErrorIs(s.T(), err, payment.ErrExceedsTotal)
		assert.Equal(s.T(), errs.KindOverpayment, errs.KindOf(err))
	})

	s.Run("error: any payment after the reservation is confirmed overpays", func() {
		s.SetupTest()
		full := s.record(20000)
		result, err := s.settle(full.ID(), "completed")
		require.NoError(s.T(), err)
		require.True(s.T(), result.Confirmed)

		for _, amount := range []int64{1, 20000} {
			_, err = s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
				ReservationID: s.res.ID(),
				AmountCents:   amount,
				Currency:      "USD",
			})
			assert.ErrorIs(s.T(), err, payment.ErrExceedsTotal, amount)
			assert.Equal(s.T(), errs.KindOverpayment, errs.KindOf(err))
		}
		assert.Equal(s.T(), int64(20000), s.paidToDate())
	})

	s.Run("error: currency mismatch", func() {
		s.SetupTest()
		_, err := s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
			ReservationID: s.res.ID(),
			AmountCents:   100,
			Currency:      "EUR",
		})
		assert.ErrorIs(s.T(), err, payment.ErrCurrencyMismatch)
	})

	s.Run("error: non-positive amount", func() {
		s.SetupTest()
		_, err := s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
			ReservationID: s.res.ID(),
			AmountCents:   0,
			Currency:      "USD",
		})
		assert.ErrorIs(s.T(), err, payment.ErrNonPositiveAmount)
	})

	s.Run("error: someone else's reservation", func() {
		s.SetupTest()
		_, err := s.cmds.RecordAttempt(ctx, guest(), commands.RecordAttemptInput{
			ReservationID: s.res.ID(),
			AmountCents:   100,
			Currency:      "USD",
		})
		assert.ErrorIs(s.T(), err, commands.ErrNotOwner)
	})

	s.Run("error: cancelled reservation is closed for payments", func() {
		s.SetupTest()
		s.store.AddReservation(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ID = s.res.ID()
			b.PrincipalID = s.owner
			b.Status = reservation.StatusCancelled
		}).BuildDomain())

		_, err := s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
			ReservationID: s.res.ID(),
			AmountCents:   100,
			Currency:      "USD",
		})
		assert.ErrorIs(s.T(), err, commands.ErrReservationClosed)
		assert.Equal(s.T(), errs.KindStateTransition, errs.KindOf(err))
	})

	s.Run("error: unknown reservation", func() {
		s.SetupTest()
		_, err := s.cmds.RecordAttempt(ctx, owner(), commands.RecordAttemptInput{
			ReservationID: uuid.New(),
			AmountCents:   100,
			Currency:      "USD",
		})
		assert.ErrorIs(s.T(), err, commands.ErrReservationNotFound)
	})
}

func (s *PaymentCommandsSuite) TestSettle() {
	s.Run("success: partial payment leaves the reservation pending", func() {
		s.SetupTest()
		a := s.record(12000)

		result, err := s.settle(a.ID(), "completed")

		require.NoError(s.T(), err)
		assert.True(s.T(), result.Applied)
		assert.False(s.T(), result.Confirmed)
		assert.Equal(s.T(), "completed", result.Attempt.Status)
		got, _ := s.store.Reservation(s.res.ID())
		assert.Equal(s.T(), reservation.StatusPending, got.Status())
		assert.Equal(s.T(), []string{shared.TopicPaymentSettled}, s.store.Topics())
	})

	s.Run("success: the settlement that covers the total confirms", func() {
		s.SetupTest()
		first, second := s.record(12000), s.record(8000)

		_, err := s.settle(first.ID(), "completed")
		require.NoError(s.T(), err)
		result, err := s.settle(second.ID(), "completed")

		require.NoError(s.T(), err)
		assert.True(s.T(), result.Confirmed)
		got, _ := s.store.Reservation(s.res.ID())
		assert.Equal(s.T(), reservation.StatusConfirmed, got.Status())
		assert.Equal(s.T(), []string{
			shared.TopicPaymentSettled,
			shared.TopicPaymentSettled,
			shared.TopicReservationConfirmed,
		}, s.store.Topics())
		assert.Equal(s.T(), 1, s.observer.transitions["confirmed"])
		assert.Equal(s.T(), 2, s.observer.settled["completed"])
	})

	s.Run("success: failed outcome never confirms", func() {
		s.SetupTest()
		a := s.record(20000)

		result, err := s.settle(a.ID(), "failed")

		require.NoError(s.T(), err)
		assert.True(s.T(), result.Applied)
		assert.False(s.T(), result.Confirmed)
		assert.Equal(s.T(), "failed", result.Attempt.Status)
	})

	s.Run("success: terminal attempt is returned unchanged", func() {
		s.SetupTest()
		a := s.record(5000)
		_, err := s.settle(a.ID(), "failed")
		require.NoError(s.T(), err)

		result, err := s.settle(a.ID(), "completed")

		require.NoError(s.T(), err)
		assert.False(s.T(), result.Applied)
		assert.Equal(s.T(), "failed", result.Attempt.Status)
		assert.Len(s.T(), s.store.Topics(), 1)
	})

	s.Run("success: a repeated success callback changes nothing", func() {
		s.SetupTest()
		a := s.record(20000)
		first, err := s.settle(a.ID(), "completed")
		require.NoError(s.T(), err)
		require.True(s.T(), first.Confirmed)
		topics := s.store.Topics()

		again, err := s.settle(a.ID(), "completed")

		require.NoError(s.T(), err)
		assert.False(s.T(), again.Applied)
		assert.False(s.T(), again.Confirmed)
		assert.Equal(s.T(), "completed", again.Attempt.Status)
		assert.Equal(s.T(), int64(20000), s.paidToDate())
		assert.Equal(s.T(), topics, s.store.Topics())
		assert.Equal(s.T(), []string{shared.TopicPaymentSettled, shared.TopicReservationConfirmed}, topics)
		assert.Equal(s.T(), 1, s.observer.transitions["confirmed"])
		assert.Equal(s.T(), 1, s.observer.settled["completed"])
		got, _ := s.store.Reservation(s.res.ID())
		assert.Equal(s.T(), reservation.StatusConfirmed, got.Status())
	})

	s.Run("success: review eligibility follows settlement", func() {
		s.SetupTest()
		gate := queries.NewEligibilityQueries(s.store, eligibility.DefaultRules(), clock.NewMockClock(testNow))
		owner := user.NewPrincipal(s.owner, user.RoleViewer)
		canReview := func() bool {
			view, err := gate.CanReview(context.Background(), owner, s.owner)
			require.NoError(s.T(), err)
			return view.Eligible
		}
		partial, rest := s.record(5000), s.record(15000)

		assert.False(s.T(), canReview())

		_, err := s.settle(partial.ID(), "completed")
		require.NoError(s.T(), err)
		assert.False(s.T(), canReview(), "partial payment leaves the stay pending")

		_, err = s.settle(rest.ID(), "completed")
		require.NoError(s.T(), err)
		assert.True(s.T(), canReview())
	})

	s.Run("error: completing would overpay", func() {
		s.SetupTest()
		first, second := s.record(15000), s.record(15000)
		_, err := s.settle(first.ID(), "completed")
		require.NoError(s.T(), err)

		_, err = s.settle(second.ID(), "completed")

		assert.ErrorIs(s.T(), err, payment.ErrExceedsTotal)
		got, _ := s.store.Attempt(second.ID())
		assert.Equal(s.T(), payment.StatusPending, got.Status())
	})

	s.Run("error: guests cannot settle", func() {
		s.SetupTest()
		a := s.record(5000)

		_, err := s.cmds.Settle(context.Background(), guest(), commands.SettleInput{AttemptID: a.ID(), Outcome: "completed"})
		assert.ErrorIs(s.T(), err, commands.ErrOperatorRequired)
	})

	s.Run("error: unknown outcome", func() {
		s.SetupTest()
		_, err := s.settle(uuid.New(), "refunded")
		assert.ErrorIs(s.T(), err, payment.ErrUnknownOutcome)
	})

	s.Run("error: unknown attempt", func() {
		s.SetupTest()
		_, err := s.settle(uuid.New(), "completed")
		assert.ErrorIs(s.T(), err, commands.ErrAttemptNotFound)
	})
}
