//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"charter-booking/internal/domain/calendar"
	"charter-booking/internal/domain/resource"
	"charter-booking/internal/usecase/commands"
	"charter-booking/tests/common/builder"
	"charter-booking/tests/common/memstore"
	commandsmock "charter-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarCommandsSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	store       *memstore.Store
	invalidator *commandsmock.MockCalendarInvalidator
	cmds        commands.CalendarCommands
	resource    *resource.Resource
}

func TestCalendarCommandsSuite(t *testing.T) {
	suite.Run(t, new(CalendarCommandsSuite))
}

func (s *CalendarCommandsSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memstore.New()
	s.invalidator = commandsmock.NewMockCalendarInvalidator(s.ctrl)
	s.cmds = commands.NewCalendarCommands(s.store, s.invalidator)
	s.resource = builder.NewResourceBuilder().BuildDomain()
	s.store.AddResource(s.resource)
}

func (s *CalendarCommandsSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CalendarCommandsSuite) seedDay(d string, open bool, price *int64) *calendar.Day {
	day := builder.NewCalendarDayBuilder().With(func(b *builder.CalendarDayBuilder) {
		b.ResourceID = s.resource.ID()
		b.Date = d
		b.Open = open
		b.PriceCents = price
	}).BuildDomain()
	s.store.AddDay(day)
	return day
}

func cents(v int64) *int64 { return &v }

func (s *CalendarCommandsSuite) TestSetDays() {
	ctx := context.Background()

	s.Run("success: batch is upserted sorted and the cache invalidated", func() {
		s.SetupTest()
		existing := s.seedDay("2026-06-11", true, nil)
		s.invalidator.EXPECT().InvalidateResource(gomock.Any(), s.resource.ID()).Return(nil)

		views, err := s.cmds.SetDays(ctx, operator(), s.resource.ID(), []calendar.DayInput{
			{Date: date(s.T(), "2026-06-12"), Open: false},
			{Date: date(s.T(), "2026-06-11"), PriceCents: cents(100), Open: true},
			{Date: date(s.T(), "2026-06-11"), PriceCents: cents(25000), Open: true},
		})

		require.NoError(s.T(), err)
		require.Len(s.T(), views, 2)
		assert.Equal(s.T(), "2026-06-11", views[0].Date)
		assert.Equal(s.T(), existing.ID(), views[0].ID)
		assert.Equal(s.T(), cents(25000), views[0].PriceCents)
		assert.Equal(s.T(), "2026-06-12", views[1].Date)
		assert.False(s.T(), views[1].Open)
		assert.Len(s.T(), s.store.Days(), 2)
	})

	s.Run("success: invalidation failure does not fail the write", func() {
		s.SetupTest()
		s.invalidator.EXPECT().InvalidateResource(gomock.Any(), s.resource.ID()).Return(errors.New("redis down"))

		views, err := s.cmds.SetDays(ctx, operator(), s.resource.ID(), []calendar.DayInput{
			{Date: date(s.T(), "2026-06-12"), Open: false},
		})
		require.NoError(s.T(), err)
		assert.Len(s.T(), views, 1)
	})

	s.Run("error: guests cannot edit the calendar", func() {
		s.SetupTest()
		_, err := s.cmds.SetDays(ctx, guest(), s.resource.ID(), []calendar.DayInput{
			{Date: date(s.T(), "2026-06-12"), Open: false},
		})
		assert.ErrorIs(s.T(), err, commands.ErrOperatorRequired)
	})

	s.Run("error: empty batch", func() {
		s.SetupTest()
		_, err := s.cmds.SetDays(ctx, operator(), s.resource.ID(), nil)
		assert.ErrorIs(s.T(), err, calendar.ErrEmptyBatch)
	})

	s.Run("error: negative price", func() {
		s.SetupTest()
		_, err := s.cmds.SetDays(ctx, operator(), s.resource.ID(), []calendar.DayInput{
			{Date: date(s.T(), "2026-06-12"), PriceCents: cents(-1), Open: true},
		})
		assert.ErrorIs(s.T(), err, calendar.ErrNegativePrice)
	})

	s.Run("error: unknown resource", func() {
		s.SetupTest()
		_, err := s.cmds.SetDays(ctx, operator(), uuid.New(), []calendar.DayInput{
			{Date: date(s.T(), "2026-06-12"), Open: true},
		})
		assert.ErrorIs(s.T(), err, commands.ErrResourceNotFound)
		assert.Empty(s.T(), s.store.Days())
	})
}

func (s *CalendarCommandsSuite) TestSetDayStatus() {
	ctx := context.Background()

	s.Run("success: closing keeps the stored price", func() {
		s.SetupTest()
		day := s.seedDay("2026-06-11", true, cents(18000))
		s.invalidator.EXPECT().InvalidateResource(gomock.Any(), s.resource.ID()).Return(nil)

		closed := false
		view, err := s.cmds.SetDayStatus(ctx, operator(), day.ID(), commands.DayPatch{Open: &closed})

		require.NoError(s.T(), err)
		assert.False(s.T(), view.Open)
		assert.Equal(s.T(), cents(18000), view.PriceCents)
	})

	s.Run("success: price change keeps the stored status", func() {
		s.SetupTest()
		day := s.seedDay("2026-06-11", false, nil)
		s.invalidator.EXPECT().InvalidateResource(gomock.Any(), s.resource.ID()).Return(nil)

		view, err := s.cmds.SetDayStatus(ctx, operator(), day.ID(), commands.DayPatch{PriceCents: cents(9000)})

		require.NoError(s.T(), err)
		assert.False(s.T(), view.Open)
		assert.Equal(s.T(), cents(9000), view.PriceCents)
	})

	s.Run("error: negative price", func() {
		s.SetupTest()
		_, err := s.cmds.SetDayStatus(ctx, operator(), uuid.New(), commands.DayPatch{PriceCents: cents(-5)})
		assert.ErrorIs(s.T(), err, calendar.ErrNegativePrice)
	})

	s.Run("error: unknown day", func() {
		s.SetupTest()
		open := true
		_, err := s.cmds.SetDayStatus(ctx, operator(), uuid.New(), commands.DayPatch{Open: &open})
		assert.ErrorIs(s.T(), err, commands.ErrCalendarDayNotFound)
	})
}

func (s *CalendarCommandsSuite) TestDeleteDay() {
	ctx := context.Background()

	s.Run("success", func() {
		s.SetupTest()
		day := s.seedDay("2026-06-11", false, nil)
		s.invalidator.EXPECT().InvalidateResource(gomock.Any(), s.resource.ID()).Return(nil)

		err := s.cmds.DeleteDay(ctx, operator(), day.ID())

		require.NoError(s.T(), err)
		assert.Empty(s.T(), s.store.Days())
	})

	s.Run("error: guests cannot delete", func() {
		s.SetupTest()
		day := s.seedDay("2026-06-11", false, nil)

		err := s.cmds.DeleteDay(ctx, guest(), day.ID())
		assert.ErrorIs(s.T(), err, commands.ErrOperatorRequired)
		assert.Len(s.T(), s.store.Days(), 1)
	})

	s.Run("error: unknown day", func() {
		s.SetupTest()
		err := s.cmds.DeleteDay(ctx, admin(), uuid.New())
		assert.ErrorIs(s.T(), err, commands.ErrCalendarDayNotFound)
	})
}
