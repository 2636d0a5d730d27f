//go:build unit

package queries_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"lab-dashboard/internal/domain/availability"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/config"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/usecase/queries"
	"lab-dashboard/tests/common/builder"
	queriesmock "lab-dashboard/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	equipment    *queriesmock.MockEquipmentQueries
	reservations *queriesmock.MockReservationReadStore
	clock        *clock.MockClock
	jst          *time.Location
	sut          queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.equipment = queriesmock.NewMockEquipmentQueries(s.mockCtrl)
	s.reservations = queriesmock.NewMockReservationReadStore(s.mockCtrl)

	var err error
	s.jst, err = time.LoadLocation("Asia/Tokyo")
	s.Require().NoError(err)

	// 01:00 UTC is already 10:00 on the lab's calendar
	s.clock = clock.NewMockClock(time.Date(2024, time.June, 1, 1, 0, 0, 0, time.UTC))

	s.sut, err = queries.NewAvailabilityQueries(s.equipment, s.reservations, s.clock,
		config.NewTestConfig().Availability, slog.New(slog.DiscardHandler))
	s.Require().NoError(err)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestBoard() {
	scope := builder.NewEquipmentBuilder().WithName("Confocal Microscope").BuildView()
	pcr := builder.NewEquipmentBuilder().WithName("PCR Machine").BuildView()

	s.Run("evaluates in the configured zone and keeps the equipment order", func() {
		active := builder.NewBookingBuilder().ForEquipment(scope.Item()).Between("09:00", "11:00").BuildView()
		legacy := builder.NewBookingBuilder().ForEquipment(pcr.Item()).AsLegacy().Between("12:00", "13:00").BuildView()
		ended := builder.NewBookingBuilder().ForEquipment(pcr.Item()).On("2024-05-31").Between("09:00", "10:00").BuildView()

		s.equipment.EXPECT().List(gomock.Any()).Return([]*queries.EquipmentView{scope, pcr}, nil).Times(1)
		// one day of history before the lab's current date
		s.reservations.EXPECT().FindFrom(gomock.Any(), "2024-05-31", (*uuid.UUID)(nil)).
			Return([]*queries.ReservationView{ended, active, legacy}, nil).Times(1)

		board, err := s.sut.Board(s.T().Context())
		s.Require().NoError(err)

		s.True(board.GeneratedAt.Equal(s.clock.Now()))
		s.Equal(s.jst, board.GeneratedAt.Location())
		s.Require().Len(board.Items, 2)

		first, second := board.Items[0], board.Items[1]
		s.Equal(scope.ID, first.EquipmentID)
		s.Equal(availability.StatusInUse, first.Status)
		s.Equal(active.ID, first.ActiveBooking.ID)
		s.True(first.NextAvailableAt.Equal(time.Date(2024, time.June, 1, 11, 0, 0, 0, s.jst)))

		s.Equal(pcr.ID, second.EquipmentID)
		s.Equal(availability.StatusAvailable, second.Status)
		s.Require().Len(second.UpcomingBookings, 1, "legacy booking is matched by name")
		s.Equal(legacy.ID, second.UpcomingBookings[0].ID)
	})

	s.Run("malformed bookings are skipped without failing the board", func() {
		broken := builder.NewBookingBuilder().ForEquipment(scope.Item()).Between("9am", "11:00").BuildView()
		orphan := builder.NewBookingBuilder().AsLegacy().With(func(b *builder.BookingBuilder) {
			b.EquipmentName = "Retired Autoclave"
		}).BuildView()

		s.equipment.EXPECT().List(gomock.Any()).Return([]*queries.EquipmentView{scope}, nil).Times(1)
		s.reservations.EXPECT().FindFrom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.ReservationView{broken, orphan}, nil).Times(1)

		board, err := s.sut.Board(s.T().Context())
		s.Require().NoError(err)
		s.Require().Len(board.Items, 1)
		s.Equal(availability.StatusAvailable, board.Items[0].Status)
		s.Empty(board.Items[0].UpcomingBookings)
	})

	s.Run("store failures are returned", func() {
		s.equipment.EXPECT().List(gomock.Any()).Return([]*queries.EquipmentView{scope}, nil).Times(1)
		s.reservations.EXPECT().FindFrom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		_, err := s.sut.Board(s.T().Context())
		s.Require().Error(err)
	})

	s.Run("the clock is read once per evaluation", func() {
		s.clock.Set(time.Date(2024, time.June, 1, 14, 59, 0, 0, time.UTC)) // 23:59 JST
		late := builder.NewBookingBuilder().ForEquipment(scope.Item()).Between("20:00", "00:00").BuildView()

		s.equipment.EXPECT().List(gomock.Any()).DoAndReturn(func(any) ([]*queries.EquipmentView, error) {
			s.clock.Add(time.Hour)
			return []*queries.EquipmentView{scope}, nil
		}).Times(1)
		s.reservations.EXPECT().FindFrom(gomock.Any(), "2024-05-31", gomock.Any()).
			Return([]*queries.ReservationView{late}, nil).Times(1)

		board, err := s.sut.Board(s.T().Context())
		s.Require().NoError(err)
		s.Equal(availability.StatusInUse, board.Items[0].Status, "23:59 is still inside an end-of-day booking")
	})
}

func (s *AvailabilityQueriesTestSuite) TestForEquipment() {
	scope := builder.NewEquipmentBuilder().BuildView()

	s.Run("filters bookings to the equipment", func() {
		booking := builder.NewBookingBuilder().ForEquipment(scope.Item()).Between("12:00", "13:00").BuildView()

		s.equipment.EXPECT().GetByID(gomock.Any(), scope.ID).Return(scope, nil).Times(1)
		s.reservations.EXPECT().FindFrom(gomock.Any(), "2024-05-31", &scope.ID).
			Return([]*queries.ReservationView{booking}, nil).Times(1)

		status, err := s.sut.ForEquipment(s.T().Context(), scope.ID)
		s.Require().NoError(err)
		s.Equal(scope.ID, status.View.EquipmentID)
		s.Equal(availability.StatusAvailable, status.View.Status)
		s.Require().Len(status.View.UpcomingBookings, 1)
	})

	s.Run("unknown equipment is not found", func() {
		id := uuid.New()
		s.equipment.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrEquipmentNotFound).Times(1)

		_, err := s.sut.ForEquipment(s.T().Context(), id)
		s.Require().ErrorIs(err, errs.ErrEquipmentNotFound)
	})
}

func TestNewAvailabilityQueries_RejectsUnknownZone(t *testing.T) {
	cfg := config.NewTestConfig().Availability
	cfg.TimeZone = "Mars/Olympus_Mons"

	_, err := queries.NewAvailabilityQueries(nil, nil, clock.NewRealClock(), cfg, slog.New(slog.DiscardHandler))
	if err == nil {
		t.Fatal("expected an error for an unknown time zone")
	}
}
