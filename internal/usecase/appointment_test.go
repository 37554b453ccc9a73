//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/infra"
	"dogbarber-api/internal/pkg/clock"
	"dogbarber-api/internal/usecase"
	"dogbarber-api/internal/usecase/readmodel"
	"dogbarber-api/tests/common/builder"
	usecasemock "dogbarber-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *usecasemock.MockAppointmentRepository
	mockGrooming *usecasemock.MockGroomingTypeRepository
	clock        *clock.MockClock
	uc           usecase.AppointmentUseCase
	now          time.Time
}

func (s *AppointmentUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockAppointmentRepository(s.mockCtrl)
	s.mockGrooming = usecasemock.NewMockGroomingTypeRepository(s.mockCtrl)
	s.now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.uc = usecase.NewAppointmentUseCase(s.mockRepo, s.mockGrooming, s.clock)
}

func (s *AppointmentUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AppointmentUseCaseTestSuite))
}

func (s *AppointmentUseCaseTestSuite) history(count int64) *readmodel.CustomerHistoryRM {
	return &readmodel.CustomerHistoryRM{BookingCount: count}
}

func (s *AppointmentUseCaseTestSuite) TestCreateAppointment() {
	b := builder.NewAppointmentBuilder()
	date := s.now.AddDate(0, 0, 3)

	s.Run("success: books at full price with three past visits", func() {
		var persisted *appointment.Appointment

		s.mockGrooming.EXPECT().FindByID(gomock.Any(), b.GroomingTypeID).
			Return(b.BuildCatalogEntry(), nil).Times(1)
		s.mockRepo.EXPECT().PastStats(gomock.Any(), b.CustomerID, s.now).
			Return(s.history(3), nil).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, appt *appointment.Appointment) error {
				persisted = appt
				return nil
			}).Times(1)
		s.mockRepo.EXPECT().FindDetailByID(gomock.Any(), gomock.Any()).
			Return(b.BuildReadModel(), nil).Times(1)

		rm, err := s.uc.CreateAppointment(context.Background(), b.CustomerID, b.GroomingTypeID, date)
		s.NoError(err)
		s.NotNil(rm)
		s.Equal(int64(15000), persisted.Price().Cents())
		s.Equal(45, persisted.DurationMinutes())
	})

	s.Run("success: applies discount with four past visits", func() {
		var persisted *appointment.Appointment

		s.mockGrooming.EXPECT().FindByID(gomock.Any(), b.GroomingTypeID).
			Return(b.BuildCatalogEntry(), nil).Times(1)
		s.mockRepo.EXPECT().PastStats(gomock.Any(), b.CustomerID, s.now).
			Return(s.history(4), nil).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, appt *appointment.Appointment) error {
				persisted = appt
				return nil
			}).Times(1)
		s.mockRepo.EXPECT().FindDetailByID(gomock.Any(), gomock.Any()).
			Return(b.BuildReadModel(), nil).Times(1)

		_, err := s.uc.CreateAppointment(context.Background(), b.CustomerID, b.GroomingTypeID, date)
		s.NoError(err)
		s.Equal("135.00", persisted.Price().String())
	})

	s.Run("error: past date rejected before any lookup", func() {
		_, err := s.uc.CreateAppointment(context.Background(), b.CustomerID, b.GroomingTypeID, s.now.AddDate(0, 0, -1))
		s.ErrorIs(err, usecase.ErrInvalidAppointmentDate)
	})

	s.Run("error: unknown grooming type", func() {
		s.mockGrooming.EXPECT().FindByID(gomock.Any(), b.GroomingTypeID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.uc.CreateAppointment(context.Background(), b.CustomerID, b.GroomingTypeID, date)
		s.ErrorIs(err, usecase.ErrGroomingTypeNotFound)
	})
}

func (s *AppointmentUseCaseTestSuite) TestUpdateAppointment() {
	b := builder.NewAppointmentBuilder()
	newDate := s.now.AddDate(0, 0, 7)

	s.Run("success: reschedule re-evaluates the discount", func() {
		var persisted *appointment.Appointment

		s.mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildDomain(), nil).Times(1)
		s.mockGrooming.EXPECT().FindByID(gomock.Any(), b.GroomingTypeID).
			Return(b.BuildCatalogEntry(), nil).Times(1)
		s.mockRepo.EXPECT().PastStats(gomock.Any(), b.CustomerID, s.now).
			Return(s.history(10), nil).Times(1)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, appt *appointment.Appointment) error {
				persisted = appt
				return nil
			}).Times(1)
		s.mockRepo.EXPECT().FindDetailByID(gomock.Any(), b.ID).
			Return(b.BuildReadModel(), nil).Times(1)

		_, err := s.uc.UpdateAppointment(context.Background(), b.ID, b.CustomerID, b.GroomingTypeID, newDate)
		s.NoError(err)
		s.Equal(int64(13500), persisted.Price().Cents())
		s.Equal(newDate, persisted.Date())
	})

	s.Run("error: appointment not found", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.uc.UpdateAppointment(context.Background(), b.ID, b.CustomerID, b.GroomingTypeID, newDate)
		s.ErrorIs(err, usecase.ErrAppointmentNotFound)
	})

	s.Run("error: another customer's appointment", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildDomain(), nil).Times(1)

		_, err := s.uc.UpdateAppointment(context.Background(), b.ID, uuid.New(), b.GroomingTypeID, newDate)
		s.ErrorIs(err, usecase.ErrNotAppointmentOwner)
	})

	s.Run("error: same-day lock regardless of the new date", func() {
		sameDay := builder.NewAppointmentBuilder().With(func(ab *builder.AppointmentBuilder) {
			ab.CustomerID = b.CustomerID
			ab.Date = s.now.Add(5 * time.Hour)
		})
		s.mockRepo.EXPECT().FindByID(gomock.Any(), sameDay.ID).
			Return(sameDay.BuildDomain(), nil).Times(1)

		_, err := s.uc.UpdateAppointment(context.Background(), sameDay.ID, b.CustomerID, b.GroomingTypeID, newDate)
		s.ErrorIs(err, usecase.ErrSameDayLocked)
	})

	s.Run("error: stored past appointment is frozen", func() {
		past := builder.NewAppointmentBuilder().With(func(ab *builder.AppointmentBuilder) {
			ab.CustomerID = b.CustomerID
			ab.Date = s.now.AddDate(0, 0, -2)
		})
		s.mockRepo.EXPECT().FindByID(gomock.Any(), past.ID).
			Return(past.BuildDomain(), nil).Times(1)

		_, err := s.uc.UpdateAppointment(context.Background(), past.ID, b.CustomerID, b.GroomingTypeID, newDate)
		s.ErrorIs(err, usecase.ErrPastAppointment)
	})

	s.Run("error: new date must be in the future", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildDomain(), nil).Times(1)

		_, err := s.uc.UpdateAppointment(context.Background(), b.ID, b.CustomerID, b.GroomingTypeID, s.now.Add(-time.Hour))
		s.ErrorIs(err, usecase.ErrInvalidAppointmentDate)
	})
}

func (s *AppointmentUseCaseTestSuite) TestDeleteAppointment() {
	b := builder.NewAppointmentBuilder()

	s.Run("success: future appointment cancelled", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildDomain(), nil).Times(1)
		s.mockRepo.EXPECT().Delete(gomock.Any(), b.ID).
			Return(nil).Times(1)

		s.NoError(s.uc.DeleteAppointment(context.Background(), b.ID, b.CustomerID))
	})

	s.Run("success: past appointment can be removed", func() {
		past := builder.NewAppointmentBuilder().With(func(ab *builder.AppointmentBuilder) {
			ab.CustomerID = b.CustomerID
			ab.Date = s.now.AddDate(0, 0, -5)
		})
		s.mockRepo.EXPECT().FindByID(gomock.Any(), past.ID).
			Return(past.BuildDomain(), nil).Times(1)
		s.mockRepo.EXPECT().Delete(gomock.Any(), past.ID).
			Return(nil).Times(1)

		s.NoError(s.uc.DeleteAppointment(context.Background(), past.ID, b.CustomerID))
	})

	s.Run("error: same-day appointment cannot be cancelled", func() {
		sameDay := builder.NewAppointmentBuilder().With(func(ab *builder.AppointmentBuilder) {
			ab.CustomerID = b.CustomerID
			ab.Date = s.now.Add(3 * time.Hour)
		})
		s.mockRepo.EXPECT().FindByID(gomock.Any(), sameDay.ID).
			Return(sameDay.BuildDomain(), nil).Times(1)

		err := s.uc.DeleteAppointment(context.Background(), sameDay.ID, b.CustomerID)
		s.ErrorIs(err, usecase.ErrSameDayLocked)
	})

	s.Run("error: another customer's appointment", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.BuildDomain(), nil).Times(1)

		err := s.uc.DeleteAppointment(context.Background(), b.ID, uuid.New())
		s.ErrorIs(err, usecase.ErrNotAppointmentOwner)
	})

	s.Run("error: appointment not found", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)).Times(1)

		err := s.uc.DeleteAppointment(context.Background(), b.ID, b.CustomerID)
		s.ErrorIs(err, usecase.ErrAppointmentNotFound)
	})
}

func (s *AppointmentUseCaseTestSuite) TestGetCustomerHistory() {
	customerID := uuid.New()
	last := s.now.AddDate(0, 0, -3)

	s.Run("success: counts bookings strictly before now", func() {
		s.mockRepo.EXPECT().PastStats(gomock.Any(), customerID, s.now).
			Return(&readmodel.CustomerHistoryRM{BookingCount: 5, LastAppointmentDate: &last}, nil).Times(1)

		rm, err := s.uc.GetCustomerHistory(context.Background(), customerID)
		s.NoError(err)
		s.Equal(int64(5), rm.BookingCount)
		s.Equal(&last, rm.LastAppointmentDate)
	})
}

func (s *AppointmentUseCaseTestSuite) TestListAppointments() {
	b := builder.NewAppointmentBuilder()

	s.Run("success: passes the filter through", func() {
		name := "rex"
		filter := usecase.ListFilter{NamePattern: &name}
		s.mockRepo.EXPECT().List(gomock.Any(), filter).
			Return([]*readmodel.AppointmentSummaryRM{b.BuildSummary()}, nil).Times(1)

		summaries, err := s.uc.ListAppointments(context.Background(), filter)
		s.NoError(err)
		s.Len(summaries, 1)
		s.Equal(b.Username, summaries[0].Username)
	})

	s.Run("success: returns summaries in ascending date order", func() {
		later := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.Date = s.now.AddDate(0, 0, 9)
		}).BuildSummary()
		earlier := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.Date = s.now.AddDate(0, 0, 2)
		}).BuildSummary()
		s.mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			Return([]*readmodel.AppointmentSummaryRM{later, earlier}, nil).Times(1)

		summaries, err := s.uc.ListAppointments(context.Background(), usecase.ListFilter{})
		s.NoError(err)
		s.Require().Len(summaries, 2)
		s.True(summaries[0].Date.Before(summaries[1].Date))
	})

	s.Run("error: repository failure surfaces as database error", func() {
		s.mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("boom", nil)).Times(1)

		_, err := s.uc.ListAppointments(context.Background(), usecase.ListFilter{})
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}
