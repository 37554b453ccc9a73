//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"dogbarber-api/internal/handler/api"
	resdto "dogbarber-api/internal/handler/dto/response"
	"dogbarber-api/internal/usecase"
	"dogbarber-api/internal/usecase/readmodel"
	"dogbarber-api/tests/common/builder"
	"dogbarber-api/tests/common/httptest"
	usecasemock "dogbarber-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockUC     *usecasemock.MockAppointmentUseCase
	handler    *api.AppointmentHandler
	customerID uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockAppointmentUseCase(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockUC)
	s.customerID = uuid.New()

	// Mock middleware behavior: inject the authenticated customer
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("customer_id", s.customerID)
			h(c)
		}
	}

	s.router.POST("/appointments", authed(s.handler.Create))
	s.router.GET("/appointments", authed(s.handler.List))
	s.router.GET("/appointments/:id", authed(s.handler.Get))
	s.router.PUT("/appointments/:id", authed(s.handler.Update))
	s.router.DELETE("/appointments/:id", authed(s.handler.Delete))
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"
	b := builder.NewAppointmentBuilder()

	body := map[string]any{
		"grooming_type_id": b.GroomingTypeID,
		"appointment_date": b.Date.Format(time.RFC3339),
	}

	s.Run("success: returns 201 with the priced appointment", func() {
		s.mockUC.EXPECT().CreateAppointment(gomock.Any(), s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(b.BuildReadModel(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.Username, response.Username)
	})

	s.Run("success: price is serialized as a plain decimal", func() {
		s.mockUC.EXPECT().CreateAppointment(gomock.Any(), s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(b.BuildReadModel(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"price":150.00`)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"grooming_type_id": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when the date is not in the future", func() {
		s.mockUC.EXPECT().CreateAppointment(gomock.Any(), s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(nil, usecase.ErrInvalidAppointmentDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "future")
	})

	s.Run("error: 404 for an unknown grooming type", func() {
		s.mockUC.EXPECT().CreateAppointment(gomock.Any(), s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(nil, usecase.ErrGroomingTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Grooming type not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestUpdate() {
	b := builder.NewAppointmentBuilder()
	url := "/appointments/" + b.ID.String()

	body := map[string]any{
		"grooming_type_id": b.GroomingTypeID,
		"appointment_date": b.Date.Format(time.RFC3339),
	}

	s.Run("success: returns 200 with the updated appointment", func() {
		s.mockUC.EXPECT().UpdateAppointment(gomock.Any(), b.ID, s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(b.BuildReadModel(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
	})

	s.Run("error: 403 when the appointment belongs to someone else", func() {
		s.mockUC.EXPECT().UpdateAppointment(gomock.Any(), b.ID, s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(nil, usecase.ErrNotAppointmentOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another customer")
	})

	s.Run("error: 409 for a same-day appointment", func() {
		s.mockUC.EXPECT().UpdateAppointment(gomock.Any(), b.ID, s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(nil, usecase.ErrSameDayLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "today")
	})

	s.Run("error: 409 for a past appointment", func() {
		s.mockUC.EXPECT().UpdateAppointment(gomock.Any(), b.ID, s.customerID, b.GroomingTypeID, gomock.Any()).
			Return(nil, usecase.ErrPastAppointment).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Past appointments")
	})

	s.Run("error: 400 on a malformed appointment ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/not-a-uuid", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID")
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	b := builder.NewAppointmentBuilder()
	url := "/appointments/" + b.ID.String()

	s.Run("success: returns 204", func() {
		s.mockUC.EXPECT().DeleteAppointment(gomock.Any(), b.ID, s.customerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockUC.EXPECT().DeleteAppointment(gomock.Any(), b.ID, s.customerID).
			Return(usecase.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 409 for a same-day appointment", func() {
		s.mockUC.EXPECT().DeleteAppointment(gomock.Any(), b.ID, s.customerID).
			Return(usecase.ErrSameDayLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "today")
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	b := builder.NewAppointmentBuilder()

	s.Run("success: returns summaries", func() {
		s.mockUC.EXPECT().ListAppointments(gomock.Any(), usecase.ListFilter{}).
			Return([]*readmodel.AppointmentSummaryRM{b.BuildSummary()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "")

		var response []*resdto.AppointmentSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(b.Username, response[0].Username)
	})

	s.Run("success: forwards name and date filters", func() {
		var captured usecase.ListFilter
		s.mockUC.EXPECT().ListAppointments(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter usecase.ListFilter) ([]*readmodel.AppointmentSummaryRM, error) {
				captured = filter
				return []*readmodel.AppointmentSummaryRM{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?name=rex&from=2024-06-01&to=2024-06-30", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		name := "rex"
		from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		expected := usecase.ListFilter{NamePattern: &name, From: &from, To: &to}
		s.Empty(cmp.Diff(expected, captured))
	})
}

func (s *AppointmentHandlerTestSuite) TestGet() {
	b := builder.NewAppointmentBuilder()
	url := "/appointments/" + b.ID.String()

	s.Run("success: returns the detail view", func() {
		s.mockUC.EXPECT().GetAppointmentDetail(gomock.Any(), b.ID).
			Return(b.BuildReadModel(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.GroomingType, response.GroomingType)
		s.Equal(b.DurationMinutes, response.DurationMinutes)
	})

	s.Run("error: 404 when missing", func() {
		s.mockUC.EXPECT().GetAppointmentDetail(gomock.Any(), b.ID).
			Return(nil, usecase.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}
