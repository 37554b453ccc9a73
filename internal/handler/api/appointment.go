package api

import (
	"errors"
	"net/http"

	reqdto "dogbarber-api/internal/handler/dto/request"
	resdto "dogbarber-api/internal/handler/dto/response"
	"dogbarber-api/internal/handler/middleware"
	"dogbarber-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentUseCase usecase.AppointmentUseCase
}

func NewAppointmentHandler(appointmentUseCase usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUseCase: appointmentUseCase,
	}
}

// @Summary Book appointment
// @Description Book a grooming appointment for the authenticated customer
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	appointmentRM, err := h.appointmentUseCase.CreateAppointment(c.Request.Context(), customerID, req.GroomingTypeID, req.Date)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentRM(appointmentRM))
}

// @Summary Reschedule appointment
// @Description Change the date or grooming type of an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Appointment request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	var req reqdto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	appointmentRM, err := h.appointmentUseCase.UpdateAppointment(c.Request.Context(), appointmentID, customerID, req.GroomingTypeID, req.Date)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRM(appointmentRM))
}

// @Summary Cancel appointment
// @Description Delete an appointment owned by the authenticated customer
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	if err := h.appointmentUseCase.DeleteAppointment(c.Request.Context(), appointmentID, customerID); err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List appointments
// @Description List appointments, optionally filtered by customer name and date range
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param name query string false "Substring of the customer's username or first name"
// @Param from query string false "First day of the range (YYYY-MM-DD, UTC)"
// @Param to query string false "Last day of the range (YYYY-MM-DD, UTC)"
// @Success 200 {array} resdto.AppointmentSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var query reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	summaries, err := h.appointmentUseCase.ListAppointments(c.Request.Context(), query.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AppointmentSummaryResponse, len(summaries))
	for i, rm := range summaries {
		response[i] = resdto.FromAppointmentSummaryRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get appointment
// @Description Get appointment detail by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	appointmentRM, err := h.appointmentUseCase.GetAppointmentDetail(c.Request.Context(), appointmentID)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRM(appointmentRM))
}

func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
	case errors.Is(err, usecase.ErrGroomingTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Grooming type not found",
		})
	case errors.Is(err, usecase.ErrNotAppointmentOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Appointment belongs to another customer",
		})
	case errors.Is(err, usecase.ErrInvalidAppointmentDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Appointment date must be in the future",
		})
	case errors.Is(err, usecase.ErrSameDayLocked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointments scheduled for today cannot be changed or cancelled",
		})
	case errors.Is(err, usecase.ErrPastAppointment):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Past appointments cannot be changed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
