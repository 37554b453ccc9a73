package api

import (
	"errors"
	"net/http"

	"dogbarber-api/internal/domain/customer"
	reqdto "dogbarber-api/internal/handler/dto/request"
	resdto "dogbarber-api/internal/handler/dto/response"
	"dogbarber-api/internal/handler/middleware"
	"dogbarber-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerUseCase    usecase.CustomerUseCase
	appointmentUseCase usecase.AppointmentUseCase
}

func NewCustomerHandler(customerUseCase usecase.CustomerUseCase, appointmentUseCase usecase.AppointmentUseCase) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase:    customerUseCase,
		appointmentUseCase: appointmentUseCase,
	}
}

// @Summary Get own profile
// @Description Get the authenticated customer's profile
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} map[string]string
// @Router /customers/me [get]
func (h *CustomerHandler) Me(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	customerRM, err := h.customerUseCase.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerRM(customerRM))
}

// @Summary Update own profile
// @Description Update the authenticated customer's first name or email
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/me [put]
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	customerRM, err := h.customerUseCase.UpdateProfile(c.Request.Context(), customerID, usecase.UpdateProfileParams{
		FirstName: req.FirstName,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, usecase.ErrEmailAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already in use",
			})
		case errors.Is(err, usecase.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerRM(customerRM))
}

// @Summary Get booking history
// @Description Get the count and last date of a customer's past appointments
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerHistoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /customers/{id}/history [get]
func (h *CustomerHandler) History(c *gin.Context) {
	callerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	// Customers may only inspect their own history.
	if callerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Cannot view another customer's history",
		})
		return
	}

	historyRM, err := h.appointmentUseCase.GetCustomerHistory(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerHistoryRM(historyRM))
}
