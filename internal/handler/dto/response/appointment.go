package response

import (
	"time"

	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	CustomerID      uuid.UUID         `json:"customerId"`
	Username        string            `json:"username"`
	FirstName       *string           `json:"firstName,omitempty"`
	GroomingTypeID  uuid.UUID         `json:"groomingTypeId"`
	GroomingType    string            `json:"groomingType"`
	AppointmentDate time.Time         `json:"appointmentDate"`
	CreatedAt       time.Time         `json:"createdAt"`
	Price           appointment.Money `json:"price"`
	DurationMinutes int               `json:"durationMinutes"`
}

type AppointmentSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	AppointmentDate time.Time `json:"appointmentDate"`
	GroomingType    string    `json:"groomingType"`
}

type CustomerHistoryResponse struct {
	BookingCount        int64      `json:"bookingCount"`
	LastAppointmentDate *time.Time `json:"lastAppointmentDate,omitempty"`
}

func FromAppointmentRM(rm *readmodel.AppointmentRM) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              rm.ID,
		CustomerID:      rm.CustomerID,
		Username:        rm.Username,
		FirstName:       rm.FirstName,
		GroomingTypeID:  rm.GroomingTypeID,
		GroomingType:    rm.GroomingType,
		AppointmentDate: rm.Date,
		CreatedAt:       rm.CreatedAt,
		Price:           appointment.MustMoney(rm.PriceCents),
		DurationMinutes: rm.DurationMinutes,
	}
}

func FromAppointmentSummaryRM(rm *readmodel.AppointmentSummaryRM) *AppointmentSummaryResponse {
	return &AppointmentSummaryResponse{
		ID:              rm.ID,
		Username:        rm.Username,
		AppointmentDate: rm.Date,
		GroomingType:    rm.GroomingType,
	}
}

func FromCustomerHistoryRM(rm *readmodel.CustomerHistoryRM) *CustomerHistoryResponse {
	return &CustomerHistoryResponse{
		BookingCount:        rm.BookingCount,
		LastAppointmentDate: rm.LastAppointmentDate,
	}
}
