package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentRM is the full detail view, including the creation timestamp and
// the duration snapshot taken at the last write.
type AppointmentRM struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customer_id"`
	Username        string     `json:"username"`
	FirstName       *string    `json:"first_name,omitempty"`
	GroomingTypeID  uuid.UUID  `json:"grooming_type_id"`
	GroomingType    string     `json:"grooming_type"`
	Date            time.Time  `json:"appointment_date"`
	CreatedAt       time.Time  `json:"created_at"`
	PriceCents      int64      `json:"price_cents"`
	DurationMinutes int        `json:"duration_minutes"`
}

// AppointmentSummaryRM is one row of the public listing: who, when, what.
type AppointmentSummaryRM struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Date         time.Time `json:"appointment_date"`
	GroomingType string    `json:"grooming_type"`
}

// CustomerHistoryRM summarizes a customer's past bookings (scheduled date
// strictly before the evaluation instant).
type CustomerHistoryRM struct {
	BookingCount        int64      `json:"booking_count"`
	LastAppointmentDate *time.Time `json:"last_appointment_date,omitempty"`
}
