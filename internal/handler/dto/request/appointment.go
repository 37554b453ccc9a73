package request

import (
	"strings"
	"time"

	"dogbarber-api/internal/usecase"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	GroomingTypeID uuid.UUID `json:"grooming_type_id" binding:"required"`
	Date           time.Time `json:"appointment_date" binding:"required"`
}

type UpdateAppointmentRequest struct {
	GroomingTypeID uuid.UUID `json:"grooming_type_id" binding:"required"`
	Date           time.Time `json:"appointment_date" binding:"required"`
}

// ListAppointmentsQuery filters the listing. Dates are UTC calendar days,
// both bounds inclusive.
type ListAppointmentsQuery struct {
	Name *string    `form:"name"`
	From *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To   *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

func (q ListAppointmentsQuery) ToFilter() usecase.ListFilter {
	filter := usecase.ListFilter{
		From: q.From,
		To:   q.To,
	}
	if q.Name != nil {
		if trimmed := strings.TrimSpace(*q.Name); trimmed != "" {
			filter.NamePattern = &trimmed
		}
	}
	return filter
}
