package response

import (
	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type GroomingTypeResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Price           appointment.Money `json:"price"`
	DurationMinutes int               `json:"durationMinutes"`
}

func FromGroomingTypeRM(rm *readmodel.GroomingTypeRM) *GroomingTypeResponse {
	return &GroomingTypeResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Price:           appointment.MustMoney(rm.PriceCents),
		DurationMinutes: rm.DurationMinutes,
	}
}
