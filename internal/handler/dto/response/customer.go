package response

import (
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
}

func FromCustomerRM(rm *readmodel.CustomerRM) *CustomerResponse {
	var resp CustomerResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
