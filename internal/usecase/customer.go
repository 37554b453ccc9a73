package usecase

import (
	"context"
	"errors"

	"dogbarber-api/internal/domain/customer"
	"dogbarber-api/internal/infra"
	"dogbarber-api/internal/pkg/errs"
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrEmailAlreadyUsed = errors.New("email already in use")

type UpdateProfileParams struct {
	FirstName string
	Email     *string
}

type CustomerUseCase interface {
	GetProfile(ctx context.Context, customerID uuid.UUID) (*readmodel.CustomerRM, error)
	UpdateProfile(ctx context.Context, customerID uuid.UUID, params UpdateProfileParams) (*readmodel.CustomerRM, error)
}

type customerUseCaseImpl struct {
	customerRepo CustomerRepository
}

func NewCustomerUseCase(customerRepo CustomerRepository) CustomerUseCase {
	return &customerUseCaseImpl{customerRepo: customerRepo}
}

func (u *customerUseCaseImpl) GetProfile(ctx context.Context, customerID uuid.UUID) (*readmodel.CustomerRM, error) {
	entity, err := u.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toCustomerRM(entity), nil
}

func (u *customerUseCaseImpl) UpdateProfile(ctx context.Context, customerID uuid.UUID, params UpdateProfileParams) (*readmodel.CustomerRM, error) {
	entity, err := u.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var email *customer.Email
	if params.Email != nil && *params.Email != entity.Email().Value() {
		parsed, err := customer.NewEmail(*params.Email)
		if err != nil {
			return nil, err
		}
		email = &parsed
	}

	entity.UpdateProfile(params.FirstName, email)

	if err := u.customerRepo.UpdateProfile(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return toCustomerRM(entity), nil
}

func (u *customerUseCaseImpl) findCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	entity, err := u.customerRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
