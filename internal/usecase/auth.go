package usecase

import (
	"context"
	"errors"

	"dogbarber-api/internal/domain/customer"
	"dogbarber-api/internal/infra"
	"dogbarber-api/internal/pkg/errs"
	"dogbarber-api/internal/pkg/jwt"
	"dogbarber-api/internal/pkg/password"
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrCustomerAlreadyExists = errors.New("username or email already registered")
	ErrTokenGeneration       = errors.New("token generation failed")
)

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	// FindByLogin resolves a customer by username first, then by email,
	// so customers can sign in with either.
	FindByLogin(ctx context.Context, login string) (*customer.Customer, error)
	UpdateProfile(ctx context.Context, c *customer.Customer) error
}

type RegisterParams struct {
	Username  string
	Email     string
	FirstName string
	Password  string
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*readmodel.CustomerRM, error)
	Login(ctx context.Context, login, plainPassword string) (string, *readmodel.CustomerRM, error)
}

type authUseCaseImpl struct {
	customerRepo CustomerRepository
	jwtService   *jwt.Service
}

func NewAuthUseCase(customerRepo CustomerRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		customerRepo: customerRepo,
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*readmodel.CustomerRM, error) {
	username, err := customer.NewUsername(params.Username)
	if err != nil {
		return nil, err
	}
	email, err := customer.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	if _, err := customer.NewPassword(params.Password); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := customer.NewCustomer(username, email, params.FirstName, hash)
	if err := a.customerRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCustomerAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return toCustomerRM(entity), nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, login, plainPassword string) (string, *readmodel.CustomerRM, error) {
	entity, err := a.customerRepo.FindByLogin(ctx, login)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(entity.PasswordHash(), plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Username().Value())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, toCustomerRM(entity), nil
}

func toCustomerRM(c *customer.Customer) *readmodel.CustomerRM {
	return &readmodel.CustomerRM{
		ID:        c.ID(),
		Username:  c.Username().Value(),
		Email:     c.Email().Value(),
		FirstName: c.FirstName(),
	}
}
