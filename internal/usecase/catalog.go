package usecase

import (
	"context"

	"dogbarber-api/internal/domain/grooming"
	"dogbarber-api/internal/pkg/errs"
	"dogbarber-api/internal/usecase/readmodel"
)

type CatalogUseCase interface {
	ListGroomingTypes(ctx context.Context) ([]*readmodel.GroomingTypeRM, error)
}

type catalogUseCaseImpl struct {
	groomingRepo GroomingTypeRepository
}

func NewCatalogUseCase(groomingRepo GroomingTypeRepository) CatalogUseCase {
	return &catalogUseCaseImpl{groomingRepo: groomingRepo}
}

func (u *catalogUseCaseImpl) ListGroomingTypes(ctx context.Context) ([]*readmodel.GroomingTypeRM, error) {
	entries, err := u.groomingRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := make([]*readmodel.GroomingTypeRM, len(entries))
	for i, entry := range entries {
		result[i] = toGroomingTypeRM(entry)
	}
	return result, nil
}

func toGroomingTypeRM(entry *grooming.CatalogEntry) *readmodel.GroomingTypeRM {
	return &readmodel.GroomingTypeRM{
		ID:              entry.ID(),
		Name:            entry.Name(),
		PriceCents:      entry.BasePrice().Cents(),
		DurationMinutes: entry.DurationMinutes(),
	}
}
