package grooming

import (
	"errors"

	"dogbarber-api/internal/domain/appointment"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("grooming type name must not be empty")
	ErrInvalidPrice    = errors.New("grooming type price must be positive")
	ErrInvalidDuration = errors.New("grooming type duration must be positive")
)

// CatalogEntry is a read-only size tier of the grooming catalog
// (e.g. Small / Medium / Large). Seeded at system initialization.
type CatalogEntry struct {
	id              uuid.UUID
	name            string
	basePrice       appointment.Money
	durationMinutes int
}

func NewCatalogEntry(id uuid.UUID, name string, basePrice appointment.Money, durationMinutes int) (*CatalogEntry, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if basePrice.Cents() <= 0 {
		return nil, ErrInvalidPrice
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	return &CatalogEntry{
		id:              id,
		name:            name,
		basePrice:       basePrice,
		durationMinutes: durationMinutes,
	}, nil
}

func (e *CatalogEntry) ID() uuid.UUID                { return e.id }
func (e *CatalogEntry) Name() string                 { return e.name }
func (e *CatalogEntry) BasePrice() appointment.Money { return e.basePrice }
func (e *CatalogEntry) DurationMinutes() int         { return e.durationMinutes }

// Snapshot converts the entry to the snapshot consumed by the appointment rules.
func (e *CatalogEntry) Snapshot() appointment.GroomingSnapshot {
	return appointment.GroomingSnapshot{
		ID:              e.id,
		Name:            e.name,
		BasePrice:       e.basePrice,
		DurationMinutes: e.durationMinutes,
	}
}
