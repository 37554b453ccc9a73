//go:build unit

package builder

import (
	"time"

	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/domain/grooming"
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	Username        string
	FirstName       string
	GroomingTypeID  uuid.UUID
	GroomingType    string
	BasePriceCents  int64
	PriceCents      int64
	DurationMinutes int
	Date            time.Time
	CreatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		Username:        "rex_owner",
		FirstName:       "Alex",
		GroomingTypeID:  uuid.New(),
		GroomingType:    "Medium",
		BasePriceCents:  15000,
		PriceCents:      15000,
		DurationMinutes: 45,
		Date:            now.AddDate(0, 0, 3),
		CreatedAt:       now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	return appointment.Reconstruct(
		b.ID,
		b.CustomerID,
		b.GroomingTypeID,
		b.Date,
		b.CreatedAt,
		appointment.MustMoney(b.PriceCents),
		b.DurationMinutes,
	)
}

func (b *AppointmentBuilder) BuildReadModel() *readmodel.AppointmentRM {
	firstName := b.FirstName
	return &readmodel.AppointmentRM{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		Username:        b.Username,
		FirstName:       &firstName,
		GroomingTypeID:  b.GroomingTypeID,
		GroomingType:    b.GroomingType,
		Date:            b.Date,
		CreatedAt:       b.CreatedAt,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
	}
}

func (b *AppointmentBuilder) BuildSummary() *readmodel.AppointmentSummaryRM {
	return &readmodel.AppointmentSummaryRM{
		ID:           b.ID,
		Username:     b.Username,
		Date:         b.Date,
		GroomingType: b.GroomingType,
	}
}

func (b *AppointmentBuilder) BuildCatalogEntry() *grooming.CatalogEntry {
	entry, err := grooming.NewCatalogEntry(
		b.GroomingTypeID,
		b.GroomingType,
		appointment.MustMoney(b.BasePriceCents),
		b.DurationMinutes,
	)
	if err != nil {
		panic(err)
	}
	return entry
}
