package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDateNotFuture  = errors.New("appointment date must be strictly in the future")
	ErrSameDayLocked  = errors.New("appointment scheduled for today cannot be changed")
	ErrPastLocked     = errors.New("past appointments cannot be changed")
	ErrNotOwner       = errors.New("appointment belongs to another customer")
	ErrNegativePrice  = errors.New("price cannot be negative")
	ErrMissingCatalog = errors.New("grooming catalog entry required")
)

// GroomingSnapshot is the snapshot of a catalog entry consumed at write time.
// Duration and price are copied onto the appointment; later catalog changes
// do not affect existing bookings.
type GroomingSnapshot struct {
	ID              uuid.UUID
	Name            string
	BasePrice       Money
	DurationMinutes int
}

// Appointment is the central mutable entity. It has no status field: "past"
// is inferred by comparing the scheduled date with the current time, and the
// only transitions are created -> rescheduled zero or more times -> deleted.
type Appointment struct {
	id              uuid.UUID
	customerID      uuid.UUID
	groomingTypeID  uuid.UUID
	date            time.Time
	createdAt       time.Time
	price           Money
	durationMinutes int
}

// NewAppointment books a slot for a customer. now must be the single UTC
// instant captured for the whole operation.
func NewAppointment(
	now time.Time,
	customerID uuid.UUID,
	snap GroomingSnapshot,
	requestedDate time.Time,
	pastBookings int64,
) (*Appointment, error) {
	if snap.ID == uuid.Nil {
		return nil, ErrMissingCatalog
	}

	requestedDate = requestedDate.UTC()
	if !requestedDate.After(now) {
		return nil, ErrDateNotFuture
	}

	return &Appointment{
		id:              uuid.New(),
		customerID:      customerID,
		groomingTypeID:  snap.ID,
		date:            requestedDate,
		createdAt:       now,
		price:           PriceFor(snap.BasePrice, pastBookings),
		durationMinutes: snap.DurationMinutes,
	}, nil
}

// Reconstruct rebuilds a persisted appointment without re-running booking
// rules. Used only by the persistence layer.
func Reconstruct(
	id, customerID, groomingTypeID uuid.UUID,
	date, createdAt time.Time,
	price Money,
	durationMinutes int,
) *Appointment {
	return &Appointment{
		id:              id,
		customerID:      customerID,
		groomingTypeID:  groomingTypeID,
		date:            date.UTC(),
		createdAt:       createdAt.UTC(),
		price:           price,
		durationMinutes: durationMinutes,
	}
}

// AuthorizeOwner rejects mutation attempts by anyone but the owning customer.
func (a *Appointment) AuthorizeOwner(customerID uuid.UUID) error {
	if a.customerID != customerID {
		return ErrNotOwner
	}
	return nil
}

// EnsureDeletable enforces the same-day lock: an appointment scheduled for
// the current UTC calendar day cannot be deleted.
func (a *Appointment) EnsureDeletable(now time.Time) error {
	if SameUTCDay(a.date, now) {
		return ErrSameDayLocked
	}
	return nil
}

// EnsureEditable enforces the temporal rules on the *stored* schedule: the
// same-day lock applies regardless of the requested new date, and past
// appointments are frozen entirely.
func (a *Appointment) EnsureEditable(now time.Time) error {
	if SameUTCDay(a.date, now) {
		return ErrSameDayLocked
	}
	if !a.date.After(now) {
		return ErrPastLocked
	}
	return nil
}

// Reschedule moves the appointment to a new catalog entry and date. Price is
// recomputed with the customer's current past-booking count; duration is
// re-snapshotted from the new catalog entry. Owner and creation timestamp are
// untouched.
func (a *Appointment) Reschedule(
	now time.Time,
	snap GroomingSnapshot,
	requestedDate time.Time,
	pastBookings int64,
) error {
	if err := a.EnsureEditable(now); err != nil {
		return err
	}

	requestedDate = requestedDate.UTC()
	if !requestedDate.After(now) {
		return ErrDateNotFuture
	}
	if snap.ID == uuid.Nil {
		return ErrMissingCatalog
	}

	a.groomingTypeID = snap.ID
	a.date = requestedDate
	a.price = PriceFor(snap.BasePrice, pastBookings)
	a.durationMinutes = snap.DurationMinutes
	return nil
}

// IsPast reports whether the scheduled date is strictly before now.
func (a *Appointment) IsPast(now time.Time) bool {
	return a.date.Before(now)
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) CustomerID() uuid.UUID     { return a.customerID }
func (a *Appointment) GroomingTypeID() uuid.UUID { return a.groomingTypeID }
func (a *Appointment) Date() time.Time           { return a.date }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) Price() Money              { return a.price }
func (a *Appointment) DurationMinutes() int      { return a.durationMinutes }
