package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/domain/grooming"
	"dogbarber-api/internal/infra"
	"dogbarber-api/internal/pkg/clock"
	"dogbarber-api/internal/pkg/errs"
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrGroomingTypeNotFound    = errors.New("grooming type not found")
	ErrNotAppointmentOwner     = errors.New("appointment belongs to another customer")
	ErrSameDayLocked           = errors.New("appointments scheduled for today cannot be changed or cancelled")
	ErrPastAppointment         = errors.New("past appointments cannot be changed")
	ErrInvalidAppointmentDate  = errors.New("appointment date must be in the future")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// ListFilter narrows the appointment listing. NamePattern is a case-sensitive
// substring match against the owning customer's username or first name; From
// and To are inclusive UTC calendar days.
type ListFilter struct {
	NamePattern *string
	From        *time.Time
	To          *time.Time
}

// DateBounds expands the inclusive From/To calendar days into a half-open
// UTC instant range [start of the From day, start of the day after the To
// day). From = To = D therefore selects exactly the appointments on day D.
func (f ListFilter) DateBounds() (from, to *time.Time) {
	if f.From != nil {
		t := startOfUTCDay(*f.From)
		from = &t
	}
	if f.To != nil {
		t := startOfUTCDay(*f.To).AddDate(0, 0, 1)
		to = &t
	}
	return from, to
}

func startOfUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	Update(ctx context.Context, appt *appointment.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindDetailByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error)
	List(ctx context.Context, filter ListFilter) ([]*readmodel.AppointmentSummaryRM, error)
	PastStats(ctx context.Context, customerID uuid.UUID, before time.Time) (*readmodel.CustomerHistoryRM, error)
}

type GroomingTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*grooming.CatalogEntry, error)
	FindAll(ctx context.Context) ([]*grooming.CatalogEntry, error)
}

type AppointmentUseCase interface {
	CreateAppointment(ctx context.Context, customerID, groomingTypeID uuid.UUID, date time.Time) (*readmodel.AppointmentRM, error)
	UpdateAppointment(ctx context.Context, appointmentID, customerID, groomingTypeID uuid.UUID, date time.Time) (*readmodel.AppointmentRM, error)
	DeleteAppointment(ctx context.Context, appointmentID, customerID uuid.UUID) error
	ListAppointments(ctx context.Context, filter ListFilter) ([]*readmodel.AppointmentSummaryRM, error)
	GetAppointmentDetail(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error)
	GetCustomerHistory(ctx context.Context, customerID uuid.UUID) (*readmodel.CustomerHistoryRM, error)
}

type appointmentUseCaseImpl struct {
	appointmentRepo AppointmentRepository
	groomingRepo    GroomingTypeRepository
	clock           clock.Clock
}

func NewAppointmentUseCase(
	appointmentRepo AppointmentRepository,
	groomingRepo GroomingTypeRepository,
	clock clock.Clock,
) AppointmentUseCase {
	return &appointmentUseCaseImpl{
		appointmentRepo: appointmentRepo,
		groomingRepo:    groomingRepo,
		clock:           clock,
	}
}

func (u *appointmentUseCaseImpl) CreateAppointment(
	ctx context.Context,
	customerID, groomingTypeID uuid.UUID,
	date time.Time,
) (*readmodel.AppointmentRM, error) {
	now := u.clock.Now().UTC()

	if !date.UTC().After(now) {
		return nil, ErrInvalidAppointmentDate
	}

	entry, err := u.resolveCatalogEntry(ctx, groomingTypeID)
	if err != nil {
		return nil, err
	}

	pastBookings, err := u.pastBookingCount(ctx, customerID, now)
	if err != nil {
		return nil, err
	}

	appt, err := appointment.NewAppointment(now, customerID, entry.Snapshot(), date, pastBookings)
	if err != nil {
		return nil, translateBookingErr(err)
	}

	if err := u.appointmentRepo.Create(ctx, appt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.findDetail(ctx, appt.ID())
}

func (u *appointmentUseCaseImpl) UpdateAppointment(
	ctx context.Context,
	appointmentID, customerID, groomingTypeID uuid.UUID,
	date time.Time,
) (*readmodel.AppointmentRM, error) {
	now := u.clock.Now().UTC()

	appt, err := u.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := appt.AuthorizeOwner(customerID); err != nil {
		return nil, translateBookingErr(err)
	}
	if err := appt.EnsureEditable(now); err != nil {
		return nil, translateBookingErr(err)
	}
	if !date.UTC().After(now) {
		return nil, ErrInvalidAppointmentDate
	}

	entry, err := u.resolveCatalogEntry(ctx, groomingTypeID)
	if err != nil {
		return nil, err
	}

	// Discount eligibility is re-evaluated against the owner's current past
	// bookings, never grandfathered from the original price.
	pastBookings, err := u.pastBookingCount(ctx, appt.CustomerID(), now)
	if err != nil {
		return nil, err
	}

	if err := appt.Reschedule(now, entry.Snapshot(), date, pastBookings); err != nil {
		return nil, translateBookingErr(err)
	}

	if err := u.appointmentRepo.Update(ctx, appt); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.findDetail(ctx, appt.ID())
}

func (u *appointmentUseCaseImpl) DeleteAppointment(ctx context.Context, appointmentID, customerID uuid.UUID) error {
	now := u.clock.Now().UTC()

	appt, err := u.findAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	if err := appt.AuthorizeOwner(customerID); err != nil {
		return translateBookingErr(err)
	}
	if err := appt.EnsureDeletable(now); err != nil {
		return translateBookingErr(err)
	}

	if err := u.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (u *appointmentUseCaseImpl) ListAppointments(ctx context.Context, filter ListFilter) ([]*readmodel.AppointmentSummaryRM, error) {
	summaries, err := u.appointmentRepo.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Listing contract: ascending by appointment date.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})
	return summaries, nil
}

func (u *appointmentUseCaseImpl) GetAppointmentDetail(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
	return u.findDetail(ctx, id)
}

func (u *appointmentUseCaseImpl) GetCustomerHistory(ctx context.Context, customerID uuid.UUID) (*readmodel.CustomerHistoryRM, error) {
	now := u.clock.Now().UTC()

	history, err := u.appointmentRepo.PastStats(ctx, customerID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return history, nil
}

func (u *appointmentUseCaseImpl) findAppointment(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return appt, nil
}

func (u *appointmentUseCaseImpl) findDetail(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
	detail, err := u.appointmentRepo.FindDetailByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return detail, nil
}

func (u *appointmentUseCaseImpl) resolveCatalogEntry(ctx context.Context, id uuid.UUID) (*grooming.CatalogEntry, error) {
	entry, err := u.groomingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGroomingTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entry, nil
}

func (u *appointmentUseCaseImpl) pastBookingCount(ctx context.Context, customerID uuid.UUID, now time.Time) (int64, error) {
	history, err := u.appointmentRepo.PastStats(ctx, customerID, now)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return history.BookingCount, nil
}

func translateBookingErr(err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotOwner):
		return ErrNotAppointmentOwner
	case errors.Is(err, appointment.ErrSameDayLocked):
		return ErrSameDayLocked
	case errors.Is(err, appointment.ErrPastLocked):
		return ErrPastAppointment
	case errors.Is(err, appointment.ErrDateNotFuture):
		return ErrInvalidAppointmentDate
	case errors.Is(err, appointment.ErrMissingCatalog):
		return ErrGroomingTypeNotFound
	default:
		return err
	}
}
