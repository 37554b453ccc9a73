package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/infra"
	"dogbarber-api/internal/pkg/pgconv"
	"dogbarber-api/internal/usecase"
	"dogbarber-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type appointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) usecase.AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	const query = `
        INSERT INTO appointments (id, customer_id, grooming_type_id, appointment_date, created_at, price_cents, duration_minutes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(appt.ID()),
		pgconv.UUIDToPgtype(appt.CustomerID()),
		pgconv.UUIDToPgtype(appt.GroomingTypeID()),
		pgconv.TimeToPgtype(appt.Date()),
		pgconv.TimeToPgtype(appt.CreatedAt()),
		appt.Price().Cents(),
		appt.DurationMinutes(),
	)
	if err != nil {
		return classify("failed to insert appointment", err)
	}
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	const query = `
        SELECT id, customer_id, grooming_type_id, appointment_date, created_at, price_cents, duration_minutes
        FROM appointments
        WHERE id = $1`

	var (
		apptID, customerID, groomingTypeID pgtype.UUID
		date, createdAt                    pgtype.Timestamptz
		priceCents                         int64
		durationMinutes                    int
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&apptID, &customerID, &groomingTypeID, &date, &createdAt, &priceCents, &durationMinutes,
	)
	if err != nil {
		return nil, classify("failed to find appointment", err)
	}

	price, err := appointment.NewMoney(priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored price", err)
	}

	return appointment.Reconstruct(
		pgconv.UUIDFromPgtype(apptID),
		pgconv.UUIDFromPgtype(customerID),
		pgconv.UUIDFromPgtype(groomingTypeID),
		pgconv.TimeFromPgtype(date),
		pgconv.TimeFromPgtype(createdAt),
		price,
		durationMinutes,
	), nil
}

func (r *appointmentRepository) Update(ctx context.Context, appt *appointment.Appointment) error {
	const query = `
        UPDATE appointments
        SET grooming_type_id = $1, appointment_date = $2, price_cents = $3, duration_minutes = $4
        WHERE id = $5`
	cmd, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(appt.GroomingTypeID()),
		pgconv.TimeToPgtype(appt.Date()),
		appt.Price().Cents(),
		appt.DurationMinutes(),
		pgconv.UUIDToPgtype(appt.ID()),
	)
	if err != nil {
		return classify("failed to update appointment", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM appointments WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return classify("failed to delete appointment", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *appointmentRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
	const query = `
        SELECT a.id, a.customer_id, c.username, c.first_name,
               a.grooming_type_id, g.name, a.appointment_date, a.created_at,
               a.price_cents, a.duration_minutes
        FROM appointments a
        JOIN customers c ON c.id = a.customer_id
        JOIN grooming_types g ON g.id = a.grooming_type_id
        WHERE a.id = $1`

	var (
		apptID, customerID, groomingTypeID pgtype.UUID
		username, groomingType             string
		firstName                          pgtype.Text
		date, createdAt                    pgtype.Timestamptz
		rm                                 readmodel.AppointmentRM
	)
	err := r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&apptID, &customerID, &username, &firstName,
		&groomingTypeID, &groomingType, &date, &createdAt,
		&rm.PriceCents, &rm.DurationMinutes,
	)
	if err != nil {
		return nil, classify("failed to find appointment detail", err)
	}

	rm.ID = pgconv.UUIDFromPgtype(apptID)
	rm.CustomerID = pgconv.UUIDFromPgtype(customerID)
	rm.Username = username
	rm.FirstName = pgconv.StringPtrFromPgtype(firstName)
	rm.GroomingTypeID = pgconv.UUIDFromPgtype(groomingTypeID)
	rm.GroomingType = groomingType
	rm.Date = pgconv.TimeFromPgtype(date)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &rm, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter usecase.ListFilter) ([]*readmodel.AppointmentSummaryRM, error) {
	query := `
        SELECT a.id, c.username, a.appointment_date, g.name
        FROM appointments a
        JOIN customers c ON c.id = a.customer_id
        JOIN grooming_types g ON g.id = a.grooming_type_id
        WHERE 1=1`
	args := []any{}

	if filter.NamePattern != nil {
		args = append(args, escapeLikePattern(*filter.NamePattern))
		query += fmt.Sprintf(` AND (c.username LIKE '%%'||$%d||'%%' ESCAPE '\' OR c.first_name LIKE '%%'||$%d||'%%' ESCAPE '\')`, len(args), len(args))
	}
	from, to := filter.DateBounds()
	if from != nil {
		args = append(args, pgconv.TimeToPgtype(*from))
		query += fmt.Sprintf(" AND a.appointment_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, pgconv.TimeToPgtype(*to))
		query += fmt.Sprintf(" AND a.appointment_date < $%d", len(args))
	}
	query += " ORDER BY a.appointment_date ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("failed to list appointments", err)
	}
	defer rows.Close()

	summaries := []*readmodel.AppointmentSummaryRM{}
	for rows.Next() {
		var (
			apptID pgtype.UUID
			date   pgtype.Timestamptz
			rm     readmodel.AppointmentSummaryRM
		)
		if err := rows.Scan(&apptID, &rm.Username, &date, &rm.GroomingType); err != nil {
			return nil, classify("failed to scan appointment row", err)
		}
		rm.ID = pgconv.UUIDFromPgtype(apptID)
		rm.Date = pgconv.TimeFromPgtype(date)
		summaries = append(summaries, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("failed to read appointment rows", err)
	}
	return summaries, nil
}

func (r *appointmentRepository) PastStats(ctx context.Context, customerID uuid.UUID, before time.Time) (*readmodel.CustomerHistoryRM, error) {
	const query = `
        SELECT COUNT(*), MAX(appointment_date)
        FROM appointments
        WHERE customer_id = $1 AND appointment_date < $2`

	var (
		count pgtype.Int8
		last  pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(customerID),
		pgconv.TimeToPgtype(before),
	).Scan(&count, &last)
	if err != nil {
		return nil, classify("failed to aggregate appointment history", err)
	}

	return &readmodel.CustomerHistoryRM{
		BookingCount:        count.Int64,
		LastAppointmentDate: pgconv.TimePtrFromPgtype(last),
	}, nil
}

// escapeLikePattern neutralizes LIKE wildcards so the pattern matches the
// customer input as a literal substring.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
