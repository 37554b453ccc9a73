package repository

import (
	"context"

	"dogbarber-api/internal/domain/customer"
	"dogbarber-api/internal/pkg/pgconv"
	"dogbarber-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type customerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) usecase.CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	const query = `
        INSERT INTO customers (id, username, email, first_name, password_hash)
        VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		c.Username().Value(),
		c.Email().Value(),
		c.FirstName(),
		c.PasswordHash(),
	)
	if err != nil {
		return classify("failed to insert customer", err)
	}
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	const query = `
        SELECT id, username, email, first_name, password_hash, created_at
        FROM customers
        WHERE id = $1`
	return r.fetchSingle(ctx, query, pgconv.UUIDToPgtype(id))
}

func (r *customerRepository) FindByLogin(ctx context.Context, login string) (*customer.Customer, error) {
	const query = `
        SELECT id, username, email, first_name, password_hash, created_at
        FROM customers
        WHERE username = $1 OR email = $1`
	return r.fetchSingle(ctx, query, login)
}

func (r *customerRepository) UpdateProfile(ctx context.Context, c *customer.Customer) error {
	const query = `
        UPDATE customers
        SET email = $1, first_name = $2
        WHERE id = $3`
	_, err := r.pool.Exec(ctx, query,
		c.Email().Value(),
		c.FirstName(),
		pgconv.UUIDToPgtype(c.ID()),
	)
	if err != nil {
		return classify("failed to update customer profile", err)
	}
	return nil
}

func (r *customerRepository) fetchSingle(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var (
		id                      pgtype.UUID
		username, email         string
		firstName, passwordHash string
		createdAt               pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&id, &username, &email, &firstName, &passwordHash, &createdAt,
	)
	if err != nil {
		return nil, classify("failed to find customer", err)
	}

	parsedUsername, err := customer.NewUsername(username)
	if err != nil {
		return nil, classify("invalid stored username", err)
	}
	parsedEmail, err := customer.NewEmail(email)
	if err != nil {
		return nil, classify("invalid stored email", err)
	}

	return customer.Reconstruct(
		pgconv.UUIDFromPgtype(id),
		parsedUsername,
		parsedEmail,
		firstName,
		passwordHash,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
