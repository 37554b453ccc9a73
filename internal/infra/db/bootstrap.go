package db

import (
	"context"
	"log/slog"

	"dogbarber-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS customers (
    id            UUID PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL UNIQUE,
    first_name    TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS grooming_types (
    id               UUID PRIMARY KEY,
    name             TEXT NOT NULL UNIQUE,
    base_price_cents BIGINT NOT NULL CHECK (base_price_cents > 0),
    duration_minutes INT NOT NULL CHECK (duration_minutes > 0)
);

CREATE TABLE IF NOT EXISTS appointments (
    id               UUID PRIMARY KEY,
    customer_id      UUID NOT NULL REFERENCES customers(id),
    grooming_type_id UUID NOT NULL REFERENCES grooming_types(id),
    appointment_date TIMESTAMPTZ NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    price_cents      BIGINT NOT NULL CHECK (price_cents >= 0),
    duration_minutes INT NOT NULL CHECK (duration_minutes > 0)
);

CREATE INDEX IF NOT EXISTS idx_appointments_customer_date
    ON appointments (customer_id, appointment_date);
CREATE INDEX IF NOT EXISTS idx_appointments_date
    ON appointments (appointment_date);
`

// Seed tiers match the sizes offered at launch; ON CONFLICT keeps restarts
// idempotent without overwriting operator edits.
const seedCatalog = `
INSERT INTO grooming_types (id, name, base_price_cents, duration_minutes) VALUES
    ('8d4e7f0a-1b2c-4d3e-9f4a-5b6c7d8e9f0a', 'Small',  10000, 30),
    ('9e5f8a1b-2c3d-4e4f-8a5b-6c7d8e9f0a1b', 'Medium', 15000, 45),
    ('af6a9b2c-3d4e-4f5a-9b6c-7d8e9f0a1b2c', 'Large',  20000, 60)
ON CONFLICT (name) DO NOTHING;
`

// Bootstrap creates the schema and seeds the grooming catalog on startup.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return errs.Wrap(err, "failed to create schema")
	}

	tag, err := pool.Exec(ctx, seedCatalog)
	if err != nil {
		return errs.Wrap(err, "failed to seed grooming catalog")
	}
	if tag.RowsAffected() > 0 {
		logger.Info("seeded grooming catalog", "rows", tag.RowsAffected())
	}

	return nil
}
