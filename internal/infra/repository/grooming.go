package repository

import (
	"context"

	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/domain/grooming"
	"dogbarber-api/internal/infra"
	"dogbarber-api/internal/pkg/pgconv"
	"dogbarber-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type groomingTypeRepository struct {
	pool *pgxpool.Pool
}

func NewGroomingTypeRepository(pool *pgxpool.Pool) usecase.GroomingTypeRepository {
	return &groomingTypeRepository{pool: pool}
}

func (r *groomingTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*grooming.CatalogEntry, error) {
	const query = `
        SELECT id, name, base_price_cents, duration_minutes
        FROM grooming_types
        WHERE id = $1`

	entry, err := scanCatalogEntry(r.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		return nil, classify("failed to find grooming type", err)
	}
	return entry, nil
}

func (r *groomingTypeRepository) FindAll(ctx context.Context) ([]*grooming.CatalogEntry, error) {
	const query = `
        SELECT id, name, base_price_cents, duration_minutes
        FROM grooming_types
        ORDER BY base_price_cents ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, classify("failed to list grooming types", err)
	}
	defer rows.Close()

	entries := []*grooming.CatalogEntry{}
	for rows.Next() {
		entry, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, classify("failed to scan grooming type row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("failed to read grooming type rows", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCatalogEntry(row rowScanner) (*grooming.CatalogEntry, error) {
	var (
		id              pgtype.UUID
		name            string
		basePriceCents  int64
		durationMinutes int
	)
	if err := row.Scan(&id, &name, &basePriceCents, &durationMinutes); err != nil {
		return nil, err
	}

	basePrice, err := appointment.NewMoney(basePriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored base price", err)
	}
	return grooming.NewCatalogEntry(pgconv.UUIDFromPgtype(id), name, basePrice, durationMinutes)
}
