package components

import (
	"log/slog"

	"dogbarber-api/internal/infra/cache"
	"dogbarber-api/internal/infra/repository"
	"dogbarber-api/internal/pkg/config"
	"dogbarber-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewCustomerRepository,
		repository.NewAppointmentRepository,
		NewCachedGroomingTypeRepository,
	),
)

// The catalog store is wrapped in a redis read-through cache; appointments and
// customers are always read from postgres.
func NewCachedGroomingTypeRepository(
	pool *pgxpool.Pool,
	client *redis.Client,
	cfg config.Config,
	logger *slog.Logger,
) usecase.GroomingTypeRepository {
	return cache.NewGroomingTypeCache(
		repository.NewGroomingTypeRepository(pool),
		client,
		cfg.Redis.TTL,
		logger,
	)
}
