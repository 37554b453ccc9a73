package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"dogbarber-api/internal/domain/appointment"
	"dogbarber-api/internal/domain/grooming"
	"dogbarber-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	catalogKeyPrefix = "grooming:id:"
	catalogAllKey    = "grooming:all"
)

type cachedEntry struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	BasePriceCents  int64     `json:"base_price_cents"`
	DurationMinutes int       `json:"duration_minutes"`
}

// groomingTypeCache is a read-through cache in front of the catalog store.
// The catalog is immutable at runtime, so entries are safe to cache; cache
// failures degrade to direct reads.
type groomingTypeCache struct {
	inner  usecase.GroomingTypeRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewGroomingTypeCache(
	inner usecase.GroomingTypeRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) usecase.GroomingTypeRepository {
	return &groomingTypeCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *groomingTypeCache) FindByID(ctx context.Context, id uuid.UUID) (*grooming.CatalogEntry, error) {
	key := catalogKeyPrefix + id.String()

	if payload, err := c.client.Get(ctx, key).Bytes(); err == nil {
		if entry, err := decodeEntry(payload); err == nil {
			return entry, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("catalog cache read failed", "key", key, "error", err)
	}

	entry, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, encodeEntry(entry))
	return entry, nil
}

func (c *groomingTypeCache) FindAll(ctx context.Context) ([]*grooming.CatalogEntry, error) {
	if payload, err := c.client.Get(ctx, catalogAllKey).Bytes(); err == nil {
		if entries, err := decodeEntries(payload); err == nil {
			return entries, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("catalog cache read failed", "key", catalogAllKey, "error", err)
	}

	entries, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	cached := make([]cachedEntry, len(entries))
	for i, entry := range entries {
		cached[i] = encodeEntry(entry)
	}
	c.store(ctx, catalogAllKey, cached)
	return entries, nil
}

func (c *groomingTypeCache) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func encodeEntry(entry *grooming.CatalogEntry) cachedEntry {
	return cachedEntry{
		ID:              entry.ID(),
		Name:            entry.Name(),
		BasePriceCents:  entry.BasePrice().Cents(),
		DurationMinutes: entry.DurationMinutes(),
	}
}

func decodeEntry(payload []byte) (*grooming.CatalogEntry, error) {
	var cached cachedEntry
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, err
	}
	return toCatalogEntry(cached)
}

func decodeEntries(payload []byte) ([]*grooming.CatalogEntry, error) {
	var cached []cachedEntry
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, err
	}
	entries := make([]*grooming.CatalogEntry, len(cached))
	for i, ce := range cached {
		entry, err := toCatalogEntry(ce)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

func toCatalogEntry(ce cachedEntry) (*grooming.CatalogEntry, error) {
	basePrice, err := appointment.NewMoney(ce.BasePriceCents)
	if err != nil {
		return nil, err
	}
	return grooming.NewCatalogEntry(ce.ID, ce.Name, basePrice, ce.DurationMinutes)
}
