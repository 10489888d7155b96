package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"scrapquote/internal/config"
	"scrapquote/internal/schema"
	"scrapquote/internal/storage"
	"scrapquote/internal/storage/postgres"
	redisStorage "scrapquote/internal/storage/redis"
)

// newDocumentStore opens the configured backend, the returned func releases it
func newDocumentStore(ctx context.Context, cfg config.Config) (documentStore, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch cfg.StoreBackend {
	case storage.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect db: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("database ping failed: %w", err)
		}
		store := postgres.New(pool, storage.Collection)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	default:
		client := redisStorage.NewClient[schema.PickupDocument](
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.RedisDB,
			storage.Collection,
			marshalDocument,
			unmarshalDocument,
		)
		if err := client.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis is not reachable yet")
		}
		return client, func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("couldn't close redis client")
			}
		}, nil
	}
}

func marshalDocument(doc schema.PickupDocument) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalDocument(s string) (schema.PickupDocument, error) {
	var doc schema.PickupDocument
	err := json.Unmarshal([]byte(s), &doc)
	if err != nil {
		return schema.PickupDocument{}, err
	}
	return doc, nil
}
