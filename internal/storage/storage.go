package storage

import (
	"context"
	"fmt"
	"scrapquote/internal/metrics"
	"scrapquote/internal/schema"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Collection name of pickup requests in every backend
const Collection = "call_records"

const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ParseBackend normalizes a backend name, empty means redis
func ParseBackend(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendRedis:
		return BackendRedis, nil
	case BackendPostgres, "postgresql", "pg":
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("unknown store backend %q", name)
	}
}

type Storage struct {
	store documentStore
	newID func() string
	now   func() time.Time
}

// New return storage of pickup requests
func New(store documentStore) *Storage {
	return &Storage{
		store: store,
		newID: func() string { return uuid.NewString() },
		now:   time.Now,
	}
}

// Save assigns an id to a pickup request and writes it to the backend
func (s *Storage) Save(ctx context.Context, document schema.PickupDocument) (string, error) {
	document.ID = s.newID()
	document.CreatedAt = s.now().UTC()

	if err := s.store.Insert(ctx, document.ID, document); err != nil {
		metrics.DocumentsSaved.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("couldn't save a pickup request: %w", err)
	}
	metrics.DocumentsSaved.WithLabelValues("success").Inc()

	log.Info().Str("id", document.ID).Msg("Inserted document")
	return document.ID, nil
}
