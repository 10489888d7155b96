package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"scrapquote/internal/schema"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Store keeps pickup requests as jsonb documents
type Store struct {
	db    execer
	table string
}

func New(db execer, table string) *Store {
	return &Store{db: db, table: table}
}

func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 5
	cfg.MinConns = 0
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	cfg.ConnConfig.RuntimeParams["application_name"] = "scrapquote"
	cfg.ConnConfig.RuntimeParams["timezone"] = "UTC"
	cfg.ConnConfig.RuntimeParams["statement_timeout"] = "5000"

	return pgxpool.NewWithConfig(ctx, cfg)
}

// EnsureSchema creates the documents table when it is missing
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id uuid PRIMARY KEY,
	document jsonb NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
)`, s.table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, id string, document schema.PickupDocument) error {
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tag, err := s.db.Exec(ctx,
		fmt.Sprintf("INSERT INTO %s (id, document, created_at) VALUES ($1, $2, $3)", s.table),
		id, data, document.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", s.table, err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("insert into %s: %d rows affected", s.table, tag.RowsAffected())
	}
	return nil
}
