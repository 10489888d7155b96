package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"scrapquote/internal/schema"
)

type execCall struct {
	sql  string
	args []any
}

type execerMock struct {
	calls []execCall
	tag   string
	err   error
}

func (m *execerMock) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	m.calls = append(m.calls, execCall{sql: sql, args: arguments})
	return pgconn.NewCommandTag(m.tag), m.err
}

func TestStore_Insert(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	doc := schema.PickupDocument{
		ID:        "0b5e8f3a-8f1e-4c55-9d34-0d7d6c1c7a10",
		Specs:     []any{"2010", "Honda", "Civic", "LX"},
		Notes:     "back lane",
		CreatedAt: createdAt,
	}

	db := &execerMock{tag: "INSERT 0 1"}
	store := New(db, "call_records")

	err := store.Insert(context.Background(), doc.ID, doc)
	require.NoError(t, err)
	require.Len(t, db.calls, 1)
	require.True(t, strings.HasPrefix(db.calls[0].sql, "INSERT INTO call_records"))
	require.Equal(t, doc.ID, db.calls[0].args[0])
	require.Equal(t, createdAt, db.calls[0].args[2])

	var stored schema.PickupDocument
	require.NoError(t, json.Unmarshal(db.calls[0].args[1].([]byte), &stored))
	require.Equal(t, "back lane", stored.Notes)
	require.Equal(t, []any{"2010", "Honda", "Civic", "LX"}, stored.Specs)
}

func TestStore_InsertErrors(t *testing.T) {
	tests := []struct {
		name     string
		db       *execerMock
		contains string
	}{
		{
			name:     "exec error",
			db:       &execerMock{err: errors.New("connection reset")},
			contains: "connection reset",
		},
		{
			name:     "nothing inserted",
			db:       &execerMock{tag: "INSERT 0 0"},
			contains: "0 rows affected",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := New(tc.db, "call_records").Insert(context.Background(), "id", schema.PickupDocument{})
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestStore_EnsureSchema(t *testing.T) {
	db := &execerMock{tag: "CREATE TABLE"}
	require.NoError(t, New(db, "call_records").EnsureSchema(context.Background()))
	require.Contains(t, db.calls[0].sql, "CREATE TABLE IF NOT EXISTS call_records")
}

func TestNewPool_EmptyURL(t *testing.T) {
	_, err := NewPool(context.Background(), "")
	require.Error(t, err)
}
