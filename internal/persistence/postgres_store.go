package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore opens a pool, checks connectivity and creates the snapshot table.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// EnsureSchema creates the history_snapshots table if it is missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS history_snapshots (
  key TEXT PRIMARY KEY,
  payload BYTEA NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
);`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create history_snapshots table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM history_snapshots WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select snapshot %q: %w", key, err)
	}
	return payload, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, data []byte) error {
	const query = `
INSERT INTO history_snapshots (key, payload, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key)
DO UPDATE SET
  payload = EXCLUDED.payload,
  updated_at = EXCLUDED.updated_at;
`
	if _, err := s.pool.Exec(ctx, query, key, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert snapshot %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
