package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore keeps each record as a JSONB row in a single kv_records table.
// It is deliberately a document store, not a relational model: the record
// value is written whole, matching the store contract.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// EnsureSchema creates the kv_records table when it does not exist yet.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv_records (
		key text PRIMARY KEY,
		value jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`)
	return err
}

func (s *PGStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx, `SELECT value FROM kv_records WHERE key=$1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *PGStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, `INSERT INTO kv_records (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, value)
	return err
}

func (s *PGStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM kv_records WHERE key=$1`, key)
	return err
}

var _ Store = (*PGStore)(nil)
