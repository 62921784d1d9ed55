// Package store provides PostgreSQL persistence for assessment entities.
// One table per entity kind, keyed by an explicit entity ID column — no
// reflection-based identity discovery.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// entity tables, one logical namespace per entity kind.
const (
	tableCandidates  = "candidates"
	tableAssessments = "assessments"
	tableResponses   = "responses"
	tableEvaluations = "evaluations"
)

// EnsureSchema creates the entity tables when they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, table := range []string{tableCandidates, tableAssessments, tableResponses, tableEvaluations} {
		_, err := s.pool.Exec(ctx, fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				content JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, table))
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}
