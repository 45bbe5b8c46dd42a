package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/quintgame/quint-server-go/internal/config"
)

// DB wraps the pgx connection pool.
type DB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewDB connects to Postgres and verifies the connection.
func NewDB(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// MatchRecord is a finished match outcome.
type MatchRecord struct {
	ID         string
	Players    []string
	Winners    []string
	Rounds     int
	FinishedAt time.Time
}

// MatchRepository persists finished match results.
type MatchRepository struct {
	db *DB
}

// NewMatchRepository creates a repository over the given database. A
// nil db yields a repository whose writes are no-ops, so callers do not
// branch on whether persistence is configured.
func NewMatchRepository(db *DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const createMatchResultsTable = `
CREATE TABLE IF NOT EXISTS match_results (
	id          TEXT PRIMARY KEY,
	players     TEXT[] NOT NULL,
	winners     TEXT[] NOT NULL,
	rounds      INTEGER NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the match_results table if it does not exist.
func (r *MatchRepository) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	if _, err := r.db.pool.Exec(ctx, createMatchResultsTable); err != nil {
		return fmt.Errorf("ensure match_results schema: %w", err)
	}
	return nil
}

// SaveMatch inserts a finished match record.
func (r *MatchRepository) SaveMatch(ctx context.Context, rec MatchRecord) error {
	if r.db == nil {
		return nil
	}
	_, err := r.db.pool.Exec(ctx,
		`INSERT INTO match_results (id, players, winners, rounds, finished_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.Players, rec.Winners, rec.Rounds, rec.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("save match %s: %w", rec.ID, err)
	}
	r.db.logger.Info("match result saved",
		zap.String("match_id", rec.ID),
		zap.Strings("winners", rec.Winners),
	)
	return nil
}
