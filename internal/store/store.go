// Package store provides PostgreSQL persistence for feature records and
// evaluation reports. The engine itself never touches storage; callers load
// records here, run the engine, and save the report.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Record kinds stored in the feature_records table.
const (
	KindResume = "resume"
	KindJob    = "job"
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

// EnsureSchema creates the tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS feature_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			record_id TEXT NOT NULL,
			kind TEXT NOT NULL CHECK (kind IN ('resume', 'job')),
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (record_id, kind)
		);
		CREATE TABLE IF NOT EXISTS evaluation_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			resume_id TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveRecord upserts a feature record of the given kind, keyed by its
// record ID. Returns the row's storage ID.
func (s *Store) SaveRecord(ctx context.Context, kind string, rec *types.FeatureRecord) (uuid.UUID, error) {
	if kind != KindResume && kind != KindJob {
		return uuid.Nil, fmt.Errorf("unknown record kind %q", kind)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal feature record: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO feature_records (record_id, kind, payload)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (record_id, kind) DO UPDATE SET payload = EXCLUDED.payload
		 RETURNING id`,
		rec.ID, kind, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save %s record %s: %w", kind, rec.ID, err)
	}

	return id, nil
}

// ListJobRecords returns up to limit job records, oldest first so ranking
// inputs are reproducible across runs. Zero means no limit.
func (s *Store) ListJobRecords(ctx context.Context, limit int) ([]*types.FeatureRecord, error) {
	query := `SELECT payload FROM feature_records WHERE kind = 'job' ORDER BY created_at, record_id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job records: %w", err)
	}
	defer rows.Close()

	var records []*types.FeatureRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan job record: %w", err)
		}
		var rec types.FeatureRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job records: %w", err)
	}

	return records, nil
}

// SaveReport stores a full evaluation report for a resume.
func (s *Store) SaveReport(ctx context.Context, resumeID string, report *types.Report) (uuid.UUID, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO evaluation_reports (resume_id, payload) VALUES ($1, $2) RETURNING id`,
		resumeID, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report for resume %s: %w", resumeID, err)
	}

	return id, nil
}
