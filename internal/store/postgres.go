package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

// PG wraps a PostgreSQL connection pool serving all workspace record types.
// Records are stored as JSONB payloads keyed by id, with the columns needed
// for ordering and filtering pulled out alongside.
type PG struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool to the database
func ConnectPG(ctx context.Context, databaseURL string) (*PG, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PG{pool: pool}, nil
}

// Close closes the connection pool
func (pg *PG) Close() {
	if pg.pool != nil {
		pg.pool.Close()
	}
}

// Migrate creates the workspace tables if they do not exist
func (pg *PG) Migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS resume_versions (
			id TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			student_id TEXT NOT NULL,
			payload JSONB NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS master_resume (
			id TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range ddl {
		if _, err := pg.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// Repositories returns a Repositories bundle backed by this connection pool
func (pg *PG) Repositories() *Repositories {
	return &Repositories{
		ResumeVersions: &pgVersionStore{pool: pg.pool},
		Applications:   &pgApplicationStore{pool: pg.pool},
		Comments:       &pgCommentStore{pool: pg.pool},
		MasterResume:   &pgMasterStore{pool: pg.pool},
	}
}

func scanPayloadRows[T any](rows pgx.Rows) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan payload: %w", err)
		}
		var record T
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return out, nil
}

type pgVersionStore struct {
	pool *pgxpool.Pool
}

func (s *pgVersionStore) List(ctx context.Context) ([]types.ResumeVersionRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT payload FROM resume_versions ORDER BY payload->>'timestamp' DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume versions: %w", err)
	}
	records, err := scanPayloadRows[types.ResumeVersionRecord](rows)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i] = NormalizeVersionRecord(records[i])
	}
	return records, nil
}

func (s *pgVersionStore) GetByID(ctx context.Context, id string) (*types.ResumeVersionRecord, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM resume_versions WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume version: %w", err)
	}
	var record types.ResumeVersionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume version: %w", err)
	}
	record = NormalizeVersionRecord(record)
	return &record, nil
}

func (s *pgVersionStore) Save(ctx context.Context, record types.ResumeVersionRecord) (*types.ResumeVersionRecord, error) {
	normalized := NormalizeVersionRecord(record)
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume version: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO resume_versions (id, payload)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET payload = $2, saved_at = NOW()`,
		normalized.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to save resume version: %w", err)
	}
	return &normalized, nil
}

func (s *pgVersionStore) Remove(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM resume_versions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to remove resume version: %w", err)
	}
	return nil
}

func (s *pgVersionStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM resume_versions`); err != nil {
		return fmt.Errorf("failed to clear resume versions: %w", err)
	}
	return nil
}

type pgApplicationStore struct {
	pool *pgxpool.Pool
}

func (s *pgApplicationStore) List(ctx context.Context) ([]types.ApplicationRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT payload FROM applications ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return scanPayloadRows[types.ApplicationRecord](rows)
}

func (s *pgApplicationStore) GetByID(ctx context.Context, id string) (*types.ApplicationRecord, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM applications WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	var record types.ApplicationRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal application: %w", err)
	}
	return &record, nil
}

func (s *pgApplicationStore) Save(ctx context.Context, record types.ApplicationRecord) (*types.ApplicationRecord, error) {
	normalized := NormalizeApplicationRecord(record)
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal application: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO applications (id, payload)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET payload = $2, saved_at = NOW()`,
		normalized.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}
	return &normalized, nil
}

func (s *pgApplicationStore) Remove(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to remove application: %w", err)
	}
	return nil
}

func (s *pgApplicationStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM applications`); err != nil {
		return fmt.Errorf("failed to clear applications: %w", err)
	}
	return nil
}

type pgCommentStore struct {
	pool *pgxpool.Pool
}

func (s *pgCommentStore) List(ctx context.Context) ([]types.CommentRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT payload FROM comments ORDER BY payload->>'createdAt' DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return scanPayloadRows[types.CommentRecord](rows)
}

func (s *pgCommentStore) ListByStudent(ctx context.Context, studentID string) ([]types.CommentRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT payload FROM comments WHERE student_id = $1 ORDER BY payload->>'createdAt' DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by student: %w", err)
	}
	return scanPayloadRows[types.CommentRecord](rows)
}

func (s *pgCommentStore) Save(ctx context.Context, record types.CommentRecord) (*types.CommentRecord, error) {
	normalized := NormalizeCommentRecord(record)
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO comments (id, student_id, payload)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET student_id = $2, payload = $3, saved_at = NOW()`,
		normalized.ID, normalized.TargetStudentID, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return &normalized, nil
}

func (s *pgCommentStore) Remove(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to remove comment: %w", err)
	}
	return nil
}

func (s *pgCommentStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM comments`); err != nil {
		return fmt.Errorf("failed to clear comments: %w", err)
	}
	return nil
}

// masterResumeRowID is the fixed key for the single master resume row
const masterResumeRowID = "master"

type pgMasterStore struct {
	pool *pgxpool.Pool
}

func (s *pgMasterStore) Load(ctx context.Context) (*types.ResumeDocument, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM master_resume WHERE id = $1`, masterResumeRowID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load master resume: %w", err)
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal master resume: %w", err)
	}
	return sample.NormalizeResumeDocument(&doc), nil
}

func (s *pgMasterStore) Save(ctx context.Context, doc *types.ResumeDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal master resume: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO master_resume (id, payload)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET payload = $2, saved_at = NOW()`,
		masterResumeRowID, payload)
	if err != nil {
		return fmt.Errorf("failed to save master resume: %w", err)
	}
	return nil
}

func (s *pgMasterStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM master_resume WHERE id = $1`, masterResumeRowID); err != nil {
		return fmt.Errorf("failed to clear master resume: %w", err)
	}
	return nil
}
