package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

// File names inside the workspace data directory, one per record type
const (
	resumeVersionsFile = "resume_versions.json"
	applicationsFile   = "applications.json"
	commentsFile       = "comments.json"
	masterResumeFile   = "master_resume.json"
)

const schemaVersion = 1

// envelope wraps every persisted payload with a schema version so future
// format changes can be detected on load.
type envelope[T any] struct {
	SchemaVersion int `json:"schemaVersion"`
	Data          T   `json:"data"`
}

// NewFileRepositories builds a Repositories bundle backed by JSON files under
// dir, creating the directory if needed. Corrupted or legacy payloads load as
// empty rather than failing; writes are last-write-wins.
func NewFileRepositories(dir string) (*Repositories, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: data directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: failed to create data directory %s: %w", dir, err)
	}
	return &Repositories{
		ResumeVersions: &fileVersionStore{path: filepath.Join(dir, resumeVersionsFile)},
		Applications:   &fileApplicationStore{path: filepath.Join(dir, applicationsFile)},
		Comments:       &fileCommentStore{path: filepath.Join(dir, commentsFile)},
		MasterResume:   &fileMasterStore{path: filepath.Join(dir, masterResumeFile)},
	}, nil
}

// loadRows reads an envelope of rows from path. A missing file, unreadable
// JSON, or an unknown schema version all load as an empty slice; repair over
// rejection is the storage layer's job here.
func loadRows[T any](path string) []T {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var wrapped envelope[[]T]
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.SchemaVersion == schemaVersion {
		return wrapped.Data
	}
	// Legacy payloads were bare arrays without an envelope.
	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}
	return nil
}

func saveRows[T any](path string, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	payload, err := json.MarshalIndent(envelope[[]T]{SchemaVersion: schemaVersion, Data: rows}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("store: failed to write %s: %w", path, err)
	}
	return nil
}

type fileVersionStore struct {
	path string
}

func (s *fileVersionStore) List(_ context.Context) ([]types.ResumeVersionRecord, error) {
	rows := loadRows[types.ResumeVersionRecord](s.path)
	for i := range rows {
		rows[i] = NormalizeVersionRecord(rows[i])
	}
	sortVersionsNewestFirst(rows)
	return rows, nil
}

func (s *fileVersionStore) GetByID(_ context.Context, id string) (*types.ResumeVersionRecord, error) {
	for _, row := range loadRows[types.ResumeVersionRecord](s.path) {
		if row.ID == id {
			found := NormalizeVersionRecord(row)
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fileVersionStore) Save(_ context.Context, record types.ResumeVersionRecord) (*types.ResumeVersionRecord, error) {
	normalized := NormalizeVersionRecord(record)
	rows := prependVersion(loadRows[types.ResumeVersionRecord](s.path), normalized)
	if err := saveRows(s.path, rows); err != nil {
		return nil, err
	}
	return &normalized, nil
}

func (s *fileVersionStore) Remove(_ context.Context, id string) error {
	return saveRows(s.path, removeVersionByID(loadRows[types.ResumeVersionRecord](s.path), id))
}

func (s *fileVersionStore) Clear(_ context.Context) error {
	return saveRows(s.path, []types.ResumeVersionRecord{})
}

type fileApplicationStore struct {
	path string
}

func (s *fileApplicationStore) List(_ context.Context) ([]types.ApplicationRecord, error) {
	return loadRows[types.ApplicationRecord](s.path), nil
}

func (s *fileApplicationStore) GetByID(_ context.Context, id string) (*types.ApplicationRecord, error) {
	for _, row := range loadRows[types.ApplicationRecord](s.path) {
		if row.ID == id {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fileApplicationStore) Save(_ context.Context, record types.ApplicationRecord) (*types.ApplicationRecord, error) {
	normalized := NormalizeApplicationRecord(record)
	rows := prependApplication(loadRows[types.ApplicationRecord](s.path), normalized)
	if err := saveRows(s.path, rows); err != nil {
		return nil, err
	}
	return &normalized, nil
}

func (s *fileApplicationStore) Remove(_ context.Context, id string) error {
	return saveRows(s.path, removeApplicationByID(loadRows[types.ApplicationRecord](s.path), id))
}

func (s *fileApplicationStore) Clear(_ context.Context) error {
	return saveRows(s.path, []types.ApplicationRecord{})
}

type fileCommentStore struct {
	path string
}

func (s *fileCommentStore) List(_ context.Context) ([]types.CommentRecord, error) {
	rows := loadRows[types.CommentRecord](s.path)
	sortCommentsNewestFirst(rows)
	return rows, nil
}

func (s *fileCommentStore) ListByStudent(ctx context.Context, studentID string) ([]types.CommentRecord, error) {
	rows, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterCommentsByStudent(rows, studentID), nil
}

func (s *fileCommentStore) Save(_ context.Context, record types.CommentRecord) (*types.CommentRecord, error) {
	normalized := NormalizeCommentRecord(record)
	rows := prependComment(loadRows[types.CommentRecord](s.path), normalized)
	if err := saveRows(s.path, rows); err != nil {
		return nil, err
	}
	return &normalized, nil
}

func (s *fileCommentStore) Remove(_ context.Context, id string) error {
	return saveRows(s.path, removeCommentByID(loadRows[types.CommentRecord](s.path), id))
}

func (s *fileCommentStore) Clear(_ context.Context) error {
	return saveRows(s.path, []types.CommentRecord{})
}

type fileMasterStore struct {
	path string
}

func (s *fileMasterStore) Load(_ context.Context) (*types.ResumeDocument, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil
	}
	var wrapped envelope[types.ResumeDocument]
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.SchemaVersion != schemaVersion {
		return nil, nil
	}
	return sample.NormalizeResumeDocument(&wrapped.Data), nil
}

func (s *fileMasterStore) Save(_ context.Context, doc *types.ResumeDocument) error {
	payload, err := json.MarshalIndent(envelope[types.ResumeDocument]{SchemaVersion: schemaVersion, Data: *doc}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: failed to marshal master resume: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("store: failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *fileMasterStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: failed to remove %s: %w", s.path, err)
	}
	return nil
}
