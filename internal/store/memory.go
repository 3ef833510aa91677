package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

// NewMemoryRepositories builds a fully in-memory Repositories bundle, used in
// tests and anywhere persistence is not wanted.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		ResumeVersions: &memoryVersionStore{},
		Applications:   &memoryApplicationStore{},
		Comments:       &memoryCommentStore{},
		MasterResume:   &memoryMasterStore{},
	}
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func sortVersionsNewestFirst(rows []types.ResumeVersionRecord) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp > rows[j].Timestamp
	})
}

func sortCommentsNewestFirst(rows []types.CommentRecord) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt > rows[j].CreatedAt
	})
}

type memoryVersionStore struct {
	mu   sync.Mutex
	rows []types.ResumeVersionRecord
}

func (s *memoryVersionStore) List(_ context.Context) ([]types.ResumeVersionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ResumeVersionRecord, len(s.rows))
	copy(out, s.rows)
	sortVersionsNewestFirst(out)
	return out, nil
}

func (s *memoryVersionStore) GetByID(_ context.Context, id string) (*types.ResumeVersionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.ID == id {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryVersionStore) Save(_ context.Context, record types.ResumeVersionRecord) (*types.ResumeVersionRecord, error) {
	normalized := NormalizeVersionRecord(record)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = prependVersion(s.rows, normalized)
	return &normalized, nil
}

func (s *memoryVersionStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = removeVersionByID(s.rows, id)
	return nil
}

func (s *memoryVersionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

type memoryApplicationStore struct {
	mu   sync.Mutex
	rows []types.ApplicationRecord
}

func (s *memoryApplicationStore) List(_ context.Context) ([]types.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ApplicationRecord, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memoryApplicationStore) GetByID(_ context.Context, id string) (*types.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.ID == id {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryApplicationStore) Save(_ context.Context, record types.ApplicationRecord) (*types.ApplicationRecord, error) {
	normalized := NormalizeApplicationRecord(record)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = prependApplication(s.rows, normalized)
	return &normalized, nil
}

func (s *memoryApplicationStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = removeApplicationByID(s.rows, id)
	return nil
}

func (s *memoryApplicationStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

type memoryCommentStore struct {
	mu   sync.Mutex
	rows []types.CommentRecord
}

func (s *memoryCommentStore) List(_ context.Context) ([]types.CommentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.CommentRecord, len(s.rows))
	copy(out, s.rows)
	sortCommentsNewestFirst(out)
	return out, nil
}

func (s *memoryCommentStore) ListByStudent(ctx context.Context, studentID string) ([]types.CommentRecord, error) {
	rows, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterCommentsByStudent(rows, studentID), nil
}

func (s *memoryCommentStore) Save(_ context.Context, record types.CommentRecord) (*types.CommentRecord, error) {
	normalized := NormalizeCommentRecord(record)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = prependComment(s.rows, normalized)
	return &normalized, nil
}

func (s *memoryCommentStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = removeCommentByID(s.rows, id)
	return nil
}

func (s *memoryCommentStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

type memoryMasterStore struct {
	mu  sync.Mutex
	doc *types.ResumeDocument
}

func (s *memoryMasterStore) Load(_ context.Context) (*types.ResumeDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, nil
	}
	return sample.NormalizeResumeDocument(s.doc), nil
}

func (s *memoryMasterStore) Save(_ context.Context, doc *types.ResumeDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}

func (s *memoryMasterStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
	return nil
}
