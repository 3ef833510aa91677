// Package store provides the record store contracts for the resume workspace
// and memory-, file-, and Postgres-backed implementations. Stores are always
// injected into callers; nothing here hangs off package-level state.
package store

import (
	"context"

	"github.com/jonathan/resume-workspace/internal/types"
)

// ResumeVersionStore persists saved resume version snapshots.
// List returns records newest-timestamp-first. GetByID returns (nil, nil) when
// no record has the id. Save assigns an id and timestamp when absent and
// overwrites any existing record with the same id (last write wins).
type ResumeVersionStore interface {
	List(ctx context.Context) ([]types.ResumeVersionRecord, error)
	GetByID(ctx context.Context, id string) (*types.ResumeVersionRecord, error)
	Save(ctx context.Context, record types.ResumeVersionRecord) (*types.ResumeVersionRecord, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// ApplicationStore persists job application tracker rows in stored order
type ApplicationStore interface {
	List(ctx context.Context) ([]types.ApplicationRecord, error)
	GetByID(ctx context.Context, id string) (*types.ApplicationRecord, error)
	Save(ctx context.Context, record types.ApplicationRecord) (*types.ApplicationRecord, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// CommentStore persists reviewer comments, listed newest-first
type CommentStore interface {
	List(ctx context.Context) ([]types.CommentRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]types.CommentRecord, error)
	Save(ctx context.Context, record types.CommentRecord) (*types.CommentRecord, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// MasterResumeStore persists the single master resume document.
// Load returns (nil, nil) when nothing has been saved yet.
type MasterResumeStore interface {
	Load(ctx context.Context) (*types.ResumeDocument, error)
	Save(ctx context.Context, doc *types.ResumeDocument) error
	Clear(ctx context.Context) error
}

// Repositories bundles the per-record-type stores handed to callers
type Repositories struct {
	ResumeVersions ResumeVersionStore
	Applications   ApplicationStore
	Comments       CommentStore
	MasterResume   MasterResumeStore
}
