// Package workspace orchestrates the resume workspace: the master resume,
// bullet matching, tailored drafts, saved versions, applications, and
// reviewer comments, all over injected record stores.
package workspace

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-workspace/internal/matching"
	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/store"
	"github.com/jonathan/resume-workspace/internal/tailoring"
	"github.com/jonathan/resume-workspace/internal/types"
)

// Workspace bundles the record stores behind the operations the CLI and any
// future caller invoke. All methods are safe to re-invoke; the matching and
// tailoring calls are pure recomputations over the loaded master.
type Workspace struct {
	repos *store.Repositories
}

// New builds a Workspace over the given repositories
func New(repos *store.Repositories) *Workspace {
	return &Workspace{repos: repos}
}

// MasterResume loads the persisted master resume, falling back to the seed
// sample when nothing has been saved yet.
func (w *Workspace) MasterResume(ctx context.Context) (*types.ResumeDocument, error) {
	doc, err := w.repos.MasterResume.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load master resume: %w", err)
	}
	if doc == nil {
		return sample.Resume(), nil
	}
	return doc, nil
}

// SaveMasterResume persists the master resume, refreshing its last-modified
// timestamp.
func (w *Workspace) SaveMasterResume(ctx context.Context, doc *types.ResumeDocument) error {
	saved := sample.NormalizeResumeDocument(doc)
	saved.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := w.repos.MasterResume.Save(ctx, saved); err != nil {
		return fmt.Errorf("failed to save master resume: %w", err)
	}
	return nil
}

// MatchBullets scores the master resume's achievement bullets against a job
// description and returns them ranked.
func (w *Workspace) MatchBullets(ctx context.Context, jobDescription string) ([]matching.BulletMatch, error) {
	master, err := w.MasterResume(ctx)
	if err != nil {
		return nil, err
	}
	return matching.Score(master, jobDescription), nil
}

// TailorDraft recomputes the tailored draft for a selection set. Callers may
// invoke this as often as they like (e.g. per keystroke); it never mutates
// the stored master.
func (w *Workspace) TailorDraft(ctx context.Context, selectedBulletIDs map[string]bool, versionName string) (*types.ResumeDocument, error) {
	master, err := w.MasterResume(ctx)
	if err != nil {
		return nil, err
	}
	return tailoring.Build(master, selectedBulletIDs, versionName), nil
}

// selectedBulletIDsInOrder collects the selected bullet ids of a tailored
// document walking sections, entries, and bullets in stored order, so the
// persisted list is deterministic for a given selection.
func selectedBulletIDsInOrder(doc *types.ResumeDocument) []string {
	ids := make([]string, 0)
	for _, sectionKey := range types.AchievementSectionKeys {
		for _, entry := range doc.EntriesFor(sectionKey) {
			for _, b := range entry.Bullets {
				if b.Selected {
					ids = append(ids, b.ID)
				}
			}
		}
	}
	return ids
}

// SaveVersion materializes a tailored document for the selection set and
// persists it as an immutable version snapshot alongside the job description
// it was matched against.
func (w *Workspace) SaveVersion(ctx context.Context, versionName, jobDescription string, selectedBulletIDs map[string]bool) (*types.ResumeVersionRecord, error) {
	tailored, err := w.TailorDraft(ctx, selectedBulletIDs, versionName)
	if err != nil {
		return nil, err
	}

	record := types.ResumeVersionRecord{
		VersionName:            tailored.VersionName,
		JobDescriptionSnapshot: jobDescription,
		SelectedBulletIDs:      selectedBulletIDsInOrder(tailored),
		FinalResumeContent:     *tailored,
		Timestamp:              time.Now().UTC().Format(time.RFC3339),
	}

	saved, err := w.repos.ResumeVersions.Save(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save resume version: %w", err)
	}
	return saved, nil
}

// Versions lists saved resume versions, newest first
func (w *Workspace) Versions(ctx context.Context) ([]types.ResumeVersionRecord, error) {
	return w.repos.ResumeVersions.List(ctx)
}

// Version fetches one saved resume version, or nil when absent
func (w *Workspace) Version(ctx context.Context, id string) (*types.ResumeVersionRecord, error) {
	return w.repos.ResumeVersions.GetByID(ctx, id)
}

// RemoveVersion deletes a saved resume version
func (w *Workspace) RemoveVersion(ctx context.Context, id string) error {
	return w.repos.ResumeVersions.Remove(ctx, id)
}

// SaveApplication validates and persists an application tracker row
func (w *Workspace) SaveApplication(ctx context.Context, record types.ApplicationRecord) (*types.ApplicationRecord, error) {
	record = store.NormalizeApplicationRecord(record)
	if err := validateRecord(record); err != nil {
		return nil, err
	}
	saved, err := w.repos.Applications.Save(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}
	return saved, nil
}

// Applications lists application tracker rows
func (w *Workspace) Applications(ctx context.Context) ([]types.ApplicationRecord, error) {
	return w.repos.Applications.List(ctx)
}

// RemoveApplication deletes an application tracker row
func (w *Workspace) RemoveApplication(ctx context.Context, id string) error {
	return w.repos.Applications.Remove(ctx, id)
}

// SaveComment validates and persists a reviewer comment
func (w *Workspace) SaveComment(ctx context.Context, record types.CommentRecord) (*types.CommentRecord, error) {
	record = store.NormalizeCommentRecord(record)
	if err := validateRecord(record); err != nil {
		return nil, err
	}
	if record.Anchor.Scope == types.CommentScopeBullet && record.Anchor.BulletID == "" {
		return nil, &ValidationError{Field: "anchor.bulletId", Message: "bullet-scoped comments need a bullet id"}
	}
	saved, err := w.repos.Comments.Save(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return saved, nil
}

// Comments lists reviewer comments, newest first
func (w *Workspace) Comments(ctx context.Context) ([]types.CommentRecord, error) {
	return w.repos.Comments.List(ctx)
}

// CommentsForStudent lists reviewer comments targeting one student
func (w *Workspace) CommentsForStudent(ctx context.Context, studentID string) ([]types.CommentRecord, error) {
	return w.repos.Comments.ListByStudent(ctx, studentID)
}

// Reset clears every store in the workspace
func (w *Workspace) Reset(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.repos.ResumeVersions.Clear(gCtx) })
	g.Go(func() error { return w.repos.Applications.Clear(gCtx) })
	g.Go(func() error { return w.repos.Comments.Clear(gCtx) })
	g.Go(func() error { return w.repos.MasterResume.Clear(gCtx) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to reset workspace: %w", err)
	}
	return nil
}
