package store

import (
	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

// Record normalization shared by every store implementation: ids and
// timestamps are assigned when absent, and any document loaded from or headed
// to storage is repaired to a fully shaped ResumeDocument so core functions
// never see partial shapes.

// NormalizeVersionRecord fills the id and timestamp when absent and repairs
// the embedded document shape.
func NormalizeVersionRecord(record types.ResumeVersionRecord) types.ResumeVersionRecord {
	if record.ID == "" {
		record.ID = sample.NewID("resume-version")
	}
	if record.Timestamp == "" {
		record.Timestamp = nowISO()
	}
	if record.SelectedBulletIDs == nil {
		record.SelectedBulletIDs = []string{}
	}
	record.FinalResumeContent = *sample.NormalizeResumeDocument(&record.FinalResumeContent)
	return record
}

// NormalizeApplicationRecord fills the id when absent
func NormalizeApplicationRecord(record types.ApplicationRecord) types.ApplicationRecord {
	if record.ID == "" {
		record.ID = sample.NewID("application")
	}
	return record
}

// NormalizeCommentRecord fills the id and created-at timestamp when absent
func NormalizeCommentRecord(record types.CommentRecord) types.CommentRecord {
	if record.ID == "" {
		record.ID = sample.NewID("comment")
	}
	if record.CreatedAt == "" {
		record.CreatedAt = nowISO()
	}
	return record
}

func prependVersion(rows []types.ResumeVersionRecord, record types.ResumeVersionRecord) []types.ResumeVersionRecord {
	out := make([]types.ResumeVersionRecord, 0, len(rows)+1)
	out = append(out, record)
	for _, row := range rows {
		if row.ID != record.ID {
			out = append(out, row)
		}
	}
	return out
}

func removeVersionByID(rows []types.ResumeVersionRecord, id string) []types.ResumeVersionRecord {
	out := make([]types.ResumeVersionRecord, 0, len(rows))
	for _, row := range rows {
		if row.ID != id {
			out = append(out, row)
		}
	}
	return out
}

func prependApplication(rows []types.ApplicationRecord, record types.ApplicationRecord) []types.ApplicationRecord {
	out := make([]types.ApplicationRecord, 0, len(rows)+1)
	out = append(out, record)
	for _, row := range rows {
		if row.ID != record.ID {
			out = append(out, row)
		}
	}
	return out
}

func removeApplicationByID(rows []types.ApplicationRecord, id string) []types.ApplicationRecord {
	out := make([]types.ApplicationRecord, 0, len(rows))
	for _, row := range rows {
		if row.ID != id {
			out = append(out, row)
		}
	}
	return out
}

func prependComment(rows []types.CommentRecord, record types.CommentRecord) []types.CommentRecord {
	out := make([]types.CommentRecord, 0, len(rows)+1)
	out = append(out, record)
	for _, row := range rows {
		if row.ID != record.ID {
			out = append(out, row)
		}
	}
	return out
}

func removeCommentByID(rows []types.CommentRecord, id string) []types.CommentRecord {
	out := make([]types.CommentRecord, 0, len(rows))
	for _, row := range rows {
		if row.ID != id {
			out = append(out, row)
		}
	}
	return out
}

func filterCommentsByStudent(rows []types.CommentRecord, studentID string) []types.CommentRecord {
	out := make([]types.CommentRecord, 0, len(rows))
	for _, row := range rows {
		if row.TargetStudentID == studentID {
			out = append(out, row)
		}
	}
	return out
}
