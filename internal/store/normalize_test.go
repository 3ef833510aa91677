package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-workspace/internal/types"
)

func TestNormalizeVersionRecord_FillsDefaults(t *testing.T) {
	record := NormalizeVersionRecord(types.ResumeVersionRecord{VersionName: "Draft"})

	assert.True(t, strings.HasPrefix(record.ID, "resume-version-"))
	assert.NotEmpty(t, record.Timestamp)
	assert.NotNil(t, record.SelectedBulletIDs)
	// the embedded document is repaired to full shape
	assert.NotEmpty(t, record.FinalResumeContent.ID)
}

func TestNormalizeVersionRecord_KeepsExistingValues(t *testing.T) {
	record := NormalizeVersionRecord(types.ResumeVersionRecord{
		ID:                "v-1",
		Timestamp:         "2026-01-01T00:00:00Z",
		SelectedBulletIDs: []string{"b1"},
	})

	assert.Equal(t, "v-1", record.ID)
	assert.Equal(t, "2026-01-01T00:00:00Z", record.Timestamp)
	assert.Equal(t, []string{"b1"}, record.SelectedBulletIDs)
}

func TestNormalizeApplicationRecord(t *testing.T) {
	record := NormalizeApplicationRecord(types.ApplicationRecord{Company: "Acme"})
	assert.True(t, strings.HasPrefix(record.ID, "application-"))

	kept := NormalizeApplicationRecord(types.ApplicationRecord{ID: "app-1"})
	assert.Equal(t, "app-1", kept.ID)
}

func TestNormalizeCommentRecord(t *testing.T) {
	record := NormalizeCommentRecord(types.CommentRecord{Body: "note"})

	assert.True(t, strings.HasPrefix(record.ID, "comment-"))
	assert.NotEmpty(t, record.CreatedAt)
}

func TestPrependDedupesByID(t *testing.T) {
	rows := []types.ResumeVersionRecord{{ID: "v-1"}, {ID: "v-2"}}

	out := prependVersion(rows, types.ResumeVersionRecord{ID: "v-2", VersionName: "updated"})

	require.Len(t, out, 2)
	assert.Equal(t, "v-2", out[0].ID)
	assert.Equal(t, "updated", out[0].VersionName)
	assert.Equal(t, "v-1", out[1].ID)
}

func TestFilterCommentsByStudent(t *testing.T) {
	rows := []types.CommentRecord{
		{ID: "c-1", TargetStudentID: "a"},
		{ID: "c-2", TargetStudentID: "b"},
		{ID: "c-3", TargetStudentID: "a"},
	}

	out := filterCommentsByStudent(rows, "a")

	require.Len(t, out, 2)
	assert.Equal(t, "c-1", out[0].ID)
	assert.Equal(t, "c-3", out[1].ID)
}
