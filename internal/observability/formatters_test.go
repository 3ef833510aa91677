package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-workspace/internal/matching"
	"github.com/jonathan/resume-workspace/internal/sample"
	"github.com/jonathan/resume-workspace/internal/types"
)

func TestPrintMatches_ShowsRankedBullets(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	matches := matching.Score(sample.Resume(), "operations analyst with SQL and Excel")
	printer.PrintMatches(matches)

	out := buf.String()
	assert.Contains(t, out, "Ranked Bullets")
	assert.Contains(t, out, "keyword overlap")
	if len(matches) > 10 {
		assert.Contains(t, out, "more")
	}
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil)

	assert.Contains(t, buf.String(), "no bullets to rank")
}

func TestPrintPreviewSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPreviewSummary(sample.Resume())

	out := buf.String()
	assert.Contains(t, out, "Preview Summary")
	assert.Contains(t, out, "Master Resume")
	assert.Contains(t, out, "Experience:")
}

func TestPrintVersions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintVersions([]types.ResumeVersionRecord{
		{ID: "v-1", VersionName: "Ops Draft", Timestamp: "2026-08-01T00:00:00Z", SelectedBulletIDs: []string{"b1"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Resume Versions (1)")
	assert.Contains(t, out, "Ops Draft")
	assert.Contains(t, out, "1 bullets selected")
}

func TestPrintVersions_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintVersions(nil)

	assert.Contains(t, buf.String(), "no saved versions")
}

func TestPrintApplications(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintApplications([]types.ApplicationRecord{
		{ID: "app-1", Company: "Acme", Role: "Analyst", Status: types.StatusInterview},
	})

	out := buf.String()
	assert.Contains(t, out, "Applications (1)")
	assert.Contains(t, out, "Interview")
	assert.Contains(t, out, "Acme")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "toolong...", truncate("toolongstring", 10))
}
