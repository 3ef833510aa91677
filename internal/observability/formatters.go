// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-workspace/internal/matching"
	"github.com/jonathan/resume-workspace/internal/preview"
	"github.com/jonathan/resume-workspace/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxMatchesToShow is the default number of ranked bullets to display
	maxMatchesToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatches outputs a ranked summary of bullet matches
func (p *Printer) PrintMatches(matches []matching.BulletMatch) {
	var sb strings.Builder

	count := min(len(matches), maxMatchesToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("%2d. [%3d] %s\n", i+1, match.Score, truncate(match.BulletText, 48)))
		if len(match.Reasons) > 0 {
			sb.WriteString(fmt.Sprintf("          %s\n", strings.Join(match.Reasons, "; ")))
		}
	}
	if len(matches) > maxMatchesToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxMatchesToShow))
	}
	if len(matches) == 0 {
		sb.WriteString("no bullets to rank\n")
	}

	p.printBox(fmt.Sprintf("Ranked Bullets (%d)", len(matches)), strings.TrimRight(sb.String(), "\n"))
}

// PrintPreviewSummary outputs per-section selection counts for a document
func (p *Printer) PrintPreviewSummary(doc *types.ResumeDocument) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Version:  %s\n\n", doc.VersionName))
	for _, key := range types.SectionKeys {
		sb.WriteString(fmt.Sprintf("%-14s %d selected\n", types.SectionLabels[key]+":", preview.CountSelected(doc, key)))
	}
	p.printBox("Preview Summary", strings.TrimRight(sb.String(), "\n"))
}

// PrintVersions outputs a saved-version listing, newest first
func (p *Printer) PrintVersions(records []types.ResumeVersionRecord) {
	var sb strings.Builder
	for _, record := range records {
		sb.WriteString(fmt.Sprintf("%s  %s\n", record.ID, truncate(record.VersionName, 36)))
		sb.WriteString(fmt.Sprintf("  saved %s, %d bullets selected\n", record.Timestamp, len(record.SelectedBulletIDs)))
	}
	if len(records) == 0 {
		sb.WriteString("no saved versions\n")
	}
	p.printBox(fmt.Sprintf("Resume Versions (%d)", len(records)), strings.TrimRight(sb.String(), "\n"))
}

// PrintApplications outputs the application tracker rows
func (p *Printer) PrintApplications(records []types.ApplicationRecord) {
	var sb strings.Builder
	for _, record := range records {
		sb.WriteString(fmt.Sprintf("%-10s %s @ %s\n", record.Status, truncate(record.Role, 24), truncate(record.Company, 24)))
	}
	if len(records) == 0 {
		sb.WriteString("no applications tracked\n")
	}
	p.printBox(fmt.Sprintf("Applications (%d)", len(records)), strings.TrimRight(sb.String(), "\n"))
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
