package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/ingest"
	"github.com/jonathan/resume-workspace/internal/matching"
	"github.com/jonathan/resume-workspace/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score master resume bullets against a job description",
	Long:  "Tokenizes a job description and ranks every achievement bullet in the master resume by keyword, tag, and role-type overlap, printing the ranked list and optionally writing it as JSON.",
	RunE:  runMatch,
}

var (
	matchJob string
	matchOut string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description file, .txt or .html (required)")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Path to write ranked matches JSON (optional)")

	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

// matchRow is the JSON shape written for one ranked bullet
type matchRow struct {
	SectionKey   string   `json:"sectionKey"`
	EntryID      string   `json:"entryId"`
	EntryTitle   string   `json:"entryTitle"`
	Organization string   `json:"organization"`
	BulletID     string   `json:"bulletId"`
	BulletText   string   `json:"bulletText"`
	Score        int      `json:"score"`
	Reasons      []string `json:"reasons"`
	Selected     bool     `json:"selected"`
}

func buildMatchRows(matches []matching.BulletMatch, selected map[string]bool) []matchRow {
	rows := make([]matchRow, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, matchRow{
			SectionKey:   string(match.SectionKey),
			EntryID:      match.EntryID,
			EntryTitle:   match.EntryTitle,
			Organization: match.Organization,
			BulletID:     match.BulletID,
			BulletText:   match.BulletText,
			Score:        match.Score,
			Reasons:      match.Reasons,
			Selected:     selected[match.BulletID],
		})
	}
	return rows
}

func runMatch(cmd *cobra.Command, _ []string) error {
	jobDescription, err := ingest.LoadJobDescription(matchJob)
	if err != nil {
		return err
	}

	ws, cfg, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	matches, err := ws.MatchBullets(cmd.Context(), jobDescription)
	if err != nil {
		return err
	}
	selected := matching.PickInitialSelections(matches)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintMatches(matches)
	}

	if matchOut != "" {
		if err := writeJSON(matchOut, buildMatchRows(matches, selected)); err != nil {
			return err
		}
		fmt.Printf("Wrote %d ranked matches to %s\n", len(matches), matchOut)
	}

	ids := make([]string, 0, len(selected))
	for _, match := range matches {
		if selected[match.BulletID] {
			ids = append(ids, match.BulletID)
		}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal selection ids: %w", err)
	}
	fmt.Printf("Initial selection: %s\n", payload)
	return nil
}
