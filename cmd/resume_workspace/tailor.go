package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/ingest"
	"github.com/jonathan/resume-workspace/internal/matching"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Derive a tailored resume document for a job description",
	Long:  "Scores the master resume against a job description, picks the initial bullet selection (optionally overridden), and writes the tailored document JSON.",
	RunE:  runTailor,
}

var (
	tailorJob    string
	tailorName   string
	tailorOut    string
	tailorSelect []string
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job description file (required)")
	tailorCmd.Flags().StringVarP(&tailorName, "name", "n", "", "Version name for the tailored document")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Path to output tailored document JSON (required)")
	tailorCmd.Flags().StringSliceVar(&tailorSelect, "select", nil, "Bullet ids to select, replacing the automatic selection")

	if err := tailorCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := tailorCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func resolveSelection(matches []matching.BulletMatch, overrides []string) map[string]bool {
	if len(overrides) == 0 {
		return matching.PickInitialSelections(matches)
	}
	selected := make(map[string]bool, len(overrides))
	for _, id := range overrides {
		id = strings.TrimSpace(id)
		if id != "" {
			selected[id] = true
		}
	}
	return selected
}

func runTailor(cmd *cobra.Command, _ []string) error {
	jobDescription, err := ingest.LoadJobDescription(tailorJob)
	if err != nil {
		return err
	}

	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	matches, err := ws.MatchBullets(cmd.Context(), jobDescription)
	if err != nil {
		return err
	}

	selected := resolveSelection(matches, tailorSelect)
	tailored, err := ws.TailorDraft(cmd.Context(), selected, tailorName)
	if err != nil {
		return err
	}

	if err := writeJSON(tailorOut, tailored); err != nil {
		return err
	}
	fmt.Printf("Wrote tailored document %q with %d selected bullets to %s\n",
		tailored.VersionName, len(selected), tailorOut)
	return nil
}
