package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/ingest"
	"github.com/jonathan/resume-workspace/internal/schemas"
)

var saveVersionCmd = &cobra.Command{
	Use:   "save-version",
	Short: "Save a tailored resume version snapshot",
	Long:  "Scores the master resume against a job description, derives the tailored document for the selection, and persists it as an immutable version record.",
	RunE:  runSaveVersion,
}

var (
	saveVersionJob    string
	saveVersionName   string
	saveVersionSelect []string
)

func init() {
	saveVersionCmd.Flags().StringVarP(&saveVersionJob, "job", "j", "", "Path to job description file (required)")
	saveVersionCmd.Flags().StringVarP(&saveVersionName, "name", "n", "", "Version name for the snapshot")
	saveVersionCmd.Flags().StringSliceVar(&saveVersionSelect, "select", nil, "Bullet ids to select, replacing the automatic selection")

	if err := saveVersionCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(saveVersionCmd)
}

func runSaveVersion(cmd *cobra.Command, _ []string) error {
	jobDescription, err := ingest.LoadJobDescription(saveVersionJob)
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
	selected := resolveSelection(matches, saveVersionSelect)

	record, err := ws.SaveVersion(cmd.Context(), saveVersionName, jobDescription, selected)
	if err != nil {
		return err
	}

	// Sanity-check the persisted shape when the schema is available.
	if schemaPath := schemas.ResolveSchemaPath(schemas.ResumeVersionSchema); schemaPath != "" {
		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal version record: %w", err)
		}
		if err := schemas.ValidateFile(schemaPath, payload); err != nil {
			return fmt.Errorf("saved version failed schema validation: %w", err)
		}
	}

	fmt.Printf("Saved version %q as %s (%d bullets selected)\n",
		record.VersionName, record.ID, len(record.SelectedBulletIDs))
	return nil
}
