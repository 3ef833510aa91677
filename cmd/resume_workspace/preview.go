package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/observability"
	"github.com/jonathan/resume-workspace/internal/preview"
	"github.com/jonathan/resume-workspace/internal/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Derive the print-ready preview of a resume document",
	Long:  "Filters a resume document down to selected, non-empty content and writes the preview JSON. Reads the stored master resume unless --in names a document file.",
	RunE:  runPreview,
}

var (
	previewIn  string
	previewOut string
)

func init() {
	previewCmd.Flags().StringVarP(&previewIn, "in", "i", "", "Path to input document JSON (default: stored master resume)")
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Path to output preview JSON (optional)")

	rootCmd.AddCommand(previewCmd)
}

// loadSubjectDocument reads the --in document or falls back to the master
func loadSubjectDocument(cmd *cobra.Command, inPath string) (*types.ResumeDocument, error) {
	if inPath != "" {
		return readDocument(inPath)
	}
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer closer()
	return ws.MasterResume(cmd.Context())
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	doc, err := loadSubjectDocument(cmd, previewIn)
	if err != nil {
		return err
	}

	derived := preview.Derive(doc)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintPreviewSummary(doc)
	}

	if previewOut == "" {
		return printJSON(derived)
	}
	if err := writeJSON(previewOut, derived); err != nil {
		return err
	}
	fmt.Printf("Wrote preview document to %s\n", previewOut)
	return nil
}
