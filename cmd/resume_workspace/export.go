package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/export"
	"github.com/jonathan/resume-workspace/internal/preview"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume document to PDF",
	Long:  "Derives the print preview of a document, renders it to HTML, and prints it to PDF through a headless browser. Requires Chrome/Chromium.",
	RunE:  runExport,
}

var (
	exportIn   string
	exportOut  string
	exportZoom int
)

func init() {
	exportCmd.Flags().StringVarP(&exportIn, "in", "i", "", "Path to input document JSON (default: stored master resume)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Path to output PDF (default: derived from version name)")
	exportCmd.Flags().IntVar(&exportZoom, "zoom", preview.DefaultZoom, "Zoom percent (75, 90, 100, 110, 125)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	doc, err := loadSubjectDocument(cmd, exportIn)
	if err != nil {
		return err
	}

	derived := preview.Derive(doc)
	htmlContent, err := export.RenderHTML(derived)
	if err != nil {
		return err
	}

	zoom := resolveZoom(cmd.Flags().Changed("zoom"), exportZoom, cfg.ZoomPercent)
	pdf, err := export.ToPDF(cmd.Context(), htmlContent, preview.ClampZoom(zoom), export.DefaultPrintTimeout)
	if err != nil {
		return err
	}

	outPath := exportOut
	if outPath == "" {
		outPath = export.PDFFileName(doc.VersionName)
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", outPath, err)
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(pdf), outPath)
	return nil
}
