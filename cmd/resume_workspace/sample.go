package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Seed the master resume with the built-in sample document",
	Long:  "Writes the built-in sample resume as the master document so the workspace has realistic content to match and tailor against.",
	RunE:  runSample,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every stored record, including the master resume",
	RunE:  runReset,
}

var sampleOut string

func init() {
	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "", "Also write the sample document JSON to a file")

	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(resetCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	doc := sample.Resume()
	if err := ws.SaveMasterResume(cmd.Context(), doc); err != nil {
		return err
	}
	if sampleOut != "" {
		if err := writeJSON(sampleOut, doc); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded master resume %q (%s)\n", doc.VersionName, doc.ID)
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	if err := ws.Reset(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Workspace cleared")
	return nil
}
