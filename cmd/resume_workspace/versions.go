package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/observability"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Manage saved resume versions",
}

var versionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved resume versions, newest first",
	RunE:  runVersionsList,
}

var versionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one saved version as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runVersionsShow,
}

var versionsRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved resume version",
	Args:  cobra.ExactArgs(1),
	RunE:  runVersionsRemove,
}

var versionsShowOut string

func init() {
	versionsShowCmd.Flags().StringVarP(&versionsShowOut, "out", "o", "", "Write the version record JSON to a file instead of stdout")

	versionsCmd.AddCommand(versionsListCmd)
	versionsCmd.AddCommand(versionsShowCmd)
	versionsCmd.AddCommand(versionsRemoveCmd)
	rootCmd.AddCommand(versionsCmd)
}

func runVersionsList(cmd *cobra.Command, _ []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	records, err := ws.Versions(cmd.Context())
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintVersions(records)
	return nil
}

func runVersionsShow(cmd *cobra.Command, args []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	record, err := ws.Version(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("no saved version with id %s", args[0])
	}

	if versionsShowOut != "" {
		if err := writeJSON(versionsShowOut, record); err != nil {
			return err
		}
		fmt.Printf("Wrote version %s to %s\n", record.ID, versionsShowOut)
		return nil
	}
	return printJSON(record)
}

func runVersionsRemove(cmd *cobra.Command, args []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	if err := ws.RemoveVersion(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed version %s\n", args[0])
	return nil
}
