package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/observability"
	"github.com/jonathan/resume-workspace/internal/types"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Track job applications",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	RunE:  runApplicationsList,
}

var applicationsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a tracked application",
	RunE:  runApplicationsAdd,
}

var applicationsRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a tracked application",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationsRemove,
}

var (
	appID        string
	appCompany   string
	appRole      string
	appJobLink   string
	appDate      string
	appStatus    string
	appVersionID string
	appNotes     string
)

func init() {
	applicationsAddCmd.Flags().StringVar(&appID, "id", "", "Existing application id to update")
	applicationsAddCmd.Flags().StringVarP(&appCompany, "company", "c", "", "Company name (required)")
	applicationsAddCmd.Flags().StringVarP(&appRole, "role", "r", "", "Role title (required)")
	applicationsAddCmd.Flags().StringVar(&appJobLink, "link", "", "Job posting URL")
	applicationsAddCmd.Flags().StringVar(&appDate, "date", "", "Date applied (YYYY-MM-DD, defaults to today)")
	applicationsAddCmd.Flags().StringVarP(&appStatus, "status", "s", string(types.StatusWishlist), "Status: Wishlist, Applied, Interview, Offer, or Rejected")
	applicationsAddCmd.Flags().StringVar(&appVersionID, "version", "", "Saved resume version id sent for this application")
	applicationsAddCmd.Flags().StringVar(&appNotes, "notes", "", "Free-form notes")

	if err := applicationsAddCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := applicationsAddCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	applicationsCmd.AddCommand(applicationsListCmd)
	applicationsCmd.AddCommand(applicationsAddCmd)
	applicationsCmd.AddCommand(applicationsRemoveCmd)
	rootCmd.AddCommand(applicationsCmd)
}

func runApplicationsList(cmd *cobra.Command, _ []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	records, err := ws.Applications(cmd.Context())
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintApplications(records)
	return nil
}

func runApplicationsAdd(cmd *cobra.Command, _ []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	dateApplied := appDate
	if dateApplied == "" {
		dateApplied = time.Now().UTC().Format("2006-01-02")
	}

	record := types.ApplicationRecord{
		ID:              appID,
		Company:         appCompany,
		Role:            appRole,
		JobLink:         appJobLink,
		DateApplied:     dateApplied,
		Status:          types.ApplicationStatus(appStatus),
		ResumeVersionID: appVersionID,
		Notes:           appNotes,
	}

	saved, err := ws.SaveApplication(cmd.Context(), record)
	if err != nil {
		return err
	}

	fmt.Printf("Saved application %s: %s @ %s [%s]\n", saved.ID, saved.Role, saved.Company, saved.Status)
	return nil
}

func runApplicationsRemove(cmd *cobra.Command, args []string) error {
	ws, _, closer, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()

	if err := ws.RemoveApplication(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed application %s\n", args[0])
	return nil
}
