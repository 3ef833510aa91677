package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the PostgreSQL workspace tables",
	Long:  "Connects to the configured database and creates the resume_versions, applications, comments, and master_resume tables if they do not exist.",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("migrate requires a database URL (--database-url flag or DATABASE_URL)")
	}

	pg, err := store.ConnectPG(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Migrate(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Migration complete")
	return nil
}
