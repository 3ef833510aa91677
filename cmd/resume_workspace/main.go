// Package main provides the entry point for the resume workspace CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_workspace",
	Short: "Local-first resume workspace",
	Long:  "Maintains a master resume, scores its bullets against job descriptions, derives tailored versions and print previews, and tracks applications and reviewer comments in local storage.",
}

var (
	flagConfig      string
	flagDataDir     string
	flagDatabaseURL string
	flagVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory for file-backed stores")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides file storage)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
