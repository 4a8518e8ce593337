// Package main provides the entry point for the CV Studio CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_studio",
	Short: "CV Studio template rendering engine",
	Long:  "CV Studio renders CV documents through a catalog of templates, on screen as HTML and on paper as paged A4 PDF, and serves the editing API behind the web client.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
