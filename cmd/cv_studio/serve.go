package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaeze/cv-studio/internal/config"
	"github.com/adaeze/cv-studio/internal/server"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the CV editing, rendering, and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file (optional)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigFile != "" {
		loaded, err := config.Load(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:          cfg.Port,
		DatabaseURL:   cfg.DatabaseURL,
		AssistAPIKey:  cfg.APIKey,
		AppVersion:    cfg.AppVersion,
		ExportTimeout: time.Duration(cfg.ExportTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
