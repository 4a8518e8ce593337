package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaeze/cv-studio/internal/interchange"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Rewrap a CV file as a current interchange envelope",
	Long:  "Reads a CV file in any accepted shape, normalizes it, and writes it back wrapped in the current interchange envelope.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var exportOutFile string

func init() {
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Output file (defaults to stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cv, _, err := interchange.ParseImport(data)
	if err != nil {
		return err
	}

	out, err := interchange.Stringify(interchange.Export(cv, ""))
	if err != nil {
		return fmt.Errorf("failed to serialize envelope: %w", err)
	}
	out = append(out, '\n')

	if exportOutFile == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(exportOutFile, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
