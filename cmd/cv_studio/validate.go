package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaeze/cv-studio/internal/format"
	"github.com/adaeze/cv-studio/internal/interchange"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a CV interchange file",
	Long:  "Checks that a file parses as a CV interchange envelope (or a bare legacy document) and reports what it contains.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cv, schemaVersion, err := interchange.ParseImport(data)
	if err != nil {
		return err
	}

	fmt.Printf("Valid CV document (schema version %d)\n", schemaVersion)
	fmt.Printf("  Name:        %s\n", format.FullName(cv.PersonalInfo))
	fmt.Printf("  Template:    %s\n", cv.TemplateID)
	fmt.Printf("  Experience:  %d entries\n", len(cv.Experience))
	fmt.Printf("  Education:   %d entries\n", len(cv.Education))
	fmt.Printf("  Skills:      %d entries\n", len(cv.Skills))
	return nil
}
