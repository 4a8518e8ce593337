package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/adaeze/cv-studio/internal/export"
	"github.com/adaeze/cv-studio/internal/interchange"
	"github.com/adaeze/cv-studio/internal/render"
	"github.com/adaeze/cv-studio/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV file to HTML or PDF",
	Long:  "Reads a CV document (interchange envelope or bare document JSON) and renders it through a template, as screen HTML or as a paged A4 PDF.",
	RunE:  runRender,
}

var (
	renderInFile   string
	renderOutFile  string
	renderTemplate string
	renderFormat   string
	renderAll      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInFile, "in", "i", "", "Path to CV JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "", "Output file, or output directory with --all (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template id override (defaults to the document's template)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html or pdf")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template in the catalog into the output directory")
	_ = renderCmd.MarkFlagRequired("in")
	_ = renderCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderFormat != "html" && renderFormat != "pdf" {
		return fmt.Errorf("unknown format %q: must be html or pdf", renderFormat)
	}

	data, err := os.ReadFile(renderInFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	cv, _, err := interchange.ParseImport(data)
	if err != nil {
		return err
	}

	if renderAll {
		return renderAllTemplates(cv)
	}

	templateID := cv.TemplateID
	if renderTemplate != "" {
		templateID = types.TemplateID(renderTemplate)
	}

	output, err := renderOne(context.Background(), cv, templateID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(renderOutFile, output, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%s, template %s)\n", renderOutFile, renderFormat, templateID)
	return nil
}

// renderAllTemplates fans the same document out across the whole catalog.
// PDF runs are concurrent; each one boots its own browser.
func renderAllTemplates(cv types.CV) error {
	if err := os.MkdirAll(renderOutFile, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(3)
	for _, id := range types.TemplateIDs() {
		g.Go(func() error {
			output, err := renderOne(ctx, cv, id)
			if err != nil {
				return fmt.Errorf("template %s: %w", id, err)
			}
			path := filepath.Join(renderOutFile, fmt.Sprintf("%s.%s", id, renderFormat))
			if err := os.WriteFile(path, output, 0o644); err != nil {
				return fmt.Errorf("template %s: failed to write output: %w", id, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
			return nil
		})
	}
	return g.Wait()
}

func renderOne(ctx context.Context, cv types.CV, templateID types.TemplateID) ([]byte, error) {
	if renderFormat == "pdf" {
		generator := &export.Generator{}
		return generator.PDF(ctx, cv, templateID)
	}
	page, err := render.Screen(cv, templateID)
	if err != nil {
		return nil, err
	}
	return []byte(page), nil
}
