package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gobridge/internal/params"
	"github.com/alexiusacademia/gobridge/internal/pipeline"
	"github.com/alexiusacademia/gobridge/internal/render"
)

var (
	generateInput   string
	generateSurvey  string
	generateOutput  string
	generatePreview string
	generateProject string
	generateTitle   string
	generateDwgNo   string
	generateDate    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a general arrangement drawing from a parameter file",
	Long: `Generate a bridge general arrangement drawing.

Reads the design parameters from a YAML file, optionally a ground survey
profile from a second file, runs the drawing pipeline, and writes the
resulting vector document as SVG. An optional PNG/PDF preview can be
written alongside.

Examples:
  # Three-span bridge, SVG output
  gobridge generate -i bridge.yaml -o bridge.svg

  # With ground survey and a raster preview
  gobridge generate -i bridge.yaml -s survey.yaml -o bridge.svg --preview bridge.png`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Bridge parameter file (YAML) [required]")
	generateCmd.Flags().StringVarP(&generateSurvey, "survey", "s", "", "Ground survey profile file (YAML)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "bridge.svg", "Output drawing file (SVG)")
	generateCmd.Flags().StringVar(&generatePreview, "preview", "", "Optional preview image (.png, .svg or .pdf)")

	generateCmd.Flags().StringVar(&generateProject, "project", "HIGHWAY BRIDGE PROJECT", "Project name for the title block")
	generateCmd.Flags().StringVar(&generateTitle, "title", "BRIDGE GENERAL ARRANGEMENT", "Drawing title for the title block")
	generateCmd.Flags().StringVar(&generateDwgNo, "drawing-no", "BRG-001", "Drawing number for the title block")
	generateCmd.Flags().StringVar(&generateDate, "date", "", "Drawing date for the title block (e.g. 2026-08-23)")

	generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := params.Load(generateInput)
	if err != nil {
		return err
	}

	var survey []params.SurveyPoint
	if generateSurvey != "" {
		profile, skipped, err := params.LoadSurvey(generateSurvey)
		if err != nil {
			return err
		}
		if skipped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d survey row(s) skipped\n", skipped)
		}
		survey = profile.Points()
	}

	doc, stats, err := pipeline.Generate(cfg, survey, pipeline.Meta{
		Project:   generateProject,
		Title:     generateTitle,
		DrawingNo: generateDwgNo,
		Date:      generateDate,
	}, pipeline.Options{Logger: logger})
	if err != nil {
		var verr *params.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "Parameter validation failed:")
			for _, p := range verr.Params {
				fmt.Fprintf(os.Stderr, "  - %s\n", p)
			}
		}
		return err
	}

	out, err := os.Create(generateOutput)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if err := (render.SVG{}).Render(out, doc); err != nil {
		return err
	}

	if generatePreview != "" {
		if err := render.ExportPreview(doc, generateTitle, generatePreview); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println("  Drawing generated successfully.")
	fmt.Printf("  Spans: %d   Piers: %d   Primitives: %d   Dimensions: %d\n",
		cfg.NumSpans, stats.Piers, stats.Primitives, stats.Dimensions)
	if stats.SkippedSurveyRows > 0 {
		fmt.Printf("  Skipped survey rows: %d\n", stats.SkippedSurveyRows)
	}
	fmt.Printf("  Output: %s\n", generateOutput)
	if generatePreview != "" {
		fmt.Printf("  Preview: %s\n", generatePreview)
	}
	fmt.Println()
	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
