package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobridge/internal/params"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a bridge parameter file without drawing anything",
	Long: `Check a bridge parameter file against the engine's validation rules:
required parameters present, lengths positive, span count at least 1,
scale factors positive, and the level ordering consistent.

Exits non-zero and lists every offending parameter when the file is
invalid.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Bridge parameter file (YAML) [required]")
	validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := params.Load(validateInput)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		var verr *params.ValidationError
		if errors.As(err, &verr) {
			fmt.Println("Parameter validation failed:")
			for _, p := range verr.Params {
				fmt.Printf("  - %s\n", p)
			}
		}
		return err
	}

	fmt.Printf("OK: %d span(s), %d pier(s), overall length %.2f m\n",
		cfg.NumSpans, cfg.PierCount(), cfg.TotalLength())
	return nil
}
