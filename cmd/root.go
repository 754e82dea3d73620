package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobridge/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gobridge",
	Short: "Bridge General Arrangement Drawing Generator",
	Long: `gobridge - Go Bridge GAD Generator

A CLI tool that turns a small set of parametric design inputs
(spans, levels, skew angle, pier and footing dimensions, an optional
ground survey) into a multi-view general arrangement drawing.

The engine produces:
  - Elevation view with deck, piers, abutments, footings and grid
  - Plan view with skew correction
  - Cross-section detail at a secondary scale
  - Automatic span, overall and element dimensions
  - Title block and layered vector output (SVG)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobridge v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Bridge GAD Generator                                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Generates general arrangement drawings of slab bridges from")
		fmt.Println("  a parametric design input file.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Elevation, plan and cross-section views on one sheet")
		fmt.Println("    • Skew-corrected plan geometry")
		fmt.Println("    • Automatic dimensioning and title block")
		fmt.Println("    • Layered SVG output plus PNG/PDF preview")
		fmt.Println()
		fmt.Println("  Use 'gobridge --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
