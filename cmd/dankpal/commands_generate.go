package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a light and dark theme",
	Long:  "Generate a paired light and dark theme of 20 color tokens each",
	Args:  cobra.NoArgs,
	Run:   runGenerate,
}

func init() {
	addThemeFlags(generateCmd)
	generateCmd.Flags().StringP("format", "f", "", "Output format: text, json or env")
	generateCmd.Flags().BoolP("preview", "p", false, "Render swatches after the tokens")
	generateCmd.SetHelpTemplate(leafHelpTemplate)
}

func runGenerate(cmd *cobra.Command, args []string) {
	opts := themeOptions(cmd, "")

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	preview := cfg.Output.Preview
	if cmd.Flags().Changed("preview") {
		preview, _ = cmd.Flags().GetBool("preview")
	}

	d := theme.Generate(opts)
	log.Debugf("Generated %s theme from seed %s", d.Mode, d.Seed)

	if err := writeTheme(os.Stdout, d, format); err != nil {
		log.Fatalf("Error writing theme: %v", err)
	}
	if preview {
		writePreview(os.Stdout, d)
	}
}
