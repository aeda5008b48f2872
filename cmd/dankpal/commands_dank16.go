package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpalette/internal/dank16"
	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

var dank16Cmd = &cobra.Command{
	Use:   "dank16 [hex_color]",
	Short: "Generate Base16 terminal palettes",
	Long:  "Generate a 16 color terminal palette from a generated theme, in kitty, foot, alacritty, ghostty or VSCode format",
	Args:  cobra.MaximumNArgs(1),
	Run:   runDank16,
}

func init() {
	addThemeFlags(dank16Cmd)
	dank16Cmd.Flags().Bool("light", false, "Use the light theme")
	dank16Cmd.Flags().Bool("kitty", false, "Output in Kitty terminal format")
	dank16Cmd.Flags().Bool("foot", false, "Output in Foot terminal format")
	dank16Cmd.Flags().Bool("alacritty", false, "Output in Alacritty terminal format")
	dank16Cmd.Flags().Bool("vscode", false, "Output as VSCode theme JSON")
	dank16Cmd.Flags().String("vscode-enrich", "", "Enrich existing VSCode theme file with terminal colors")
	dank16Cmd.Flags().String("background", "", "Custom background color")
	dank16Cmd.Flags().String("algo", "", "Contrast algorithm: dps (Delta Phi Star) or wcag")
	dank16Cmd.SetHelpTemplate(leafHelpTemplate)
}

func runDank16(cmd *cobra.Command, args []string) {
	var color string
	if len(args) == 1 {
		color = args[0]
	}
	opts := themeOptions(cmd, color)

	isLight, _ := cmd.Flags().GetBool("light")
	isKitty, _ := cmd.Flags().GetBool("kitty")
	isFoot, _ := cmd.Flags().GetBool("foot")
	isAlacritty, _ := cmd.Flags().GetBool("alacritty")
	isVSCode, _ := cmd.Flags().GetBool("vscode")
	vscodeEnrich, _ := cmd.Flags().GetString("vscode-enrich")
	background, _ := cmd.Flags().GetString("background")

	if background != "" && !strings.HasPrefix(background, "#") {
		background = "#" + background
	}

	algo := cfg.Dank16.Contrast
	if cmd.Flags().Changed("algo") {
		algo, _ = cmd.Flags().GetString("algo")
	}
	contrastAlgo := dank16.ContrastAlgo(strings.ToLower(algo))
	if contrastAlgo != dank16.DPS && contrastAlgo != dank16.WCAG {
		log.Fatalf("Invalid contrast algorithm: %s (must be 'dps' or 'wcag')", algo)
	}

	d := theme.Generate(opts)
	side := theme.Dark
	if isLight {
		side = theme.Light
	}

	colors := dank16.FromTheme(d.Side(side), dank16.PaletteOptions{
		IsLight:    isLight,
		Background: background,
		Contrast:   contrastAlgo,
	})

	switch {
	case isVSCode:
		vt, err := dank16.GenerateVSCodeTheme("Dank Palette "+string(d.Mode), colors, isLight)
		if err != nil {
			log.Fatalf("Error generating VSCode theme: %v", err)
		}
		output, err := json.MarshalIndent(vt, "", "  ")
		if err != nil {
			log.Fatalf("Error generating VSCode theme: %v", err)
		}
		fmt.Println(string(output))
	case vscodeEnrich != "":
		data, err := os.ReadFile(vscodeEnrich)
		if err != nil {
			log.Fatalf("Error reading file: %v", err)
		}
		enriched, err := dank16.EnrichVSCodeTheme(data, colors)
		if err != nil {
			log.Fatalf("Error enriching theme: %v", err)
		}
		fmt.Println(string(enriched))
	case isKitty:
		fmt.Print(dank16.KittyTheme(colors))
	case isFoot:
		fmt.Print(dank16.FootTheme(colors))
	case isAlacritty:
		fmt.Print(dank16.AlacrittyTheme(colors))
	default:
		fmt.Print(dank16.GhosttyTheme(colors))
	}
}
