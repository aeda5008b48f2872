package main

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

// addThemeFlags registers the engine inputs shared by every command that
// generates a theme.
func addThemeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("mode", "m", "", "Harmony mode: "+harmonyList())
	f.String("seed", "", "Seed string (random when neither seed nor seed color is given)")
	f.StringP("color", "c", "", "Seed color as hex")
	f.IntP("saturation", "S", 0, "Saturation level (-5..5)")
	f.IntP("contrast", "C", 0, "Contrast level (-5..5)")
	f.IntP("brightness", "B", 0, "Brightness level (-5..5)")
	f.Int("dark-saturation", 0, "Dark mode saturation level; implies split levels")
	f.Int("dark-contrast", 0, "Dark mode contrast level; implies split levels")
	f.Int("dark-brightness", 0, "Dark mode brightness level; implies split levels")
	f.Bool("dark-first", false, "Build the dark theme first and derive light from it")
	f.StringSlice("override", nil, "Pinned palette: 5 role colors or 10 image slots (bg,card,text,textMuted,textOnColor,primary,secondary,accent,good,bad)")
	f.String("import-side", "auto", "Mode the 10 slot override belongs to: auto, light or dark")
}

func harmonyList() string {
	modes := theme.HarmonyModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// themeOptions merges config defaults with the flags the user set. A
// non-empty positional color replaces the seed color and, unless a seed was
// given by flag or config, seeds the theme too.
func themeOptions(cmd *cobra.Command, positional string) theme.Options {
	opts := cfg.Options()
	f := cmd.Flags()

	if f.Changed("mode") {
		mode, _ := f.GetString("mode")
		opts.Mode = theme.ParseHarmonyMode(mode)
	}
	if f.Changed("seed") {
		opts.Seed, _ = f.GetString("seed")
	}
	if f.Changed("color") {
		opts.SeedColor, _ = f.GetString("color")
	}
	if positional != "" {
		opts.SeedColor = positional
		if !f.Changed("seed") && cfg.Seed == "" {
			opts.Seed = ""
		}
	}
	if f.Changed("dark-first") {
		opts.DarkFirst, _ = f.GetBool("dark-first")
	}

	setLevel := func(name string, dst *int) bool {
		if !f.Changed(name) {
			return false
		}
		*dst, _ = f.GetInt(name)
		return true
	}
	setLevel("saturation", &opts.Light.Saturation)
	setLevel("contrast", &opts.Light.Contrast)
	setLevel("brightness", &opts.Light.Brightness)

	dark := opts.Light
	if opts.Dark != nil {
		dark = *opts.Dark
	}
	split := opts.Dark != nil
	split = setLevel("dark-saturation", &dark.Saturation) || split
	split = setLevel("dark-contrast", &dark.Contrast) || split
	split = setLevel("dark-brightness", &dark.Brightness) || split
	if split {
		opts.Dark = &dark
	}

	if f.Changed("override") {
		opts.Override, _ = f.GetStringSlice("override")
		side, _ := f.GetString("import-side")
		opts.ImportSide = theme.ParseSide(side)
	}

	if opts.Seed == "" && opts.SeedColor == "" {
		opts.Seed = uuid.NewString()
		log.Infof("Using random seed %s", opts.Seed)
	}
	return opts
}
