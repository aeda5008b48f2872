package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankpalette/internal/config"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

func flagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addThemeFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestThemeOptionsFlagsOverrideConfig(t *testing.T) {
	cfg = config.Config{Mode: "triadic", Seed: "from-config", Light: theme.Levels{Saturation: 2}}
	t.Cleanup(func() { cfg = config.Config{} })

	opts := themeOptions(flagCmd(t, "--mode", "compound", "-C", "3"), "")
	assert.Equal(t, theme.Compound, opts.Mode)
	assert.Equal(t, "from-config", opts.Seed)
	assert.Equal(t, theme.Levels{Saturation: 2, Contrast: 3}, opts.Light)
	assert.Nil(t, opts.Dark)
}

func TestThemeOptionsSplitDark(t *testing.T) {
	cfg = config.Config{Seed: "s"}
	t.Cleanup(func() { cfg = config.Config{} })

	opts := themeOptions(flagCmd(t, "-B", "2", "--dark-brightness", "-4"), "")
	require.NotNil(t, opts.Dark)
	assert.Equal(t, theme.Levels{Brightness: 2}, opts.Light)
	assert.Equal(t, theme.Levels{Brightness: -4}, *opts.Dark)
}

func TestThemeOptionsOverride(t *testing.T) {
	cfg = config.Config{Seed: "s"}
	t.Cleanup(func() { cfg = config.Config{} })

	opts := themeOptions(flagCmd(t, "--override", "#111111,#222222,#333333,#444444,#555555", "--import-side", "dark"), "")
	assert.Len(t, opts.Override, 5)
	assert.Equal(t, theme.SideDark, opts.ImportSide)
}

func TestThemeOptionsRandomSeed(t *testing.T) {
	cfg = config.Config{}

	a := themeOptions(flagCmd(t), "")
	b := themeOptions(flagCmd(t), "")
	assert.NotEmpty(t, a.Seed)
	assert.NotEqual(t, a.Seed, b.Seed)

	c := themeOptions(flagCmd(t, "--color", "#3a5cb8"), "")
	assert.Empty(t, c.Seed, "a seed color is enough to be deterministic")
}

func TestThemeOptionsPositionalColor(t *testing.T) {
	cfg = config.Config{}

	opts := themeOptions(flagCmd(t), "#2f9e44")
	assert.Equal(t, "#2f9e44", opts.SeedColor)
	assert.Empty(t, opts.Seed, "no random seed once a color is given")

	opts = themeOptions(flagCmd(t, "--color", "#111111"), "#2f9e44")
	assert.Equal(t, "#2f9e44", opts.SeedColor)

	opts = themeOptions(flagCmd(t, "--seed", "kept"), "#2f9e44")
	assert.Equal(t, "kept", opts.Seed)

	cfg = config.Config{Seed: "from-config"}
	t.Cleanup(func() { cfg = config.Config{} })
	opts = themeOptions(flagCmd(t), "#2f9e44")
	assert.Equal(t, "from-config", opts.Seed)
}

func TestWriteTheme(t *testing.T) {
	d := theme.Generate(theme.Options{Seed: "cli"})

	var text bytes.Buffer
	require.NoError(t, writeTheme(&text, d, "text"))
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	assert.Len(t, lines, 2+int(theme.TokenCount))
	assert.Equal(t, fmt.Sprintf("%-12s  %s  %s", "badFg", d.Light[theme.BadFg], d.Dark[theme.BadFg]), lines[len(lines)-1])

	var js bytes.Buffer
	require.NoError(t, writeTheme(&js, d, "JSON"))
	var back theme.DualTheme
	require.NoError(t, json.Unmarshal(js.Bytes(), &back))
	assert.Equal(t, d, back)

	var env bytes.Buffer
	require.NoError(t, writeTheme(&env, d, "env"))
	assert.Contains(t, env.String(), "DANKPAL_LIGHT_BG="+d.Light[theme.Bg]+"\n")
	assert.Contains(t, env.String(), "DANKPAL_DARK_TEXT_ON_COLOR="+d.Dark[theme.TextOnColor]+"\n")

	assert.Error(t, writeTheme(&env, d, "yaml"))
}

func TestEnvName(t *testing.T) {
	tests := []struct {
		tok      theme.Token
		expected string
	}{
		{theme.Bg, "BG"},
		{theme.Card2, "CARD2"},
		{theme.TextMuted, "TEXT_MUTED"},
		{theme.PrimaryFg, "PRIMARY_FG"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, envName(tt.tok))
	}
}
