package theme

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankpalette/internal/contrast"
	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

func levelGrid(short bool) []Levels {
	steps := []int{-5, 0, 5}
	if short {
		steps = []int{-5, 5}
	}
	var out []Levels
	for _, s := range steps {
		for _, c := range steps {
			for _, b := range steps {
				out = append(out, Levels{Saturation: s, Contrast: c, Brightness: b})
			}
		}
	}
	return out
}

func mustHex(s string) oklch.Color {
	c, ok := oklch.ParseHex(s)
	if !ok {
		panic("invalid hex " + s)
	}
	return c
}

func parse(t *testing.T, hex string) oklch.Color {
	t.Helper()
	c, ok := oklch.ParseHex(hex)
	require.True(t, ok, "invalid hex %q", hex)
	return c
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{Mode: Random, SeedColor: "#3a5cb8", Light: Levels{1, -2, 3}}
	first := Generate(opts)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Generate(opts))
	}

	other := Generate(Options{Mode: Random, Seed: "another seed", Light: Levels{1, -2, 3}})
	assert.NotEqual(t, first.Light, other.Light)
}

func TestGenerateGamutClosure(t *testing.T) {
	for _, opts := range []Options{
		{Mode: Complementary, SeedColor: "#ff0066", Light: Levels{5, 5, 5}},
		{Mode: Triadic, Seed: "gamut", Light: Levels{5, -5, -5}, DarkFirst: true},
		{Mode: Monochrome, SeedColor: "#00ff88"},
	} {
		theme := Generate(opts)
		for _, tokens := range []Tokens{theme.Light, theme.Dark} {
			for i, hex := range tokens {
				c := parse(t, hex)
				assert.Equal(t, hex, oklch.Snap(c).Hex(), "slot %s", Token(i))
				assert.True(t, c.InGamut(), "slot %s", Token(i))
			}
		}
	}
}

func assertReadable(t *testing.T, tokens Tokens, mode Mode, label string) {
	t.Helper()
	g := DefaultTuning().Guardrails[mode]
	surfaces := []oklch.Color{parse(t, tokens[Bg]), parse(t, tokens[Card]), parse(t, tokens[Card2])}

	text, _ := contrast.WorstRatio(parse(t, tokens[Text]), surfaces...)
	muted, _ := contrast.WorstRatio(parse(t, tokens[TextMuted]), surfaces...)
	assert.GreaterOrEqual(t, text, g.Text, "%s %s text", label, mode)
	assert.GreaterOrEqual(t, muted, g.TextMuted, "%s %s textMuted", label, mode)
}

func TestGenerateReadabilityAcrossLevels(t *testing.T) {
	for _, darkFirst := range []bool{false, true} {
		for _, lv := range levelGrid(testing.Short()) {
			label := fmt.Sprintf("darkFirst=%v levels=%+v", darkFirst, lv)
			theme := Generate(Options{Mode: Analogous, SeedColor: "#3a5cb8", Light: lv, DarkFirst: darkFirst})
			assertReadable(t, theme.Light, Light, label)
			assertReadable(t, theme.Dark, Dark, label)
		}
	}
}

func TestGenerateReadabilitySplitLevels(t *testing.T) {
	dark := Levels{Saturation: -3, Contrast: 4, Brightness: -5}
	theme := Generate(Options{Mode: Tetradic, Seed: "split", Light: Levels{4, -5, 5}, Dark: &dark})
	assertReadable(t, theme.Light, Light, "split")
	assertReadable(t, theme.Dark, Dark, "split")
}

func assertUnique(t *testing.T, tokens Tokens, label string) {
	t.Helper()
	seen := make(map[string]Token)
	for i, hex := range tokens {
		if prev, dup := seen[hex]; dup {
			t.Errorf("%s: %s and %s share %s", label, prev, Token(i), hex)
		}
		seen[hex] = Token(i)
	}
}

func TestGenerateNoDuplicateTokens(t *testing.T) {
	for _, mode := range []HarmonyMode{Monochrome, Analogous, Complementary, Random} {
		for _, lv := range []Levels{{0, 0, 0}, {-5, -5, -5}, {5, 5, 5}, {-5, 5, 0}} {
			label := fmt.Sprintf("%s %+v", mode, lv)
			theme := Generate(Options{Mode: mode, Seed: "dedupe", Light: lv})
			assertUnique(t, theme.Light, label+" light")
			assertUnique(t, theme.Dark, label+" dark")
		}
	}
}

func assertParity(t *testing.T, theme DualTheme, label string) {
	t.Helper()
	for _, tok := range ChromaticTokens() {
		l := parse(t, theme.Light[tok])
		d := parse(t, theme.Dark[tok])
		if max(l.C, d.C) < 0.025 {
			continue
		}
		assert.LessOrEqual(t, oklch.HueDistance(l.H, d.H), 10.0, "%s %s light=%s dark=%s", label, tok, theme.Light[tok], theme.Dark[tok])
	}
}

func TestGenerateParity(t *testing.T) {
	for _, tc := range []struct {
		name      string
		opts      Options
		darkFirst bool
	}{
		{name: "shared", opts: Options{Mode: SplitComplementary, SeedColor: "#c2410c"}},
		{name: "shared dark first", opts: Options{Mode: SplitComplementary, SeedColor: "#c2410c", DarkFirst: true}},
		{name: "shared nonzero", opts: Options{Mode: SplitComplementary, SeedColor: "#c2410c", Light: Levels{2, 1, -1}}},
		{name: "shared nonzero dark first", opts: Options{Mode: SplitComplementary, SeedColor: "#c2410c", Light: Levels{-2, 2, 3}, DarkFirst: true}},
		{name: "split yellow seed", opts: Options{Mode: Complementary, SeedColor: "#ffff00", Seed: "s12", Light: Levels{2, -2, 0}, Dark: &Levels{5, 4, -1}}},
		{name: "split opposite extremes", opts: Options{Mode: Triadic, Seed: "split", Light: Levels{5, 5, 5}, Dark: &Levels{-5, -5, -5}}},
		{name: "split desaturated anchor", opts: Options{Mode: Tetradic, SeedColor: "#0f766e", Light: Levels{-5, 0, 0}, Dark: &Levels{5, 0, 0}}},
		{name: "split dark first", opts: Options{Mode: Compound, Seed: "split", Light: Levels{-3, 4, 2}, Dark: &Levels{4, -4, -2}, DarkFirst: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assertParity(t, Generate(tc.opts), tc.name)
		})
	}
}

type sweepVariant struct {
	name      string
	dark      func(Levels) *Levels
	darkFirst bool
}

var sweepVariants = []sweepVariant{
	{name: "shared", dark: func(Levels) *Levels { return nil }},
	{name: "split", dark: func(lv Levels) *Levels {
		return &Levels{Saturation: -lv.Saturation, Contrast: lv.Brightness, Brightness: -lv.Contrast}
	}},
	{name: "dark first split", darkFirst: true, dark: func(lv Levels) *Levels {
		return &Levels{Saturation: lv.Contrast, Contrast: -lv.Saturation, Brightness: lv.Brightness}
	}},
}

func sweepLevels() []Levels {
	lvs := levelGrid(true)
	return append(lvs, Levels{}, Levels{2, -3, 1})
}

func TestGenerateSweepAcrossModesAndSeeds(t *testing.T) {
	seeds := []Options{
		{SeedColor: "#ffff00", Seed: "s12"},
		{SeedColor: "#0f766e"},
		{Seed: "sweep"},
	}
	if testing.Short() {
		seeds = seeds[:1]
	}
	for _, mode := range HarmonyModes() {
		for _, seed := range seeds {
			for _, v := range sweepVariants {
				for _, lv := range sweepLevels() {
					opts := seed
					opts.Mode = mode
					opts.Light = lv
					opts.Dark = v.dark(lv)
					opts.DarkFirst = v.darkFirst

					label := fmt.Sprintf("%s seed=%q color=%q %s levels=%+v", mode, seed.Seed, seed.SeedColor, v.name, lv)
					theme := Generate(opts)
					assertReadable(t, theme.Light, Light, label)
					assertReadable(t, theme.Dark, Dark, label)
					assertParity(t, theme, label)
					assertUnique(t, theme.Light, label+" light")
					assertUnique(t, theme.Dark, label+" dark")
				}
			}
		}
	}
}

func TestScenarioSeedParity(t *testing.T) {
	theme := Generate(Options{Mode: Random, SeedColor: "#3a5cb8"})
	l := parse(t, theme.Light[Primary])
	d := parse(t, theme.Dark[Primary])
	assert.LessOrEqual(t, oklch.HueDistance(l.H, d.H), 6.0)
	assert.InDelta(t, l.C, d.C, 0.02)
	assert.NotEqual(t, Random, theme.Mode)
}

func meanLightness(t *testing.T, tokens Tokens) float64 {
	var sum float64
	toks := []Token{Bg, Card, Card2, Text, Primary, Secondary, Accent}
	for _, tok := range toks {
		sum += parse(t, tokens[tok]).L
	}
	return sum / float64(len(toks))
}

func TestScenarioBrightnessRaisesLightness(t *testing.T) {
	dim := Generate(Options{Mode: Analogous, SeedColor: "#3a5cb8", Light: Levels{Brightness: -5}})
	bright := Generate(Options{Mode: Analogous, SeedColor: "#3a5cb8", Light: Levels{Brightness: 5}})
	assert.GreaterOrEqual(t, meanLightness(t, bright.Light)-meanLightness(t, dim.Light), 0.22)
}

var importPalette = []string{
	"#f6f1e7", "#ece4d3", "#2b2118", "#6b5a48", "#fffaf0",
	"#b5542c", "#3f7d6e", "#c99a2e", "#4f8a3a", "#b23a3a",
}

func TestImportPinsSlotsExactly(t *testing.T) {
	lvs := []Levels{{0, 0, 0}}
	for _, s := range []int{-5, 5} {
		for _, c := range []int{-5, 5} {
			for _, b := range []int{-5, 5} {
				lvs = append(lvs, Levels{s, c, b})
			}
		}
	}
	for _, lv := range lvs {
		theme := Generate(Options{Mode: Image, Override: importPalette, ImportSide: SideLight, Light: lv})
		for i, tok := range importSlots {
			assert.Equal(t, importPalette[i], theme.Light[tok], "%s levels=%+v", tok, lv)
		}
		for _, hex := range theme.Dark {
			parse(t, hex)
		}
	}
}

func TestImportDarkSide(t *testing.T) {
	dark := []string{
		"#14161c", "#1d2029", "#eceff4", "#a3aab8", "#0b0c10",
		"#7aa2f7", "#bb9af7", "#e0af68", "#9ece6a", "#f7768e",
	}
	theme := Generate(Options{Mode: Image, Override: dark, DarkFirst: true, Light: Levels{3, -4, 2}})
	for i, tok := range importSlots {
		assert.Equal(t, dark[i], theme.Dark[tok], "%s", tok)
	}
	assertReadable(t, theme.Light, Light, "import dark")
}

func TestScenarioImportBlankTextOnColor(t *testing.T) {
	palette := append([]string(nil), importPalette...)
	palette[4] = ""
	theme := Generate(Options{Mode: Image, Override: palette, ImportSide: SideLight})
	assert.Equal(t, theme.Light[PrimaryFg], theme.Light[TextOnColor])
	assert.Equal(t, importPalette[5], theme.Light[Primary])
}

func TestImportBlankTextStaysReadable(t *testing.T) {
	for _, tc := range []struct {
		name    string
		palette []string
		side    Side
		mode    Mode
	}{
		{
			name:    "light grey surfaces",
			palette: []string{"#f4f4f4", "#e6e6e6", "", "", "", "#b5542c", "#3f7d6e", "#c99a2e", "#4f8a3a", "#b23a3a"},
			side:    SideLight,
			mode:    Light,
		},
		{
			name:    "light warm surfaces",
			palette: []string{"#f6f1e7", "#ece4d3", "", "", "#fffaf0", "#b5542c", "#3f7d6e", "#c99a2e", "#4f8a3a", "#b23a3a"},
			side:    SideLight,
			mode:    Light,
		},
		{
			name:    "dark surfaces",
			palette: []string{"#14161c", "#1d2029", "", "", "", "#7aa2f7", "#bb9af7", "#e0af68", "#9ece6a", "#f7768e"},
			side:    SideDark,
			mode:    Dark,
		},
		{
			name:    "all blank",
			palette: make([]string, 10),
			side:    SideLight,
			mode:    Light,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			steps := []int{-5, -2, 0, 1, 3, 5}
			for _, c := range steps {
				for _, b := range steps {
					lv := Levels{Contrast: c, Brightness: b}
					label := fmt.Sprintf("%s levels=%+v", tc.name, lv)
					theme := Generate(Options{Mode: Image, Override: tc.palette, ImportSide: tc.side, Light: lv})

					assertReadable(t, theme.Side(tc.mode), tc.mode, label)
					assertReadable(t, theme.Side(tc.mode.Other()), tc.mode.Other(), label)
					for i, tok := range importSlots {
						if tc.palette[i] != "" {
							assert.Equal(t, tc.palette[i], theme.Side(tc.mode)[tok], "%s %s", label, tok)
						}
					}
				}
			}
		})
	}
}

func TestMalformedInputsDegrade(t *testing.T) {
	base := Generate(Options{Mode: Analogous})

	assert.Equal(t, base, Generate(Options{Mode: "not-a-mode"}))
	assert.Equal(t, base, Generate(Options{Mode: Analogous, SeedColor: "#zzzzzz"}))
	assert.Equal(t, base, Generate(Options{Mode: Analogous, Override: []string{"#ffffff", "#000000", "#ff0000"}}))

	clamped := Generate(Options{Mode: Analogous, Light: Levels{5, -5, 5}})
	assert.Equal(t, clamped, Generate(Options{Mode: Analogous, Light: Levels{99, -12, 6}}))
}

func TestSeedDefaults(t *testing.T) {
	assert.Equal(t, "#3a5cb8", Generate(Options{SeedColor: "3A5CB8"}).Seed)
	assert.Equal(t, "explicit", Generate(Options{SeedColor: "#3a5cb8", Seed: "explicit"}).Seed)
	assert.Equal(t, defaultSeed, Generate(Options{}).Seed)
}

func TestSeedColorDrivesPrimaryHue(t *testing.T) {
	seed := mustHex("#2f9e44")
	theme := Generate(Options{Mode: Complementary, SeedColor: "#2f9e44"})
	primary := parse(t, theme.Light[Primary])
	assert.LessOrEqual(t, oklch.HueDistance(primary.H, seed.H), 6.0)
}

func TestGenerateConcurrentCallsAgree(t *testing.T) {
	opts := Options{Mode: Compound, Seed: "concurrent", Light: Levels{2, 2, -1}}
	expected := Generate(opts)

	results := make(chan DualTheme, 8)
	for i := 0; i < 8; i++ {
		go func() { results <- Generate(opts) }()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, expected, <-results)
	}
}
