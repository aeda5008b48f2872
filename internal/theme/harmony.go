package theme

import (
	"strings"

	"github.com/AvengeMedia/dankpalette/internal/oklch"
	"github.com/AvengeMedia/dankpalette/internal/prng"
)

// HarmonyMode selects the hue-offset pattern used to derive role hues.
type HarmonyMode string

const (
	Monochrome         HarmonyMode = "monochrome"
	Analogous          HarmonyMode = "analogous"
	Complementary      HarmonyMode = "complementary"
	SplitComplementary HarmonyMode = "split-complementary"
	Triadic            HarmonyMode = "triadic"
	Tetradic           HarmonyMode = "tetradic"
	Compound           HarmonyMode = "compound"
	TriadicSplit       HarmonyMode = "triadic-split"
	Random             HarmonyMode = "random"
	Image              HarmonyMode = "image"
)

// Role hue slots produced by the selector.
const (
	rolePrimary = iota
	roleSecondary
	roleAccent
	roleGood
	roleBad
	roleCount
)

// harmonyOffsets holds degrees added to the base hue for
// [primary, secondary, accent, good, bad].
var harmonyOffsets = map[HarmonyMode][roleCount]float64{
	Monochrome:         {0, 0, 0, 0, 0},
	Analogous:          {0, 30, -30, 15, -15},
	Complementary:      {0, 180, 200, 160, 20},
	SplitComplementary: {0, 150, 210, 120, 240},
	Triadic:            {0, 120, 240, 100, 260},
	Tetradic:           {0, 90, 180, 270, 45},
	Compound:           {0, 30, 165, 195, 345},
	TriadicSplit:       {0, 105, 255, 135, 225},
}

// randomPool is the set "random" draws from.
var randomPool = []HarmonyMode{
	Analogous, Complementary, SplitComplementary, Triadic, Tetradic, Compound, TriadicSplit,
}

// HarmonyModes lists every accepted mode.
func HarmonyModes() []HarmonyMode {
	return []HarmonyMode{
		Monochrome, Analogous, Complementary, SplitComplementary,
		Triadic, Tetradic, Compound, TriadicSplit, Random, Image,
	}
}

// ParseHarmonyMode maps unknown strings to analogous.
func ParseHarmonyMode(s string) HarmonyMode {
	m := HarmonyMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range HarmonyModes() {
		if m == known {
			return m
		}
	}
	return Analogous
}

// Offsets returns the hue offsets for a concrete style. Random and image
// have no table of their own and report false.
func (m HarmonyMode) Offsets() ([roleCount]float64, bool) {
	o, ok := harmonyOffsets[m]
	return o, ok
}

// roleHues resolves the style and returns five role hues.
func roleHues(mode HarmonyMode, base float64, rng *prng.Rand, override []*oklch.Color) (HarmonyMode, [roleCount]float64) {
	style := mode
	switch mode {
	case Random:
		style = randomPool[rng.Intn(len(randomPool))]
	case Image:
		style = Analogous
	}
	offsets, ok := harmonyOffsets[style]
	if !ok {
		style = Analogous
		offsets = harmonyOffsets[Analogous]
	}

	var hues [roleCount]float64
	for i, off := range offsets {
		hues[i] = oklch.NormalizeHue(base + off)
	}
	for role, c := range overrideRoleColors(override) {
		if c != nil && c.C >= minOverrideChroma {
			hues[role] = c.H
		}
	}
	return style, hues
}

// minOverrideChroma is the chroma below which an override color's hue is noise.
const minOverrideChroma = 0.02

// overrideRoleColors maps override slots onto role hues. Five-slot palettes
// are [primary, secondary, accent, good, bad]; ten-slot palettes carry the
// roles at indices 5..9.
func overrideRoleColors(override []*oklch.Color) [roleCount]*oklch.Color {
	var out [roleCount]*oklch.Color
	switch len(override) {
	case 5:
		copy(out[:], override)
	case 10:
		copy(out[:], override[5:])
	}
	return out
}

// baseHue picks the hue the harmony table rotates from: an override primary,
// then the seed color, then a draw from the generator.
func baseHue(seedColor *oklch.Color, override []*oklch.Color, rng *prng.Rand) float64 {
	drawn := rng.Next() * 360
	if p := overrideRoleColors(override)[rolePrimary]; p != nil && p.C >= minOverrideChroma {
		return p.H
	}
	if seedColor != nil {
		return seedColor.H
	}
	return drawn
}
