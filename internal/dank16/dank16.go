package dank16

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AvengeMedia/dankpalette/internal/contrast"
	"github.com/AvengeMedia/dankpalette/internal/oklch"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

// Size is the number of ANSI colors in a palette.
const Size = 16

const (
	dpsStep     = 0.01
	dpsMaxSteps = 100

	// Lightness shift of the bright row relative to the normal row.
	brightShiftDark  = 0.08
	brightShiftLight = 0.05
	brightChroma     = 0.9
)

// ContrastAlgo selects how palette entries are checked against the
// background.
type ContrastAlgo string

const (
	WCAG ContrastAlgo = "wcag"
	DPS  ContrastAlgo = "dps"
)

// Targets per algorithm for the normal row and the bright row.
var targets = map[ContrastAlgo][2]float64{
	WCAG: {4.5, 3.0},
	DPS:  {40, 35},
}

type PaletteOptions struct {
	IsLight bool
	// Background replaces the theme's bg slot when set.
	Background string
	Contrast   ContrastAlgo
}

// FromTheme maps one side of a generated theme onto the 16 ANSI slots.
// Status colors fill red, green and yellow; the brand colors fill blue,
// magenta and cyan. The bright row is a lightness shift of the normal row
// checked against a looser target.
func FromTheme(t theme.Tokens, opts PaletteOptions) []string {
	p := theme.PaletteFromTokens(t)
	algo := opts.Contrast
	if _, ok := targets[algo]; !ok {
		algo = WCAG
	}
	normalTarget, brightTarget := targets[algo][0], targets[algo][1]

	bg := p[theme.Bg]
	if c, ok := oklch.ParseHex(opts.Background); ok {
		bg = c
	}

	ensure := func(c oklch.Color, target float64) string {
		if algo == DPS {
			return EnsureContrastDPS(c, bg, target, opts.IsLight).Hex()
		}
		return contrast.AdjustForContrast(c, bg, target).Hex()
	}

	normal := []oklch.Color{
		p[theme.Bad], p[theme.Good], p[theme.Warn],
		p[theme.Primary], p[theme.Accent], p[theme.Secondary],
	}

	colors := make([]string, 0, Size)
	colors = append(colors, bg.Hex())
	for _, c := range normal {
		colors = append(colors, ensure(c, normalTarget))
	}
	colors = append(colors, ensure(p[theme.TextMuted], normalTarget))

	colors = append(colors, ensure(p[theme.Border], brightTarget))
	for _, c := range normal {
		colors = append(colors, ensure(brighten(c, opts.IsLight), brightTarget))
	}
	colors = append(colors, ensure(p[theme.Text], normalTarget))
	return colors
}

func brighten(c oklch.Color, isLight bool) oklch.Color {
	if isLight {
		return oklch.Snap(oklch.Color{L: c.L - brightShiftLight, C: c.C * brightChroma, H: c.H})
	}
	return oklch.Snap(oklch.Color{L: c.L + brightShiftDark, C: c.C * brightChroma, H: c.H})
}

// lstar is CIE L* on the 0-100 scale.
func lstar(c oklch.Color) float64 {
	l, _, _ := c.RGB().Clamped().Lab()
	return l * 100
}

// DeltaPhiStar is a perceptual lightness contrast over CIE L*. Negative
// polarity (light text on dark) gets a small bonus.
func DeltaPhiStar(fg, bg oklch.Color, negativePolarity bool) float64 {
	lf, lb := lstar(fg), lstar(bg)
	const phi, inv = 1.618, 0.618
	lc := math.Pow(math.Abs(math.Pow(lb, phi)-math.Pow(lf, phi)), inv)*1.414 - 40
	if negativePolarity {
		lc += 5
	}
	return lc
}

// EnsureContrastDPS walks lightness away from the background until the
// Delta Phi* target is met. Hue and chroma are kept.
func EnsureContrastDPS(c, bg oklch.Color, minLc float64, isLight bool) oklch.Color {
	if DeltaPhiStar(c, bg, !isLight) >= minLc {
		return c
	}
	dir := 1.0
	if isLight {
		dir = -1
	}
	for i := 1; i <= dpsMaxSteps; i++ {
		cand := oklch.Snap(c.WithL(c.L + dir*dpsStep*float64(i)))
		if DeltaPhiStar(cand, bg, !isLight) >= minLc {
			return cand
		}
	}
	return c
}

// IsLightBackground reports whether hex reads as a light surface.
func IsLightBackground(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.OkLab()
	return l > 0.6
}
