package theme

import (
	"github.com/AvengeMedia/dankpalette/internal/oklch"
	"github.com/AvengeMedia/dankpalette/internal/prng"
)

// buildNative constructs one mode from scratch using that mode's targets.
func buildNative(mode Mode, lv Levels, tun *Tuning, hues [roleCount]float64, tintHue float64, rng *prng.Rand) Palette {
	var p Palette
	buildNeutrals(&p, mode, lv, tun, tintHue)
	buildBrand(&p, mode, lv, tun, hues, rng)
	deriveForegrounds(&p, tun, nil)
	return p
}

// deriveMode builds the companion of src. Neutrals are mirrored around the
// target constants of both modes, chromatic slots shift lightness by a fixed
// offset and lose a little chroma. Hue never changes.
func deriveMode(src Palette, from Mode, tun *Tuning) Palette {
	to := from.Other()
	d := tun.Derive
	var out Palette

	for _, tok := range neutralTokens {
		c := src[tok]
		delta := c.L - tun.Neutrals[from].of(tok)
		l := tun.NeutralBands[to].of(tok).clamp(tun.Neutrals[to].of(tok) - delta*d.NeutralMirror)
		out[tok] = oklch.Snap(oklch.Color{L: l, C: c.C * d.NeutralChroma, H: c.H})
	}

	shift, band := d.BrandShift, d.DarkBrandBand
	if to == Light {
		shift, band = -d.BrandShift, d.LightBrandBand
	}
	for _, tok := range chromaticTokens {
		c := src[tok]
		out[tok] = oklch.Snap(oklch.Color{L: band.clamp(c.L + shift), C: c.C * d.BrandChroma, H: c.H})
	}

	deriveForegrounds(&out, tun, nil)
	return out
}
