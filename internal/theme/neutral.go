package theme

import (
	"math"

	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

const (
	warmHue = 60.0
	coolHue = 240.0

	neutralBrightnessStep = 0.02
	neutralContrastStep   = 0.015
	neutralTintStep       = 0.003
)

var neutralTokens = []Token{Bg, Card, Card2, Text, TextMuted, Border}

// buildNeutrals fills bg, card, card2, text, textMuted and border. Surfaces
// and border move away from the text as contrast rises; all slots shift
// together with brightness.
func buildNeutrals(p *Palette, mode Mode, lv Levels, tun *Tuning, tintHue float64) {
	targets := tun.Neutrals[mode]
	bands := tun.NeutralBands[mode]

	bright := float64(lv.Brightness) * neutralBrightnessStep
	spread := float64(lv.Contrast) * neutralContrastStep
	tint := math.Max(0, float64(lv.Saturation)*neutralTintStep)

	surfaceDir := 1.0
	if mode == Dark {
		surfaceDir = -1
	}

	for _, tok := range neutralTokens {
		l := targets.of(tok) + bright
		if tok == Text || tok == TextMuted {
			l -= surfaceDir * spread
		} else {
			l += surfaceDir * spread
		}
		l = bands.of(tok).clamp(l)
		p[tok] = oklch.Snap(oklch.Color{L: l, C: tint, H: tintHue})
	}
}
