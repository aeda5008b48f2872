package theme

import (
	"math"

	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

// parityStrength falls from 1 toward the configured minimum as the light and
// dark levels diverge.
func parityStrength(light, dark Levels, tun *Tuning) float64 {
	split := float64(splitDelta(light, dark))
	return math.Max(tun.Parity.MinStrength, 1-split/tun.Parity.SplitScale)
}

// enforceParity moves the companion's chromatic slots onto the anchor's hue
// and pulls their chroma toward the anchor's gamut-relative chroma by
// strength. Slots whose anchor chroma is too small to carry a stable hue are
// left alone.
func enforceParity(anchor Palette, companion *Palette, strength float64, tun *Tuning) {
	pt := tun.Parity
	for _, tok := range chromaticTokens {
		a, c := anchor[tok], companion[tok]
		if a.C < pt.StableChroma {
			continue
		}
		target := parityChroma(a, c.L, pt)
		companion[tok] = oklch.SnapHue(oklch.Color{
			L: c.L,
			C: c.C + (target-c.C)*strength,
			H: a.H,
		})
	}
}

// parityChroma blends an absolute chroma match with a match of how much of
// the available gamut the anchor occupies, bounded to a band around the
// anchor's chroma.
func parityChroma(anchor oklch.Color, companionL float64, pt Parity) float64 {
	relative := anchor.C
	if maxA := oklch.MaxChroma(anchor.L, anchor.H); maxA > 0 {
		relative = anchor.C / maxA * oklch.MaxChroma(companionL, anchor.H)
	}
	target := pt.AbsoluteWeight*anchor.C + pt.RelativeWeight*relative
	return clamp(target, anchor.C*(1-pt.ChromaBand), anchor.C*(1+pt.ChromaBand))
}

// reconcile aligns an independently adjusted companion with its anchor and
// repeats the passes that depend on chromatic values.
func reconcile(anchor, companion Palette, mode Mode, lv Levels, strength float64, tun *Tuning) Palette {
	enforceParity(anchor, &companion, strength, tun)
	aligned := companion
	visibilityFloor(&companion, lv.Contrast, tun, nil)
	holdHues(&companion, aligned, nil)
	deriveForegrounds(&companion, tun, nil)
	dedupe(&companion, mode, lv, tun, nil)
	return companion
}
