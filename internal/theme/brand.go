package theme

import (
	"math"

	"github.com/AvengeMedia/dankpalette/internal/contrast"
	"github.com/AvengeMedia/dankpalette/internal/oklch"
	"github.com/AvengeMedia/dankpalette/internal/prng"
)

const (
	brandCandidates   = 8
	candidateSpreadLo = 0.7
	candidateSpreadK  = 0.06
	candidateJitterL  = 0.03
	candidateJitterC  = 0.006

	scoreContrastWeight = 2.0
	scoreSpacingWeight  = 10.0
	scoreChromaBonus    = 1.0
	bonusChromaMin      = 0.10
	bonusChromaMax      = 0.20

	goodHue       = 140.0
	badHue        = 0.0
	warnHue       = 60.0
	goodHueBand   = 40.0
	badHueBand    = 32.0
	statusChromaK = 0.14

	brandLMin = 0.2
	brandLMax = 0.9

	ringChromaScale = 1.05
)

// buildBrand fills primary, secondary, accent, the status colors and ring.
// Brand colors are chosen greedily so each new one keeps its distance from
// the ones already picked and from the background.
func buildBrand(p *Palette, mode Mode, lv Levels, tun *Tuning, hues [roleCount]float64, rng *prng.Rand) {
	bt := tun.Brand[mode]
	nsat := lv.normalizedSaturation()
	baseC := bt.ChromaBase + nsat*bt.ChromaRange
	baseL := bt.BaseL + float64(lv.Brightness)*bt.BrightnessStep

	roles := []struct {
		tok Token
		hue float64
		l   float64
	}{
		{Primary, hues[rolePrimary], baseL},
		{Secondary, hues[roleSecondary], baseL + bt.SecondaryOffset},
		{Accent, hues[roleAccent], baseL + bt.AccentOffset},
	}

	chosen := make([]oklch.Color, 0, len(roles))
	for _, role := range roles {
		best := pickBrand(p[Bg], role.hue, role.l, baseC, chosen, rng)
		p[role.tok] = best
		chosen = append(chosen, best)
	}

	goodH, badH := statusHues(hues[roleGood], hues[roleBad])
	statusC := bt.StatusChromaBase + nsat*statusChromaK
	statusL := bt.StatusL + float64(lv.Brightness)*bt.BrightnessStep
	warnL := bt.WarnL + float64(lv.Brightness)*bt.BrightnessStep

	p[Good] = oklch.Snap(oklch.Color{L: clamp(statusL, brandLMin, brandLMax), C: statusC, H: goodH})
	p[Bad] = oklch.Snap(oklch.Color{L: clamp(statusL, brandLMin, brandLMax), C: statusC, H: badH})
	p[Warn] = oklch.Snap(oklch.Color{L: clamp(warnL, brandLMin, brandLMax+0.04), C: statusC, H: warnHue})
	p[Ring] = ringFrom(p[Primary], bt.RingOffset)
}

func pickBrand(bg oklch.Color, hue, l, baseC float64, chosen []oklch.Color, rng *prng.Rand) oklch.Color {
	var best oklch.Color
	bestScore := math.Inf(-1)
	for k := 0; k < brandCandidates; k++ {
		c := baseC*(candidateSpreadLo+candidateSpreadK*float64(k)) + rng.Range(-candidateJitterC, candidateJitterC)
		cl := clamp(l+rng.Range(-candidateJitterL, candidateJitterL), brandLMin, brandLMax)
		cand := oklch.Snap(oklch.Color{L: cl, C: math.Max(0, c), H: hue})

		score := scoreContrastWeight * contrast.Ratio(cand, bg)
		for _, prev := range chosen {
			score += scoreSpacingWeight * oklch.DeltaE(cand, prev)
		}
		if cand.C >= bonusChromaMin && cand.C <= bonusChromaMax {
			score += scoreChromaBonus
		}
		if score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}

// statusHues swaps the candidates when the "bad" one sits nearer green, then
// pins each into its band around the canonical hue.
func statusHues(good, bad float64) (float64, float64) {
	straight := oklch.HueDistance(good, goodHue) + oklch.HueDistance(bad, badHue)
	swapped := oklch.HueDistance(bad, goodHue) + oklch.HueDistance(good, badHue)
	if swapped < straight {
		good, bad = bad, good
	}
	return clampHueAround(good, goodHue, goodHueBand), clampHueAround(bad, badHue, badHueBand)
}

func clampHueAround(h, center, band float64) float64 {
	d := oklch.HueDelta(center, h)
	return oklch.NormalizeHue(center + clamp(d, -band, band))
}

func ringFrom(primary oklch.Color, offset float64) oklch.Color {
	return oklch.Snap(oklch.Color{
		L: clamp(primary.L+offset, brandLMin, brandLMax+0.05),
		C: primary.C * ringChromaScale,
		H: primary.H,
	})
}

// deriveForegrounds recomputes every on-color slot from its background.
// textOnColor reads over primary but carries the text tint rather than the
// primary hue.
func deriveForegrounds(p *Palette, tun *Tuning, locked *[TokenCount]bool) {
	for _, fg := range foregroundOrder {
		if locked != nil && locked[fg] {
			continue
		}
		p[fg] = foregroundFor(p, fg, tun.ForegroundMin)
	}
}

func foregroundFor(p *Palette, fg Token, target float64) oklch.Color {
	bg := p[foregroundPairs[fg]]
	if fg == TextOnColor {
		return contrast.SelectForegroundTinted(bg, target, p[Text].H, p[Text].C)
	}
	return contrast.SelectForeground(bg, target)
}
