package theme

import (
	"math"

	"github.com/AvengeMedia/dankpalette/internal/contrast"
	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

const (
	brightnessGammaK = 0.28
	brightnessLift   = 0.14
	brightLowClipK   = 0.02
	darkHighClipK    = 0.015

	contrastFactorK = 0.35
	chromaticMinL   = 0.12
	chromaticMaxL   = 0.92

	saturationK     = 0.2
	saturationMin   = 0.01
	lowContrastSatK = 0.1

	foregroundLowFloor = 1.1
	foregroundLowScale = 0.7

	// guardrailRounds bounds the re-targeting against the worst surface.
	guardrailRounds = 6

	// holdTolerance is the hue drift, in degrees, holdHues lets through.
	holdTolerance = 1.0
)

// adjust runs the per-mode pipeline: brightness, contrast and saturation
// transforms followed by the repair passes. locked slots are never moved by
// the repair passes.
func adjust(p Palette, mode Mode, lv Levels, tun *Tuning, locked *[TokenCount]bool) Palette {
	ref := p
	brightnessPass(&p, lv.Brightness)
	contrastPass(&p, mode, lv.Contrast, tun)
	saturationPass(&p, lv.Saturation, lv.Contrast, tun)
	repairForegrounds(&p, lv.Contrast, tun, locked)
	enforceSeparation(&p, mode, tun, locked)
	readabilityGuardrails(&p, mode, tun, locked)
	visibilityFloor(&p, lv.Contrast, tun, locked)
	holdHues(&p, ref, locked)
	deriveForegrounds(&p, tun, locked)
	dedupe(&p, mode, lv, tun, locked)
	return p
}

// holdHues puts chromatic slots back on the hue they had in ref. The
// lightness walks re-read every candidate from hex, and each read can move
// the hue slightly; without this the moves add up.
func holdHues(p *Palette, ref Palette, locked *[TokenCount]bool) {
	for _, tok := range chromaticTokens {
		if isLocked(locked, tok) {
			continue
		}
		if oklch.HueDistance(p[tok].H, ref[tok].H) <= holdTolerance {
			continue
		}
		p[tok] = oklch.SnapHue(p[tok].WithH(ref[tok].H))
	}
}

// brightnessPass applies L' = L^gamma + lift with clip bounds that close in
// on the extreme the level pushes toward.
func brightnessPass(p *Palette, level int) {
	b := float64(level)
	gamma := math.Pow(2, -b*brightnessGammaK)
	lift := b / MaxLevel * brightnessLift

	lo, hi := 0.0, 1.0
	if level > 0 {
		lo = b * brightLowClipK
	} else if level < 0 {
		hi = 1 + b*darkHighClipK
	}
	for i := range p {
		p[i].L = clamp(math.Pow(p[i].L, gamma)+lift, lo, hi)
	}
}

// contrastPass scales every lightness away from the palette midpoint.
func contrastPass(p *Palette, mode Mode, level int, tun *Tuning) {
	var sum float64
	for _, c := range p {
		sum += c.L
	}
	mid := sum / float64(TokenCount)
	factor := math.Pow(2, float64(level)*contrastFactorK)

	for i := range p {
		tok := Token(i)
		l := mid + (p[i].L-mid)*factor
		if isChromatic(tok) {
			l = clamp(l, chromaticMinL, chromaticMaxL)
		} else {
			l = clamp(l, 0, 1)
		}
		if tok == Bg || tok == Card || tok == Card2 {
			l = tun.SurfaceBands[mode].clamp(l)
		}
		p[i].L = l
	}
}

// saturationPass scales chroma, desaturates further when contrast is lowered
// and keeps a small chroma floor.
func saturationPass(p *Palette, satLevel, contrastLevel int, tun *Tuning) {
	factor := math.Max(saturationMin, 1+float64(satLevel)*saturationK)
	if contrastLevel < 0 {
		factor *= 1 + float64(contrastLevel)*lowContrastSatK
	}
	for i := range p {
		p[i].C = math.Max(tun.ChromaFloor, p[i].C*factor)
		p[i] = oklch.Snap(p[i])
	}
}

// foregroundFloor is the ratio below which an on-color slot is re-derived.
// It relaxes, but never to zero, when contrast was deliberately lowered.
func foregroundFloor(contrastLevel int, target float64) float64 {
	if contrastLevel >= 0 {
		return target
	}
	return math.Max(foregroundLowFloor, target*foregroundLowScale)
}

func repairForegrounds(p *Palette, contrastLevel int, tun *Tuning, locked *[TokenCount]bool) {
	floor := foregroundFloor(contrastLevel, tun.ForegroundMin)
	for _, fg := range foregroundOrder {
		if isLocked(locked, fg) {
			continue
		}
		if contrast.Ratio(p[fg], p[foregroundPairs[fg]]) < floor {
			p[fg] = foregroundFor(p, fg, tun.ForegroundMin)
		}
	}
}

// readabilityGuardrails makes text and textMuted clear their minimum against
// the worst of the three surfaces.
func readabilityGuardrails(p *Palette, mode Mode, tun *Tuning, locked *[TokenCount]bool) {
	g := tun.Guardrails[mode]
	for _, item := range []struct {
		tok  Token
		want float64
	}{{Text, g.Text}, {TextMuted, g.TextMuted}} {
		if isLocked(locked, item.tok) {
			continue
		}
		c, ok := satisfySurfaces(p[item.tok], p.surfaces(), item.want)
		if !ok {
			c = achromaticFallback(p.surfaces())
		}
		p[item.tok] = c
	}
}

// visibilityFloor lifts chromatic slots off the surfaces. Best effort: the
// closest candidate is kept when the minimum cannot be met.
func visibilityFloor(p *Palette, contrastLevel int, tun *Tuning, locked *[TokenCount]bool) {
	for _, tok := range chromaticTokens {
		if isLocked(locked, tok) {
			continue
		}
		want := visibilityMin(tok, contrastLevel, tun)
		c, _ := satisfySurfaces(p[tok], p.surfaces(), want)
		p[tok] = c
	}
}

func visibilityMin(tok Token, contrastLevel int, tun *Tuning) float64 {
	v := tun.Visibility
	want := v.Status
	switch tok {
	case Primary, Secondary, Accent:
		want = v.Brand
	case Ring:
		want = v.Ring
	}
	if contrastLevel < v.LoosenFrom {
		want *= 1 + float64(contrastLevel-v.LoosenFrom)*v.Loosen
	}
	return want
}

// satisfySurfaces re-targets c against whichever surface is currently worst
// until all of them clear want or the round budget runs out. The returned
// color is the best seen.
func satisfySurfaces(c oklch.Color, surfaces []oklch.Color, want float64) (oklch.Color, bool) {
	best := c
	bestRatio, _ := contrast.WorstRatio(c, surfaces...)
	for i := 0; i < guardrailRounds; i++ {
		ratio, idx := contrast.WorstRatio(c, surfaces...)
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
		if ratio >= want {
			return c, true
		}
		c = contrast.AdjustForContrast(c, surfaces[idx], want)
	}
	if ratio, _ := contrast.WorstRatio(c, surfaces...); ratio > bestRatio {
		best, bestRatio = c, ratio
	}
	return best, bestRatio >= want
}

func achromaticFallback(surfaces []oklch.Color) oklch.Color {
	black, _ := contrast.WorstRatio(oklch.Black, surfaces...)
	white, _ := contrast.WorstRatio(oklch.White, surfaces...)
	if white > black {
		return oklch.White
	}
	return oklch.Black
}

func isLocked(locked *[TokenCount]bool, tok Token) bool {
	return locked != nil && locked[tok]
}
