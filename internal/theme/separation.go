package theme

import (
	"github.com/AvengeMedia/dankpalette/internal/contrast"
	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

const (
	separationMargin = 0.002
	nudgeStep        = 0.004
	maxNudges        = 32
)

// dedupePriority decides who keeps a hex when two slots collide; later slots
// are the ones nudged.
var dedupePriority = []Token{
	Bg, Card, Card2, Text, TextMuted,
	Primary, Secondary, Accent, Good, Warn, Bad, Ring, Border,
	PrimaryFg, SecondaryFg, AccentFg, GoodFg, WarnFg, BadFg, TextOnColor,
}

// awayFromSurface is the lightness direction from the background toward the
// text: darker in light mode, lighter in dark mode.
func awayFromSurface(mode Mode) float64 {
	if mode == Dark {
		return 1
	}
	return -1
}

func pushAway(v, ref, gap, dir float64) float64 {
	gap += separationMargin
	if dir < 0 {
		return clamp(min(v, ref-gap), 0, 1)
	}
	return clamp(max(v, ref+gap), 0, 1)
}

// enforceSeparation keeps neighbouring neutrals apart by minimum lightness
// gaps, then removes exact hex collisions.
func enforceSeparation(p *Palette, mode Mode, tun *Tuning, locked *[TokenCount]bool) {
	s := tun.Separation
	dir := awayFromSurface(mode)

	set := func(tok Token, l float64) {
		if isLocked(locked, tok) || l == p[tok].L {
			return
		}
		p[tok] = oklch.Snap(p[tok].WithL(l))
	}

	set(Card, pushAway(p[Card].L, p[Bg].L, s.CardBg, dir))
	set(Card2, pushAway(p[Card2].L, p[Card].L, s.Card2Card, dir))

	border := pushAway(p[Border].L, p[Bg].L, s.BorderBg, dir)
	border = pushAway(border, p[Card].L, s.BorderCard, dir)
	border = pushAway(border, p[Card2].L, s.BorderCard2, dir)
	set(Border, border)

	set(TextMuted, pushAway(p[TextMuted].L, p[Text].L, s.MutedText, -dir))
}

// dedupe nudges lower-priority slots until no two share a hex. Locked slots
// keep their value and may collide with each other. A nudge must not lower
// the slot's contrast requirement below what it already met.
func dedupe(p *Palette, mode Mode, lv Levels, tun *Tuning, locked *[TokenCount]bool) {
	seen := make(map[string]bool, TokenCount)
	for _, tok := range dedupePriority {
		if isLocked(locked, tok) {
			seen[p[tok].Hex()] = true
		}
	}

	for _, tok := range dedupePriority {
		if isLocked(locked, tok) {
			continue
		}
		h := p[tok].Hex()
		if seen[h] {
			p[tok] = nudgeUnique(p[tok], seen, slotCheck(p, tok, mode, lv, tun))
			h = p[tok].Hex()
		}
		seen[h] = true
	}
}

// slotCheck returns an acceptance test for replacement values of tok.
func slotCheck(p *Palette, tok Token, mode Mode, lv Levels, tun *Tuning) func(oklch.Color) bool {
	var metric func(oklch.Color) float64
	var required float64

	switch {
	case tok == Text || tok == TextMuted:
		surfaces := p.surfaces()
		metric = func(c oklch.Color) float64 { r, _ := contrast.WorstRatio(c, surfaces...); return r }
		required = tun.Guardrails[mode].Text
		if tok == TextMuted {
			required = tun.Guardrails[mode].TextMuted
		}
	case isChromatic(tok):
		surfaces := p.surfaces()
		metric = func(c oklch.Color) float64 { r, _ := contrast.WorstRatio(c, surfaces...); return r }
		required = visibilityMin(tok, lv.Contrast, tun)
	default:
		pair, ok := foregroundPairs[tok]
		if !ok {
			return func(oklch.Color) bool { return true }
		}
		bg := p[pair]
		metric = func(c oklch.Color) float64 { return contrast.Ratio(c, bg) }
		required = foregroundFloor(lv.Contrast, tun.ForegroundMin)
	}

	required = min(required, metric(p[tok]))
	return func(c oklch.Color) bool { return metric(c) >= required }
}

// nudgeUnique steps lightness, then chroma, outward from c until it finds a
// free hex that passes accept. Hue is left alone so companion parity holds.
func nudgeUnique(c oklch.Color, taken map[string]bool, accept func(oklch.Color) bool) oklch.Color {
	var fallback *oklch.Color
	for k := 1; k <= maxNudges; k++ {
		d := float64(k) * nudgeStep
		for _, cand := range []oklch.Color{
			c.WithL(c.L + d),
			c.WithL(c.L - d),
			c.WithC(c.C + d),
			c.WithC(c.C - d),
		} {
			s := oklch.SnapHue(cand)
			if taken[s.Hex()] {
				continue
			}
			if accept(s) {
				return s
			}
			if fallback == nil {
				fallback = &s
			}
		}
	}
	if fallback != nil {
		return *fallback
	}
	return c
}
