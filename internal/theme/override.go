package theme

import (
	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

// importSlots are the ten directly displayed slots a 10-color override pins,
// in override order.
var importSlots = [10]Token{Bg, Card, Text, TextMuted, TextOnColor, Primary, Secondary, Accent, Good, Bad}

const (
	importCard2Gap  = 0.03
	importBorderGap = 0.12
)

// ImportSlots lists the slots a 10-color override maps onto.
func ImportSlots() []Token { return append([]Token(nil), importSlots[:]...) }

// applyImport pins the supplied slots exactly and re-derives card2, border,
// ring, warn and the on-color slots from the pinned foundation. Slots the
// import leaves blank are re-checked against the pinned surfaces.
func applyImport(p Palette, mode Mode, lv Levels, override []*oklch.Color, tun *Tuning) Palette {
	var locked [TokenCount]bool
	for i, tok := range importSlots {
		if i < len(override) && override[i] != nil {
			p[tok] = *override[i]
			locked[tok] = true
		}
	}

	dir := awayFromSurface(mode)
	sep := tun.Separation

	p[Card2] = oklch.Snap(p[Card].WithL(p[Card].L + dir*importCard2Gap))

	border := p[Bg].L + dir*importBorderGap
	border = pushAway(border, p[Bg].L, sep.BorderBg, dir)
	border = pushAway(border, p[Card].L, sep.BorderCard, dir)
	border = pushAway(border, p[Card2].L, sep.BorderCard2, dir)
	p[Border] = oklch.Snap(oklch.Color{L: border, C: p[Bg].C, H: p[Bg].H})

	p[Ring] = ringFrom(p[Primary], tun.Brand[mode].RingOffset)

	warnL := tun.Brand[mode].WarnL + float64(lv.Brightness)*tun.Brand[mode].BrightnessStep
	p[Warn] = oklch.Snap(oklch.Color{
		L: clamp(warnL, brandLMin, brandLMax+0.04),
		C: (p[Good].C + p[Bad].C) / 2,
		H: warnHue,
	})

	enforceSeparation(&p, mode, tun, &locked)
	readabilityGuardrails(&p, mode, tun, &locked)
	visibilityFloor(&p, lv.Contrast, tun, &locked)
	deriveForegrounds(&p, tun, &locked)

	if !locked[TextOnColor] {
		p[TextOnColor] = p[PrimaryFg]
		locked[TextOnColor] = true
		locked[PrimaryFg] = true
	}

	dedupe(&p, mode, lv, tun, &locked)
	return p
}
