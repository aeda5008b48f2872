package theme

import (
	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/prng"
)

// Generate synthesizes a light and a dark theme. It never fails: malformed
// inputs fall back to defaults and every search is bounded. Identical
// options always produce identical output, and calls share no state.
func Generate(opts Options) DualTheme {
	r := opts.resolve()
	tun := &r.tuning
	rng := prng.New(r.seed)

	base := baseHue(r.seedColor, r.override, &rng)
	style, hues := roleHues(r.mode, base, &rng, r.override)
	tint := coolHue
	if rng.Bool() {
		tint = warmHue
	}

	anchor := Light
	if r.darkFirst {
		anchor = Dark
	}
	if r.pinned {
		anchor = r.importSide
	}
	other := anchor.Other()
	debugf("generating seed=%q mode=%s style=%s base=%.1f anchor=%s", r.seed, r.mode, style, base, anchor)

	native := buildNative(anchor, r.levels[anchor], tun, hues, tint, &rng)
	companion := deriveMode(native, anchor, tun)

	anchored := adjust(native, anchor, r.levels[anchor], tun, nil)
	if r.pinned {
		anchored = applyImport(anchored, anchor, r.levels[anchor], r.override, tun)
		companion = deriveMode(anchored, anchor, tun)
	}

	adjusted := adjust(companion, other, r.levels[other], tun, nil)
	strength := parityStrength(r.levels[Light], r.levels[Dark], tun)
	adjusted = reconcile(anchored, adjusted, other, r.levels[other], strength, tun)

	out := DualTheme{Seed: r.seed, Mode: reportedMode(r.mode, style)}
	if anchor == Light {
		out.Light, out.Dark = anchored.Tokens(), adjusted.Tokens()
	} else {
		out.Light, out.Dark = adjusted.Tokens(), anchored.Tokens()
	}
	return out
}

// reportedMode names the concrete style a random request resolved to.
func reportedMode(requested, style HarmonyMode) HarmonyMode {
	if requested == Random {
		return style
	}
	return requested
}

func debugf(format string, v ...interface{}) {
	log.Debugf(format, v...)
}
