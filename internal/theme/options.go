package theme

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

const (
	MinLevel = -5
	MaxLevel = 5

	defaultSeed = "dankpalette"
)

// Levels are the three adjustment axes, each in [-5, 5].
type Levels struct {
	Saturation int `json:"saturation"`
	Contrast   int `json:"contrast"`
	Brightness int `json:"brightness"`
}

// Clamped pulls every axis into range.
func (l Levels) Clamped() Levels {
	return Levels{
		Saturation: clamp(l.Saturation, MinLevel, MaxLevel),
		Contrast:   clamp(l.Contrast, MinLevel, MaxLevel),
		Brightness: clamp(l.Brightness, MinLevel, MaxLevel),
	}
}

// normalizedSaturation maps saturation onto [0, 1].
func (l Levels) normalizedSaturation() float64 {
	return float64(l.Saturation-MinLevel) / float64(MaxLevel-MinLevel)
}

// splitDelta is the summed per-axis distance between two level sets.
func splitDelta(a, b Levels) int {
	return abs(a.Saturation-b.Saturation) + abs(a.Contrast-b.Contrast) + abs(a.Brightness-b.Brightness)
}

// Side names which half of a dual theme an image import pins.
type Side int

const (
	SideAuto Side = iota
	SideLight
	SideDark
)

// ParseSide accepts "light", "dark" or anything else for auto.
func ParseSide(s string) Side {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return SideLight
	case "dark":
		return SideDark
	default:
		return SideAuto
	}
}

// Options configure one generation call.
//
// Mode defaults to analogous for unknown values. Seed falls back to the
// normalized SeedColor, then to a fixed string. Dark nil means the dark side
// uses the Light levels. Override must hold 5 or 10 hex strings, otherwise
// it is ignored; empty strings leave a slot unset. ImportSide only matters
// for a 10-slot override. Tuning nil selects DefaultTuning.
type Options struct {
	Mode       HarmonyMode
	Seed       string
	SeedColor  string
	Light      Levels
	Dark       *Levels
	DarkFirst  bool
	Override   []string
	ImportSide Side
	Tuning     *Tuning
}

// resolved is Options after defaulting and validation.
type resolved struct {
	mode       HarmonyMode
	seed       string
	seedColor  *oklch.Color
	levels     [2]Levels
	darkFirst  bool
	override   []*oklch.Color
	pinned     bool
	importSide Mode
	tuning     Tuning
}

func (o Options) resolve() resolved {
	r := resolved{
		mode:      ParseHarmonyMode(string(o.Mode)),
		darkFirst: o.DarkFirst,
		tuning:    DefaultTuning(),
	}
	if o.Tuning != nil {
		r.tuning = *o.Tuning
	}

	if c, ok := oklch.ParseHex(o.SeedColor); ok {
		r.seedColor = &c
	} else if strings.TrimSpace(o.SeedColor) != "" {
		debugf("seed color %q is not a hex color, using generated hue", o.SeedColor)
	}

	r.seed = strings.TrimSpace(o.Seed)
	if r.seed == "" {
		if norm, ok := oklch.NormalizeHex(o.SeedColor); ok {
			r.seed = norm
		} else {
			r.seed = defaultSeed
		}
	}

	r.levels[Light] = o.Light.Clamped()
	r.levels[Dark] = r.levels[Light]
	if o.Dark != nil {
		r.levels[Dark] = o.Dark.Clamped()
	}

	switch len(o.Override) {
	case 0:
	case 5, 10:
		r.override = make([]*oklch.Color, len(o.Override))
		for i, h := range o.Override {
			if c, ok := oklch.ParseHex(h); ok {
				r.override[i] = &c
			}
		}
		r.pinned = len(o.Override) == 10
	default:
		debugf("ignoring override palette of length %d", len(o.Override))
	}

	switch o.ImportSide {
	case SideLight:
		r.importSide = Light
	case SideDark:
		r.importSide = Dark
	default:
		if o.DarkFirst {
			r.importSide = Dark
		} else {
			r.importSide = Light
		}
	}
	return r
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
