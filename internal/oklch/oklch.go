// Package oklch is the color-space kernel: hex parsing, sRGB <-> OKLCH
// conversion, gamut clamping and perceptual distance. Every color handed
// out by Snap or ParseHex is exactly representable as an sRGB hex string.
package oklch

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Gamut clamp bounds. The round-trip tolerances decide when a reduced chroma
// is considered displayable.
const (
	MaxClampIterations = 12
	ClampTolerance     = 0.001

	roundTripL   = 0.01
	roundTripC   = 0.02
	roundTripH   = 5.0
	stableChroma = 0.02

	hueSnapL    = 0.006
	hueSnapC    = 0.01
	hueSnapMinC = 0.004
	// Below hueSnapWideC one hex step turns the hue by tens of degrees, so
	// the neighbourhood is widened.
	hueSnapWideC = 0.03

	gamutEpsilon    = 1e-6
	maxChromaSearch = 0.4
	maxChromaSteps  = 24
)

// Color is a point in OKLCH. L is 0..1, C is 0..~0.4, H is degrees in [0, 360).
type Color struct {
	L, C, H float64
}

var (
	Black = Color{L: 0, C: 0, H: 0}
	White = Color{L: 1, C: 0, H: 0}
)

// NormalizeHex returns "#rrggbb" for 3- or 6-digit input with or without a
// leading '#'.
func NormalizeHex(s string) (string, bool) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) != 3 && len(s) != 6 {
		return "", false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9') && !(r >= 'a' && r <= 'f') {
			return "", false
		}
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return "#" + s, true
}

// ParseHex converts a hex string to OKLCH.
func ParseHex(s string) (Color, bool) {
	norm, ok := NormalizeHex(s)
	if !ok {
		return Color{}, false
	}
	col, err := colorful.Hex(norm)
	if err != nil {
		return Color{}, false
	}
	return FromColorful(col), true
}

func FromColorful(col colorful.Color) Color {
	l, c, h := col.OkLch()
	return Color{L: l, C: c, H: NormalizeHue(h)}
}

// RGB converts to sRGB without clamping; channels may fall outside [0, 1].
func (c Color) RGB() colorful.Color {
	return colorful.OkLch(c.L, math.Max(0, c.C), c.H)
}

// Hex clamps into gamut and formats as #rrggbb.
func (c Color) Hex() string {
	return Clamp(c).rawHex()
}

func (c Color) rawHex() string {
	return c.RGB().Clamped().Hex()
}

// Lab returns the Oklab coordinates.
func (c Color) Lab() (l, a, b float64) {
	rad := c.H * math.Pi / 180
	return c.L, c.C * math.Cos(rad), c.C * math.Sin(rad)
}

func (c Color) WithL(l float64) Color  { return Color{L: clamp01(l), C: c.C, H: c.H} }
func (c Color) WithC(ch float64) Color { return Color{L: c.L, C: math.Max(0, ch), H: c.H} }
func (c Color) WithH(h float64) Color  { return Color{L: c.L, C: c.C, H: NormalizeHue(h)} }

// InGamut reports whether the color converts to sRGB without channel clipping.
func (c Color) InGamut() bool {
	rgb := c.RGB()
	for _, v := range []float64{rgb.R, rgb.G, rgb.B} {
		if v < -gamutEpsilon || v > 1+gamutEpsilon || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Clamp reduces chroma by binary search until the color survives a round
// trip through hex within tolerance. Lightness and hue are kept.
func Clamp(c Color) Color {
	c = Color{L: clamp01(c.L), C: math.Max(0, c.C), H: NormalizeHue(c.H)}
	if math.IsNaN(c.C) {
		c.C = 0
	}
	if roundTrips(c) {
		return c
	}

	best := Color{L: c.L, C: 0, H: c.H}
	lo, hi := 0.0, c.C
	for i := 0; i < MaxClampIterations && hi-lo > ClampTolerance; i++ {
		mid := (lo + hi) / 2
		cand := Color{L: c.L, C: mid, H: c.H}
		if roundTrips(cand) {
			lo = mid
			best = cand
		} else {
			hi = mid
		}
	}
	return best
}

func roundTrips(c Color) bool {
	back, ok := ParseHex(c.rawHex())
	if !ok {
		return false
	}
	if math.Abs(back.L-c.L) >= roundTripL || math.Abs(back.C-c.C) >= roundTripC {
		return false
	}
	if c.C > stableChroma && HueDistance(back.H, c.H) >= roundTripH {
		return false
	}
	return true
}

// Snap gamut-clamps and re-reads the color from its hex form so the value
// carried forward is exactly what will be emitted.
func Snap(c Color) Color {
	out, _ := ParseHex(Clamp(c).rawHex())
	return out
}

// SnapHue is Snap for colors whose hue must survive quantization. It
// searches the hex neighbours of the rounded color and keeps the one whose
// hue is closest to c's, among those within hueSnapL and hueSnapC of the
// clamped color. Repeated snaps therefore do not walk the hue.
func SnapHue(c Color) Color {
	want := Clamp(c)
	base := Snap(want)
	if want.C < hueSnapMinC {
		return base
	}

	radius := 1
	if want.C < hueSnapWideC {
		radius = 2
	}
	rgb := want.RGB().Clamped()
	r0, g0, b0 := to8(rgb.R), to8(rgb.G), to8(rgb.B)
	best, bestD := base, HueDistance(base.H, want.H)
	for dr := -radius; dr <= radius; dr++ {
		for dg := -radius; dg <= radius; dg++ {
			for db := -radius; db <= radius; db++ {
				r, g, b := r0+dr, g0+dg, b0+db
				if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
					continue
				}
				cand := FromColorful(colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
				if math.Abs(cand.L-want.L) > hueSnapL || math.Abs(cand.C-want.C) > hueSnapC {
					continue
				}
				if d := HueDistance(cand.H, want.H); d < bestD {
					best, bestD = cand, d
				}
			}
		}
	}
	return best
}

func to8(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// MaxChroma is the largest in-gamut chroma at the given lightness and hue.
func MaxChroma(l, h float64) float64 {
	lo, hi := 0.0, maxChromaSearch
	for i := 0; i < maxChromaSteps; i++ {
		mid := (lo + hi) / 2
		if (Color{L: l, C: mid, H: h}).InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// DeltaE is Euclidean distance in Oklab.
func DeltaE(a, b Color) float64 {
	l1, a1, b1 := a.Lab()
	l2, a2, b2 := b.Lab()
	return math.Sqrt((l1-l2)*(l1-l2) + (a1-a2)*(a1-a2) + (b1-b2)*(b1-b2))
}

func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDelta is the signed shortest rotation from a to b, in (-180, 180].
func HueDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func HueDistance(a, b float64) float64 {
	return math.Abs(HueDelta(a, b))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
