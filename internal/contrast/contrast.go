// Package contrast implements WCAG relative luminance and contrast ratio on
// top of the OKLCH kernel, plus the bounded searches that move a color's
// lightness until a ratio target is met.
package contrast

import (
	"math"

	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

const (
	// SelectStep and SelectMaxSteps bound the foreground walk.
	SelectStep     = 0.02
	SelectMaxSteps = 25

	// AdjustStep and AdjustMaxSteps bound each direction of AdjustForContrast.
	AdjustStep     = 0.02
	AdjustMaxSteps = 48

	lightStartL = 0.88
	darkStartL  = 0.22
	minTint     = 0.035
	maxTint     = 0.09
)

// Luminance is WCAG relative luminance of the color's sRGB form.
func Luminance(c oklch.Color) float64 {
	col := oklch.Clamp(c).RGB().Clamped()
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio is (L_lighter + 0.05) / (L_darker + 0.05).
func Ratio(fg, bg oklch.Color) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// WorstRatio returns the lowest ratio of fg against the given surfaces and
// the index of that surface. With no surfaces it returns +Inf and -1.
func WorstRatio(fg oklch.Color, surfaces ...oklch.Color) (float64, int) {
	worst, idx := math.Inf(1), -1
	for i, s := range surfaces {
		if r := Ratio(fg, s); r < worst {
			worst, idx = r, i
		}
	}
	return worst, idx
}

// PrefersLight reports whether white reads better than black on bg.
func PrefersLight(bg oklch.Color) bool {
	return Ratio(oklch.White, bg) >= Ratio(oklch.Black, bg)
}

// SelectForeground picks a text color for bg, tinted with bg's hue.
func SelectForeground(bg oklch.Color, target float64) oklch.Color {
	return SelectForegroundTinted(bg, target, bg.H, bg.C)
}

// SelectForegroundTinted walks lightness away from a tinted starting point
// until target is met, and only then falls back to black or white.
func SelectForegroundTinted(bg oklch.Color, target, hue, chroma float64) oklch.Color {
	light := PrefersLight(bg)
	l, step := darkStartL, -SelectStep
	if light {
		l, step = lightStartL, SelectStep
	}
	tint := math.Max(minTint, math.Min(maxTint, chroma))

	for i := 0; i < SelectMaxSteps; i++ {
		cand := oklch.Snap(oklch.Color{L: l, C: tint, H: hue})
		if Ratio(cand, bg) >= target {
			return cand
		}
		l = math.Max(0, math.Min(1, l+step))
	}

	if light {
		return bestOf(bg, oklch.White, oklch.Black)
	}
	return bestOf(bg, oklch.Black, oklch.White)
}

func bestOf(bg oklch.Color, preferred, other oklch.Color) oklch.Color {
	if Ratio(other, bg) > Ratio(preferred, bg) {
		return other
	}
	return preferred
}

// AdjustForContrast searches lightness in both directions from fg and
// returns the passing candidate with the smallest displacement. When
// neither direction passes, the side with the higher ratio wins.
func AdjustForContrast(fg, bg oklch.Color, minRatio float64) oklch.Color {
	if Ratio(fg, bg) >= minRatio {
		return fg
	}

	type probe struct {
		color oklch.Color
		ratio float64
		moved float64
		ok    bool
	}
	search := func(dir float64) probe {
		last := probe{color: fg, ratio: Ratio(fg, bg)}
		for i := 1; i <= AdjustMaxSteps; i++ {
			l := fg.L + dir*float64(i)*AdjustStep
			if l < 0 || l > 1 {
				l = math.Max(0, math.Min(1, l))
			}
			cand := oklch.Snap(fg.WithL(l))
			r := Ratio(cand, bg)
			last = probe{color: cand, ratio: r, moved: math.Abs(l - fg.L)}
			if r >= minRatio {
				last.ok = true
				return last
			}
			if l == 0 || l == 1 {
				break
			}
		}
		return last
	}

	up, down := search(1), search(-1)
	switch {
	case up.ok && down.ok:
		if down.moved < up.moved {
			return down.color
		}
		return up.color
	case up.ok:
		return up.color
	case down.ok:
		return down.color
	case down.ratio > up.ratio:
		return down.color
	default:
		return up.color
	}
}
