package score

import (
	"fmt"
	"math"

	"github.com/AvengeMedia/dankpalette/internal/contrast"
	"github.com/AvengeMedia/dankpalette/internal/oklch"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

const (
	textMinRatio     = 4.5
	brandMinDeltaE   = 0.12
	surfaceMinDeltaL = 0.03

	// Soft score saturation points.
	textHeadroomFull  = 12.0
	mutedMinRatio     = 3.0
	mutedHeadroomFull = 7.0
	harmonyTolerance  = 60.0
	chromaSpreadFull  = 0.1
	statusDeltaEFull  = 0.15
	idealPrimaryC     = 0.14
	stableHueChroma   = 0.02
)

// Severity ranks a hard rejection.
type Severity int

const (
	Major Severity = iota
	Critical
)

func (s Severity) String() string {
	if s == Critical {
		return "critical"
	}
	return "major"
}

// Issue is one failed hard check.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Code, i.Message)
}

// Weights balances the soft score components.
type Weights struct {
	Contrast      float64 `mapstructure:"contrast" json:"contrast"`
	Harmony       float64 `mapstructure:"harmony" json:"harmony"`
	ChromaBalance float64 `mapstructure:"chroma_balance" json:"chromaBalance"`
	Usability     float64 `mapstructure:"usability" json:"usability"`
	Aesthetic     float64 `mapstructure:"aesthetic" json:"aesthetic"`
}

func DefaultWeights() Weights {
	return Weights{Contrast: 0.3, Harmony: 0.2, ChromaBalance: 0.15, Usability: 0.2, Aesthetic: 0.15}
}

func (w Weights) sum() float64 {
	return w.Contrast + w.Harmony + w.ChromaBalance + w.Usability + w.Aesthetic
}

// Components holds the individual soft scores, each in [0, 1].
type Components struct {
	Contrast      float64 `json:"contrast"`
	Harmony       float64 `json:"harmony"`
	ChromaBalance float64 `json:"chromaBalance"`
	Usability     float64 `json:"usability"`
	Aesthetic     float64 `json:"aesthetic"`
}

// Result is the outcome of evaluating one palette.
type Result struct {
	Issues     []Issue    `json:"issues"`
	Components Components `json:"components"`
	Score      float64    `json:"score"`
}

// Rejected reports whether any hard check failed.
func (r Result) Rejected() bool { return len(r.Issues) > 0 }

func (r Result) count(s Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

// Critical returns the number of critical issues.
func (r Result) Critical() int { return r.count(Critical) }

// Major returns the number of major issues.
func (r Result) Major() int { return r.count(Major) }

// Better orders results: fewer critical issues, then fewer major ones, then
// the higher soft score.
func (r Result) Better(o Result) bool {
	if rc, oc := r.Critical(), o.Critical(); rc != oc {
		return rc < oc
	}
	if rm, om := r.Major(), o.Major(); rm != om {
		return rm < om
	}
	return r.Score > o.Score
}

// Evaluate runs the hard checks and the weighted soft score over one side
// of a theme. Zero weights fall back to DefaultWeights.
func Evaluate(t theme.Tokens, w Weights) Result {
	if w.sum() <= 0 {
		w = DefaultWeights()
	}
	p := theme.PaletteFromTokens(t)

	res := Result{Issues: hardChecks(t, p)}
	res.Components = Components{
		Contrast:      contrastScore(p),
		Harmony:       harmonyScore(p),
		ChromaBalance: chromaBalanceScore(p),
		Usability:     usabilityScore(p),
		Aesthetic:     aestheticScore(p),
	}
	c := res.Components
	res.Score = (w.Contrast*c.Contrast + w.Harmony*c.Harmony + w.ChromaBalance*c.ChromaBalance +
		w.Usability*c.Usability + w.Aesthetic*c.Aesthetic) / w.sum()
	return res
}

// EvaluateDual scores both sides. Issues are prefixed with the mode and the
// score is the mean of the two sides.
func EvaluateDual(d theme.DualTheme, w Weights) Result {
	var out Result
	var comps [2]Components
	for _, m := range []theme.Mode{theme.Light, theme.Dark} {
		r := Evaluate(d.Side(m), w)
		for _, i := range r.Issues {
			i.Code = m.String() + "." + i.Code
			out.Issues = append(out.Issues, i)
		}
		comps[m] = r.Components
		out.Score += r.Score / 2
	}
	out.Components = Components{
		Contrast:      (comps[0].Contrast + comps[1].Contrast) / 2,
		Harmony:       (comps[0].Harmony + comps[1].Harmony) / 2,
		ChromaBalance: (comps[0].ChromaBalance + comps[1].ChromaBalance) / 2,
		Usability:     (comps[0].Usability + comps[1].Usability) / 2,
		Aesthetic:     (comps[0].Aesthetic + comps[1].Aesthetic) / 2,
	}
	return out
}

// SelectBestPalette returns the index of the highest scoring candidate with
// no hard rejection, or the least bad one when every candidate fails. It
// returns -1 for an empty slice.
func SelectBestPalette(candidates []theme.Tokens, w Weights) (int, Result) {
	results := make([]Result, len(candidates))
	for i, t := range candidates {
		results[i] = Evaluate(t, w)
	}
	return pick(results)
}

func pick(results []Result) (int, Result) {
	best := -1
	for i, r := range results {
		if best < 0 || r.Better(results[best]) {
			best = i
		}
	}
	if best < 0 {
		return -1, Result{}
	}
	return best, results[best]
}

func hardChecks(t theme.Tokens, p theme.Palette) []Issue {
	var issues []Issue
	add := func(s Severity, code, format string, args ...any) {
		issues = append(issues, Issue{Severity: s, Code: code, Message: fmt.Sprintf(format, args...)})
	}

	for _, surface := range []theme.Token{theme.Bg, theme.Card} {
		if r := contrast.Ratio(p[theme.Text], p[surface]); r < textMinRatio {
			add(Critical, "text-on-"+surface.String(), "contrast %.2f below %.1f", r, textMinRatio)
		}
	}

	for _, tok := range []theme.Token{theme.Primary, theme.Secondary, theme.Accent, theme.Good, theme.Warn, theme.Bad} {
		c, ok := oklch.ParseHex(t[tok])
		if !ok {
			add(Major, "invalid-"+tok.String(), "%q is not a hex color", t[tok])
			continue
		}
		if !c.InGamut() {
			add(Major, "gamut-"+tok.String(), "%s is outside sRGB", t[tok])
		}
	}

	for _, other := range []theme.Token{theme.Bad, theme.Accent} {
		if d := oklch.DeltaE(p[theme.Primary], p[other]); d < brandMinDeltaE {
			add(Major, "primary-near-"+other.String(), "deltaE %.3f below %.2f", d, brandMinDeltaE)
		}
	}

	if d := math.Abs(p[theme.Bg].L - p[theme.Card].L); d < surfaceMinDeltaL {
		add(Major, "surface-separation", "bg/card lightness gap %.3f below %.2f", d, surfaceMinDeltaL)
	}
	return issues
}

func unit(v float64) float64 { return math.Max(0, math.Min(1, v)) }

// contrastScore rewards headroom above the minimum text ratios and on-color
// pairs that clear AA.
func contrastScore(p theme.Palette) float64 {
	text, _ := contrast.WorstRatio(p[theme.Text], p[theme.Bg], p[theme.Card], p[theme.Card2])
	muted, _ := contrast.WorstRatio(p[theme.TextMuted], p[theme.Bg], p[theme.Card], p[theme.Card2])
	textScore := unit((text - textMinRatio) / (textHeadroomFull - textMinRatio))
	mutedScore := unit((muted - mutedMinRatio) / (mutedHeadroomFull - mutedMinRatio))
	return 0.5*textScore + 0.3*mutedScore + 0.2*foregroundPassRate(p)
}

func foregroundPassRate(p theme.Palette) float64 {
	var pass, total float64
	for _, fg := range theme.AllTokens() {
		bg, ok := theme.ForegroundPair(fg)
		if !ok {
			continue
		}
		total++
		if contrast.Ratio(p[fg], p[bg]) >= textMinRatio {
			pass++
		}
	}
	if total == 0 {
		return 1
	}
	return pass / total
}

// harmonyScore measures how closely the secondary and accent hue offsets
// follow the nearest harmony pattern.
func harmonyScore(p theme.Palette) float64 {
	primary := p[theme.Primary]
	if primary.C < stableHueChroma {
		return 1
	}
	sec := oklch.HueDelta(primary.H, p[theme.Secondary].H)
	acc := oklch.HueDelta(primary.H, p[theme.Accent].H)

	best := math.Inf(1)
	for _, m := range theme.HarmonyModes() {
		off, ok := m.Offsets()
		if !ok {
			continue
		}
		err := oklch.HueDistance(sec, off[1]) + oklch.HueDistance(acc, off[2])
		best = math.Min(best, err)
	}
	return unit(1 - best/harmonyTolerance)
}

// chromaBalanceScore prefers low chroma variance across the brand colors.
func chromaBalanceScore(p theme.Palette) float64 {
	cs := []float64{p[theme.Primary].C, p[theme.Secondary].C, p[theme.Accent].C}
	var mean float64
	for _, c := range cs {
		mean += c
	}
	mean /= float64(len(cs))
	var variance float64
	for _, c := range cs {
		variance += (c - mean) * (c - mean)
	}
	sd := math.Sqrt(variance / float64(len(cs)))
	return unit(1 - sd/chromaSpreadFull)
}

// usabilityScore checks that status colors read as distinct from each other
// and from the primary.
func usabilityScore(p theme.Palette) float64 {
	goodBad := unit(oklch.DeltaE(p[theme.Good], p[theme.Bad]) / statusDeltaEFull)
	warnBad := unit(oklch.DeltaE(p[theme.Warn], p[theme.Bad]) / statusDeltaEFull)
	primaryBad := unit(oklch.DeltaE(p[theme.Primary], p[theme.Bad]) / statusDeltaEFull)
	return 0.4*goodBad + 0.3*warnBad + 0.3*primaryBad
}

// aestheticScore prefers backgrounds near a lightness extreme and a
// moderate primary chroma.
func aestheticScore(p theme.Palette) float64 {
	extreme := unit(math.Abs(p[theme.Bg].L-0.5) * 2)
	chroma := unit(1 - math.Abs(p[theme.Primary].C-idealPrimaryC)/idealPrimaryC)
	return 0.5*extreme + 0.5*chroma
}
