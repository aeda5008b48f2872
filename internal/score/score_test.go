package score

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankpalette/internal/theme"
)

func generated(t *testing.T) theme.DualTheme {
	t.Helper()
	return theme.Generate(theme.Options{Mode: theme.Triadic, Seed: "score", SeedColor: "#3a5cb8"})
}

func hasCode(r Result, code string) bool {
	for _, i := range r.Issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

func TestEvaluateGeneratedHasNoCriticalIssues(t *testing.T) {
	d := generated(t)
	for _, m := range []theme.Mode{theme.Light, theme.Dark} {
		r := Evaluate(d.Side(m), DefaultWeights())
		assert.Zero(t, r.Critical(), "%s: %v", m, r.Issues)
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestEvaluateHardChecks(t *testing.T) {
	base := generated(t).Light

	tests := []struct {
		name     string
		mutate   func(*theme.Tokens)
		code     string
		severity Severity
	}{
		{"text on bg", func(tk *theme.Tokens) { tk[theme.Text] = tk[theme.Bg] }, "text-on-bg", Critical},
		{"text on card", func(tk *theme.Tokens) { tk[theme.Text] = tk[theme.Card] }, "text-on-card", Critical},
		{"invalid brand", func(tk *theme.Tokens) { tk[theme.Warn] = "nope" }, "invalid-warn", Major},
		{"primary near bad", func(tk *theme.Tokens) { tk[theme.Bad] = tk[theme.Primary] }, "primary-near-bad", Major},
		{"primary near accent", func(tk *theme.Tokens) { tk[theme.Accent] = tk[theme.Primary] }, "primary-near-accent", Major},
		{"flat surfaces", func(tk *theme.Tokens) { tk[theme.Card] = tk[theme.Bg] }, "surface-separation", Major},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := base
			tt.mutate(&tk)
			r := Evaluate(tk, DefaultWeights())
			require.True(t, r.Rejected())
			assert.True(t, hasCode(r, tt.code), "missing %s in %v", tt.code, r.Issues)
			for _, i := range r.Issues {
				if i.Code == tt.code {
					assert.Equal(t, tt.severity, i.Severity)
				}
			}
		})
	}
}

func TestEvaluateZeroWeightsUseDefaults(t *testing.T) {
	tk := generated(t).Dark
	assert.InDelta(t, Evaluate(tk, DefaultWeights()).Score, Evaluate(tk, Weights{}).Score, 1e-12)
}

func TestEvaluateWeightsSelectComponent(t *testing.T) {
	tk := generated(t).Light
	r := Evaluate(tk, Weights{Harmony: 1})
	assert.InDelta(t, r.Components.Harmony, r.Score, 1e-12)
}

func TestHarmonyScoreFollowsPattern(t *testing.T) {
	d := generated(t)
	p := theme.PaletteFromTokens(d.Light)
	assert.Greater(t, harmonyScore(p), 0.8)

	// Rotate secondary off every pattern.
	p[theme.Secondary].H += 47
	p[theme.Accent].H += 73
	assert.Less(t, harmonyScore(p), 0.8)
}

func TestEvaluateDualPrefixesIssues(t *testing.T) {
	d := generated(t)
	d.Dark[theme.Text] = d.Dark[theme.Bg]

	r := EvaluateDual(d, DefaultWeights())
	assert.True(t, hasCode(r, "dark.text-on-bg"))
	assert.False(t, hasCode(r, "light.text-on-bg"))
}

func TestSelectBestPalette(t *testing.T) {
	good := generated(t).Light
	broken := good
	broken[theme.Text] = broken[theme.Bg]
	worse := broken
	worse[theme.Warn] = ""

	require.False(t, Evaluate(good, DefaultWeights()).Rejected())

	idx, r := SelectBestPalette([]theme.Tokens{broken, good, worse}, DefaultWeights())
	assert.Equal(t, 1, idx)
	assert.False(t, r.Rejected())

	idx, r = SelectBestPalette([]theme.Tokens{worse, broken}, DefaultWeights())
	assert.Equal(t, 1, idx, "least bad wins when all fail")
	assert.True(t, r.Rejected())

	idx, _ = SelectBestPalette(nil, DefaultWeights())
	assert.Equal(t, -1, idx)
}

func TestResultBetter(t *testing.T) {
	crit := Result{Issues: []Issue{{Severity: Critical}}, Score: 0.9}
	major := Result{Issues: []Issue{{Severity: Major}, {Severity: Major}}, Score: 0.1}
	clean := Result{Score: 0.2}
	cleaner := Result{Score: 0.3}

	assert.True(t, major.Better(crit))
	assert.True(t, clean.Better(major))
	assert.True(t, cleaner.Better(clean))
	assert.False(t, clean.Better(clean))
}

func TestBestOfSeeds(t *testing.T) {
	seeds := make([]string, 6)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("batch-%d", i)
	}
	base := theme.Options{Mode: theme.Analogous}

	best, all, ok := BestOfSeeds(base, seeds, DefaultWeights(), 3)
	require.True(t, ok)
	require.Len(t, all, len(seeds))

	for i, c := range all {
		assert.Equal(t, seeds[i], c.Theme.Seed, "results keep seed order")
		assert.False(t, c.Result.Better(best.Result), "seed %s beats the pick", seeds[i])
	}

	again, _, _ := BestOfSeeds(base, seeds, DefaultWeights(), 1)
	assert.Equal(t, best.Theme, again.Theme, "worker count must not change the pick")

	opts := base
	opts.Seed = best.Theme.Seed
	assert.Equal(t, theme.Generate(opts), best.Theme)
}

func TestBestOfSeedsEmpty(t *testing.T) {
	_, all, ok := BestOfSeeds(theme.Options{}, nil, DefaultWeights(), 0)
	assert.False(t, ok)
	assert.Nil(t, all)
}
