package contrast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		fg, bg   string
		expected float64
	}{
		{name: "black on white", fg: "#000000", bg: "#ffffff", expected: 21.0},
		{name: "white on black", fg: "#ffffff", bg: "#000000", expected: 21.0},
		{name: "same color", fg: "#808080", bg: "#808080", expected: 1.0},
		{name: "gray on white", fg: "#767676", bg: "#ffffff", expected: 4.54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(mustHex(tt.fg), mustHex(tt.bg))
			if math.Abs(got-tt.expected) > 0.02 {
				t.Errorf("Ratio(%s, %s) = %f, expected %f", tt.fg, tt.bg, got, tt.expected)
			}
		})
	}
}

func TestWorstRatio(t *testing.T) {
	fg := mustHex("#000000")
	r, idx := WorstRatio(fg, mustHex("#ffffff"), mustHex("#808080"), mustHex("#eeeeee"))
	assert.Equal(t, 1, idx)
	assert.InDelta(t, Ratio(fg, mustHex("#808080")), r, 1e-12)

	r, idx = WorstRatio(fg)
	assert.True(t, math.IsInf(r, 1))
	assert.Equal(t, -1, idx)
}

func TestSelectForeground(t *testing.T) {
	backgrounds := []string{"#ffffff", "#000000", "#3a5cb8", "#e8c547", "#808080", "#1a1a1a", "#ff0000", "#00aa55"}
	for _, hex := range backgrounds {
		t.Run(hex, func(t *testing.T) {
			bg := mustHex(hex)
			fg := SelectForeground(bg, 4.5)
			assert.GreaterOrEqual(t, Ratio(fg, bg), 4.5)
		})
	}
}

func TestSelectForegroundPrefersTint(t *testing.T) {
	bg := mustHex("#1e3a8a")
	fg := SelectForeground(bg, 4.5)
	assert.NotEqual(t, "#ffffff", fg.Hex())
	assert.Greater(t, fg.C, 0.01)
	assert.Less(t, oklch.HueDistance(fg.H, bg.H), 10.0)
}

func TestSelectForegroundMidGray(t *testing.T) {
	bg := mustHex("#777777")
	fg := SelectForeground(bg, 4.6)
	assert.GreaterOrEqual(t, Ratio(fg, bg), 4.6)
	assert.Less(t, fg.L, 0.15)
}

func TestSelectForegroundUnreachable(t *testing.T) {
	bg := mustHex("#777777")
	fg := SelectForeground(bg, 30)
	assert.Equal(t, "#000000", fg.Hex())
}

func TestAdjustForContrastAlreadyPasses(t *testing.T) {
	fg := mustHex("#111111")
	bg := mustHex("#ffffff")
	assert.Equal(t, fg, AdjustForContrast(fg, bg, 4.5))
}

func TestAdjustForContrastMovesLightness(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
		min  float64
	}{
		{name: "dark text on light bg", fg: "#9a9a9a", bg: "#f5f5f5", min: 4.5},
		{name: "light text on dark bg", fg: "#505a70", bg: "#151820", min: 5.0},
		{name: "brand on light bg", fg: "#7fa2ff", bg: "#fafafa", min: 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := mustHex(tt.fg)
			bg := mustHex(tt.bg)
			got := AdjustForContrast(fg, bg, tt.min)
			assert.GreaterOrEqual(t, Ratio(got, bg), tt.min)
			if fg.C > 0.03 {
				assert.Less(t, oklch.HueDistance(got.H, fg.H), 8.0)
			}
		})
	}
}

func TestAdjustForContrastPicksSmallerMove(t *testing.T) {
	bg := mustHex("#767676")
	fg := bg.WithL(bg.L - 0.05)
	got := AdjustForContrast(fg, bg, 2.0)
	assert.Less(t, got.L, bg.L)
}

func mustHex(s string) oklch.Color {
	c, ok := oklch.ParseHex(s)
	if !ok {
		panic("invalid hex " + s)
	}
	return c
}
