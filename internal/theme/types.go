package theme

import (
	"encoding/json"
	"strings"

	"github.com/AvengeMedia/dankpalette/internal/oklch"
)

// Token names one of the twenty semantic slots of a theme.
type Token int

const (
	Bg Token = iota
	Card
	Card2
	Text
	TextMuted
	TextOnColor
	Primary
	PrimaryFg
	Secondary
	SecondaryFg
	Accent
	AccentFg
	Border
	Ring
	Good
	GoodFg
	Warn
	WarnFg
	Bad
	BadFg

	TokenCount
)

var tokenNames = [TokenCount]string{
	Bg:          "bg",
	Card:        "card",
	Card2:       "card2",
	Text:        "text",
	TextMuted:   "textMuted",
	TextOnColor: "textOnColor",
	Primary:     "primary",
	PrimaryFg:   "primaryFg",
	Secondary:   "secondary",
	SecondaryFg: "secondaryFg",
	Accent:      "accent",
	AccentFg:    "accentFg",
	Border:      "border",
	Ring:        "ring",
	Good:        "good",
	GoodFg:      "goodFg",
	Warn:        "warn",
	WarnFg:      "warnFg",
	Bad:         "bad",
	BadFg:       "badFg",
}

func (t Token) String() string {
	if t < 0 || t >= TokenCount {
		return "unknown"
	}
	return tokenNames[t]
}

// ParseToken resolves a token name, case-insensitively.
func ParseToken(name string) (Token, bool) {
	for i, n := range tokenNames {
		if strings.EqualFold(n, name) {
			return Token(i), true
		}
	}
	return 0, false
}

// AllTokens lists every slot in declaration order.
func AllTokens() []Token {
	out := make([]Token, TokenCount)
	for i := range out {
		out[i] = Token(i)
	}
	return out
}

var (
	surfaceTokens   = []Token{Bg, Card, Card2}
	chromaticTokens = []Token{Primary, Secondary, Accent, Good, Warn, Bad, Ring}

	// foregroundPairs maps each on-color token to the color it sits on.
	foregroundPairs = map[Token]Token{
		PrimaryFg:   Primary,
		SecondaryFg: Secondary,
		AccentFg:    Accent,
		GoodFg:      Good,
		WarnFg:      Warn,
		BadFg:       Bad,
		TextOnColor: Primary,
	}
	foregroundOrder = []Token{PrimaryFg, SecondaryFg, AccentFg, GoodFg, WarnFg, BadFg, TextOnColor}
)

// ChromaticTokens are the brand, status and ring slots.
func ChromaticTokens() []Token { return append([]Token(nil), chromaticTokens...) }

// SurfaceTokens are the background surfaces text must read against.
func SurfaceTokens() []Token { return append([]Token(nil), surfaceTokens...) }

// ForegroundPair returns the background an on-color token is drawn over.
func ForegroundPair(t Token) (Token, bool) {
	bg, ok := foregroundPairs[t]
	return bg, ok
}

func isChromatic(t Token) bool {
	for _, c := range chromaticTokens {
		if c == t {
			return true
		}
	}
	return false
}

// Tokens is the emitted theme: one #rrggbb string per slot.
type Tokens [TokenCount]string

func (t Tokens) Get(tok Token) string { return t[tok] }

// Map returns the tokens keyed by slot name.
func (t Tokens) Map() map[string]string {
	m := make(map[string]string, TokenCount)
	for i, v := range t {
		m[tokenNames[i]] = v
	}
	return m
}

func (t Tokens) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Map())
}

func (t *Tokens) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for k, v := range m {
		if tok, ok := ParseToken(k); ok {
			t[tok] = v
		}
	}
	return nil
}

// Palette is the working form of Tokens during generation.
type Palette [TokenCount]oklch.Color

// Tokens formats every slot as hex.
func (p Palette) Tokens() Tokens {
	var out Tokens
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// PaletteFromTokens parses hex tokens back into OKLCH. Invalid slots are black.
func PaletteFromTokens(t Tokens) Palette {
	var p Palette
	for i, h := range t {
		if c, ok := oklch.ParseHex(h); ok {
			p[i] = c
		}
	}
	return p
}

func (p Palette) surfaces() []oklch.Color {
	return []oklch.Color{p[Bg], p[Card], p[Card2]}
}

// Mode is light or dark.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

func (m Mode) Other() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// DualTheme is the engine output.
type DualTheme struct {
	Light Tokens      `json:"light"`
	Dark  Tokens      `json:"dark"`
	Seed  string      `json:"seed"`
	Mode  HarmonyMode `json:"mode"`
}

// Side returns the tokens for one mode.
func (d DualTheme) Side(m Mode) Tokens {
	if m == Dark {
		return d.Dark
	}
	return d.Light
}
