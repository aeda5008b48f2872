package theme

// NeutralTargets are the base lightness values of the neutral slots for one mode.
type NeutralTargets struct {
	Bg, Card, Card2, Text, TextMuted, Border float64
}

func (n NeutralTargets) of(t Token) float64 {
	switch t {
	case Bg:
		return n.Bg
	case Card:
		return n.Card
	case Card2:
		return n.Card2
	case Text:
		return n.Text
	case TextMuted:
		return n.TextMuted
	case Border:
		return n.Border
	}
	return 0
}

// Band is an inclusive lightness interval.
type Band struct {
	Min, Max float64
}

func (b Band) clamp(v float64) float64 { return clamp(v, b.Min, b.Max) }

// NeutralBands keep each neutral slot inside a safe lightness band when the
// foundation is built.
type NeutralBands struct {
	Bg, Card, Card2, Text, TextMuted, Border Band
}

func (n NeutralBands) of(t Token) Band {
	switch t {
	case Bg:
		return n.Bg
	case Card:
		return n.Card
	case Card2:
		return n.Card2
	case Text:
		return n.Text
	case TextMuted:
		return n.TextMuted
	case Border:
		return n.Border
	}
	return Band{0, 1}
}

// BrandTargets place the chromatic roles for one mode.
type BrandTargets struct {
	BaseL            float64
	BrightnessStep   float64
	SecondaryOffset  float64
	AccentOffset     float64
	StatusL          float64
	WarnL            float64
	RingOffset       float64
	ChromaBase       float64
	ChromaRange      float64
	StatusChromaBase float64
}

// Guardrails are the readability minimums for one mode.
type Guardrails struct {
	Text      float64
	TextMuted float64
}

// Visibility sets the minimum contrast of chromatic slots against surfaces.
type Visibility struct {
	Brand  float64
	Status float64
	Ring   float64
	// Loosen scales the minimum down per contrast level below LoosenFrom.
	Loosen     float64
	LoosenFrom int
}

// Parity tunes the companion alignment pass.
type Parity struct {
	MinStrength    float64
	SplitScale     float64
	AbsoluteWeight float64
	RelativeWeight float64
	ChromaBand     float64
	StableChroma   float64
}

// Derive tunes the light <-> dark heuristics of the mode deriver.
type Derive struct {
	NeutralMirror  float64
	NeutralChroma  float64
	BrandChroma    float64
	BrandShift     float64
	DarkBrandBand  Band
	LightBrandBand Band
}

// Separation holds the minimum lightness gaps between neighboring slots.
type Separation struct {
	BorderBg, BorderCard, BorderCard2 float64
	CardBg, Card2Card, MutedText      float64
}

// Tuning groups every free numeric constant of the pipeline so it can be
// tested and adjusted apart from the algorithm.
type Tuning struct {
	Neutrals      [2]NeutralTargets
	NeutralBands  [2]NeutralBands
	SurfaceBands  [2]Band
	Brand         [2]BrandTargets
	Guardrails    [2]Guardrails
	Visibility    Visibility
	Parity        Parity
	Derive        Derive
	Separation    Separation
	ForegroundMin float64
	ChromaFloor   float64
}

// DefaultTuning returns the shipped constants.
func DefaultTuning() Tuning {
	return Tuning{
		Neutrals: [2]NeutralTargets{
			Light: {Bg: 0.97, Card: 0.93, Card2: 0.90, Text: 0.18, TextMuted: 0.42, Border: 0.82},
			Dark:  {Bg: 0.16, Card: 0.20, Card2: 0.24, Text: 0.93, TextMuted: 0.72, Border: 0.34},
		},
		NeutralBands: [2]NeutralBands{
			Light: {
				Bg:        Band{0.85, 0.99},
				Card:      Band{0.82, 0.97},
				Card2:     Band{0.78, 0.95},
				Text:      Band{0.08, 0.30},
				TextMuted: Band{0.30, 0.55},
				Border:    Band{0.65, 0.88},
			},
			Dark: {
				Bg:        Band{0.08, 0.24},
				Card:      Band{0.12, 0.28},
				Card2:     Band{0.15, 0.32},
				Text:      Band{0.82, 0.98},
				TextMuted: Band{0.60, 0.82},
				Border:    Band{0.28, 0.48},
			},
		},
		SurfaceBands: [2]Band{
			Light: {0.76, 0.995},
			Dark:  {0.05, 0.38},
		},
		Brand: [2]BrandTargets{
			Light: {
				BaseL: 0.52, BrightnessStep: 0.025,
				SecondaryOffset: 0.05, AccentOffset: -0.04,
				StatusL: 0.56, WarnL: 0.76, RingOffset: 0.07,
				ChromaBase: 0.02, ChromaRange: 0.24, StatusChromaBase: 0.06,
			},
			Dark: {
				BaseL: 0.70, BrightnessStep: 0.025,
				SecondaryOffset: -0.05, AccentOffset: 0.04,
				StatusL: 0.72, WarnL: 0.83, RingOffset: -0.07,
				ChromaBase: 0.02, ChromaRange: 0.22, StatusChromaBase: 0.05,
			},
		},
		Guardrails: [2]Guardrails{
			Light: {Text: 3.8, TextMuted: 2.6},
			Dark:  {Text: 5.0, TextMuted: 3.4},
		},
		Visibility: Visibility{
			Brand: 2.9, Status: 2.7, Ring: 2.6,
			Loosen: 0.08, LoosenFrom: -2,
		},
		Parity: Parity{
			MinStrength: 0.35, SplitScale: 18,
			AbsoluteWeight: 0.7, RelativeWeight: 0.3,
			ChromaBand: 0.14, StableChroma: 0.02,
		},
		Derive: Derive{
			NeutralMirror: 0.6, NeutralChroma: 0.88,
			BrandChroma: 0.9, BrandShift: 0.16,
			DarkBrandBand:  Band{0.55, 0.86},
			LightBrandBand: Band{0.34, 0.66},
		},
		Separation: Separation{
			BorderBg: 0.06, BorderCard: 0.04, BorderCard2: 0.03,
			CardBg: 0.03, Card2Card: 0.02, MutedText: 0.08,
		},
		ForegroundMin: 4.5,
		ChromaFloor:   0.008,
	}
}
