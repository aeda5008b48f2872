package tui

type ApplicationState int

const (
	StateTuning ApplicationState = iota
	StateSelectHarmony
)

// axis is the level being edited.
type axis int

const (
	axisSaturation axis = iota
	axisContrast
	axisBrightness
	axisCount
)

func (a axis) String() string {
	switch a {
	case axisSaturation:
		return "saturation"
	case axisContrast:
		return "contrast"
	default:
		return "brightness"
	}
}
