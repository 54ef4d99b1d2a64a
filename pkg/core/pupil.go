package core

// Axis selects which pupil axis a 1-D search operates on.
// It is always passed explicitly; nothing is inferred from labels.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the conventional single-letter label for the axis
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// PupilCoord is a launch position in normalized pupil space.
// (±1, 0) and (0, ±1) are the edges of the nominal (unvignetted) pupil.
type PupilCoord struct {
	X, Y float64
}

// NewPupilCoord creates a new PupilCoord
func NewPupilCoord(x, y float64) PupilCoord {
	return PupilCoord{X: x, Y: y}
}

// Component returns the coordinate along the given axis
func (p PupilCoord) Component(axis Axis) float64 {
	if axis == AxisX {
		return p.X
	}
	return p.Y
}

// WithComponent returns a copy with the given axis set to value
func (p PupilCoord) WithComponent(axis Axis, value float64) PupilCoord {
	if axis == AxisX {
		p.X = value
	} else {
		p.Y = value
	}
	return p
}

// OnAxis returns a coordinate with value on the given axis and 0 on the
// other. Iterative pupil searches hold the off-axis component at zero.
func OnAxis(axis Axis, value float64) PupilCoord {
	return PupilCoord{}.WithComponent(axis, value)
}
