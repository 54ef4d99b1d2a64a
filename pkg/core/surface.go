package core

// Surface is one interface of the ordered surface sequence. The outer
// diameter is the fixed physical edge radius used as the vignetting search
// target; the clear aperture is the mutable radius within which rays may
// pass, owned by the surface and updated only by the aperture setter.
type Surface struct {
	label         string
	outerDiameter float64
	clearAperture float64
}

// NewSurface creates a surface with the given outer-diameter radius.
// The clear aperture starts equal to the outer diameter.
func NewSurface(outerDiameter float64) *Surface {
	return &Surface{
		outerDiameter: outerDiameter,
		clearAperture: outerDiameter,
	}
}

// NewLabeledSurface creates a surface with a label for diagnostics
func NewLabeledSurface(label string, outerDiameter float64) *Surface {
	s := NewSurface(outerDiameter)
	s.label = label
	return s
}

// Label returns the surface's diagnostic label
func (s *Surface) Label() string {
	return s.label
}

// OuterDiameter returns the fixed physical edge radius of the surface
func (s *Surface) OuterDiameter() float64 {
	return s.outerDiameter
}

// ClearAperture returns the current clear-aperture radius
func (s *Surface) ClearAperture() float64 {
	return s.clearAperture
}

// SetClearAperture updates the clear-aperture radius
func (s *Surface) SetClearAperture(radius float64) {
	s.clearAperture = radius
}
