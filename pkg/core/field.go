package core

// Field is a single field point: an object-space position plus the four
// vignetting factors that crop its pupil. Each factor is the fraction of
// the nominal pupil radius blocked in that direction, nominally in [0, 1].
//
// Ownership: the vignetting calculator is the only writer of the four
// factors; the aperture setter and tracers only read them.
type Field struct {
	X, Y float64

	VUX float64 // vignetting factor toward +x (upper x)
	VLX float64 // vignetting factor toward -x (lower x)
	VUY float64 // vignetting factor toward +y (upper y)
	VLY float64 // vignetting factor toward -y (lower y)
}

// NewField creates a field point with no vignetting
func NewField(x, y float64) *Field {
	return &Field{X: x, Y: y}
}

// SetVigFactors writes the four vignetting factors in +x, -x, +y, -y order
func (f *Field) SetVigFactors(vux, vlx, vuy, vly float64) {
	f.VUX = vux
	f.VLX = vlx
	f.VUY = vuy
	f.VLY = vly
}

// ApplyVignetting crops a nominal pupil coordinate by the field's
// vignetting factors. Each half-axis scales independently: a positive
// component by 1-VU, a negative component by 1-VL for that axis.
func (f *Field) ApplyVignetting(p PupilCoord) PupilCoord {
	if p.X > 0 {
		p.X *= 1.0 - f.VUX
	} else if p.X < 0 {
		p.X *= 1.0 - f.VLX
	}
	if p.Y > 0 {
		p.Y *= 1.0 - f.VUY
	} else if p.Y < 0 {
		p.Y *= 1.0 - f.VLY
	}
	return p
}
