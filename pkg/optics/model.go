// Package optics provides a minimal sequential-model implementation of the
// optical-system context the vignetting calculators consume: an ordered
// surface sequence with a stop designation, field points with wavelengths,
// and the canonical pupil sampling directions.
package optics

import (
	"github.com/df07/go-lens-vignetting/pkg/core"
	"github.com/df07/go-lens-vignetting/pkg/vignetting"
)

// SequentialModel holds the ordered surface sequence and field list of an
// optical system. Surface indices are stable: surfaces are appended at
// construction time and never reordered during a search.
type SequentialModel struct {
	surfaces    []*core.Surface
	stop        int
	fields      []*core.Field
	wavelengths []float64 // per field, nm
	elements    *ElementModel
}

// Ensure SequentialModel satisfies the calculator's system contract
var _ vignetting.System = (*SequentialModel)(nil)
var _ vignetting.GeometrySyncer = (*SequentialModel)(nil)

// NewSequentialModel creates an empty model with a floating stop
func NewSequentialModel() *SequentialModel {
	return &SequentialModel{stop: vignetting.NoSurface}
}

// AddSurface appends a surface and returns its index
func (sm *SequentialModel) AddSurface(srf *core.Surface) int {
	sm.surfaces = append(sm.surfaces, srf)
	if sm.elements != nil {
		sm.elements.SyncToSurfaces()
	}
	return len(sm.surfaces) - 1
}

// AddField appends a field with its trace wavelength (nm)
func (sm *SequentialModel) AddField(fld *core.Field, wvl float64) {
	sm.fields = append(sm.fields, fld)
	sm.wavelengths = append(sm.wavelengths, wvl)
}

// SetStop designates the aperture stop surface. vignetting.NoSurface
// makes the stop floating.
func (sm *SequentialModel) SetStop(index int) {
	sm.stop = index
}

// Surfaces returns the ordered surface sequence
func (sm *SequentialModel) Surfaces() []*core.Surface {
	return sm.surfaces
}

// StopSurface returns the stop surface index, or vignetting.NoSurface
func (sm *SequentialModel) StopSurface() int {
	return sm.stop
}

// Fields returns the field points of the system
func (sm *SequentialModel) Fields() []*core.Field {
	return sm.fields
}

// Wavelength returns the trace wavelength (nm) for field index i
func (sm *SequentialModel) Wavelength(i int) float64 {
	return sm.wavelengths[i]
}

// PupilRays returns the canonical pupil launch coordinates: the chief ray
// first, then the boundary directions +x, -x, +y, -y.
func (sm *SequentialModel) PupilRays() []core.PupilCoord {
	return []core.PupilCoord{
		core.NewPupilCoord(0, 0),
		core.NewPupilCoord(1, 0),
		core.NewPupilCoord(-1, 0),
		core.NewPupilCoord(0, 1),
		core.NewPupilCoord(0, -1),
	}
}

// Elements returns the element mirror of the surface sequence, creating
// it on first use.
func (sm *SequentialModel) Elements() *ElementModel {
	if sm.elements == nil {
		sm.elements = NewElementModel(sm)
	}
	return sm.elements
}

// SyncToSurfaces re-derives the element mirror from the current surface
// apertures. The aperture setter calls this once after an update pass.
func (sm *SequentialModel) SyncToSurfaces() {
	sm.Elements().SyncToSurfaces()
}
