// Package vignetting computes clear apertures and vignetting factors for a
// sequential optical system by iteratively aiming pupil rays at the edges
// of its limiting surfaces.
package vignetting

import "github.com/df07/go-lens-vignetting/pkg/core"

// NoSurface marks a surface index that is not defined, e.g. a floating
// aperture stop or a search that never found a limiting surface.
const NoSurface = -1

// System is the optical-system context the calculators operate on.
// Surface indices must be stable for the duration of a call; the surface
// sequence is never mutated during a search.
type System interface {
	// Surfaces returns the ordered surface sequence
	Surfaces() []*core.Surface
	// StopSurface returns the index of the aperture stop, or NoSurface
	// for a floating stop
	StopSurface() int
	// Fields returns the field points of the system
	Fields() []*core.Field
	// Wavelength returns the trace wavelength (nm) for field index i
	Wavelength(i int) float64
	// PupilRays returns the canonical pupil launch coordinates for the
	// current pupil sampling: the chief ray first, then the four
	// boundary directions +x, -x, +y, -y
	PupilRays() []core.PupilCoord
}

// GeometrySyncer is implemented by systems that mirror surface apertures
// into a cached element/geometry representation. SetApertures calls it
// once after all surfaces have been updated.
type GeometrySyncer interface {
	SyncToSurfaces()
}
