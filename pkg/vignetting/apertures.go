package vignetting

import (
	"errors"

	"github.com/df07/go-lens-vignetting/pkg/core"
)

// SetApertures sets every surface's clear aperture to the smallest radius
// that passes all of the (vignetted) boundary rays for every field.
//
// The full ray fan is traced once with the current vignetting applied and
// aperture checks off. For each surface the maximum radial ray height over
// the fan becomes its clear aperture. If any ray of the fan failed before
// reaching a surface, the fan is incomplete there and that surface keeps
// its previous aperture: a partial maximum could shrink an aperture below
// what the missing rays need.
//
// If the system mirrors its apertures into a geometry representation, the
// mirror is re-synced once after all surfaces are updated.
func (c *Calculator) SetApertures() {
	rayset := c.traceBoundaryRays()

	for i, srf := range c.system.Surfaces() {
		maxAp := -1.0e+10
		update := true
		for _, ray := range rayset {
			if !ray.Reaches(i) {
				update = false
				break
			}
			if ap := ray.HeightAt(i); ap > maxAp {
				maxAp = ap
			}
		}
		if update {
			srf.SetClearAperture(maxAp)
		}
	}

	if syncer, ok := c.system.(GeometrySyncer); ok {
		syncer.SyncToSurfaces()
	}
}

// traceBoundaryRays traces the canonical pupil rays for every field with
// vignetting applied. Failed traces contribute their partial rays; the
// aperture scan detects them by length.
func (c *Calculator) traceBoundaryRays() []core.Ray {
	var rayset []core.Ray
	for fi, fld := range c.system.Fields() {
		wvl := c.system.Wavelength(fi)
		for _, p := range c.system.PupilRays() {
			ray, err := c.tracer.Trace(p, fld, wvl, core.TraceOptions{ApplyVignetting: true})
			if err != nil {
				var te *core.TraceError
				if !errors.As(err, &te) {
					// no usable partial ray; an empty ray reaches no surface
					ray = nil
				} else {
					ray = te.Ray
				}
			}
			rayset = append(rayset, ray)
		}
	}
	return rayset
}
