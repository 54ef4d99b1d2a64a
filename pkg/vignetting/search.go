package vignetting

import (
	"errors"

	"github.com/df07/go-lens-vignetting/pkg/core"
)

// SearchResult reports the outcome of a vignetted-ray search
type SearchResult struct {
	Vig         float64  // vignetting factor for the searched direction
	LastSurface int      // index of the limiting surface, or NoSurface
	Ray         core.Ray // the vignetting-limited ray (partial if the last trace failed)
}

// CalcVignettedRay finds the ray that just grazes the limiting aperture in
// one pupil direction and returns the vignetting factor for it.
//
// start is the unit starting pupil coordinate, e.g. (1, 0); its component
// on the active axis must be nonzero since it sets the radial direction
// and normalizes the factor. Each iteration traces with aperture checks
// on: a blocked trace re-aims at the blocking surface's outer diameter; a
// clean trace after a re-aim means the search has settled. The search also
// stops when the same surface limits twice in a row (oscillation onto one
// boundary) and is capped at MaxIterCount iterations as a fail-safe.
//
// The first clean trace is special: with no limiting surface found yet the
// search seeds itself from the edge of the aperture stop, or, for a
// floating stop, returns immediately with no vignetting.
func (c *Calculator) CalcVignettedRay(axis core.Axis, start core.PupilCoord, fld *core.Field, wvl float64) SearchResult {
	relP1 := start
	lastSurf := NoSurface
	var ray core.Ray

	stillIterating := true
	iterCount := 0 // safeguard against runaway iteration
	for stillIterating && iterCount < c.config.MaxIterCount {
		iterCount++
		traced, err := c.tracer.Trace(relP1, fld, wvl, core.TraceOptions{CheckApertures: true})
		if err != nil {
			var te *core.TraceError
			if !errors.As(err, &te) {
				// not a surface failure; keep the last coordinate
				stillIterating = false
				break
			}
			ray = te.Ray
			if te.Surface == lastSurf {
				// same boundary limited twice in a row
				stillIterating = false
			} else {
				rTarget := c.system.Surfaces()[te.Surface].OuterDiameter()
				relP1 = c.IteratePupilRay(te.Surface, axis, relP1.Component(axis), rTarget, fld, wvl)
				lastSurf = te.Surface
			}
		} else {
			ray = traced
			if lastSurf != NoSurface {
				// the re-aimed ray clears its limiting surface
				stillIterating = false
			} else if stop := c.system.StopSurface(); stop != NoSurface {
				// first pass: aim for the edge of the stop surface
				rTarget := c.system.Surfaces()[stop].OuterDiameter()
				relP1 = c.IteratePupilRay(stop, axis, relP1.Component(axis), rTarget, fld, wvl)
				lastSurf = stop
			} else {
				// floating stop, nothing constrains the pupil
				stillIterating = false
			}
		}
	}
	if stillIterating {
		c.logger.Printf("vignetting: %s search stopped at iteration bound %d, factor is approximate\n",
			axis, c.config.MaxIterCount)
	}

	vig := 1.0 - relP1.Component(axis)/start.Component(axis)
	return SearchResult{Vig: vig, LastSurface: lastSurf, Ray: ray}
}
