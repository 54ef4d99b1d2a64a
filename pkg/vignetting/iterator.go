package vignetting

import (
	"errors"

	"github.com/df07/go-lens-vignetting/pkg/core"
	"github.com/df07/go-lens-vignetting/pkg/solve"
)

// IteratePupilRay finds the pupil coordinate on one axis such that the
// traced ray's height at surface surf equals rTarget, and returns it with
// the off-axis component held at zero.
//
// If surf is NoSurface (a floating stop), no trace is needed: the aperture
// is defined directly in pupil space and rTarget itself is returned on the
// active axis.
//
// The search runs with vignetting and aperture checks disabled so the root
// finder may explore beyond the current apertures. A trace that fails
// beyond the target surface is still evaluated there on its partial ray; a
// failure at or before the target aborts that evaluation. If the root
// finder runs out of budget its best estimate is used; if an evaluation
// aborts the search entirely, the axis falls back to coordinate 0.
func (c *Calculator) IteratePupilRay(surf int, axis core.Axis, startR, rTarget float64, fld *core.Field, wvl float64) core.PupilCoord {
	if surf == NoSurface {
		return core.OnAxis(axis, rTarget)
	}

	objective := func(x float64) (float64, error) {
		ray, err := c.tracer.Trace(core.OnAxis(axis, x), fld, wvl, core.TraceOptions{})
		if err != nil {
			var te *core.TraceError
			if !errors.As(err, &te) {
				return 0, err
			}
			switch te.Kind {
			case core.FailureMissed:
				if te.Surface <= surf {
					return 0, te
				}
			case core.FailureTIR:
				if te.Surface < surf {
					return 0, te
				}
			default:
				return 0, te
			}
			// failed past the target; the partial ray is valid there
			ray = te.Ray
		}
		return ray.HeightAt(surf) - rTarget, nil
	}

	result := solve.FindRoot(objective, startR, c.config.Solver)
	r := result.Root
	if result.Err != nil {
		// the trace could not reach the target surface from here
		r = 0.0
	}
	return core.OnAxis(axis, r)
}
