package core

import "fmt"

// TraceOptions control how a Tracer handles apertures during a trace.
// Pupil searches disable both flags to explore beyond the current
// apertures; aperture scans re-enable vignetting to harvest the
// as-configured boundary rays.
type TraceOptions struct {
	ApplyVignetting bool // scale the pupil coordinate by the field's vignetting factors
	CheckApertures  bool // fail the trace when a ray exceeds a surface's clear aperture
}

// FailureKind classifies why a trace could not continue past a surface
type FailureKind int

const (
	// FailureBlocked means the ray height exceeded the surface's clear aperture
	FailureBlocked FailureKind = iota
	// FailureMissed means the ray did not intersect the surface's extent at all
	FailureMissed
	// FailureTIR means the ray was totally internally reflected at a refracting surface
	FailureTIR
)

// String returns a short label for the failure kind
func (k FailureKind) String() string {
	switch k {
	case FailureBlocked:
		return "blocked"
	case FailureMissed:
		return "missed"
	case FailureTIR:
		return "tir"
	default:
		return "unknown"
	}
}

// TraceError reports a trace that failed partway through the surface
// sequence. It always carries the partial ray, which is valid for every
// surface before the failing one.
type TraceError struct {
	Kind    FailureKind
	Surface int // index of the surface where the trace failed
	Ray     Ray // partial ray; includes the record at Surface for Blocked and TIR, excludes it for Missed
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("trace %s at surface %d", e.Kind, e.Surface)
}

// Tracer is the sequential ray-trace engine the search components drive.
// A trace either returns a complete ray or a *TraceError identifying the
// first surface the ray could not continue past. Implementations must be
// safe for concurrent use if the parallel vignetting driver is used.
type Tracer interface {
	Trace(pupil PupilCoord, fld *Field, wvl float64, opts TraceOptions) (Ray, error)
}
