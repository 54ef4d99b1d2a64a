package vignetting

import "github.com/df07/go-lens-vignetting/pkg/core"

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

// Ensure testLogger implements core.Logger
var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {
	// Discard output during tests
}

// fakeSystem is a minimal System for driving the calculators in tests
type fakeSystem struct {
	surfaces []*core.Surface
	stop     int
	fields   []*core.Field
	wvls     []float64
}

var _ System = (*fakeSystem)(nil)

func (s *fakeSystem) Surfaces() []*core.Surface { return s.surfaces }
func (s *fakeSystem) StopSurface() int          { return s.stop }
func (s *fakeSystem) Fields() []*core.Field     { return s.fields }
func (s *fakeSystem) Wavelength(i int) float64  { return s.wvls[i] }

func (s *fakeSystem) PupilRays() []core.PupilCoord {
	return []core.PupilCoord{
		core.NewPupilCoord(0, 0),
		core.NewPupilCoord(1, 0),
		core.NewPupilCoord(-1, 0),
		core.NewPupilCoord(0, 1),
		core.NewPupilCoord(0, -1),
	}
}

// newFakeSystem builds a system with one surface per outer diameter and a
// single axial field
func newFakeSystem(stop int, outerDiameters ...float64) *fakeSystem {
	s := &fakeSystem{stop: stop}
	for _, od := range outerDiameters {
		s.surfaces = append(s.surfaces, core.NewSurface(od))
	}
	s.fields = []*core.Field{core.NewField(0, 0)}
	s.wvls = []float64{550.0}
	return s
}

// syncSystem wraps a fakeSystem with a GeometrySyncer that counts calls
type syncSystem struct {
	*fakeSystem
	synced int
}

var _ GeometrySyncer = (*syncSystem)(nil)

func (s *syncSystem) SyncToSurfaces() { s.synced++ }

// traceFunc adapts a function to the core.Tracer interface
type traceFunc func(p core.PupilCoord, fld *core.Field, wvl float64, opts core.TraceOptions) (core.Ray, error)

func (f traceFunc) Trace(p core.PupilCoord, fld *core.Field, wvl float64, opts core.TraceOptions) (core.Ray, error) {
	return f(p, fld, wvl, opts)
}

// linearTracer is a synthetic sequential tracer whose ray position at each
// surface is a linear function of the pupil coordinate. With aperture
// checks on, a trace fails blocked at the first surface whose clear
// aperture the ray height exceeds.
type linearTracer struct {
	surfaces []*core.Surface
	slopeX   []float64 // per surface, height contribution of the x pupil coordinate
	slopeY   []float64
	offsetX  []float64 // per surface, fixed transverse displacement
	offsetY  []float64
}

var _ core.Tracer = (*linearTracer)(nil)

// newLinearTracer builds a tracer with the given x slopes, symmetric in y
// and with no offsets
func newLinearTracer(system *fakeSystem, slopes ...float64) *linearTracer {
	n := len(slopes)
	return &linearTracer{
		surfaces: system.surfaces,
		slopeX:   slopes,
		slopeY:   append([]float64(nil), slopes...),
		offsetX:  make([]float64, n),
		offsetY:  make([]float64, n),
	}
}

func (lt *linearTracer) Trace(p core.PupilCoord, fld *core.Field, wvl float64, opts core.TraceOptions) (core.Ray, error) {
	if opts.ApplyVignetting {
		p = fld.ApplyVignetting(p)
	}

	var ray core.Ray
	for i := range lt.slopeX {
		point := core.NewVec3(
			lt.slopeX[i]*p.X+lt.offsetX[i],
			lt.slopeY[i]*p.Y+lt.offsetY[i],
			float64(i),
		)
		ray = append(ray, core.RayPoint{Point: point, Direction: core.NewVec3(0, 0, 1)})
		if opts.CheckApertures && point.RadialHeight() > lt.surfaces[i].ClearAperture() {
			return nil, &core.TraceError{Kind: core.FailureBlocked, Surface: i, Ray: ray}
		}
	}
	return ray, nil
}
