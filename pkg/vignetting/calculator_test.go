package vignetting

import (
	"math"
	"testing"

	"github.com/df07/go-lens-vignetting/pkg/core"
)

// newAsymmetricSetup builds a two-surface system whose x and y limits
// differ and are offset, so all four factors come out distinct:
//
//	surface 0: x height = |10*px + 1|, limits only x rays at radius 5
//	surface 1: y height = |20*py + 2|, limits only y rays at radius 5
//
// Edge coordinates: +x 0.4, -x -0.6, +y 0.15, -y -0.35.
func newAsymmetricSetup() (*fakeSystem, *linearTracer) {
	system := newFakeSystem(NoSurface, 5.0, 5.0)
	tracer := &linearTracer{
		surfaces: system.surfaces,
		slopeX:   []float64{10, 0},
		slopeY:   []float64{0, 20},
		offsetX:  []float64{1, 0},
		offsetY:  []float64{0, 2},
	}
	return system, tracer
}

func TestCalculator_CalcVignettingForField_FourFactors(t *testing.T) {
	system, tracer := newAsymmetricSetup()
	calc := newTestCalculator(system, tracer)

	fld := system.fields[0]
	calc.CalcVignettingForField(fld, 550.0)

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{name: "upper x", got: fld.VUX, expected: 0.6},
		{name: "lower x", got: fld.VLX, expected: 0.4},
		{name: "upper y", got: fld.VUY, expected: 0.85},
		{name: "lower y", got: fld.VLY, expected: 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.expected) > 1e-5 {
				t.Errorf("Expected factor %f, got %f", tt.expected, tt.got)
			}
		})
	}
}

func TestCalculator_SetVignetting_AllFields(t *testing.T) {
	system, tracer := newAsymmetricSetup()
	system.fields = []*core.Field{core.NewField(0, 0), core.NewField(0, 1)}
	system.wvls = []float64{486.0, 656.0}
	calc := newTestCalculator(system, tracer)

	calc.SetVignetting()

	for i, fld := range system.fields {
		// the synthetic tracer ignores the field point, so both fields
		// see the same pupil limits
		if math.Abs(fld.VUX-0.6) > 1e-5 || math.Abs(fld.VLX-0.4) > 1e-5 {
			t.Errorf("field %d: expected x factors (0.6, 0.4), got (%f, %f)", i, fld.VUX, fld.VLX)
		}
		if math.Abs(fld.VUY-0.85) > 1e-5 || math.Abs(fld.VLY-0.65) > 1e-5 {
			t.Errorf("field %d: expected y factors (0.85, 0.65), got (%f, %f)", i, fld.VUY, fld.VLY)
		}
	}
}

func TestCalculator_SetVignettingParallel_MatchesSerial(t *testing.T) {
	const numFields = 8

	buildSystem := func() (*fakeSystem, *linearTracer) {
		system, tracer := newAsymmetricSetup()
		system.fields = nil
		system.wvls = nil
		for i := 0; i < numFields; i++ {
			system.fields = append(system.fields, core.NewField(0, float64(i)))
			system.wvls = append(system.wvls, 550.0)
		}
		return system, tracer
	}

	serialSystem, serialTracer := buildSystem()
	newTestCalculator(serialSystem, serialTracer).SetVignetting()

	parallelSystem, parallelTracer := buildSystem()
	newTestCalculator(parallelSystem, parallelTracer).SetVignettingParallel(4)

	for i := range serialSystem.fields {
		want, got := serialSystem.fields[i], parallelSystem.fields[i]
		if *want != *got {
			t.Errorf("field %d: parallel result %+v differs from serial %+v", i, *got, *want)
		}
	}
}

func TestCalculator_SetVignettingParallel_NoFields(t *testing.T) {
	system, tracer := newAsymmetricSetup()
	system.fields = nil
	system.wvls = nil
	calc := newTestCalculator(system, tracer)

	// must return cleanly with nothing to do
	calc.SetVignettingParallel(0)
}
