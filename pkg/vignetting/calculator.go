package vignetting

import (
	"fmt"

	"github.com/df07/go-lens-vignetting/pkg/core"
	"github.com/df07/go-lens-vignetting/pkg/solve"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains search configuration
type Config struct {
	MaxIterCount int          // safety bound on the vignetted-ray search
	Solver       solve.Config // root-finder tolerance and iteration budget
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxIterCount: 10,
		Solver:       solve.DefaultConfig(),
	}
}

// Calculator computes clear apertures and vignetting factors for a system
// by driving pupil-ray searches through its tracer.
//
// Ownership: SetApertures is the only writer of surface clear apertures;
// SetVignetting and CalcVignettingForField are the only writers of field
// vignetting factors.
type Calculator struct {
	system System
	tracer core.Tracer
	config Config
	logger core.Logger
}

// NewCalculator creates a calculator for the given system and tracer
func NewCalculator(system System, tracer core.Tracer, config Config, logger core.Logger) *Calculator {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Calculator{
		system: system,
		tracer: tracer,
		config: config,
		logger: logger,
	}
}

// SetVignetting computes and stores the four vignetting factors for every
// field in the system, using the existing clear apertures.
func (c *Calculator) SetVignetting() {
	for fi, fld := range c.system.Fields() {
		c.CalcVignettingForField(fld, c.system.Wavelength(fi))
	}
}

// CalcVignettingForField computes and stores the vignetting factors for one
// field. The four boundary pupil directions +x, -x, +y, -y are searched
// independently; each yields the factor for its half-axis.
func (c *Calculator) CalcVignettingForField(fld *core.Field, wvl float64) {
	starts := c.system.PupilRays()[1:]

	var vig [4]float64
	for i := 0; i < 4; i++ {
		axis := core.Axis(i / 2)
		result := c.CalcVignettedRay(axis, starts[i], fld, wvl)
		vig[i] = result.Vig
	}

	fld.SetVigFactors(vig[0], vig[1], vig[2], vig[3])
}
