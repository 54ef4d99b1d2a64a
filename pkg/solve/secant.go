// Package solve provides a 1-D nonlinear equation solver for ray aiming.
//
// The solver never signals non-convergence through control flow: it always
// returns its best current estimate together with a converged flag, and
// callers decide policy. Only an error raised by the objective itself
// aborts a solve.
package solve

import "math"

// Objective is a scalar function whose root is sought. Returning an error
// aborts the solve; the error is reported unmodified in Result.Err.
type Objective func(x float64) (float64, error)

// Result reports the outcome of a solve
type Result struct {
	Root       float64 // best estimate of the root
	Converged  bool    // whether the estimate met the tolerance
	Iterations int     // objective evaluations beyond the two seeds
	Err        error   // non-nil only if the objective returned an error
}

// Config contains solver configuration
type Config struct {
	Tol     float64 // absolute tolerance on the root estimate
	MaxIter int     // iteration budget before giving up with the best estimate
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Tol:     1e-6,
		MaxIter: 50,
	}
}

// seedStep is the relative offset used to place the second secant point
const seedStep = 1e-4

// FindRoot runs a secant search for f(x) = 0 starting from x0.
//
// The second point is seeded at a small relative offset from x0 so the
// caller only supplies one guess. If the budget runs out, the best current
// estimate is returned with Converged false. If two iterates produce equal
// function values the secant step is undefined; the midpoint of the last
// bracket is returned, converged only if the residual already met the
// tolerance.
func FindRoot(f Objective, x0 float64, config Config) Result {
	if config.Tol <= 0 {
		config.Tol = DefaultConfig().Tol
	}
	if config.MaxIter <= 0 {
		config.MaxIter = DefaultConfig().MaxIter
	}

	p0 := x0
	p1 := x0 * (1 + seedStep)
	if p1 >= 0 {
		p1 += seedStep
	} else {
		p1 -= seedStep
	}

	q0, err := f(p0)
	if err != nil {
		return Result{Root: p0, Err: err}
	}
	if q0 == 0 {
		return Result{Root: p0, Converged: true}
	}
	q1, err := f(p1)
	if err != nil {
		return Result{Root: p0, Err: err}
	}

	for itr := 0; itr < config.MaxIter; itr++ {
		if q1 == q0 {
			// flat secant, no step possible
			root := (p0 + p1) / 2
			return Result{
				Root:       root,
				Converged:  math.Abs(q1) <= config.Tol,
				Iterations: itr,
			}
		}

		// keep the smaller residual as the anchor point
		if math.Abs(q1) > math.Abs(q0) {
			p0, p1 = p1, p0
			q0, q1 = q1, q0
		}

		p := p1 - q1*(p1-p0)/(q1-q0)
		if math.Abs(p-p1) <= config.Tol {
			return Result{Root: p, Converged: true, Iterations: itr + 1}
		}

		p0, q0 = p1, q1
		p1 = p
		q1, err = f(p1)
		if err != nil {
			return Result{Root: p1, Iterations: itr + 1, Err: err}
		}
	}

	return Result{Root: p1, Converged: false, Iterations: config.MaxIter}
}
