// Package numgrad estimates gradients of black-box scalar functions with
// central finite differences.
//
// Each coordinate is probed with its own step size. The step starts at
// max(1e-6*|f(x)|, 1e-8) and is divided by ShrinkFactor until the central
// estimate agrees with both one-sided estimates to within Tolerance
// (relative to the local function and coordinate scale), or MaxAttempts
// steps have been tried.
package numgrad

import (
	"slices"

	"github.com/sw965/numgrad/mathx"
	"github.com/sw965/omw/parallel"
)

const (
	MaxAttempts  = 20
	ShrinkFactor = 16.0
	Tolerance    = 1e-3

	relativeStep = 1e-6
	minStep      = 1e-8
	minNorm      = 1e-8
)

// Func is a scalar function of a real vector. It may return NaN to signal
// that it cannot be evaluated at the given point. The slice it receives is
// owned by the estimator and must be neither retained nor modified.
type Func func([]float64) float64

// Estimator holds the options of a gradient estimation.
// The zero value estimates sequentially.
type Estimator struct {
	// Parallel is the number of workers the coordinates are split between.
	// Values <= 1 disable parallelism. When Parallel > 1, f must be safe
	// for concurrent use.
	Parallel int
}

// Gradient estimates the gradient of f at x sequentially.
func Gradient(f Func, x []float64) ([]float64, error) {
	e := Estimator{}
	return e.Gradient(f, x)
}

// Gradient estimates the gradient of f at x. x is never modified.
// It fails with a *DomainError if f(x) is NaN, and with a
// *GradientFailureError if some coordinate does not converge.
func (e *Estimator) Gradient(f Func, x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyPoint
	}

	y := f(x)
	if mathx.IsNaN(y) {
		return nil, &DomainError{Point: slices.Clone(x)}
	}

	grad := make([]float64, n)
	p := min(max(e.Parallel, 1), n)
	if p == 1 {
		tmp := slices.Clone(x)
		for i := range x {
			d, ok := partial(f, x, tmp, y, i)
			if !ok {
				return nil, &GradientFailureError{Index: i, Point: slices.Clone(x)}
			}
			grad[i] = d
		}
		return grad, nil
	}

	tmps := make([][]float64, p)
	for i := range tmps {
		tmps[i] = slices.Clone(x)
	}
	converged := make([]bool, n)

	err := parallel.For(n, p, func(workerId, idx int) error {
		grad[idx], converged[idx] = partial(f, x, tmps[workerId], y, idx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// report the lowest failing index, as the sequential loop would
	if i := slices.Index(converged, false); i != -1 {
		return nil, &GradientFailureError{Index: i, Point: slices.Clone(x)}
	}
	return grad, nil
}

// partial searches a step size for coordinate i. tmp must equal x on entry
// and equals x again on return.
func partial(f Func, x, tmp []float64, y float64, i int) (float64, bool) {
	xi := x[i]
	delta := max(relativeStep*mathx.Abs(y), minStep)

	for k := 0; k < MaxAttempts; k++ {
		tmp[i] = xi + delta
		plusY := f(tmp)
		tmp[i] = xi - delta
		minusY := f(tmp)
		tmp[i] = xi

		if isSample(plusY, minusY) {
			d := mathx.CentralDifference(plusY, minusY, delta)
			left := mathx.ForwardDifference(plusY, y, delta)
			right := mathx.BackwardDifference(y, minusY, delta)

			// the error is capped at delta itself
			diff := mathx.Min(
				mathx.MaxAbs(left-d, right-d, left-right),
				delta,
			)
			norm := mathx.Max(
				mathx.MaxAbs(d, plusY, y, minusY, xi-delta, xi, xi+delta),
				minNorm,
			)
			if diff/norm < Tolerance {
				return d, true
			}
		}
		delta /= ShrinkFactor
	}
	return 0.0, false
}

func isSample(plusY, minusY float64) bool {
	return !mathx.IsNaN(plusY) && !mathx.IsNaN(minusY)
}
