// Package optimizer minimises black-box functions by momentum descent on
// numerically estimated gradients.
package optimizer

import (
	"fmt"
	"slices"

	"github.com/sw965/numgrad"
	"gonum.org/v1/gonum/floats"
)

type Momentum struct {
	LearningRate float64
	MomentumRate float64
	Estimator    numgrad.Estimator
	velocity     []float64
}

func NewMomentum() Momentum {
	return Momentum{
		LearningRate: 0.01,
		MomentumRate: 0.9,
	}
}

// Reset clears the accumulated velocity.
func (opt *Momentum) Reset() {
	opt.velocity = nil
}

// Train moves w one step against grad.
// The velocity is reset whenever the dimension changes.
func (opt *Momentum) Train(w, grad []float64) error {
	if len(w) != len(grad) {
		return fmt.Errorf("optimizer: len(w) = %d != len(grad) = %d", len(w), len(grad))
	}
	if len(opt.velocity) != len(w) {
		opt.velocity = make([]float64, len(w))
	}

	floats.Scale(opt.MomentumRate, opt.velocity)
	floats.AddScaled(opt.velocity, -opt.LearningRate, grad)
	floats.Add(w, opt.velocity)
	return nil
}

// Minimize runs iter steps from x and returns the final point. x is not
// modified. Estimation errors stop the descent.
func (opt *Momentum) Minimize(f numgrad.Func, x []float64, iter int) ([]float64, error) {
	w := slices.Clone(x)
	for i := 0; i < iter; i++ {
		grad, err := opt.Estimator.Gradient(f, w)
		if err != nil {
			return nil, fmt.Errorf("optimizer: iteration %d: %w", i, err)
		}
		if err := opt.Train(w, grad); err != nil {
			return nil, err
		}
	}
	return w, nil
}
