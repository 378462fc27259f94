package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sw965/numgrad"
	"github.com/sw965/numgrad/mathx/randx"
	"go.uber.org/zap"
)

const (
	maxCoordinate = 9
	closeTol      = 1e-3
)

var ErrInvalidRunner = errors.New("bench: invalid runner")

// Runner times the numerical gradient of Model against its closed-form
// gradient at random integer points and checks that both agree.
type Runner struct {
	Params    int
	Trials    int
	Model     PullModel
	Estimator numgrad.Estimator
	Rand      *rand.Rand
	Logger    *zap.Logger
}

type Report struct {
	Params    int
	Trials    int
	Numerical Stats
	Reference Stats
}

func (r Report) String() string {
	return fmt.Sprintf("params=%d trials=%d\nnumgrad:   %s\nreference: %s",
		r.Params, r.Trials, r.Numerical, r.Reference)
}

func (r *Runner) validate() error {
	if r.Params < 1 {
		return fmt.Errorf("%w: params must be >= 1, got %d", ErrInvalidRunner, r.Params)
	}
	if r.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidRunner, r.Trials)
	}
	return nil
}

// Trial runs one comparison at theta and returns the time spent in each
// gradient source.
func (r *Runner) Trial(theta []float64) (time.Duration, time.Duration, error) {
	start := time.Now()
	numGrad, err := r.Estimator.Gradient(r.Model.Loss, theta)
	numTime := time.Since(start)
	if err != nil {
		return 0, 0, err
	}

	start = time.Now()
	refGrad := r.Model.Gradient(theta)
	refTime := time.Since(start)

	if err := AllClose(numGrad, refGrad, closeTol, closeTol); err != nil {
		return 0, 0, err
	}
	return numTime, refTime, nil
}

func (r *Runner) Run() (Report, error) {
	if err := r.validate(); err != nil {
		return Report{}, err
	}

	rng := r.Rand
	if rng == nil {
		rng = randx.NewRand()
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	numTimes := make([]time.Duration, r.Trials)
	refTimes := make([]time.Duration, r.Trials)
	for i := 0; i < r.Trials; i++ {
		theta := randx.IntPoint(r.Params, maxCoordinate, rng)
		numTime, refTime, err := r.Trial(theta)
		if err != nil {
			return Report{}, fmt.Errorf("bench: trial %d with %d params: %w", i, r.Params, err)
		}
		numTimes[i] = numTime
		refTimes[i] = refTime
		logger.Debug("trial finished",
			zap.Int("trial", i),
			zap.Int("params", r.Params),
			zap.Duration("numerical", numTime),
			zap.Duration("reference", refTime),
		)
	}

	report := Report{
		Params:    r.Params,
		Trials:    r.Trials,
		Numerical: NewStats(numTimes),
		Reference: NewStats(refTimes),
	}
	logger.Info("benchmark finished",
		zap.Int("params", report.Params),
		zap.Int("trials", report.Trials),
		zap.Duration("numerical_mean", report.Numerical.Mean),
		zap.Duration("reference_mean", report.Reference.Mean),
	)
	return report, nil
}
