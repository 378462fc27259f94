package bench_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sw965/numgrad"
	"github.com/sw965/numgrad/bench"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunnerRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := bench.Runner{
		Params: 50,
		Trials: 4,
		Model:  bench.NewPullModel(),
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Logger: zap.New(core),
	}

	report, err := r.Run()
	require.NoError(t, err)
	require.Equal(t, 50, report.Params)
	require.Equal(t, 4, report.Trials)
	require.LessOrEqual(t, report.Numerical.Min, report.Numerical.Mean)
	require.LessOrEqual(t, report.Numerical.Mean, report.Numerical.Max)
	require.LessOrEqual(t, report.Reference.Min, report.Reference.Max)
	require.Contains(t, report.String(), "params=50 trials=4")

	require.Equal(t, 4, logs.FilterMessage("trial finished").Len())
	require.Equal(t, 1, logs.FilterMessage("benchmark finished").Len())
}

func TestRunnerParallel(t *testing.T) {
	r := bench.Runner{
		Params:    200,
		Trials:    3,
		Model:     bench.NewPullModel(),
		Estimator: numgrad.Estimator{Parallel: 4},
	}
	_, err := r.Run()
	require.NoError(t, err)
}

func TestRunnerInvalid(t *testing.T) {
	r := bench.Runner{Params: 0, Trials: 1}
	_, err := r.Run()
	require.ErrorIs(t, err, bench.ErrInvalidRunner)

	r = bench.Runner{Params: 3, Trials: 0}
	_, err = r.Run()
	require.ErrorIs(t, err, bench.ErrInvalidRunner)
}

func TestRunnerTrial(t *testing.T) {
	r := bench.Runner{Model: bench.NewPullModel()}

	_, _, err := r.Trial([]float64{1.0, 2.0, 3.0})
	require.NoError(t, err)

	_, _, err = r.Trial(nil)
	require.ErrorIs(t, err, numgrad.ErrEmptyPoint)
}
