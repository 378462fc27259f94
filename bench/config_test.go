package bench_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sw965/numgrad/bench"
	"go.uber.org/zap"
)

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := bench.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, bench.DefaultConfig(), cfg)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("NUMGRAD_PARAMS", "5,7")
	t.Setenv("NUMGRAD_TRIALS", "3")
	t.Setenv("NUMGRAD_PARALLEL", "2")
	t.Setenv("NUMGRAD_SEED", "42")
	t.Setenv("NUMGRAD_LOG_LEVEL", "debug")
	t.Setenv("NUMGRAD_LOG_DEV", "true")

	cfg, err := bench.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, bench.Config{
		Params:   []int{5, 7},
		Trials:   3,
		Parallel: 2,
		Seed:     42,
		LogLevel: "debug",
		LogDev:   true,
	}, cfg)

	runners := cfg.Runners(cfg.NewRand(), zap.NewNop())
	require.Len(t, runners, 2)
	require.Equal(t, 5, runners[0].Params)
	require.Equal(t, 7, runners[1].Params)
	require.Equal(t, 2, runners[1].Estimator.Parallel)
	require.Equal(t, 3, runners[1].Trials)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("NUMGRAD_TRIALS", "0")
	_, err := bench.LoadConfig()
	require.ErrorIs(t, err, bench.ErrInvalidConfig)

	t.Setenv("NUMGRAD_TRIALS", "ten")
	_, err = bench.LoadConfig()
	require.Error(t, err)

	t.Setenv("NUMGRAD_TRIALS", "1")
	t.Setenv("NUMGRAD_PARAMS", "4,0")
	_, err = bench.LoadConfig()
	require.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestConfigNewRandSeeded(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Seed = 9
	a := cfg.NewRand().Uint64()
	b := cfg.NewRand().Uint64()
	require.Equal(t, a, b)

	cfg.Seed = 0
	require.NotNil(t, cfg.NewRand())
}

func TestNewLogger(t *testing.T) {
	logger, err := bench.NewLogger("debug", true)
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = bench.NewLogger("warn", false)
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zap.InfoLevel))

	_, err = bench.NewLogger("loud", false)
	require.Error(t, err)
}
