package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/kelseyhightower/envconfig"
	"github.com/sw965/numgrad"
	"github.com/sw965/numgrad/mathx/randx"
	"go.uber.org/zap"
)

const envPrefix = "numgrad"

var ErrInvalidConfig = errors.New("bench: invalid config")

// Config holds the benchmark settings, read from NUMGRAD_* variables.
type Config struct {
	Params   []int `envconfig:"PARAMS" default:"10,100,1000"`
	Trials   int   `envconfig:"TRIALS" default:"50"`
	Parallel int   `envconfig:"PARALLEL" default:"1"`

	// Seed 0 seeds the generator from the global seed.
	Seed uint64 `envconfig:"SEED" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

func DefaultConfig() Config {
	return Config{
		Params:   []int{10, 100, 1000},
		Trials:   50,
		Parallel: 1,
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Params) == 0 {
		return fmt.Errorf("%w: no parameter counts", ErrInvalidConfig)
	}
	for _, n := range c.Params {
		if n < 1 {
			return fmt.Errorf("%w: parameter count must be >= 1, got %d", ErrInvalidConfig, n)
		}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be >= 1, got %d", ErrInvalidConfig, c.Parallel)
	}
	return nil
}

// Runners returns one runner per configured parameter count, sharing rng
// and logger.
func (c *Config) Runners(rng *rand.Rand, logger *zap.Logger) []Runner {
	runners := make([]Runner, len(c.Params))
	for i, n := range c.Params {
		runners[i] = Runner{
			Params:    n,
			Trials:    c.Trials,
			Model:     NewPullModel(),
			Estimator: numgrad.Estimator{Parallel: c.Parallel},
			Rand:      rng,
			Logger:    logger,
		}
	}
	return runners
}

// NewRand returns the generator selected by Seed.
func (c *Config) NewRand() *rand.Rand {
	if c.Seed == 0 {
		return randx.NewRand()
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}
