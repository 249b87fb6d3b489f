package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the process configuration. Values come from the environment,
// optionally seeded from a .env file, falling back to the constants above.
type Config struct {
	Seed            uint64
	Samples         int
	ExhaustiveLimit int
	TimeBudget      time.Duration
	LogLevel        zerolog.Level
	ExperimentDir   string
}

func DefaultConfig() Config {
	return Config{
		Seed:            SEED,
		Samples:         SAMPLES,
		ExhaustiveLimit: EXHAUSTIVE_LIMIT,
		TimeBudget:      TIME_BUDGET,
		LogLevel:        zerolog.InfoLevel,
		ExperimentDir:   EXPERIMENT_DIR,
	}
}

// LoadConfig reads the given .env files, if present, then the environment.
// Variables already set in the environment win over the files.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := DefaultConfig()
	var err error
	if cfg.Seed, err = envUint("YACHT_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Samples, err = envInt("YACHT_SAMPLES", cfg.Samples); err != nil {
		return Config{}, err
	}
	if cfg.ExhaustiveLimit, err = envInt("YACHT_EXHAUSTIVE_LIMIT", cfg.ExhaustiveLimit); err != nil {
		return Config{}, err
	}
	if cfg.TimeBudget, err = envDuration("YACHT_TIME_BUDGET", cfg.TimeBudget); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("YACHT_LOG_LEVEL"); ok {
		if cfg.LogLevel, err = zerolog.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("YACHT_LOG_LEVEL: %w", err)
		}
	}
	if v, ok := os.LookupEnv("YACHT_EXPERIMENT_DIR"); ok && v != "" {
		cfg.ExperimentDir = v
	}
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: want a positive integer, got %q", key, v)
	}
	return n, nil
}

func envUint(key string, fallback uint64) (uint64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
