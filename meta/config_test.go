package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("reads a .env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("YACHT_SAMPLES=40\nYACHT_LOG_LEVEL=debug\n"), 0o644))
		t.Cleanup(func() {
			os.Unsetenv("YACHT_SAMPLES")
			os.Unsetenv("YACHT_LOG_LEVEL")
		})

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, 40, cfg.Samples)
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("YACHT_SEED", "99")
		t.Setenv("YACHT_TIME_BUDGET", "50ms")
		t.Setenv("YACHT_EXPERIMENT_DIR", "out")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		require.Equal(t, uint64(99), cfg.Seed)
		require.Equal(t, 50*time.Millisecond, cfg.TimeBudget)
		require.Equal(t, "out", cfg.ExperimentDir)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		t.Setenv("YACHT_EXHAUSTIVE_LIMIT", "-3")

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.Error(t, err)
	})
}
