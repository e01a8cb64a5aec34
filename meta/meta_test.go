package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		require.Equal(t, Default(), c)
		require.Equal(t, WALLS, c.Walls)
	})

	t.Run("dotenv file overrides defaults", func(t *testing.T) {
		path := writeEnv(t, "QUORIDOR_WALLS=6\nQUORIDOR_DURATION=250ms\nQUORIDOR_LOG_LEVEL=debug\n")

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 6, c.Walls)
		require.Equal(t, 250*time.Millisecond, c.Duration)
		require.Equal(t, zerolog.DebugLevel, c.LogLevel)
		require.Equal(t, GO_ROUTINES, c.Goroutines)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		path := writeEnv(t, "QUORIDOR_GOROUTINES=2\nQUORIDOR_SEED=9\n")
		t.Setenv(EnvGoroutines, "4")

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 4, c.Goroutines)
		require.Equal(t, uint64(9), c.Seed)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		for _, content := range []string{
			"QUORIDOR_WALLS=many",
			"QUORIDOR_CUTOFF=-3",
			"QUORIDOR_DURATION=soon",
			"QUORIDOR_LOG_LEVEL=loud",
			"QUORIDOR_GOROUTINES=0",
		} {
			_, err := Load(writeEnv(t, content))
			require.ErrorIs(t, err, ErrInvalidConfig, content)
		}
	})
}
