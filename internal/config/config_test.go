package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coursecat/internal/config"
)

var keys = []string{
	"COURSECAT_SEED",
	"COURSECAT_CREATE_DELAY",
	"COURSECAT_SUBMIT_DELAY",
	"COURSECAT_LOG_LEVEL",
	"COURSECAT_TIMEZONE",
	"COURSECAT_DIGEST",
	"COURSECAT_EXPORT_DIR",
}

// clearEnv blanks every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	def := config.Default()
	require.Equal(t, def.Seed, cfg.Seed)
	require.Equal(t, def.CreateDelay, cfg.CreateDelay)
	require.Equal(t, def.SubmitDelay, cfg.SubmitDelay)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, time.Local, cfg.Location)
	require.Empty(t, cfg.DigestSpec)
	require.Equal(t, ".", cfg.ExportDir)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSECAT_SEED", "false")
	t.Setenv("COURSECAT_CREATE_DELAY", "5ms")
	t.Setenv("COURSECAT_SUBMIT_DELAY", "1s")
	t.Setenv("COURSECAT_TIMEZONE", "UTC")
	t.Setenv("COURSECAT_DIGEST", "@every 1m")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.False(t, cfg.Seed)
	require.Equal(t, 5*time.Millisecond, cfg.CreateDelay)
	require.Equal(t, time.Second, cfg.SubmitDelay)
	require.Equal(t, "UTC", cfg.Location.String())
	require.Equal(t, "@every 1m", cfg.DigestSpec)
}

func TestFromEnv_Malformed(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSECAT_CREATE_DELAY", "soon")

	_, err := config.FromEnv()
	var ve *config.ValueError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "COURSECAT_CREATE_DELAY", ve.Key)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even when
	// empty, so unset the one under test.
	require.NoError(t, os.Unsetenv("COURSECAT_EXPORT_DIR"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("COURSECAT_EXPORT_DIR=/tmp/reports\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/reports", cfg.ExportDir)
	require.NoError(t, os.Unsetenv("COURSECAT_EXPORT_DIR"))
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
