package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime options for a coursecat session.
type Config struct {
	Seed        bool          // start from the built-in catalog
	CreateDelay time.Duration // latency before a created course lands
	SubmitDelay time.Duration // latency before a submission lands
	LogLevel    string
	Location    *time.Location // zone used to format submission timestamps
	DigestSpec  string         // cron spec for the session digest; empty disables it
	ExportDir   string
}

// Load reads .env (if present) and the environment. It only fails on a
// value that is present but malformed.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing .env is fine; fall back to the process environment.
		_ = godotenv.Load(f)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel:   getEnvWithDefault("COURSECAT_LOG_LEVEL", "info"),
		DigestSpec: getEnvWithDefault("COURSECAT_DIGEST", ""),
		ExportDir:  getEnvWithDefault("COURSECAT_EXPORT_DIR", "."),
	}

	var err error
	if cfg.Seed, err = strconv.ParseBool(getEnvWithDefault("COURSECAT_SEED", "true")); err != nil {
		return Config{}, &ValueError{Key: "COURSECAT_SEED", Err: err}
	}
	if cfg.CreateDelay, err = time.ParseDuration(getEnvWithDefault("COURSECAT_CREATE_DELAY", "800ms")); err != nil {
		return Config{}, &ValueError{Key: "COURSECAT_CREATE_DELAY", Err: err}
	}
	if cfg.SubmitDelay, err = time.ParseDuration(getEnvWithDefault("COURSECAT_SUBMIT_DELAY", "900ms")); err != nil {
		return Config{}, &ValueError{Key: "COURSECAT_SUBMIT_DELAY", Err: err}
	}
	tz := getEnvWithDefault("COURSECAT_TIMEZONE", "Local")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return Config{}, &ValueError{Key: "COURSECAT_TIMEZONE", Err: err}
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Seed:        true,
		CreateDelay: 800 * time.Millisecond,
		SubmitDelay: 900 * time.Millisecond,
		LogLevel:    "info",
		Location:    time.Local,
		ExportDir:   ".",
	}
}

// ValueError reports a malformed environment value.
type ValueError struct {
	Key string
	Err error
}

func (e *ValueError) Error() string { return "config: " + e.Key + ": " + e.Err.Error() }

func (e *ValueError) Unwrap() error { return e.Err }

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
