package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"coursecat/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: logger.WARN, Output: &buf})

	log.Info("hidden %d", 1)
	log.Warn("course %d deleted", 3)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), `msg="course 3 deleted"`)

	buf.Reset()
	log.SetLevel(logger.DEBUG)
	log.Debug("now visible")
	require.Contains(t, buf.String(), "now visible")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: logger.INFO, Output: &buf}).WithFields(map[string]any{"session": "abc"})
	log.Info("ready")
	require.Contains(t, buf.String(), "session=abc")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	require.Equal(t, logger.WARN, logger.ParseLevel(" Warning "))
	require.Equal(t, logger.ERROR, logger.ParseLevel("ERROR"))
	require.Equal(t, logger.INFO, logger.ParseLevel("loud"))
}
