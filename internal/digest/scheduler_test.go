package digest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coursecat/internal/digest"
	"coursecat/internal/logger"
	"coursecat/internal/store"
)

func TestLine(t *testing.T) {
	s := store.NewSeeded()
	c, _ := s.Course(1)
	s.Enroll(c)

	line := digest.Line(s.Snapshot(), 4, time.Now())
	require.True(t, strings.HasPrefix(line, "digest rev="+store.Revision(s.Snapshot())))
	require.Contains(t, line, "courses=4 new=0 enrollments=1 submissions=0 today=0 avg=0.3")
}

func TestStart_BadSpec(t *testing.T) {
	_, err := digest.Start("not a schedule", store.New(), 0, logger.Discard())
	require.Error(t, err)
}

func TestStart_Runs(t *testing.T) {
	var buf syncBuffer
	log := logger.New(logger.Config{Level: logger.INFO, Output: &buf})

	d, err := digest.Start("@every 1s", store.NewSeeded(), 4, log)
	require.NoError(t, err)
	defer d.Stop()

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "digest rev=")
	}, 3*time.Second, 50*time.Millisecond)
}
