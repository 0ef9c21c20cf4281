// Package digest logs a periodic one-line summary of the session's catalog.
package digest

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"coursecat/internal/domain"
	"coursecat/internal/logger"
	"coursecat/internal/query"
	"coursecat/internal/store"
)

// Line renders the digest for a snapshot.
func Line(s domain.Snapshot, seeded int, at time.Time) string {
	sum := query.Summarize(s, seeded, at)
	return fmt.Sprintf(
		"digest rev=%s courses=%d new=%d enrollments=%d submissions=%d today=%d avg=%.1f",
		store.Revision(s),
		sum.TotalCourses,
		sum.NewCourses,
		sum.TotalEnrollments,
		sum.TotalSubmissions,
		sum.SubmittedToday,
		sum.AvgEnrollment,
	)
}

// Scheduler runs the digest job on a cron schedule.
type Scheduler struct {
	c *cron.Cron
}

// Start schedules the digest on spec (standard cron syntax or descriptors
// such as "@every 1m") and starts the cron runner.
func Start(spec string, reader domain.CatalogReader, seeded int, log *logger.Logger) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Info("%s", Line(reader.Snapshot(), seeded, time.Now()))
	})
	if err != nil {
		return nil, fmt.Errorf("digest schedule %q: %w", spec, err)
	}
	c.Start()
	log.Debug("digest scheduled: %s", spec)
	return &Scheduler{c: c}, nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
}
