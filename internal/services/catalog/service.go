package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"coursecat/internal/domain"
	"coursecat/internal/errs"
	"coursecat/internal/logger"
	"coursecat/internal/validate"
)

// Options tunes a Service. Zero values fall back to the form defaults.
type Options struct {
	CreateDelay time.Duration  // default 800ms
	SubmitDelay time.Duration  // default 900ms
	Location    *time.Location // zone for submission timestamps; default time.Local
	Now         func() time.Time
	Logger      *logger.Logger
}

const (
	defaultCreateDelay = 800 * time.Millisecond
	defaultSubmitDelay = 900 * time.Millisecond
)

// Service validates and applies catalog mutations against a store.
type Service struct {
	store       domain.CatalogStore
	log         *logger.Logger
	createDelay time.Duration
	submitDelay time.Duration
	loc         *time.Location
	now         func() time.Time

	inflight sync.WaitGroup
}

// New constructs a catalog Service over store.
func New(store domain.CatalogStore, opts Options) *Service {
	s := &Service{
		store:       store,
		log:         opts.Logger,
		createDelay: opts.CreateDelay,
		submitDelay: opts.SubmitDelay,
		loc:         opts.Location,
		now:         opts.Now,
	}
	if s.log == nil {
		s.log = logger.Default()
	}
	if s.createDelay <= 0 {
		s.createDelay = defaultCreateDelay
	}
	if s.submitDelay <= 0 {
		s.submitDelay = defaultSubmitDelay
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Store exposes the read side of the underlying store.
func (s *Service) Store() domain.CatalogReader { return s.store }

// CreateCourse validates draft and, if it passes, schedules the course to be
// added after the create delay. A rejected draft returns an errs.Invalid
// error carrying the field messages and leaves the store untouched.
func (s *Service) CreateCourse(ctx context.Context, draft domain.CourseDraft) (*Pending[domain.Course], error) {
	if fe := validate.Course(draft); !fe.OK() {
		s.log.Debug("create course rejected: %d field error(s)", len(fe))
		return nil, fe.Err()
	}
	draft = validate.NormalizeCourse(draft)
	s.log.Debug("create course %q pending for %s", draft.Title, s.createDelay)

	return after(s, s.createDelay, func() domain.Course {
		c := s.store.CreateCourse(draft)
		s.log.Info("course %d created: %s", c.ID, c.Title)
		return c
	}), nil
}

// CreateCourses validates every draft and schedules the valid ones to be
// added together, in order, after a single create delay. Rejected drafts are
// reported by their index in drafts. The pending value is nil when no draft
// passed validation.
func (s *Service) CreateCourses(ctx context.Context, drafts []domain.CourseDraft) (*Pending[[]domain.Course], map[int]validate.FieldErrors) {
	rejected := make(map[int]validate.FieldErrors)
	accepted := make([]domain.CourseDraft, 0, len(drafts))
	for i, d := range drafts {
		if fe := validate.Course(d); !fe.OK() {
			rejected[i] = fe
			continue
		}
		accepted = append(accepted, validate.NormalizeCourse(d))
	}
	if len(rejected) > 0 {
		s.log.Warn("import: %d of %d course(s) rejected", len(rejected), len(drafts))
	}
	if len(accepted) == 0 {
		return nil, rejected
	}

	return after(s, s.createDelay, func() []domain.Course {
		out := make([]domain.Course, 0, len(accepted))
		for _, d := range accepted {
			out = append(out, s.store.CreateCourse(d))
		}
		s.log.Info("imported %d course(s)", len(out))
		return out
	}), rejected
}

// DeleteCourse removes a course and its enrollment. It reports whether the
// course existed; deleting an unknown ID is not an error.
func (s *Service) DeleteCourse(ctx context.Context, id domain.CourseID) bool {
	if _, ok := s.store.Course(id); !ok {
		s.log.Debug("delete course %d: not in catalog", id)
		return false
	}
	s.store.DeleteCourse(id)
	s.log.Info("course %d deleted", id)
	return true
}

// Enroll enrolls the student in the catalog course id. Enrolling twice is
// harmless. It fails with errs.NotFound when id is not in the catalog.
func (s *Service) Enroll(ctx context.Context, id domain.CourseID) (domain.Course, error) {
	c, ok := s.store.Course(id)
	if !ok {
		return domain.Course{}, errs.E(errs.NotFound, fmt.Sprintf("course %d not found", id))
	}
	if s.store.IsEnrolled(id) {
		s.log.Debug("enroll %d: already enrolled", id)
		return c, nil
	}
	s.store.Enroll(c)
	s.log.Info("enrolled in course %d: %s", c.ID, c.Title)
	return c, nil
}

// Unenroll drops the enrollment for id and reports whether there was one.
func (s *Service) Unenroll(ctx context.Context, id domain.CourseID) bool {
	if !s.store.IsEnrolled(id) {
		s.log.Debug("unenroll %d: not enrolled", id)
		return false
	}
	s.store.Unenroll(id)
	s.log.Info("unenrolled from course %d", id)
	return true
}

// SubmitAssignment validates draft against the current enrollments and, if
// it passes, schedules the submission to be appended after the submit delay.
// The timestamp is taken now, before the delay.
func (s *Service) SubmitAssignment(ctx context.Context, draft domain.SubmissionDraft) (*Pending[domain.Submission], error) {
	enrolled := s.store.Snapshot().Enrolled
	if fe := validate.Submission(draft, enrolled); !fe.OK() {
		s.log.Debug("submission rejected: %d field error(s)", len(fe))
		return nil, fe.Err()
	}
	draft = validate.NormalizeSubmission(draft)

	var title string
	for _, c := range enrolled {
		if c.ID == draft.CourseID {
			title = c.Title
			break
		}
	}
	at := s.now().In(s.loc)
	sub := domain.Submission{
		ID:          uuid.New(),
		CourseID:    draft.CourseID,
		Course:      title,
		Title:       draft.Title,
		Notes:       draft.Notes,
		File:        draft.File,
		SubmittedAt: at.Format(domain.SubmittedAtLayout),
		CreatedAt:   at,
	}
	s.log.Debug("submission %s pending for %s", sub.ID, s.submitDelay)

	return after(s, s.submitDelay, func() domain.Submission {
		s.store.Submit(sub)
		s.log.Info("assignment %q submitted for %s", sub.Title, sub.Course)
		return sub
	}), nil
}

// Drain blocks until every pending mutation has committed or ctx ends.
func (s *Service) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
