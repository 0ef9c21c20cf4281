package store

import (
	"sync"

	"coursecat/internal/domain"
	"coursecat/internal/query"
)

// MemoryStore holds the catalog for one session.
type MemoryStore struct {
	mu    sync.RWMutex
	state domain.Snapshot
}

// New returns an empty store whose first course gets ID 1.
func New() *MemoryStore {
	return &MemoryStore{state: domain.Snapshot{
		Courses:     []domain.Course{},
		Enrolled:    []domain.Course{},
		Submissions: []domain.Submission{},
		NextID:      1,
	}}
}

// NewWithCourses returns a store holding courses, in order. The next ID is
// one past the largest ID among them.
func NewWithCourses(courses []domain.Course) *MemoryStore {
	s := New()
	next := domain.CourseID(1)
	for _, c := range courses {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	s.state.Courses = append([]domain.Course(nil), courses...)
	s.state.NextID = next
	return s
}

// CreateCourse assigns the next ID to draft and appends it to the catalog.
// The draft is expected to have passed validation.
func (s *MemoryStore) CreateCourse(draft domain.CourseDraft) domain.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := draft.Course(s.state.NextID)
	next := s.state
	next.Courses = appendCopy(s.state.Courses, c)
	next.NextID++
	s.state = next
	return c
}

// DeleteCourse removes the course and every enrollment for it. Submissions
// are left alone.
func (s *MemoryStore) DeleteCourse(id domain.CourseID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := find(s.state.Courses, id); !ok {
		return
	}
	next := s.state
	next.Courses = without(s.state.Courses, id)
	next.Enrolled = without(s.state.Enrolled, id)
	s.state = next
}

// Enroll records an enrollment for course. It is a no-op when the course is
// already enrolled or is not in the catalog.
func (s *MemoryStore) Enroll(course domain.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query.IsEnrolled(s.state.Enrolled, course.ID) {
		return
	}
	if _, ok := find(s.state.Courses, course.ID); !ok {
		return
	}
	next := s.state
	next.Enrolled = appendCopy(s.state.Enrolled, course)
	s.state = next
}

// Unenroll removes the enrollment for id, if any.
func (s *MemoryStore) Unenroll(id domain.CourseID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !query.IsEnrolled(s.state.Enrolled, id) {
		return
	}
	next := s.state
	next.Enrolled = without(s.state.Enrolled, id)
	s.state = next
}

// Submit appends sub to the submission log.
func (s *MemoryStore) Submit(sub domain.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	subs := make([]domain.Submission, len(s.state.Submissions), len(s.state.Submissions)+1)
	copy(subs, s.state.Submissions)
	next.Submissions = append(subs, sub)
	s.state = next
}

// Snapshot returns the current state. The returned slices are shared and
// must be treated as read-only.
func (s *MemoryStore) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Courses returns the catalog in insertion order.
func (s *MemoryStore) Courses() []domain.Course { return s.Snapshot().Courses }

// Enrollments returns the enrolled course copies in enrollment order.
func (s *MemoryStore) Enrollments() []domain.Course { return s.Snapshot().Enrolled }

// Submissions returns the submission log in append order.
func (s *MemoryStore) Submissions() []domain.Submission { return s.Snapshot().Submissions }

// Course looks up a course by ID.
func (s *MemoryStore) Course(id domain.CourseID) (domain.Course, bool) {
	return find(s.Snapshot().Courses, id)
}

// IsEnrolled reports whether the course is enrolled.
func (s *MemoryStore) IsEnrolled(id domain.CourseID) bool {
	return query.IsEnrolled(s.Snapshot().Enrolled, id)
}

// EnrollmentCountFor counts enrollments for the course.
func (s *MemoryStore) EnrollmentCountFor(id domain.CourseID) int {
	return query.EnrollmentCountFor(s.Snapshot().Enrolled, id)
}

// FilterCourses returns the courses matching f in insertion order.
func (s *MemoryStore) FilterCourses(f domain.Filter) []domain.Course {
	return query.FilterCourses(s.Snapshot().Courses, f)
}

// AvailableCourses returns the courses without an enrollment.
func (s *MemoryStore) AvailableCourses() []domain.Course {
	snap := s.Snapshot()
	available, _ := query.Partition(snap.Courses, snap.Enrolled)
	return available
}

// EnrolledCourses returns the catalog courses that have an enrollment, in
// catalog order.
func (s *MemoryStore) EnrolledCourses() []domain.Course {
	snap := s.Snapshot()
	_, taken := query.Partition(snap.Courses, snap.Enrolled)
	return taken
}

// ---------- helpers ----------

func find(courses []domain.Course, id domain.CourseID) (domain.Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Course{}, false
}

// appendCopy returns a new slice holding courses followed by c.
func appendCopy(courses []domain.Course, c domain.Course) []domain.Course {
	out := make([]domain.Course, len(courses), len(courses)+1)
	copy(out, courses)
	return append(out, c)
}

// without returns a new slice holding every course whose ID is not id.
func without(courses []domain.Course, id domain.CourseID) []domain.Course {
	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Compile-time assertion that MemoryStore implements domain.CatalogStore.
var _ domain.CatalogStore = (*MemoryStore)(nil)
