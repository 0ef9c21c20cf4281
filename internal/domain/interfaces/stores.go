package interfaces

import domaintypes "coursecat/internal/domain/types"

// CatalogStore owns courses, enrollments and submissions and is their only
// writer. Mutations never fail: a missing id is a no-op and duplicate
// enrollments are ignored.
type CatalogStore interface {
	CreateCourse(draft domaintypes.CourseDraft) domaintypes.Course
	DeleteCourse(id domaintypes.CourseID)
	Enroll(course domaintypes.Course)
	Unenroll(id domaintypes.CourseID)
	Submit(submission domaintypes.Submission)

	CatalogReader
}

// CatalogReader is the side-effect-free half of CatalogStore.
type CatalogReader interface {
	Snapshot() domaintypes.Snapshot
	Courses() []domaintypes.Course
	Enrollments() []domaintypes.Course
	Submissions() []domaintypes.Submission
	Course(id domaintypes.CourseID) (domaintypes.Course, bool)
	IsEnrolled(id domaintypes.CourseID) bool
	EnrollmentCountFor(id domaintypes.CourseID) int
	FilterCourses(filter domaintypes.Filter) []domaintypes.Course
	AvailableCourses() []domaintypes.Course
	EnrolledCourses() []domaintypes.Course
}
