package query

import (
	"math"
	"time"

	"github.com/jinzhu/now"

	"coursecat/internal/domain"
)

// CourseRow is a course together with the viewer's enrollment state.
type CourseRow struct {
	domain.Course
	Enrolled bool
}

// CatalogPage is the catalog browser: search plus level and category filters.
type CatalogPage struct {
	Rows       []CourseRow
	Total      int      // size of the unfiltered catalog
	Categories []string // filter options, All first
	Levels     []string // filter options, All first
	Filtered   bool     // any filter differs from its default
}

// Catalog builds the catalog browser view.
func Catalog(s domain.Snapshot, f domain.Filter) CatalogPage {
	matched := FilterCourses(s.Courses, f)
	filtered := f.Search != "" ||
		(f.Level != "" && f.Level != domain.All) ||
		(f.Category != "" && f.Category != domain.All)
	rows := make([]CourseRow, 0, len(matched))
	for _, c := range matched {
		rows = append(rows, CourseRow{Course: c, Enrolled: IsEnrolled(s.Enrolled, c.ID)})
	}
	return CatalogPage{
		Rows:       rows,
		Total:      len(s.Courses),
		Categories: Categories(s.Courses),
		Levels:     LevelOptions(),
		Filtered:   filtered,
	}
}

// AdminRow is one course in the admin panel with its enrollment count.
type AdminRow struct {
	domain.Course
	Enrollments int
}

// Summary holds the admin panel's headline numbers. AvgEnrollment is
// enrollments per course rounded to one decimal place, zero for an empty
// catalog. NewCourses counts courses beyond the seeded catalog.
type Summary struct {
	TotalCourses     int
	TotalEnrollments int
	TotalSubmissions int
	AvgEnrollment    float64
	NewCourses       int
	SubmittedToday   int
}

// AdminPage is the educator's dashboard.
type AdminPage struct {
	Rows        []AdminRow
	Enrolled    []domain.Course
	Submissions []domain.Submission
	Summary     Summary
}

// Admin builds the admin dashboard. Search matches titles only. seeded is
// the number of courses the session started with; at is the current time,
// used to count today's submissions in at's location.
func Admin(s domain.Snapshot, search string, seeded int, at time.Time) AdminPage {
	rows := make([]AdminRow, 0, len(s.Courses))
	for _, c := range s.Courses {
		if !MatchesTitle(c, search) {
			continue
		}
		rows = append(rows, AdminRow{Course: c, Enrollments: EnrollmentCountFor(s.Enrolled, c.ID)})
	}
	return AdminPage{
		Rows:        rows,
		Enrolled:    s.Enrolled,
		Submissions: s.Submissions,
		Summary:     Summarize(s, seeded, at),
	}
}

// Summarize computes the admin summary cards.
func Summarize(s domain.Snapshot, seeded int, at time.Time) Summary {
	sum := Summary{
		TotalCourses:     len(s.Courses),
		TotalEnrollments: len(s.Enrolled),
		TotalSubmissions: len(s.Submissions),
		NewCourses:       max(0, len(s.Courses)-seeded),
	}
	if sum.TotalCourses > 0 {
		avg := float64(sum.TotalEnrollments) / float64(sum.TotalCourses)
		sum.AvgEnrollment = math.Round(avg*10) / 10
	}
	day := now.With(at)
	start, end := day.BeginningOfDay(), day.EndOfDay()
	for _, sub := range s.Submissions {
		if !sub.CreatedAt.Before(start) && !sub.CreatedAt.After(end) {
			sum.SubmittedToday++
		}
	}
	return sum
}

// Tab selects a section of the student dashboard.
type Tab string

const (
	TabAvailable   Tab = "available"
	TabEnrolled    Tab = "enrolled"
	TabSubmissions Tab = "submissions"
)

// Tabs lists the student dashboard tabs in display order.
var Tabs = []Tab{TabAvailable, TabEnrolled, TabSubmissions}

// StudentPage is the student dashboard. Only the active tab's list is
// filtered by the search term; Counts are always unfiltered.
type StudentPage struct {
	Tab         Tab
	Available   []domain.Course
	Enrolled    []domain.Course
	Submissions []domain.Submission
	Counts      map[Tab]int
}

// Student builds the student dashboard for the active tab.
func Student(s domain.Snapshot, tab Tab, search string) StudentPage {
	available, _ := Partition(s.Courses, s.Enrolled)
	page := StudentPage{Tab: tab}
	page.Counts = map[Tab]int{
		TabAvailable:   len(available),
		TabEnrolled:    len(s.Enrolled),
		TabSubmissions: len(s.Submissions),
	}
	switch tab {
	case TabEnrolled:
		page.Enrolled = make([]domain.Course, 0, len(s.Enrolled))
		for _, c := range s.Enrolled {
			if MatchesTitle(c, search) {
				page.Enrolled = append(page.Enrolled, c)
			}
		}
	case TabSubmissions:
		page.Submissions = make([]domain.Submission, 0, len(s.Submissions))
		for _, sub := range s.Submissions {
			if containsFold(sub.Course, search) {
				page.Submissions = append(page.Submissions, sub)
			}
		}
	default:
		page.Tab = TabAvailable
		page.Available = make([]domain.Course, 0, len(available))
		for _, c := range available {
			if MatchesTitle(c, search) {
				page.Available = append(page.Available, c)
			}
		}
	}
	return page
}

// EnrollmentPage is the enrollment center.
type EnrollmentPage struct {
	Available []domain.Course
	Enrolled  []domain.Course
	Total     int
	Progress  float64 // share of the catalog enrolled in, 0-100
}

// Enrollment builds the enrollment center. Both lists come from the course
// collection, filtered by title.
func Enrollment(s domain.Snapshot, search string) EnrollmentPage {
	available, taken := Partition(s.Courses, s.Enrolled)
	page := EnrollmentPage{
		Available: filterTitle(available, search),
		Enrolled:  filterTitle(taken, search),
		Total:     len(s.Courses),
	}
	if page.Total > 0 {
		page.Progress = float64(len(s.Enrolled)) / float64(page.Total) * 100
	}
	return page
}

func filterTitle(courses []domain.Course, search string) []domain.Course {
	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if MatchesTitle(c, search) {
			out = append(out, c)
		}
	}
	return out
}

// Recent returns up to n submissions, newest first. n <= 0 returns all.
func Recent(subs []domain.Submission, n int) []domain.Submission {
	if n <= 0 || n > len(subs) {
		n = len(subs)
	}
	out := make([]domain.Submission, 0, n)
	for i := len(subs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, subs[i])
	}
	return out
}
