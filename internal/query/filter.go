package query

import (
	"strings"

	"coursecat/internal/domain"
)

// containsFold reports whether substr occurs in s, ignoring case. An empty
// substr matches everything.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchesText reports whether search occurs in the course title or
// description, ignoring case.
func MatchesText(c domain.Course, search string) bool {
	return containsFold(c.Title, search) || containsFold(c.Description, search)
}

// MatchesTitle reports whether search occurs in the course title, ignoring case.
func MatchesTitle(c domain.Course, search string) bool {
	return containsFold(c.Title, search)
}

func matchesOption(value, want string) bool {
	return want == "" || want == domain.All || value == want
}

// Matches reports whether c satisfies every part of f.
func Matches(c domain.Course, f domain.Filter) bool {
	return MatchesText(c, f.Search) &&
		matchesOption(string(c.Level), f.Level) &&
		matchesOption(c.Category, f.Category)
}

// FilterCourses returns the courses matching f in their original order.
func FilterCourses(courses []domain.Course, f domain.Filter) []domain.Course {
	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if Matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

// IsEnrolled reports whether an enrollment for id exists.
func IsEnrolled(enrolled []domain.Course, id domain.CourseID) bool {
	return EnrollmentCountFor(enrolled, id) > 0
}

// EnrollmentCountFor counts enrollment entries for id. Enroll keeps this at
// 0 or 1; it is still computed as a count.
func EnrollmentCountFor(enrolled []domain.Course, id domain.CourseID) int {
	n := 0
	for _, c := range enrolled {
		if c.ID == id {
			n++
		}
	}
	return n
}

// Partition splits courses into those without and those with an enrollment,
// keeping course order in both halves.
func Partition(courses, enrolled []domain.Course) (available, taken []domain.Course) {
	ids := make(map[domain.CourseID]struct{}, len(enrolled))
	for _, c := range enrolled {
		ids[c.ID] = struct{}{}
	}
	available = make([]domain.Course, 0, len(courses))
	taken = make([]domain.Course, 0, len(enrolled))
	for _, c := range courses {
		if _, ok := ids[c.ID]; ok {
			taken = append(taken, c)
		} else {
			available = append(available, c)
		}
	}
	return available, taken
}

// Categories returns All followed by the distinct non-empty categories in
// order of first appearance.
func Categories(courses []domain.Course) []string {
	out := []string{domain.All}
	seen := make(map[string]struct{})
	for _, c := range courses {
		if c.Category == "" {
			continue
		}
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}

// LevelOptions returns All followed by every level.
func LevelOptions() []string {
	out := []string{domain.All}
	for _, l := range domain.Levels {
		out = append(out, string(l))
	}
	return out
}
