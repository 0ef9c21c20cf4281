package types

import "strconv"

// CourseID identifies a course for the lifetime of a store. IDs are assigned
// by the store, start at 1 and are never reused.
type CourseID int

// String returns the decimal form of the identifier.
func (id CourseID) String() string { return strconv.Itoa(int(id)) }

// ParseCourseID parses a decimal course identifier.
func ParseCourseID(s string) (CourseID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return CourseID(n), nil
}

// Level is the difficulty of a course.
type Level string

// String returns the string form of the level.
func (l Level) String() string { return string(l) }

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// All is the filter value that matches every level or category.
const All = "All"

// DefaultImage is shown for a course created without a glyph.
const DefaultImage = "📘"
