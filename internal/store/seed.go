package store

import "coursecat/internal/domain"

// seedCourses is the catalog a new session starts with.
var seedCourses = []domain.Course{
	{
		ID:          1,
		Title:       "React for Beginners",
		Description: "Learn the fundamentals of React.js, hooks, and component-based architecture.",
		Instructor:  "Dr. Sarah Collins",
		Duration:    "6 Weeks",
		Level:       domain.LevelBeginner,
		Category:    "Web Development",
		Image:       "⚛️",
	},
	{
		ID:          2,
		Title:       "Advanced JavaScript",
		Description: "Deep dive into closures, async/await, prototypes, and modern ES6+ features.",
		Instructor:  "Prof. Mark Evans",
		Duration:    "8 Weeks",
		Level:       domain.LevelAdvanced,
		Category:    "Programming",
		Image:       "🟨",
	},
	{
		ID:          3,
		Title:       "UI/UX Design Principles",
		Description: "Master user interface design, wireframing, and creating stunning user experiences.",
		Instructor:  "Ms. Priya Sharma",
		Duration:    "5 Weeks",
		Level:       domain.LevelIntermediate,
		Category:    "Design",
		Image:       "🎨",
	},
	{
		ID:          4,
		Title:       "Python Data Science",
		Description: "Explore data analysis, visualization, and machine learning using Python & Pandas.",
		Instructor:  "Dr. Alan Wright",
		Duration:    "10 Weeks",
		Level:       domain.LevelIntermediate,
		Category:    "Data Science",
		Image:       "🐍",
	},
}

// SeedCourses returns a copy of the built-in catalog.
func SeedCourses() []domain.Course {
	return append([]domain.Course(nil), seedCourses...)
}

// NewSeeded returns a store holding the built-in catalog; the next ID is 5.
func NewSeeded() *MemoryStore {
	return NewWithCourses(seedCourses)
}
