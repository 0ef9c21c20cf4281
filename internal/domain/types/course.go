package types

// Course is a catalog entry. An enrollment is held as a copy of the Course
// record it refers to.
type Course struct {
	ID          CourseID `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Level       Level    `json:"level"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
}

// CourseDraft is the create-course form state before validation.
type CourseDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
}

// Course materialises the draft under id. An empty image becomes DefaultImage.
func (d CourseDraft) Course(id CourseID) Course {
	img := d.Image
	if img == "" {
		img = DefaultImage
	}
	return Course{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Instructor:  d.Instructor,
		Level:       Level(d.Level),
		Category:    d.Category,
		Duration:    d.Duration,
		Image:       img,
	}
}

// Filter is the catalog browser's local predicate state. Empty Level or
// Category behave like All.
type Filter struct {
	Search   string
	Level    string
	Category string
}
