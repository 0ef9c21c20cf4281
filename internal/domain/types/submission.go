package types

import (
	"time"

	"github.com/google/uuid"
)

// SubmittedAtLayout formats the timestamp captured when an assignment is
// turned in, e.g. "16 Oct 2026, 02:05 pm".
const SubmittedAtLayout = "02 Jan 2006, 03:04 pm"

// Submission is an immutable record of an assignment turned in for a course.
//
// CourseID references the course; Course keeps the course title as it was at
// submission time, so the record stays readable after the course is renamed
// or deleted.
type Submission struct {
	ID          uuid.UUID `json:"id"`
	CourseID    CourseID  `json:"course_id"`
	Course      string    `json:"course"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes,omitempty"`
	File        string    `json:"file,omitempty"`
	SubmittedAt string    `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmissionDraft is the submit-assignment form state. A zero CourseID means
// no course has been selected.
type SubmissionDraft struct {
	CourseID CourseID `json:"course_id"`
	Title    string   `json:"title"`
	Notes    string   `json:"notes"`
	File     string   `json:"file"`
}
