package validate

import (
	"context"
	"strings"

	"coursecat/internal/domain"
)

type submissionForm struct {
	Course int    `form:"course" validate:"required,enrolled"`
	Title  string `form:"title" validate:"required,min=3"`
}

var submissionMessages = map[string]map[string]string{
	"course": {"": "Please select a course."},
	"title":  {"": "Assignment title is required.", "min": "Title must be at least 3 characters."},
}

// NormalizeSubmission trims the title of d. Notes and file are kept as given.
func NormalizeSubmission(d domain.SubmissionDraft) domain.SubmissionDraft {
	d.Title = strings.TrimSpace(d.Title)
	return d
}

// Submission checks a submit-assignment draft. The course must be one of
// enrolled; notes and file are unconstrained.
func Submission(d domain.SubmissionDraft, enrolled []domain.Course) FieldErrors {
	ids := make(map[domain.CourseID]struct{}, len(enrolled))
	for _, c := range enrolled {
		ids[c.ID] = struct{}{}
	}
	ctx := context.WithValue(context.Background(), enrolledKey{}, ids)

	d = NormalizeSubmission(d)
	form := submissionForm{Course: int(d.CourseID), Title: d.Title}
	return run(ctx, form, submissionMessages)
}
