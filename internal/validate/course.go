package validate

import (
	"context"
	"strings"

	"coursecat/internal/domain"
)

type courseForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required,min=20"`
	Instructor  string `form:"instructor" validate:"required"`
	Category    string `form:"category" validate:"required,category"`
	Level       string `form:"level" validate:"required,level"`
	Duration    string `form:"duration" validate:"required,duration"`
}

var courseMessages = map[string]map[string]string{
	"title":       {"": "Course title is required."},
	"description": {"": "Description is required.", "min": "Description must be at least 20 characters."},
	"instructor":  {"": "Instructor name is required."},
	"category":    {"": "Please select a category."},
	"level":       {"": "Please select a level."},
	"duration":    {"": "Please select a duration."},
}

// NormalizeCourse trims the free-text fields of d.
func NormalizeCourse(d domain.CourseDraft) domain.CourseDraft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Instructor = strings.TrimSpace(d.Instructor)
	return d
}

// Course checks a create-course draft. Text fields are judged after
// trimming; lengths count characters, not bytes. Category, level and
// duration must come from their option sets.
func Course(d domain.CourseDraft) FieldErrors {
	d = NormalizeCourse(d)
	form := courseForm{
		Title:       d.Title,
		Description: d.Description,
		Instructor:  d.Instructor,
		Category:    d.Category,
		Level:       d.Level,
		Duration:    d.Duration,
	}
	return run(context.Background(), form, courseMessages)
}
