package domain

import (
	interfaces "coursecat/internal/domain/interfaces"
	types "coursecat/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CourseID        = types.CourseID
	Level           = types.Level
	Course          = types.Course
	CourseDraft     = types.CourseDraft
	Filter          = types.Filter
	Submission      = types.Submission
	SubmissionDraft = types.SubmissionDraft
	Snapshot        = types.Snapshot
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CatalogStore  = interfaces.CatalogStore
	CatalogReader = interfaces.CatalogReader
)

const (
	LevelBeginner     = types.LevelBeginner
	LevelIntermediate = types.LevelIntermediate
	LevelAdvanced     = types.LevelAdvanced

	All               = types.All
	DefaultImage      = types.DefaultImage
	SubmittedAtLayout = types.SubmittedAtLayout
)

var (
	Levels     = types.Levels
	Categories = types.Categories
	Durations  = types.Durations
	Images     = types.Images

	IsLevel       = types.IsLevel
	IsCategory    = types.IsCategory
	IsDuration    = types.IsDuration
	ParseCourseID = types.ParseCourseID
)
