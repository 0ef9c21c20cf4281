package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"coursecat/internal/domain"
	"coursecat/internal/query"
	"coursecat/internal/store"
)

// Sheet names used by ExportXLSX.
const (
	SheetCourses     = "Courses"
	SheetEnrollments = "Enrollments"
	SheetSubmissions = "Submissions"
	SheetMeta        = "Meta"
)

var (
	courseHeader     = []any{"ID", "Title", "Description", "Instructor", "Level", "Category", "Duration", "Image", "Enrollments"}
	enrollmentHeader = []any{"Course ID", "Title", "Instructor"}
	submissionHeader = []any{"ID", "Course ID", "Course", "Title", "Notes", "File", "Submitted At"}
)

// ExportXLSX writes the snapshot to an .xlsx workbook at path.
func ExportXLSX(path string, s domain.Snapshot, at time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCourses); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetEnrollments, SheetSubmissions, SheetMeta} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	courses := make([][]any, 0, len(s.Courses))
	for _, c := range s.Courses {
		courses = append(courses, []any{
			int(c.ID), c.Title, c.Description, c.Instructor, string(c.Level),
			c.Category, c.Duration, c.Image, query.EnrollmentCountFor(s.Enrolled, c.ID),
		})
	}
	enrollments := make([][]any, 0, len(s.Enrolled))
	for _, c := range s.Enrolled {
		enrollments = append(enrollments, []any{int(c.ID), c.Title, c.Instructor})
	}
	submissions := make([][]any, 0, len(s.Submissions))
	for _, sub := range s.Submissions {
		submissions = append(submissions, []any{
			sub.ID.String(), int(sub.CourseID), sub.Course, sub.Title, sub.Notes, sub.File, sub.SubmittedAt,
		})
	}
	meta := [][]any{
		{"Revision", store.Revision(s)},
		{"Generated", at.Format(time.RFC3339)},
		{"Courses", len(s.Courses)},
		{"Enrollments", len(s.Enrolled)},
		{"Submissions", len(s.Submissions)},
	}

	if err := writeRows(f, SheetCourses, courseHeader, courses); err != nil {
		return err
	}
	if err := writeRows(f, SheetEnrollments, enrollmentHeader, enrollments); err != nil {
		return err
	}
	if err := writeRows(f, SheetSubmissions, submissionHeader, submissions); err != nil {
		return err
	}
	if err := writeRows(f, SheetMeta, nil, meta); err != nil {
		return err
	}

	return writeFile(path, 0o644, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	r := 1
	if header != nil {
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("%s header: %w", sheet, err)
		}
		r++
	}
	for _, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, r, err)
		}
		r++
	}
	return nil
}

// ExportJSON writes the snapshot and its revision as indented JSON.
func ExportJSON(path string, s domain.Snapshot, at time.Time) error {
	doc := struct {
		Revision  string          `json:"revision"`
		Generated string          `json:"generated"`
		Snapshot  domain.Snapshot `json:"snapshot"`
	}{
		Revision:  store.Revision(s),
		Generated: at.Format(time.RFC3339),
		Snapshot:  s,
	}
	return writeJSON(path, doc, 0o644)
}

// RowError describes a sheet row ImportCourses could not read.
type RowError struct {
	Row    int // 1-based sheet row
	Reason string
}

// ImportCourses reads course drafts from the Courses sheet of an .xlsx file,
// or from its first sheet when there is no Courses sheet. Columns are found
// by header name, so column order does not matter. Blank rows are skipped;
// drafts are not validated here.
func ImportCourses(path string) ([]domain.CourseDraft, []RowError, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("no sheets found in %s", path)
	}
	sheet := sheets[0]
	if idx, err := f.GetSheetIndex(SheetCourses); err == nil && idx >= 0 {
		sheet = SheetCourses
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no data in sheet %s", sheet)
	}

	cols := detectColumns(rows[0])
	if cols["title"] < 0 {
		return nil, nil, fmt.Errorf("sheet %s has no title column", sheet)
	}

	var (
		drafts  []domain.CourseDraft
		skipped []RowError
	)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		d := domain.CourseDraft{
			Title:       field(row, cols["title"]),
			Description: field(row, cols["description"]),
			Instructor:  field(row, cols["instructor"]),
			Category:    field(row, cols["category"]),
			Level:       normalizeLevel(field(row, cols["level"])),
			Duration:    field(row, cols["duration"]),
			Image:       field(row, cols["image"]),
		}
		if d.Title == "" {
			skipped = append(skipped, RowError{Row: i + 1, Reason: "missing title"})
			continue
		}
		drafts = append(drafts, d)
	}
	return drafts, skipped, nil
}

// detectColumns finds column indices by matching header names. Missing
// columns map to -1.
func detectColumns(headers []string) map[string]int {
	indices := map[string]int{
		"title":       -1,
		"description": -1,
		"instructor":  -1,
		"category":    -1,
		"level":       -1,
		"duration":    -1,
		"image":       -1,
	}
	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "title", "course", "course title", "name":
			indices["title"] = i
		case "description", "summary":
			indices["description"] = i
		case "instructor", "teacher", "tutor":
			indices["instructor"] = i
		case "category", "subject":
			indices["category"] = i
		case "level", "difficulty":
			indices["level"] = i
		case "duration", "length":
			indices["duration"] = i
		case "image", "icon":
			indices["image"] = i
		}
	}
	return indices
}

// normalizeLevel accepts levels in any letter case.
func normalizeLevel(s string) string {
	for _, l := range domain.Levels {
		if strings.EqualFold(s, string(l)) {
			return string(l)
		}
	}
	return s
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// String formats the row error for display.
func (e RowError) String() string {
	return "row " + strconv.Itoa(e.Row) + ": " + e.Reason
}
