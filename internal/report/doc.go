// Package report writes session reports and reads course sheets.
//
// Reports are point-in-time exports of a catalog snapshot, stamped with the
// snapshot's revision so a file can be matched to the state it came from:
//   - ExportXLSX writes Courses, Enrollments, Submissions and Meta sheets
//   - ExportJSON writes the snapshot as indented JSON
//   - ImportCourses reads course drafts from a sheet with a header row
//   - Receipt renders a one-page PDF receipt for a submission
//
// All writers go through a temp file and rename, so a failed export never
// leaves a truncated file behind.
package report
