// Package commands defines the coursecat CLI and wires dependencies for subcommands.
//
// Commands
//
//   - courses        Browse the catalog with search, level and category filters
//   - create         Create a course (lands after the create delay)
//   - delete         Delete a course and its enrollment
//   - enroll         Enroll in a course
//   - unenroll       Drop an enrollment
//   - enrolled       Show the enrollment center
//   - submit         Submit an assignment (lands after the submit delay)
//   - submissions    List submissions, newest first
//   - stats          Show the admin dashboard
//   - dashboard      Show the student dashboard
//   - export         Write an xlsx or JSON report
//   - import         Create courses from an xlsx sheet
//   - receipt        Render a PDF receipt for a submission
//   - shell          Run commands against one in-memory session
//
// # Implementation
//
// The root command loads config and builds the App once, before the first
// subcommand runs. State lives only in memory, so a single command sees the
// seeded catalog and nothing more; the shell command keeps one App alive and
// re-dispatches each input line through a fresh command tree.
package commands
