package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coursecat/internal/app"
	"coursecat/internal/config"
	"coursecat/internal/logger"
)

func withApp(t *testing.T) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.CreateDelay = time.Millisecond
	cfg.SubmitDelay = time.Millisecond
	cfg.Location = time.UTC
	cfg.ExportDir = t.TempDir()

	a, err := app.New(cfg, logger.Discard())
	require.NoError(t, err)
	appCtx = a
	t.Cleanup(func() {
		_ = a.Close(context.Background())
		appCtx = nil
	})
	return a
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestShell_SessionPersists(t *testing.T) {
	a := withApp(t)

	script := strings.Join([]string{
		`create --title "Rust Basics" --description "Ownership, borrowing, and lifetimes." ` +
			`--instructor Jane --category Programming --level Beginner --duration "4 Weeks"`,
		`enroll 5`,
		`submit --course 5 --title "Borrow checker lab" --file lab.zip`,
		`create --title "x"`,
		`shell`,
		`exit`,
		`courses`,
	}, "\n")

	out, errOut, err := run(t, script, "shell")
	require.NoError(t, err)
	require.Contains(t, out, "Created course #5")
	require.Contains(t, out, "Enrolled in #5")
	require.Contains(t, out, "Assignment submitted successfully!")
	require.Contains(t, errOut, "Description is required.")
	require.Contains(t, errOut, "already in a shell")
	// Lines after exit are not run.
	require.NotContains(t, out, "Showing")

	require.Len(t, a.Store.Courses(), 5)
	require.True(t, a.Store.IsEnrolled(5))
	require.Len(t, a.Store.Submissions(), 1)
	require.Equal(t, "Rust Basics", a.Store.Submissions()[0].Course)
}

func TestCourses_Filters(t *testing.T) {
	withApp(t)

	out, _, err := run(t, "", "courses", "--level", "Intermediate")
	require.NoError(t, err)
	require.Contains(t, out, "UI/UX Design Principles")
	require.Contains(t, out, "Python Data Science")
	require.NotContains(t, out, "React for Beginners")
	require.Contains(t, out, "Showing 2 of 4 courses")
}

func TestDeleteAndUnenroll_MissingAreNotices(t *testing.T) {
	withApp(t)

	out, _, err := run(t, "", "delete", "42")
	require.NoError(t, err)
	require.Contains(t, out, "Course #42 not found")

	out, _, err = run(t, "", "unenroll", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Not enrolled in #1")

	_, _, err = run(t, "", "enroll", "42")
	require.Error(t, err)
}

func TestExportAndReceipt(t *testing.T) {
	a := withApp(t)

	_, _, err := run(t, "", "enroll", "2")
	require.NoError(t, err)
	_, _, err = run(t, "", "submit", "--course", "2", "--title", "Closures lab")
	require.NoError(t, err)

	_, _, err = run(t, "", "export", "--format", "json")
	require.NoError(t, err)
	_, _, err = run(t, "", "export")
	require.NoError(t, err)

	id := a.Store.Submissions()[0].ID.String()
	_, _, err = run(t, "", "receipt", id[:8])
	require.NoError(t, err)

	for _, pattern := range []string{"coursecat-*.json", "coursecat-*.xlsx", "receipt-*.pdf"} {
		matches, err := filepath.Glob(filepath.Join(a.Config.ExportDir, pattern))
		require.NoError(t, err)
		require.Len(t, matches, 1, pattern)
	}
}

func TestImport(t *testing.T) {
	a := withApp(t)
	path := filepath.Join(t.TempDir(), "seed.xlsx")

	_, _, err := run(t, "", "export", "--out", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, _, err := run(t, "", "import", path)
	require.NoError(t, err)
	require.Contains(t, out, "Created course #8: 🐍 Python Data Science")
	require.Len(t, a.Store.Courses(), 8)
}
