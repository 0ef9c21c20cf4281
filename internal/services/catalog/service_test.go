package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coursecat/internal/domain"
	"coursecat/internal/errs"
	"coursecat/internal/logger"
	"coursecat/internal/services/catalog"
	"coursecat/internal/store"
)

const delay = 20 * time.Millisecond

func newService(t *testing.T) (*catalog.Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewSeeded()
	svc := catalog.New(st, catalog.Options{
		CreateDelay: delay,
		SubmitDelay: delay,
		Location:    time.UTC,
		Now:         func() time.Time { return time.Date(2024, 3, 10, 14, 5, 0, 0, time.UTC) },
		Logger:      logger.Discard(),
	})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = svc.Drain(ctx)
	})
	return svc, st
}

func rustBasics() domain.CourseDraft {
	return domain.CourseDraft{
		Title:       "  Rust Basics ",
		Description: "Ownership, borrowing, and lifetimes.",
		Instructor:  "Jane",
		Category:    "Programming",
		Level:       "Beginner",
		Duration:    "4 Weeks",
	}
}

func TestCreateCourse_PendingThenCommitted(t *testing.T) {
	svc, st := newService(t)

	p, err := svc.CreateCourse(context.Background(), rustBasics())
	require.NoError(t, err)
	require.Equal(t, catalog.StatePending, p.State())
	require.Len(t, st.Courses(), 4)

	c, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.True(t, p.Committed())
	require.Equal(t, domain.CourseID(5), c.ID)
	require.Equal(t, "Rust Basics", c.Title)
	require.Equal(t, domain.DefaultImage, c.Image)
	require.Len(t, st.Courses(), 5)
}

func TestCreateCourse_InvalidLeavesStoreUnchanged(t *testing.T) {
	svc, st := newService(t)
	before := st.Snapshot()

	d := rustBasics()
	d.Description = "short"
	p, err := svc.CreateCourse(context.Background(), d)
	require.Nil(t, p)
	require.True(t, errs.Is(err, errs.Invalid))
	require.Equal(t, map[string]string{"description": "Description must be at least 20 characters."}, errs.FieldsOf(err))

	time.Sleep(2 * delay)
	require.Equal(t, before, st.Snapshot())
}

func TestCreateCourse_CommitsAfterWaitCancelled(t *testing.T) {
	svc, st := newService(t)

	p, err := svc.CreateCourse(context.Background(), rustBasics())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, svc.Drain(context.Background()))
	require.True(t, p.Committed())
	_, ok := st.Course(5)
	require.True(t, ok)
}

func TestCreateCourses_BatchInOrder(t *testing.T) {
	svc, st := newService(t)

	bad := rustBasics()
	bad.Level = "Expert"
	second := rustBasics()
	second.Title = "Go Basics"

	p, rejected := svc.CreateCourses(context.Background(), []domain.CourseDraft{rustBasics(), bad, second})
	require.Len(t, rejected, 1)
	require.Equal(t, "Please select a level.", rejected[1]["level"])

	created, err := p.Wait(context.Background())
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.Equal(t, domain.CourseID(5), created[0].ID)
	require.Equal(t, domain.CourseID(6), created[1].ID)
	require.Equal(t, "Go Basics", created[1].Title)
	require.Len(t, st.Courses(), 6)
}

func TestCreateCourses_NoneValid(t *testing.T) {
	svc, _ := newService(t)
	p, rejected := svc.CreateCourses(context.Background(), []domain.CourseDraft{{}})
	require.Nil(t, p)
	require.Len(t, rejected, 1)
}

func TestEnrollUnenrollDelete(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	c, err := svc.Enroll(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "React for Beginners", c.Title)
	_, err = svc.Enroll(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, st.EnrollmentCountFor(1))

	_, err = svc.Enroll(ctx, 99)
	require.True(t, errs.Is(err, errs.NotFound))

	require.True(t, svc.Unenroll(ctx, 1))
	require.False(t, svc.Unenroll(ctx, 1))

	_, err = svc.Enroll(ctx, 2)
	require.NoError(t, err)
	require.True(t, svc.DeleteCourse(ctx, 2))
	require.False(t, st.IsEnrolled(2))
	require.False(t, svc.DeleteCourse(ctx, 2))
}

func TestSubmitAssignment(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, 2)
	require.NoError(t, err)

	p, err := svc.SubmitAssignment(ctx, domain.SubmissionDraft{CourseID: 2, Title: "Closures lab", File: "lab.zip"})
	require.NoError(t, err)
	require.Empty(t, st.Submissions())

	sub, err := p.Wait(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.CourseID(2), sub.CourseID)
	require.Equal(t, "Advanced JavaScript", sub.Course)
	require.Equal(t, "10 Mar 2024, 02:05 pm", sub.SubmittedAt)
	require.Equal(t, []domain.Submission{sub}, st.Submissions())
}

func TestSubmitAssignment_NotEnrolled(t *testing.T) {
	svc, st := newService(t)

	p, err := svc.SubmitAssignment(context.Background(), domain.SubmissionDraft{CourseID: 2, Title: "Closures lab"})
	require.Nil(t, p)
	require.Equal(t, "Please select a course.", errs.FieldsOf(err)["course"])
	require.NoError(t, svc.Drain(context.Background()))
	require.Empty(t, st.Submissions())
}

func TestSubmissionSurvivesCourseDeletion(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, 4)
	require.NoError(t, err)
	p, err := svc.SubmitAssignment(ctx, domain.SubmissionDraft{CourseID: 4, Title: "Pandas"})
	require.NoError(t, err)
	_, err = p.Wait(ctx)
	require.NoError(t, err)

	svc.DeleteCourse(ctx, 4)
	require.Len(t, st.Submissions(), 1)
	require.Equal(t, "Python Data Science", st.Submissions()[0].Course)
}

func TestDrain_TimesOut(t *testing.T) {
	st := store.NewSeeded()
	svc := catalog.New(st, catalog.Options{CreateDelay: time.Hour, Logger: logger.Discard()})
	_, err := svc.CreateCourse(context.Background(), rustBasics())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, svc.Drain(ctx), context.DeadlineExceeded)
}
