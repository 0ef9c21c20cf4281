package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coursecat/internal/app"
	"coursecat/internal/config"
	"coursecat/internal/domain"
	"coursecat/internal/logger"
)

func TestNew_Seeded(t *testing.T) {
	cfg := config.Default()
	cfg.CreateDelay = time.Millisecond

	a, err := app.New(cfg, logger.Discard())
	require.NoError(t, err)
	require.Equal(t, 4, a.Seeded)
	require.Len(t, a.Store.Courses(), 4)
	require.NoError(t, a.Close(context.Background()))
}

func TestNew_Empty(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = false

	a, err := app.New(cfg, logger.Discard())
	require.NoError(t, err)
	require.Zero(t, a.Seeded)
	require.Empty(t, a.Store.Courses())
	require.NoError(t, a.Close(context.Background()))
}

func TestNew_BadDigestSpec(t *testing.T) {
	cfg := config.Default()
	cfg.DigestSpec = "every tuesday"

	_, err := app.New(cfg, logger.Discard())
	require.Error(t, err)
}

func TestClose_DrainsPending(t *testing.T) {
	cfg := config.Default()
	cfg.CreateDelay = 10 * time.Millisecond
	cfg.DigestSpec = "@every 1h"

	a, err := app.New(cfg, logger.Discard())
	require.NoError(t, err)
	p, err := a.Catalog.CreateCourse(context.Background(), domain.CourseDraft{
		Title:       "Rust Basics",
		Description: "Ownership, borrowing, and lifetimes.",
		Instructor:  "Jane",
		Category:    "Programming",
		Level:       "Beginner",
		Duration:    "4 Weeks",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, a.Close(ctx))
	require.True(t, p.Committed())
	require.Len(t, a.Store.Courses(), 5)
}
