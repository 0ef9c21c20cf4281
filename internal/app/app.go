package app

import (
	"context"

	"coursecat/internal/config"
	"coursecat/internal/digest"
	"coursecat/internal/logger"
	"coursecat/internal/services/catalog"
	"coursecat/internal/store"
)

// App bundles the store and services for one session.
type App struct {
	Config  config.Config
	Store   *store.MemoryStore
	Catalog *catalog.Service
	Log     *logger.Logger

	// Seeded is the number of courses the session started with.
	Seeded int

	digest *digest.Scheduler
}

// Close stops the digest and waits for pending mutations to commit.
func (a *App) Close(ctx context.Context) error {
	if a.digest != nil {
		a.digest.Stop()
	}
	return a.Catalog.Drain(ctx)
}
