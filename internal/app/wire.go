package app

import (
	"coursecat/internal/config"
	"coursecat/internal/digest"
	"coursecat/internal/logger"
	"coursecat/internal/services/catalog"
	"coursecat/internal/store"
)

// New constructs the dependency graph from cfg. A nil log uses the package
// default.
func New(cfg config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Default()
	}

	st := store.New()
	if cfg.Seed {
		st = store.NewSeeded()
	}
	seeded := len(st.Snapshot().Courses)

	svc := catalog.New(st, catalog.Options{
		CreateDelay: cfg.CreateDelay,
		SubmitDelay: cfg.SubmitDelay,
		Location:    cfg.Location,
		Logger:      log,
	})

	a := &App{
		Config:  cfg,
		Store:   st,
		Catalog: svc,
		Log:     log,
		Seeded:  seeded,
	}

	if cfg.DigestSpec != "" {
		d, err := digest.Start(cfg.DigestSpec, st, seeded, log)
		if err != nil {
			return nil, err
		}
		a.digest = d
	}
	log.Debug("session ready: %d seeded course(s)", seeded)
	return a, nil
}
