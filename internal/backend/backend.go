// Package backend opens the document store selected by config.
package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gtodo/internal/backend/firestore"
	"gtodo/internal/backend/local"
	"gtodo/internal/config"
	"gtodo/internal/service"
)

// Open opens the store named by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.Store, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		store, err := local.Open(local.Config{
			Path:       cfg.Local.Path,
			SyncWrites: true,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open local store at %s: %w", cfg.Local.Path, err)
		}
		return store, nil

	case config.BackendFirestore:
		logger.Debug("connecting to firestore",
			zap.String("project_id", cfg.Firestore.ProjectID),
			zap.String("emulator_host", cfg.Firestore.EmulatorHost),
		)
		return firestore.New(ctx, firestore.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			DatabaseID:      cfg.Firestore.DatabaseID,
			CredentialsFile: cfg.Firestore.CredentialsFile,
			EmulatorHost:    cfg.Firestore.EmulatorHost,
		})
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
