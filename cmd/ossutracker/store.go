package main

import (
	"context"
	"fmt"

	"ossutracker/internal/config"
	"ossutracker/internal/repository"

	"github.com/golang/glog"
)

// openRepository returns the store selected by cfg and a func that releases it.
func openRepository(ctx context.Context, cfg *config.ServerConfig) (repository.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		glog.Warning("using the in-memory store; courses and progress are lost on exit")
		return repository.NewMemoryRepository(), func() {}, nil
	case config.StoreFirestore:
		repo, err := repository.NewFirebaseRepository(ctx, cfg.FirebaseCredentialsFile, cfg.FirebaseProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("error connecting to Firestore: %w", err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				glog.Warningf("error closing Firestore client: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
