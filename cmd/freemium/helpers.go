package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/freemium-tools/internal/config"
	"github.com/Veraticus/freemium-tools/internal/storage"
)

// initStorage opens the preferences database named by the configuration
// and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
