package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Preferences key/value table",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS preferences (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`)
			if err != nil {
				return fmt.Errorf("failed to create preferences table: %w", err)
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Cookie consent decisions",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS consent_decisions (
					id TEXT PRIMARY KEY,
					accepted INTEGER NOT NULL CHECK (accepted IN (0, 1)),
					decided_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_consent_decided_at ON consent_decisions(decided_at)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// SchemaVersion reports the database's current user_version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return v, nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if currentVersion > ExpectedSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d",
			currentVersion, ExpectedSchemaVersion)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		err := s.withTx(ctx, func(tx *sql.Tx) error {
			if upErr := migration.Up(tx); upErr != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
			}
			if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
				return fmt.Errorf("failed to update schema version: %w", execErr)
			}
			return nil
		})
		if err != nil {
			return err
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
