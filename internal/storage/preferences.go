package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Veraticus/freemium-tools/internal/model"
)

const (
	prefTheme       = "theme"
	prefSidebarOpen = "sidebar_open"
)

// GetPreferences loads stored preferences over the defaults.
func (s *SQLiteStorage) GetPreferences(ctx context.Context) (model.Preferences, error) {
	if err := validateContext(ctx); err != nil {
		return model.Preferences{}, err
	}
	return s.getPreferencesTx(ctx, s.db)
}

func (s *SQLiteStorage) getPreferencesTx(ctx context.Context, q queryable) (model.Preferences, error) {
	prefs := model.DefaultPreferences()

	rows, err := q.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return prefs, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return prefs, fmt.Errorf("failed to scan preference: %w", err)
		}

		switch key {
		case prefTheme:
			if model.ValidTheme(value) {
				prefs.Theme = value
			}
		case prefSidebarOpen:
			open, err := strconv.ParseBool(value)
			if err != nil {
				continue
			}
			prefs = prefs.WithSidebar(open)
		}
	}

	return prefs, rows.Err()
}

// SavePreferences replaces the stored preferences. An unset sidebar
// choice removes any stored one.
func (s *SQLiteStorage) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePreferences(prefs); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := putPreference(ctx, tx, prefTheme, prefs.Theme); err != nil {
			return err
		}
		if !prefs.SidebarSet {
			if _, err := tx.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, prefSidebarOpen); err != nil {
				return fmt.Errorf("failed to clear sidebar preference: %w", err)
			}
			return nil
		}
		return putPreference(ctx, tx, prefSidebarOpen, strconv.FormatBool(prefs.SidebarOpen))
	})
}

func putPreference(ctx context.Context, q queryable, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}
