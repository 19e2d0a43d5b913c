// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/freemium-tools/internal/model"
)

// PreferenceStore persists UI preferences and cookie consent.
type PreferenceStore interface {
	// GetPreferences returns stored preferences, or defaults when none
	// have been saved.
	GetPreferences(ctx context.Context) (model.Preferences, error)
	SavePreferences(ctx context.Context, prefs model.Preferences) error

	// GetConsent returns the latest consent decision. It returns
	// common.ErrNotFound when the banner has never been answered.
	GetConsent(ctx context.Context) (*model.ConsentDecision, error)
	SaveConsent(ctx context.Context, decision model.ConsentDecision) error
	ClearConsent(ctx context.Context) error
}

// Storage is a PreferenceStore backed by a database.
type Storage interface {
	PreferenceStore

	Migrate(ctx context.Context) error
	Close() error
}
