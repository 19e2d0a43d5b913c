package tui

import (
	"context"
	"errors"
	"time"

	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

const storeTimeout = 5 * time.Second

// loadPreferences reads the stored preferences.
func (m Model) loadPreferences() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		prefs, err := store.GetPreferences(ctx)
		if err != nil {
			return preferencesLoadedMsg{prefs: model.DefaultPreferences(), err: err}
		}
		return preferencesLoadedMsg{prefs: prefs}
	}
}

// loadConsent reads the latest cookie decision. No decision is not an
// error.
func (m Model) loadConsent() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		decision, err := store.GetConsent(ctx)
		if errors.Is(err, common.ErrNotFound) {
			return consentLoadedMsg{}
		}
		if err != nil {
			return consentLoadedMsg{err: err}
		}
		return consentLoadedMsg{decision: decision}
	}
}

// savePreferences persists prefs. It returns nil when there is no store.
func (m Model) savePreferences(prefs model.Preferences) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return preferencesSavedMsg{err: store.SavePreferences(ctx, prefs)}
	}
}

// saveConsent persists a cookie decision. It returns nil when there is no
// store.
func (m Model) saveConsent(decision model.ConsentDecision) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return consentSavedMsg{decision: decision, err: store.SaveConsent(ctx, decision)}
	}
}
