package tui

import "github.com/Veraticus/freemium-tools/internal/model"

// Storage messages.
type preferencesLoadedMsg struct {
	err   error
	prefs model.Preferences
}

type consentLoadedMsg struct {
	err      error
	decision *model.ConsentDecision
}

type preferencesSavedMsg struct {
	err error
}

type consentSavedMsg struct {
	err      error
	decision model.ConsentDecision
}
