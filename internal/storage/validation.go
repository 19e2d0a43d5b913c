// Package storage provides the data persistence layer for freemium.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/model"
	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidSidebar  = errors.New("sidebar state set without SidebarSet")
	ErrInvalidDecision = errors.New("invalid consent decision")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validatePreferences(p model.Preferences) error {
	if !model.ValidTheme(p.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, p.Theme)
	}
	if p.SidebarOpen && !p.SidebarSet {
		return ErrInvalidSidebar
	}
	return nil
}

func validateDecision(d model.ConsentDecision) error {
	if d.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", ErrInvalidDecision)
	}
	if d.DecidedAt.IsZero() {
		return fmt.Errorf("%w: missing decision time", ErrInvalidDecision)
	}
	return nil
}
