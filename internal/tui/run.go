package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoCatalog is returned when the TUI is started without a catalog.
var ErrNoCatalog = errors.New("catalog is required")

// New builds the root model without starting a program.
func New(opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Catalog == nil {
		return Model{}, ErrNoCatalog
	}
	return newModel(cfg), nil
}

// Run starts the TUI in the alternate screen and blocks until the user
// quits or ctx is canceled.
func Run(ctx context.Context, opts ...Option) error {
	m, err := New(opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
