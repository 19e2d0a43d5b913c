package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/model"
)

// GetConsent returns the most recent consent decision.
func (s *SQLiteStorage) GetConsent(ctx context.Context) (*model.ConsentDecision, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		d        model.ConsentDecision
		accepted int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, accepted, decided_at
		FROM consent_decisions
		ORDER BY decided_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&d.ID, &accepted, &d.DecidedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consent: %w", err)
	}

	d.Accepted = accepted == 1
	d.DecidedAt = d.DecidedAt.UTC()
	return &d, nil
}

// SaveConsent records a decision. Earlier decisions are kept; the latest
// one wins.
func (s *SQLiteStorage) SaveConsent(ctx context.Context, decision model.ConsentDecision) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDecision(decision); err != nil {
		return err
	}

	accepted := 0
	if decision.Accepted {
		accepted = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO consent_decisions (id, accepted, decided_at)
		VALUES (?, ?, ?)
	`, decision.ID.String(), accepted, decision.DecidedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save consent: %w", err)
	}
	return nil
}

// ClearConsent forgets every decision so the banner shows again.
func (s *SQLiteStorage) ClearConsent(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM consent_decisions`); err != nil {
		return fmt.Errorf("failed to clear consent: %w", err)
	}
	return nil
}
