package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsentDecision is a recorded answer to the cookie banner.
type ConsentDecision struct {
	DecidedAt time.Time `json:"decided_at"`
	ID        uuid.UUID `json:"id"`
	Accepted  bool      `json:"accepted"`
}

// NewConsentDecision stamps a new decision.
func NewConsentDecision(accepted bool, at time.Time) ConsentDecision {
	return ConsentDecision{
		ID:        uuid.New(),
		Accepted:  accepted,
		DecidedAt: at.UTC(),
	}
}

// Label is the stored answer as the banner would show it.
func (c ConsentDecision) Label() string {
	if c.Accepted {
		return "accepted"
	}
	return "declined"
}
