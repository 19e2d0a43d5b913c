package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConsent_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetConsent(context.Background())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveConsent_LatestWins(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	declined := model.NewConsentDecision(false, base)
	accepted := model.NewConsentDecision(true, base.Add(time.Hour))

	require.NoError(t, store.SaveConsent(ctx, declined))
	require.NoError(t, store.SaveConsent(ctx, accepted))

	got, err := store.GetConsent(ctx)
	require.NoError(t, err)
	assert.Equal(t, accepted.ID, got.ID)
	assert.True(t, got.Accepted)
	assert.True(t, got.DecidedAt.Equal(accepted.DecidedAt))
}

func TestSaveConsent_Declined(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	d := model.NewConsentDecision(false, time.Now())
	require.NoError(t, store.SaveConsent(ctx, d))

	got, err := store.GetConsent(ctx)
	require.NoError(t, err)
	assert.False(t, got.Accepted)
	assert.Equal(t, d.ID, got.ID)
}

func TestSaveConsent_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	err := store.SaveConsent(ctx, model.ConsentDecision{DecidedAt: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidDecision)

	err = store.SaveConsent(ctx, model.ConsentDecision{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestClearConsent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveConsent(ctx, model.NewConsentDecision(true, time.Now())))
	require.NoError(t, store.ClearConsent(ctx))

	_, err := store.GetConsent(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Clearing an empty table is fine.
	require.NoError(t, store.ClearConsent(ctx))
}
