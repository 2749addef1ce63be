package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/model"
)

// SessionRepository tracks the single active session. Only the user ID is
// stored; callers resolve it against the user table so the session can never
// drift from the authoritative record.
type SessionRepository interface {
	// Get returns the active user ID and whether a session exists.
	Get(ctx context.Context) (uuid.UUID, bool, error)
	// Set records the active user ID and persists.
	Set(ctx context.Context, userID uuid.UUID) error
	// Clear drops the session pointer.
	Clear(ctx context.Context) error
}

// PreferenceRepository stores UI-facing flags (theme, language).
type PreferenceRepository interface {
	// Get returns the stored preferences, zero-valued when never set.
	Get(ctx context.Context) (model.Preferences, error)
	// Set stores the preferences and persists.
	Set(ctx context.Context, p model.Preferences) error
}
