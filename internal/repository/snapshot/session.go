package snapshot

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage"
)

// Session stores the single active user ID in its own slot. An unparseable
// stored value reads as "no session" rather than failing startup.
type Session struct {
	store storage.Store
}

// NewSession wraps the session slot.
func NewSession(store storage.Store) *Session {
	return &Session{store: store}
}

// Get returns the active user ID and whether a session exists.
func (s *Session) Get(ctx context.Context) (uuid.UUID, bool, error) {
	var raw string
	ok, err := s.store.Load(ctx, storage.SlotCurrentUser, &raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("load session: %w", err)
	}
	if !ok || raw == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// Set records the active user ID.
func (s *Session) Set(ctx context.Context, userID uuid.UUID) error {
	return s.store.Save(ctx, storage.SlotCurrentUser, userID.String())
}

// Clear drops the session pointer.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, storage.SlotCurrentUser)
}

// Preferences stores UI flags in the preferences slot.
type Preferences struct {
	store storage.Store
}

// NewPreferences wraps the preferences slot.
func NewPreferences(store storage.Store) *Preferences {
	return &Preferences{store: store}
}

// Get returns the stored preferences, zero-valued when never set.
func (p *Preferences) Get(ctx context.Context) (model.Preferences, error) {
	var prefs model.Preferences
	if _, err := p.store.Load(ctx, storage.SlotPreferences, &prefs); err != nil {
		return model.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return prefs, nil
}

// Set stores the preferences.
func (p *Preferences) Set(ctx context.Context, prefs model.Preferences) error {
	return p.store.Save(ctx, storage.SlotPreferences, prefs)
}
