package service

import (
	"context"
	"errors"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// currentUser resolves the active session pointer against the user table.
// A session pointing at a missing user reads as no session at all, so the
// cached pointer can never drift from the authoritative record.
func currentUser(ctx context.Context, sess repository.SessionRepository, users repository.UserRepository) (*model.User, error) {
	id, ok, err := sess.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrNoSession
	}
	u, err := users.GetByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
