package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// RegisterResult reports a created account plus any achievements the action
// unlocked, so the caller decides whether and how to surface them.
type RegisterResult struct {
	User     *model.User
	Unlocked []string
}

// AuthService manages accounts and the single active session.
type AuthService interface {
	// Register creates an account, establishes it as the active session,
	// and reports the firstAccount unlock.
	Register(ctx context.Context, username, secret, bio string) (RegisterResult, error)
	// Login authenticates by exact match of username and secret and
	// establishes the session. Callers cannot tell an unknown user from a
	// wrong secret.
	Login(ctx context.Context, username, secret string) (*model.User, error)
	// Logout clears the session pointer; the user table is untouched.
	Logout(ctx context.Context) error
	// Current returns the session user, resolved against the user table.
	Current(ctx context.Context) (*model.User, error)
	// UpdateBio edits the current user's bio.
	UpdateBio(ctx context.Context, bio string) (*model.User, error)
}

type AuthServiceImpl struct {
	users   repository.UserRepository
	session repository.SessionRepository
	tracker AchievementService
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, session repository.SessionRepository, tracker AchievementService) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, session: session, tracker: tracker}
}

// Register creates a user with an empty graph and a deterministic avatar
// reference derived from the username.
func (s *AuthServiceImpl) Register(ctx context.Context, username, secret, bio string) (RegisterResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || secret == "" {
		return RegisterResult{}, fmt.Errorf("%w: username and secret are required", errs.ErrEmptyField)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return RegisterResult{}, err
	}
	u := &model.User{
		ID:        id,
		Username:  username,
		Secret:    secret,
		Bio:       bio,
		Avatar:    avatarFor(username),
		Following: []uuid.UUID{},
		Followers: []uuid.UUID{},
		Posts:     []int64{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return RegisterResult{}, err
	}
	if err := s.session.Set(ctx, u.ID); err != nil {
		return RegisterResult{}, err
	}

	res := RegisterResult{User: u}
	newly, err := s.tracker.Unlock(ctx, model.AchievementFirstAccount)
	if err != nil {
		return res, err
	}
	if newly {
		res.Unlocked = append(res.Unlocked, model.AchievementFirstAccount)
	}
	return res, nil
}

// Login authenticates and establishes the session.
func (s *AuthServiceImpl) Login(ctx context.Context, username, secret string) (*model.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || u.Secret != secret {
		// hide existence of the user on wrong secret
		return nil, errs.ErrInvalidCredentials
	}
	if err := s.session.Set(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout clears the active session pointer.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// Current resolves the restored session without re-checking the secret;
// local storage is the trust boundary.
func (s *AuthServiceImpl) Current(ctx context.Context) (*model.User, error) {
	return currentUser(ctx, s.session, s.users)
}

// UpdateBio edits the current user's bio. Historical posts pick the change
// up automatically because they reference the author by ID.
func (s *AuthServiceImpl) UpdateBio(ctx context.Context, bio string) (*model.User, error) {
	u, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	u.Bio = bio
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// avatarFor derives a stable avatar reference from the username.
func avatarFor(username string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/150/150.jpg", username)
}
