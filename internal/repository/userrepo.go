// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/model"
)

// UserRepository owns the user table and the follow edges between users.
// Returned records are copies; mutations go through repository methods only.
type UserRepository interface {
	// Create inserts a new user. Fails with errs.ErrDuplicateUsername on a
	// case-sensitive exact username match.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByUsername loads a user by exact username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// List returns all users in table order.
	List(ctx context.Context) ([]*model.User, error)
	// Update replaces the stored record sharing u's ID.
	Update(ctx context.Context, u *model.User) error
	// AddFollow records follower -> target on both sides in one write.
	// Both sides are applied together or not at all.
	AddFollow(ctx context.Context, followerID, targetID uuid.UUID) error
	// RemoveFollow removes the edge from both sides; absent edges are a no-op.
	RemoveFollow(ctx context.Context, followerID, targetID uuid.UUID) error
	// AppendPostRef appends a post ID to the user's authored list.
	AppendPostRef(ctx context.Context, userID uuid.UUID, postID int64) error
}
