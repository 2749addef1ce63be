package repository

import (
	"context"

	"github.com/DealeGear/synapse/internal/model"
)

// PostRepository owns post and comment lifecycles. The stored sequence is
// most-recent-first.
type PostRepository interface {
	// Create assigns the next strictly increasing ID, prepends the post to
	// the global sequence, and persists. The stored post is returned.
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	// GetByID loads a post by ID.
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// List returns all posts, most recent first.
	List(ctx context.Context) ([]*model.Post, error)
	// Update replaces the stored record sharing p's ID.
	Update(ctx context.Context, p *model.Post) error
	// Discard removes a just-created post again. It exists solely to undo
	// Create when a dependent write fails; posts are never deleted otherwise.
	Discard(ctx context.Context, id int64) error
}
