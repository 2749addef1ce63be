package snapshot

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage"
)

// Posts is the snapshot-backed post sequence, stored most-recent-first.
type Posts struct {
	store  storage.Store
	list   []*model.Post
	nextID int64
}

// NewPosts loads the posts slot and derives the next post ID from the
// highest one seen, keeping IDs strictly increasing across restarts.
func NewPosts(ctx context.Context, store storage.Store) (*Posts, error) {
	p := &Posts{store: store, nextID: 1}
	if _, err := store.Load(ctx, storage.SlotPosts, &p.list); err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	for _, post := range p.list {
		if post.ID >= p.nextID {
			p.nextID = post.ID + 1
		}
	}
	return p, nil
}

func (r *Posts) persist(ctx context.Context) error {
	return r.store.Save(ctx, storage.SlotPosts, r.list)
}

// Create assigns the next ID, prepends the post, and persists.
func (r *Posts) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	cpy := clonePost(p)
	cpy.ID = r.nextID
	r.list = append([]*model.Post{cpy}, r.list...)
	if err := r.persist(ctx); err != nil {
		r.list = r.list[1:]
		return nil, err
	}
	r.nextID++
	return clonePost(cpy), nil
}

// GetByID loads a post by ID.
func (r *Posts) GetByID(_ context.Context, id int64) (*model.Post, error) {
	for _, p := range r.list {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return nil, errs.ErrNotFound
}

// List returns all posts, most recent first.
func (r *Posts) List(_ context.Context) ([]*model.Post, error) {
	out := make([]*model.Post, len(r.list))
	for i, p := range r.list {
		out[i] = clonePost(p)
	}
	return out, nil
}

// Update replaces the stored record sharing p's ID.
func (r *Posts) Update(ctx context.Context, p *model.Post) error {
	for i, existing := range r.list {
		if existing.ID == p.ID {
			prev := r.list[i]
			r.list[i] = clonePost(p)
			if err := r.persist(ctx); err != nil {
				r.list[i] = prev
				return err
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

// Discard removes a just-created post; compensation for a failed dependent
// write, never a user-facing delete.
func (r *Posts) Discard(ctx context.Context, id int64) error {
	for i, existing := range r.list {
		if existing.ID == id {
			prev := r.list
			r.list = append(append([]*model.Post(nil), r.list[:i]...), r.list[i+1:]...)
			if err := r.persist(ctx); err != nil {
				r.list = prev
				return err
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

func clonePost(p *model.Post) *model.Post {
	cpy := *p
	cpy.Likes = append([]uuid.UUID(nil), p.Likes...)
	cpy.Reposts = append([]uuid.UUID(nil), p.Reposts...)
	cpy.Comments = append([]model.Comment(nil), p.Comments...)
	cpy.Hashtags = append([]string(nil), p.Hashtags...)
	return &cpy
}
