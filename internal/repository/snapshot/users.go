// Package snapshot implements the repository interfaces on one authoritative
// in-memory state, loaded once at startup. Every mutation persists the whole
// affected collection to its slot before returning; if the write fails the
// in-memory change is rolled back so the mutation is not partially applied.
package snapshot

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage"
)

// Users is the snapshot-backed user table.
type Users struct {
	store storage.Store
	list  []*model.User
}

// NewUsers loads the users slot into memory.
func NewUsers(ctx context.Context, store storage.Store) (*Users, error) {
	u := &Users{store: store}
	if _, err := store.Load(ctx, storage.SlotUsers, &u.list); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return u, nil
}

func (r *Users) persist(ctx context.Context) error {
	return r.store.Save(ctx, storage.SlotUsers, r.list)
}

func (r *Users) find(id uuid.UUID) *model.User {
	for _, u := range r.list {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Create inserts a new user, rejecting case-sensitive username duplicates.
func (r *Users) Create(ctx context.Context, u *model.User) error {
	for _, existing := range r.list {
		if existing.Username == u.Username {
			return errs.ErrDuplicateUsername
		}
	}
	cpy := cloneUser(u)
	r.list = append(r.list, cpy)
	if err := r.persist(ctx); err != nil {
		r.list = r.list[:len(r.list)-1]
		return err
	}
	return nil
}

// GetByID loads a user by ID.
func (r *Users) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u := r.find(id); u != nil {
		return cloneUser(u), nil
	}
	return nil, errs.ErrNotFound
}

// GetByUsername loads a user by exact username.
func (r *Users) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.list {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, errs.ErrNotFound
}

// List returns all users in table order.
func (r *Users) List(_ context.Context) ([]*model.User, error) {
	out := make([]*model.User, len(r.list))
	for i, u := range r.list {
		out[i] = cloneUser(u)
	}
	return out, nil
}

// Update replaces the stored record sharing u's ID.
func (r *Users) Update(ctx context.Context, u *model.User) error {
	for i, existing := range r.list {
		if existing.ID == u.ID {
			prev := r.list[i]
			r.list[i] = cloneUser(u)
			if err := r.persist(ctx); err != nil {
				r.list[i] = prev
				return err
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

// AddFollow records the edge on both sides and persists them in one write.
func (r *Users) AddFollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	follower := r.find(followerID)
	target := r.find(targetID)
	if follower == nil || target == nil {
		return errs.ErrNotFound
	}
	if follower.Follows(targetID) {
		return nil
	}
	follower.Following = append(follower.Following, targetID)
	target.Followers = append(target.Followers, followerID)
	if err := r.persist(ctx); err != nil {
		follower.Following = follower.Following[:len(follower.Following)-1]
		target.Followers = target.Followers[:len(target.Followers)-1]
		return err
	}
	return nil
}

// RemoveFollow removes the edge from both sides; an absent edge is a no-op.
func (r *Users) RemoveFollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	follower := r.find(followerID)
	target := r.find(targetID)
	if follower == nil || target == nil {
		return errs.ErrNotFound
	}
	if !follower.Follows(targetID) {
		return nil
	}
	prevFollowing := follower.Following
	prevFollowers := target.Followers
	follower.Following = removeUUID(follower.Following, targetID)
	target.Followers = removeUUID(target.Followers, followerID)
	if err := r.persist(ctx); err != nil {
		follower.Following = prevFollowing
		target.Followers = prevFollowers
		return err
	}
	return nil
}

// AppendPostRef appends a post ID to the user's authored list.
func (r *Users) AppendPostRef(ctx context.Context, userID uuid.UUID, postID int64) error {
	u := r.find(userID)
	if u == nil {
		return errs.ErrNotFound
	}
	u.Posts = append(u.Posts, postID)
	if err := r.persist(ctx); err != nil {
		u.Posts = u.Posts[:len(u.Posts)-1]
		return err
	}
	return nil
}

func cloneUser(u *model.User) *model.User {
	cpy := *u
	cpy.Following = append([]uuid.UUID(nil), u.Following...)
	cpy.Followers = append([]uuid.UUID(nil), u.Followers...)
	cpy.Posts = append([]int64(nil), u.Posts...)
	return &cpy
}

// removeUUID allocates a fresh slice so callers can keep the original for
// rollback.
func removeUUID(s []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
