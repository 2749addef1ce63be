package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/layout"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// Connection-graph canvas geometry. Fixed so the layout is reproducible.
const (
	graphCenterX = 300.0
	graphCenterY = 300.0
	graphRadius  = 200.0
)

// FollowResult reports whether a new edge was created and any achievement
// the action unlocked.
type FollowResult struct {
	Followed bool
	Unlocked []string
}

// SocialService owns the follow graph between users.
type SocialService interface {
	// Follow adds current-user -> target. Self-follows and existing edges
	// leave state unchanged. A new edge reports the firstConnection unlock.
	Follow(ctx context.Context, targetID uuid.UUID) (FollowResult, error)
	// Unfollow removes the edge from both sides; absent edges are a no-op.
	Unfollow(ctx context.Context, targetID uuid.UUID) error
	// Connections returns the user's following or followers as full records,
	// in insertion order.
	Connections(ctx context.Context, userID uuid.UUID, dir model.Direction) ([]*model.User, error)
	// ConnectionGraph lays out {user} ∪ following on a fixed-radius circle
	// for the visualization layer.
	ConnectionGraph(ctx context.Context, userID uuid.UUID) (*layout.Graph, error)
}

type SocialServiceImpl struct {
	users   repository.UserRepository
	session repository.SessionRepository
	tracker AchievementService
}

// NewSocialService constructs SocialService with required dependencies.
func NewSocialService(users repository.UserRepository, session repository.SessionRepository, tracker AchievementService) *SocialServiceImpl {
	return &SocialServiceImpl{users: users, session: session, tracker: tracker}
}

// Follow adds the edge on both sides as one logical transaction.
func (s *SocialServiceImpl) Follow(ctx context.Context, targetID uuid.UUID) (FollowResult, error) {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return FollowResult{}, err
	}
	if me.ID == targetID {
		// self-follow is rejected outright
		return FollowResult{}, nil
	}
	if me.Follows(targetID) {
		return FollowResult{}, nil
	}
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return FollowResult{}, fmt.Errorf("follow target: %w", err)
	}
	if err := s.users.AddFollow(ctx, me.ID, targetID); err != nil {
		return FollowResult{}, err
	}

	res := FollowResult{Followed: true}
	newly, err := s.tracker.Unlock(ctx, model.AchievementFirstConnection)
	if err != nil {
		return res, err
	}
	if newly {
		res.Unlocked = append(res.Unlocked, model.AchievementFirstConnection)
	}
	return res, nil
}

// Unfollow removes the edge symmetrically.
func (s *SocialServiceImpl) Unfollow(ctx context.Context, targetID uuid.UUID) error {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return err
	}
	if me.ID == targetID || !me.Follows(targetID) {
		return nil
	}
	return s.users.RemoveFollow(ctx, me.ID, targetID)
}

// Connections resolves the requested edge list to full user records.
func (s *SocialServiceImpl) Connections(ctx context.Context, userID uuid.UUID, dir model.Direction) ([]*model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := u.Following
	if dir == model.DirectionFollowers {
		ids = u.Followers
	}
	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		c, err := s.users.GetByID(ctx, id)
		if errors.Is(err, errs.ErrNotFound) {
			continue // stale edge; skip rather than fail the whole view
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ConnectionGraph places the user and everyone they follow on one circle;
// edges are user -> followed plus followed -> followed restricted to the
// node set, to reveal second-degree clustering.
func (s *SocialServiceImpl) ConnectionGraph(ctx context.Context, userID uuid.UUID) (*layout.Graph, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	members := []*model.User{u}
	index := map[uuid.UUID]int{u.ID: 0}
	for _, id := range u.Following {
		f, err := s.users.GetByID(ctx, id)
		if errors.Is(err, errs.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		index[f.ID] = len(members)
		members = append(members, f)
	}

	pts := layout.Radial(layout.Point{X: graphCenterX, Y: graphCenterY}, graphRadius, len(members))
	g := &layout.Graph{Nodes: make([]layout.Node, len(members))}
	for i, m := range members {
		g.Nodes[i] = layout.Node{
			ID:     m.ID.String(),
			Label:  m.Username,
			Avatar: m.Avatar,
			Pos:    pts[i],
			Center: i == 0,
		}
	}
	for _, m := range members[1:] {
		g.Edges = append(g.Edges, layout.Edge{From: 0, To: index[m.ID]})
		for _, second := range m.Following {
			if j, ok := index[second]; ok {
				g.Edges = append(g.Edges, layout.Edge{From: index[m.ID], To: j})
			}
		}
	}
	return g, nil
}
