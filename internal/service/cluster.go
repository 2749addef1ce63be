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

// clusterIcons is the fixed tag pool; Create picks deterministically so the
// same name always gets the same icon.
var clusterIcons = []string{"fa-star", "fa-heart", "fa-fire", "fa-bolt", "fa-gem", "fa-crown"}

// defaultClusters seeds the registry on first visit.
var defaultClusters = []model.Cluster{
	{Name: "Technology", Description: "Discussions about technology and innovation", Icon: "fa-microchip"},
	{Name: "Art", Description: "Artistic and creative sharing", Icon: "fa-palette"},
	{Name: "Science", Description: "Scientific discoveries and discussions", Icon: "fa-flask"},
}

// ClusterService owns topic-group membership, independent of the follow
// graph.
type ClusterService interface {
	// EnsureDefaults seeds three fixed clusters, each pre-joined by the
	// seeding user, when the registry is empty. Otherwise it is a no-op.
	EnsureDefaults(ctx context.Context, seedUserID uuid.UUID) error
	// Create registers a cluster with membership {creator}.
	Create(ctx context.Context, name, description string) (*model.Cluster, error)
	// Join adds the user to the cluster; joining twice is a no-op.
	Join(ctx context.Context, clusterID int64, userID uuid.UUID) error
	// AttachPost explicitly associates a post with the cluster.
	AttachPost(ctx context.Context, clusterID, postID int64) error
	// List returns all clusters in creation order.
	List(ctx context.Context) ([]*model.Cluster, error)
}

type ClusterServiceImpl struct {
	clusters repository.ClusterRepository
	posts    repository.PostRepository
	session  repository.SessionRepository
	users    repository.UserRepository
}

// NewClusterService constructs ClusterService with required dependencies.
func NewClusterService(clusters repository.ClusterRepository, posts repository.PostRepository, session repository.SessionRepository, users repository.UserRepository) *ClusterServiceImpl {
	return &ClusterServiceImpl{clusters: clusters, posts: posts, session: session, users: users}
}

// EnsureDefaults lazily seeds the registry on first visit.
func (s *ClusterServiceImpl) EnsureDefaults(ctx context.Context, seedUserID uuid.UUID) error {
	existing, err := s.clusters.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range defaultClusters {
		c.Members = []uuid.UUID{seedUserID}
		c.Posts = []int64{}
		c.CreatedAt = time.Now().UTC()
		if _, err := s.clusters.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed cluster %q: %w", c.Name, err)
		}
	}
	return nil
}

// Create registers a cluster owned by the current user.
func (s *ClusterServiceImpl) Create(ctx context.Context, name, description string) (*model.Cluster, error) {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", errs.ErrEmptyField)
	}
	return s.clusters.Create(ctx, &model.Cluster{
		Name:        name,
		Description: description,
		Icon:        clusterIcons[len(name)%len(clusterIcons)],
		Members:     []uuid.UUID{me.ID},
		Posts:       []int64{},
		CreatedAt:   time.Now().UTC(),
	})
}

// Join is an idempotent membership add.
func (s *ClusterServiceImpl) Join(ctx context.Context, clusterID int64, userID uuid.UUID) error {
	c, err := s.clusters.GetByID(ctx, clusterID)
	if err != nil {
		return err
	}
	if c.HasMember(userID) {
		return nil
	}
	c.Members = append(c.Members, userID)
	return s.clusters.Update(ctx, c)
}

// AttachPost associates an existing post with the cluster; attaching the
// same post twice is a no-op.
func (s *ClusterServiceImpl) AttachPost(ctx context.Context, clusterID, postID int64) error {
	c, err := s.clusters.GetByID(ctx, clusterID)
	if err != nil {
		return err
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return fmt.Errorf("attach post: %w", err)
	}
	for _, id := range c.Posts {
		if id == postID {
			return nil
		}
	}
	c.Posts = append(c.Posts, postID)
	return s.clusters.Update(ctx, c)
}

// List returns all clusters in creation order.
func (s *ClusterServiceImpl) List(ctx context.Context) ([]*model.Cluster, error) {
	return s.clusters.List(ctx)
}
