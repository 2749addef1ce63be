// Package app assembles the slot store, repositories, and services into one
// application value. All state is explicit; there are no package globals.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/markup"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
	"github.com/DealeGear/synapse/internal/repository/snapshot"
	"github.com/DealeGear/synapse/internal/service"
	"github.com/DealeGear/synapse/internal/storage"
)

// Demo account created on first run so an empty instance has something to
// show. The secret is fixed; this is sample data, not an account of record.
const (
	demoUsername = "demo"
	demoSecret   = "demo123"
	demoBio      = "I am the demo account. Follow me to see how feeds work."
)

var demoPosts = []string{
	"Welcome to Synapse! This is your space to share ideas. #welcome #synapse",
	"Every post can carry hashtags and links like https://go.dev — try it. #tips",
}

// App is the composition root: one store, the repositories loaded from it,
// and the services on top.
type App struct {
	Auth          service.AuthService
	Social        service.SocialService
	Content       service.ContentService
	Feed          service.FeedService
	Notifications service.NotificationService
	Clusters      service.ClusterService
	Achievements  service.AchievementService
	Reports       service.ReportService
	Prefs         repository.PreferenceRepository

	users repository.UserRepository
	posts repository.PostRepository
}

// New loads every collection from the store and wires the service graph.
// Loading happens once; afterwards the store is only written to.
func New(ctx context.Context, store storage.Store) (*App, error) {
	users, err := snapshot.NewUsers(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	posts, err := snapshot.NewPosts(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	notifications, err := snapshot.NewNotifications(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	clusters, err := snapshot.NewClusters(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("load clusters: %w", err)
	}
	achievements, err := snapshot.NewAchievements(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	reports, err := snapshot.NewReports(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	session := snapshot.NewSession(store)
	prefs := snapshot.NewPreferences(store)

	tracker := service.NewAchievementService(achievements)
	notifier := service.NewNotificationService(notifications)

	return &App{
		Auth:          service.NewAuthService(users, session, tracker),
		Social:        service.NewSocialService(users, session, tracker),
		Content:       service.NewContentService(posts, users, session, notifier, tracker),
		Feed:          service.NewFeedService(posts, users, session),
		Notifications: notifier,
		Clusters:      service.NewClusterService(clusters, posts, session, users),
		Achievements:  tracker,
		Reports:       service.NewReportService(reports, session, users),
		Prefs:         prefs,
		users:         users,
		posts:         posts,
	}, nil
}

// UserByUsername resolves a username for presentation-layer lookups that take
// names instead of IDs.
func (a *App) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return a.users.GetByUsername(ctx, username)
}

// SeedDemo populates an empty instance with the demo account, its two sample
// posts, and the default clusters. A non-empty user table makes it a no-op,
// so it is safe to call on every startup.
func (a *App) SeedDemo(ctx context.Context) error {
	existing, err := a.users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	demo := &model.User{
		ID:        id,
		Username:  demoUsername,
		Secret:    demoSecret,
		Bio:       demoBio,
		Avatar:    fmt.Sprintf("https://picsum.photos/seed/%s/150/150.jpg", demoUsername),
		Following: []uuid.UUID{},
		Followers: []uuid.UUID{},
		Posts:     []int64{},
		CreatedAt: time.Now().UTC(),
	}
	if err := a.users.Create(ctx, demo); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	for _, content := range demoPosts {
		p, err := a.posts.Create(ctx, &model.Post{
			AuthorID:  demo.ID,
			Content:   content,
			CreatedAt: time.Now().UTC(),
			Likes:     []uuid.UUID{},
			Comments:  []model.Comment{},
			Reposts:   []uuid.UUID{},
			Hashtags:  markup.ExtractHashtags(content),
		})
		if err != nil {
			return fmt.Errorf("seed demo post: %w", err)
		}
		if err := a.users.AppendPostRef(ctx, demo.ID, p.ID); err != nil {
			return fmt.Errorf("seed demo post ref: %w", err)
		}
	}

	return a.Clusters.EnsureDefaults(ctx, demo.ID)
}
