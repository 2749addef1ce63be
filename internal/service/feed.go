package service

import (
	"context"
	"sort"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/markup"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// Defaults applied when the caller passes a non-positive limit.
const (
	DefaultTrendingTop  = 5
	DefaultSuggestLimit = 3
)

// FeedService derives read-only views from the stores. It holds no state of
// its own; every view is recomputed on demand.
type FeedService interface {
	// BuildFeed returns posts by the current user and everyone they follow,
	// in stored order (most recent first).
	BuildFeed(ctx context.Context) ([]model.PostView, error)
	// Trending ranks hashtags by occurrence count across all posts; each
	// occurrence counts, repeats within one post included. Ties keep
	// first-seen order.
	Trending(ctx context.Context, topN int) ([]model.Trend, error)
	// Search matches the query case-insensitively within the given scope.
	Search(ctx context.Context, query string, scope model.SearchScope) (model.SearchResults, error)
	// Suggest returns users not yet followed, in table order. No ranking
	// beyond exclusion is applied.
	Suggest(ctx context.Context, limit int) ([]*model.User, error)
	// Profile aggregates a user's profile counts and posts.
	Profile(ctx context.Context, userID uuid.UUID) (*model.ProfileView, error)
}

type FeedServiceImpl struct {
	posts   repository.PostRepository
	users   repository.UserRepository
	session repository.SessionRepository
}

// NewFeedService constructs FeedService.
func NewFeedService(posts repository.PostRepository, users repository.UserRepository, session repository.SessionRepository) *FeedServiceImpl {
	return &FeedServiceImpl{posts: posts, users: users, session: session}
}

// BuildFeed filters the stored sequence down to self plus followed authors
// without re-sorting.
func (s *FeedServiceImpl) BuildFeed(ctx context.Context) ([]model.PostView, error) {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return nil, err
	}
	all, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	byID, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	var out []model.PostView
	for _, p := range all {
		if p.AuthorID != me.ID && !me.Follows(p.AuthorID) {
			continue
		}
		if v, ok := composeView(p, byID); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Trending counts hashtag occurrences in stored post order.
func (s *FeedServiceImpl) Trending(ctx context.Context, topN int) ([]model.Trend, error) {
	if topN <= 0 {
		topN = DefaultTrendingTop
	}
	all, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	var order []string // first-seen order, the tie-break
	for _, p := range all {
		for _, tag := range p.Hashtags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	trends := make([]model.Trend, len(order))
	for i, tag := range order {
		trends[i] = model.Trend{Hashtag: tag, Count: counts[tag]}
	}
	sort.SliceStable(trends, func(i, j int) bool { return trends[i].Count > trends[j].Count })
	if len(trends) > topN {
		trends = trends[:topN]
	}
	return trends, nil
}

// Search runs a case-insensitive substring match within one scope. An empty
// result set is a valid outcome.
func (s *FeedServiceImpl) Search(ctx context.Context, query string, scope model.SearchScope) (model.SearchResults, error) {
	q := strings.ToLower(query)
	var res model.SearchResults

	switch scope {
	case model.ScopePosts:
		all, err := s.posts.List(ctx)
		if err != nil {
			return res, err
		}
		byID, err := s.userIndex(ctx)
		if err != nil {
			return res, err
		}
		for _, p := range all {
			author, ok := byID[p.AuthorID]
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(p.Content), q) ||
				strings.Contains(strings.ToLower(author.Username), q) {
				if v, ok := composeView(p, byID); ok {
					res.Posts = append(res.Posts, v)
				}
			}
		}

	case model.ScopeUsers:
		users, err := s.users.List(ctx)
		if err != nil {
			return res, err
		}
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.Username), q) ||
				strings.Contains(strings.ToLower(u.Bio), q) {
				res.Users = append(res.Users, *u)
			}
		}

	case model.ScopeHashtags:
		all, err := s.posts.List(ctx)
		if err != nil {
			return res, err
		}
		seen := map[string]bool{}
		for _, p := range all {
			for _, tag := range p.Hashtags {
				if seen[tag] || !strings.Contains(strings.ToLower(tag), q) {
					continue
				}
				seen[tag] = true
				res.Hashtags = append(res.Hashtags, tag)
			}
		}
	}
	return res, nil
}

// Suggest excludes self and already-followed users, keeping table order.
func (s *FeedServiceImpl) Suggest(ctx context.Context, limit int) ([]*model.User, error) {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*model.User
	for _, u := range users {
		if u.ID == me.ID || me.Follows(u.ID) {
			continue
		}
		out = append(out, u)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Profile aggregates counts and the user's own posts, most recent first.
func (s *FeedServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (*model.ProfileView, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	byID, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	view := &model.ProfileView{
		User:           *u,
		PostCount:      len(u.Posts),
		FollowingCount: len(u.Following),
		FollowerCount:  len(u.Followers),
	}
	for _, p := range all {
		if p.AuthorID != userID {
			continue
		}
		if v, ok := composeView(p, byID); ok {
			view.Posts = append(view.Posts, v)
		}
	}
	return view, nil
}

func (s *FeedServiceImpl) userIndex(ctx context.Context) (map[uuid.UUID]*model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// composeView resolves author references against the current user table.
// Posts whose author no longer resolves are dropped from views.
func composeView(p *model.Post, byID map[uuid.UUID]*model.User) (model.PostView, bool) {
	author, ok := byID[p.AuthorID]
	if !ok {
		return model.PostView{}, false
	}
	v := model.PostView{
		ID:        p.ID,
		Author:    *author,
		Content:   p.Content,
		Rendered:  markup.FormatContent(p.Content),
		CreatedAt: p.CreatedAt,
		Likes:     usernames(p.Likes, byID),
		Reposts:   usernames(p.Reposts, byID),
		Hashtags:  append([]string(nil), p.Hashtags...),
	}
	for _, c := range p.Comments {
		ca, ok := byID[c.AuthorID]
		if !ok {
			continue
		}
		v.Comments = append(v.Comments, model.CommentView{
			ID:        c.ID,
			Author:    *ca,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return v, true
}

func usernames(ids []uuid.UUID, byID map[uuid.UUID]*model.User) []string {
	var out []string
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, u.Username)
		}
	}
	return out
}
