package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/layout"
	"github.com/DealeGear/synapse/internal/markup"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// Mind-map canvas geometry, fixed for reproducible layouts.
const (
	mindMapCenterX    = 400.0
	mindMapCenterY    = 100.0
	mindMapSpread     = 200.0
	mindMapLevel      = 150.0
	mindMapBandHeight = 80.0
)

const mindMapLabelMax = 30

// PublishResult reports a created post plus any achievement unlocks.
type PublishResult struct {
	Post     *model.Post
	Unlocked []string
}

// ToggleResult reports the new membership state of a like/repost toggle and
// the notification the action queued, if any.
type ToggleResult struct {
	Added        bool
	Notification *model.Notification
}

// CommentResult reports an appended comment and its queued notification.
type CommentResult struct {
	Comment      model.Comment
	Notification *model.Notification
}

// ContentService owns post and comment lifecycles.
type ContentService interface {
	// Publish creates a post for the current user. Hashtags are extracted
	// and cached at creation; the global sequence stays most-recent-first.
	Publish(ctx context.Context, content string) (PublishResult, error)
	// ToggleLike flips the current user's membership in the post's like set.
	ToggleLike(ctx context.Context, postID int64) (ToggleResult, error)
	// ToggleRepost flips membership in the repost set.
	ToggleRepost(ctx context.Context, postID int64) (ToggleResult, error)
	// AddComment appends a comment; append order is display order.
	AddComment(ctx context.Context, postID int64, content string) (CommentResult, error)
	// MindMap lays out a user's posts (and their comments) as a tree rooted
	// at the user, for the profile visualization.
	MindMap(ctx context.Context, userID uuid.UUID) (*layout.Graph, error)
}

type ContentServiceImpl struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	session  repository.SessionRepository
	notifier NotificationService
	tracker  AchievementService
}

// NewContentService constructs ContentService with required dependencies.
func NewContentService(posts repository.PostRepository, users repository.UserRepository, session repository.SessionRepository, notifier NotificationService, tracker AchievementService) *ContentServiceImpl {
	return &ContentServiceImpl{posts: posts, users: users, session: session, notifier: notifier, tracker: tracker}
}

// Publish creates the post, links it to its author, and reports the
// firstPost unlock.
func (s *ContentServiceImpl) Publish(ctx context.Context, content string) (PublishResult, error) {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return PublishResult{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return PublishResult{}, errs.ErrEmptyContent
	}

	post, err := s.posts.Create(ctx, &model.Post{
		AuthorID:  me.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Likes:     []uuid.UUID{},
		Comments:  []model.Comment{},
		Reposts:   []uuid.UUID{},
		Hashtags:  markup.ExtractHashtags(content),
	})
	if err != nil {
		return PublishResult{}, err
	}
	if err := s.users.AppendPostRef(ctx, me.ID, post.ID); err != nil {
		// undo the post so the mutation is not half applied
		_ = s.posts.Discard(ctx, post.ID)
		return PublishResult{}, err
	}

	res := PublishResult{Post: post}
	newly, err := s.tracker.Unlock(ctx, model.AchievementFirstPost)
	if err != nil {
		return res, err
	}
	if newly {
		res.Unlocked = append(res.Unlocked, model.AchievementFirstPost)
	}
	return res, nil
}

// ToggleLike flips like membership; adding to someone else's post queues a
// like notification.
func (s *ContentServiceImpl) ToggleLike(ctx context.Context, postID int64) (ToggleResult, error) {
	return s.toggle(ctx, postID, model.NotificationLike)
}

// ToggleRepost flips repost membership with the same notification rule.
func (s *ContentServiceImpl) ToggleRepost(ctx context.Context, postID int64) (ToggleResult, error) {
	return s.toggle(ctx, postID, model.NotificationRepost)
}

func (s *ContentServiceImpl) toggle(ctx context.Context, postID int64, typ model.NotificationType) (ToggleResult, error) {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return ToggleResult{}, err
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return ToggleResult{}, err
	}

	var set *[]uuid.UUID
	if typ == model.NotificationLike {
		set = &post.Likes
	} else {
		set = &post.Reposts
	}

	added := true
	for i, id := range *set {
		if id == me.ID {
			*set = append(append([]uuid.UUID(nil), (*set)[:i]...), (*set)[i+1:]...)
			added = false
			break
		}
	}
	if added {
		*set = append(*set, me.ID)
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return ToggleResult{}, err
	}

	res := ToggleResult{Added: added}
	if added {
		n, err := s.notifier.Record(ctx, typ, me.ID, post.AuthorID, post.ID)
		if err != nil {
			return res, err
		}
		res.Notification = n
	}
	return res, nil
}

// AddComment appends to the post's comment sequence, oldest first.
func (s *ContentServiceImpl) AddComment(ctx context.Context, postID int64, content string) (CommentResult, error) {
	me, err := currentUser(ctx, s.session, s.users)
	if err != nil {
		return CommentResult{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return CommentResult{}, errs.ErrEmptyContent
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return CommentResult{}, err
	}

	comment := model.Comment{
		ID:        int64(len(post.Comments)) + 1, // scoped to the post
		AuthorID:  me.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = append(post.Comments, comment)
	if err := s.posts.Update(ctx, post); err != nil {
		return CommentResult{}, err
	}

	res := CommentResult{Comment: comment}
	n, err := s.notifier.Record(ctx, model.NotificationComment, me.ID, post.AuthorID, post.ID)
	if err != nil {
		return res, err
	}
	res.Notification = n
	return res, nil
}

// MindMap builds the profile tree: the user at the root, posts on the first
// level, comments fanned out under their posts.
func (s *ContentServiceImpl) MindMap(ctx context.Context, userID uuid.UUID) (*layout.Graph, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	var mine []*model.Post
	for _, p := range all {
		if p.AuthorID == userID {
			mine = append(mine, p)
		}
	}

	root := layout.Point{X: mindMapCenterX, Y: mindMapCenterY}
	g := &layout.Graph{Nodes: []layout.Node{{
		ID: u.ID.String(), Label: u.Username, Avatar: u.Avatar, Pos: root, Center: true,
	}}}

	pts := layout.Tree(root, mindMapSpread, mindMapLevel, mindMapBandHeight, len(mine))
	for i, p := range mine {
		postIdx := len(g.Nodes)
		g.Nodes = append(g.Nodes, layout.Node{
			ID:    postNodeID(p.ID),
			Label: truncate(p.Content, mindMapLabelMax),
			Pos:   pts[i],
		})
		g.Edges = append(g.Edges, layout.Edge{From: 0, To: postIdx})
		for j, c := range p.Comments {
			commentIdx := len(g.Nodes)
			g.Nodes = append(g.Nodes, layout.Node{
				ID:    commentNodeID(p.ID, c.ID),
				Label: truncate(c.Content, mindMapLabelMax),
				Pos:   layout.SubBranch(pts[i], j),
			})
			g.Edges = append(g.Edges, layout.Edge{From: postIdx, To: commentIdx})
		}
	}
	return g, nil
}

func postNodeID(id int64) string { return "post-" + itoa(id) }

func commentNodeID(postID, commentID int64) string {
	return "post-" + itoa(postID) + "-comment-" + itoa(commentID)
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
