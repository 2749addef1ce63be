// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// NotificationType enumerates the actions that generate notifications.
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationRepost  NotificationType = "repost"
)

// Direction selects which side of the follow graph a query reads.
type Direction string

const (
	DirectionFollowing Direction = "following"
	DirectionFollowers Direction = "followers"
)

// User is a locally stored account. The secret is compared by plain equality;
// hardening it is out of scope for this prototype.
type User struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"` // unique, case-sensitive
	Secret    string      `json:"secret"`
	Bio       string      `json:"bio,omitempty"`
	Avatar    string      `json:"avatar"`
	Following []uuid.UUID `json:"following"` // insertion order preserved
	Followers []uuid.UUID `json:"followers"` // insertion order preserved
	Posts     []int64     `json:"posts"`     // authored post IDs, oldest first
	CreatedAt time.Time   `json:"created_at"`
}

// Follows reports whether the user follows id.
func (u *User) Follows(id uuid.UUID) bool { return containsUUID(u.Following, id) }

// Post is a published entry. It references its author by ID only;
// display-time composition resolves the current User record.
type Post struct {
	ID        int64       `json:"id"` // strictly increasing creation order
	AuthorID  uuid.UUID   `json:"author_id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Likes     []uuid.UUID `json:"likes"`    // at most one entry per user
	Comments  []Comment   `json:"comments"` // append order, oldest first
	Reposts   []uuid.UUID `json:"reposts"`  // at most one entry per user
	Hashtags  []string    `json:"hashtags"` // cached at creation, duplicates kept
}

// LikedBy reports whether id is in the post's like set.
func (p *Post) LikedBy(id uuid.UUID) bool { return containsUUID(p.Likes, id) }

// RepostedBy reports whether id is in the post's repost set.
func (p *Post) RepostedBy(id uuid.UUID) bool { return containsUUID(p.Reposts, id) }

// Comment is owned exclusively by its parent Post.
type Comment struct {
	ID        int64     `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is an append-only event record. It is never generated for
// self-actions and never deleted, only marked read.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	FromID    uuid.UUID        `json:"from_id"`
	ToID      uuid.UUID        `json:"to_id"`
	PostID    int64            `json:"post_id"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

// Cluster is a named topic group. Its posts list is populated only by
// explicit association, never automatically from membership.
type Cluster struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Members     []uuid.UUID `json:"members"`
	Posts       []int64     `json:"posts"`
	CreatedAt   time.Time   `json:"created_at"`
}

// HasMember reports whether id belongs to the cluster.
func (c *Cluster) HasMember(id uuid.UUID) bool { return containsUUID(c.Members, id) }

// Achievement is a one-shot unlock record keyed by achievement ID.
type Achievement struct {
	ID         string    `json:"id"`
	Unlocked   bool      `json:"unlocked"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Achievement identifiers.
const (
	AchievementFirstAccount    = "firstAccount"
	AchievementFirstPost       = "firstPost"
	AchievementFirstConnection = "firstConnection"
)

// ReportStatusPending is the only status ever assigned to a report;
// no workflow beyond append exists.
const ReportStatusPending = "pending"

// Report is an immutable moderation record.
type Report struct {
	ID          int64     `json:"id"`
	TargetType  string    `json:"target_type"` // "post" or "user"
	TargetID    string    `json:"target_id"`
	ReporterID  uuid.UUID `json:"reporter_id"`
	Reason      string    `json:"reason"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Preferences holds UI-facing flags persisted alongside the domain state.
type Preferences struct {
	DarkMode bool   `json:"dark_mode"`
	Language string `json:"language,omitempty"`
}

func containsUUID(s []uuid.UUID, id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}
