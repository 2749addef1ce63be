package model

import "time"

// PostView is a display-ready post with the author resolved against the
// current user table, so profile edits are reflected everywhere.
type PostView struct {
	ID        int64
	Author    User
	Content   string
	Rendered  string // content with hashtags and URLs auto-linked
	CreatedAt time.Time
	Likes     []string // usernames, insertion order
	Comments  []CommentView
	Reposts   []string // usernames, insertion order
	Hashtags  []string
}

// CommentView is a display-ready comment with its author resolved.
type CommentView struct {
	ID        int64
	Author    User
	Content   string
	CreatedAt time.Time
}

// ProfileView aggregates a user's profile for display.
type ProfileView struct {
	User           User
	PostCount      int
	FollowingCount int
	FollowerCount  int
	Posts          []PostView // most recent first
}

// Trend is one entry of the trending-hashtags ranking.
type Trend struct {
	Hashtag string
	Count   int
}

// SearchScope selects what a search query matches against.
type SearchScope string

const (
	ScopePosts    SearchScope = "posts"
	ScopeUsers    SearchScope = "users"
	ScopeHashtags SearchScope = "hashtags"
)

// SearchResults holds the matches for one scope; the other fields stay empty.
// An empty result set is a valid outcome, not an error.
type SearchResults struct {
	Posts    []PostView
	Users    []User
	Hashtags []string
}
