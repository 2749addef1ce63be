package service

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// In-memory fakes for the repository interfaces. They mirror the snapshot
// implementations minus persistence, which the snapshot package covers.

type fakeUsers struct {
	list []*model.User
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) find(id uuid.UUID) *model.User {
	for _, u := range f.list {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.list {
		if existing.Username == u.Username {
			return errs.ErrDuplicateUsername
		}
	}
	cpy := *u
	f.list = append(f.list, &cpy)
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u := f.find(id); u != nil {
		cpy := *u
		cpy.Following = append([]uuid.UUID(nil), u.Following...)
		cpy.Followers = append([]uuid.UUID(nil), u.Followers...)
		cpy.Posts = append([]int64(nil), u.Posts...)
		return &cpy, nil
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.list {
		if u.Username == username {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) List(_ context.Context) ([]*model.User, error) {
	out := make([]*model.User, len(f.list))
	for i, u := range f.list {
		cpy := *u
		out[i] = &cpy
	}
	return out, nil
}

func (f *fakeUsers) Update(_ context.Context, u *model.User) error {
	for i, existing := range f.list {
		if existing.ID == u.ID {
			cpy := *u
			f.list[i] = &cpy
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeUsers) AddFollow(_ context.Context, followerID, targetID uuid.UUID) error {
	follower, target := f.find(followerID), f.find(targetID)
	if follower == nil || target == nil {
		return errs.ErrNotFound
	}
	if follower.Follows(targetID) {
		return nil
	}
	follower.Following = append(follower.Following, targetID)
	target.Followers = append(target.Followers, followerID)
	return nil
}

func (f *fakeUsers) RemoveFollow(_ context.Context, followerID, targetID uuid.UUID) error {
	follower, target := f.find(followerID), f.find(targetID)
	if follower == nil || target == nil {
		return errs.ErrNotFound
	}
	follower.Following = without(follower.Following, targetID)
	target.Followers = without(target.Followers, followerID)
	return nil
}

func (f *fakeUsers) AppendPostRef(_ context.Context, userID uuid.UUID, postID int64) error {
	u := f.find(userID)
	if u == nil {
		return errs.ErrNotFound
	}
	u.Posts = append(u.Posts, postID)
	return nil
}

func without(s []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type fakePosts struct {
	list   []*model.Post
	nextID int64
}

var _ repository.PostRepository = (*fakePosts)(nil)

func (f *fakePosts) Create(_ context.Context, p *model.Post) (*model.Post, error) {
	if f.nextID == 0 {
		f.nextID = 1
	}
	cpy := *p
	cpy.ID = f.nextID
	f.nextID++
	f.list = append([]*model.Post{&cpy}, f.list...)
	out := cpy
	return &out, nil
}

func (f *fakePosts) GetByID(_ context.Context, id int64) (*model.Post, error) {
	for _, p := range f.list {
		if p.ID == id {
			cpy := *p
			cpy.Likes = append([]uuid.UUID(nil), p.Likes...)
			cpy.Reposts = append([]uuid.UUID(nil), p.Reposts...)
			cpy.Comments = append([]model.Comment(nil), p.Comments...)
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakePosts) List(_ context.Context) ([]*model.Post, error) {
	out := make([]*model.Post, len(f.list))
	for i, p := range f.list {
		cpy := *p
		out[i] = &cpy
	}
	return out, nil
}

func (f *fakePosts) Update(_ context.Context, p *model.Post) error {
	for i, existing := range f.list {
		if existing.ID == p.ID {
			cpy := *p
			f.list[i] = &cpy
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakePosts) Discard(_ context.Context, id int64) error {
	for i, existing := range f.list {
		if existing.ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeNotifications struct {
	list   []*model.Notification
	nextID int64
}

var _ repository.NotificationRepository = (*fakeNotifications)(nil)

func (f *fakeNotifications) Create(_ context.Context, n *model.Notification) (*model.Notification, error) {
	if f.nextID == 0 {
		f.nextID = 1
	}
	cpy := *n
	cpy.ID = f.nextID
	f.nextID++
	f.list = append([]*model.Notification{&cpy}, f.list...)
	out := cpy
	return &out, nil
}

func (f *fakeNotifications) List(_ context.Context) ([]*model.Notification, error) {
	out := make([]*model.Notification, len(f.list))
	for i, n := range f.list {
		cpy := *n
		out[i] = &cpy
	}
	return out, nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, id int64) error {
	for _, n := range f.list {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeClusters struct {
	list   []*model.Cluster
	nextID int64
}

var _ repository.ClusterRepository = (*fakeClusters)(nil)

func (f *fakeClusters) Create(_ context.Context, c *model.Cluster) (*model.Cluster, error) {
	if f.nextID == 0 {
		f.nextID = 1
	}
	cpy := *c
	cpy.ID = f.nextID
	f.nextID++
	f.list = append(f.list, &cpy)
	out := cpy
	return &out, nil
}

func (f *fakeClusters) GetByID(_ context.Context, id int64) (*model.Cluster, error) {
	for _, c := range f.list {
		if c.ID == id {
			cpy := *c
			cpy.Members = append([]uuid.UUID(nil), c.Members...)
			cpy.Posts = append([]int64(nil), c.Posts...)
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeClusters) List(_ context.Context) ([]*model.Cluster, error) {
	out := make([]*model.Cluster, len(f.list))
	for i, c := range f.list {
		cpy := *c
		out[i] = &cpy
	}
	return out, nil
}

func (f *fakeClusters) Update(_ context.Context, c *model.Cluster) error {
	for i, existing := range f.list {
		if existing.ID == c.ID {
			cpy := *c
			f.list[i] = &cpy
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeAchievements struct {
	records map[string]model.Achievement
}

var _ repository.AchievementRepository = (*fakeAchievements)(nil)

func (f *fakeAchievements) Get(_ context.Context, id string) (model.Achievement, bool, error) {
	a, ok := f.records[id]
	return a, ok, nil
}

func (f *fakeAchievements) Put(_ context.Context, a model.Achievement) error {
	if f.records == nil {
		f.records = map[string]model.Achievement{}
	}
	f.records[a.ID] = a
	return nil
}

func (f *fakeAchievements) List(_ context.Context) ([]model.Achievement, error) {
	out := make([]model.Achievement, 0, len(f.records))
	for _, a := range f.records {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockedAt.Before(out[j].UnlockedAt) })
	return out, nil
}

type fakeReports struct {
	list   []*model.Report
	nextID int64
}

var _ repository.ReportRepository = (*fakeReports)(nil)

func (f *fakeReports) Append(_ context.Context, r *model.Report) (*model.Report, error) {
	if f.nextID == 0 {
		f.nextID = 1
	}
	cpy := *r
	cpy.ID = f.nextID
	f.nextID++
	f.list = append(f.list, &cpy)
	out := cpy
	return &out, nil
}

func (f *fakeReports) List(_ context.Context) ([]*model.Report, error) {
	return append([]*model.Report(nil), f.list...), nil
}

type fakeSession struct {
	id uuid.UUID
	ok bool
}

var _ repository.SessionRepository = (*fakeSession)(nil)

func (f *fakeSession) Get(context.Context) (uuid.UUID, bool, error) { return f.id, f.ok, nil }

func (f *fakeSession) Set(_ context.Context, userID uuid.UUID) error {
	f.id, f.ok = userID, true
	return nil
}

func (f *fakeSession) Clear(context.Context) error {
	f.id, f.ok = uuid.Nil, false
	return nil
}
