package snapshot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
	"github.com/DealeGear/synapse/internal/storage"
)

var (
	_ repository.UserRepository         = (*Users)(nil)
	_ repository.PostRepository         = (*Posts)(nil)
	_ repository.NotificationRepository = (*Notifications)(nil)
	_ repository.ClusterRepository      = (*Clusters)(nil)
	_ repository.AchievementRepository  = (*Achievements)(nil)
	_ repository.ReportRepository       = (*Reports)(nil)
	_ repository.SessionRepository      = (*Session)(nil)
	_ repository.PreferenceRepository   = (*Preferences)(nil)
)

// memStore is a map-backed slot store; failNext makes the next Save fail,
// for exercising rollback paths.
type memStore struct {
	slots    map[string][]byte
	failNext bool
}

var _ storage.Store = (*memStore)(nil)

func newMemStore() *memStore { return &memStore{slots: map[string][]byte{}} }

func (m *memStore) Save(_ context.Context, slot string, v any) error {
	if m.failNext {
		m.failNext = false
		return errs.ErrPersistenceUnavailable
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.slots[slot] = b
	return nil
}

func (m *memStore) Load(_ context.Context, slot string, v any) (bool, error) {
	b, ok := m.slots[slot]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memStore) Delete(_ context.Context, slot string) error {
	delete(m.slots, slot)
	return nil
}

func mustUser(t *testing.T, name string) *model.User {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return &model.User{
		ID:        id,
		Username:  name,
		Secret:    "pw",
		CreatedAt: time.Now().UTC(),
	}
}

func TestUsers_CreateAndDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	users, err := NewUsers(ctx, store)
	require.NoError(t, err)

	alice := mustUser(t, "alice")
	require.NoError(t, users.Create(ctx, alice))

	dup := mustUser(t, "alice")
	err = users.Create(ctx, dup)
	assert.ErrorIs(t, err, errs.ErrDuplicateUsername)

	// Case-sensitive: a different casing is a different name.
	other := mustUser(t, "Alice")
	assert.NoError(t, users.Create(ctx, other))
}

func TestUsers_FollowSymmetry(t *testing.T) {
	ctx := context.Background()
	users, err := NewUsers(ctx, newMemStore())
	require.NoError(t, err)

	a, b := mustUser(t, "a"), mustUser(t, "b")
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))

	require.NoError(t, users.AddFollow(ctx, a.ID, b.ID))

	gotA, err := users.GetByID(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := users.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, gotA.Follows(b.ID))
	assert.Equal(t, []uuid.UUID{a.ID}, gotB.Followers)

	// Adding an existing edge is a no-op.
	require.NoError(t, users.AddFollow(ctx, a.ID, b.ID))
	gotA, _ = users.GetByID(ctx, a.ID)
	assert.Len(t, gotA.Following, 1)

	require.NoError(t, users.RemoveFollow(ctx, a.ID, b.ID))
	gotA, _ = users.GetByID(ctx, a.ID)
	gotB, _ = users.GetByID(ctx, b.ID)
	assert.Empty(t, gotA.Following)
	assert.Empty(t, gotB.Followers)

	// Removing an absent edge is a no-op.
	assert.NoError(t, users.RemoveFollow(ctx, a.ID, b.ID))
}

func TestUsers_FollowRollbackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	users, err := NewUsers(ctx, store)
	require.NoError(t, err)

	a, b := mustUser(t, "a"), mustUser(t, "b")
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))

	store.failNext = true
	err = users.AddFollow(ctx, a.ID, b.ID)
	require.ErrorIs(t, err, errs.ErrPersistenceUnavailable)

	gotA, _ := users.GetByID(ctx, a.ID)
	gotB, _ := users.GetByID(ctx, b.ID)
	assert.Empty(t, gotA.Following, "failed persist must not leave half-applied state")
	assert.Empty(t, gotB.Followers)
}

func TestUsers_ReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	users, err := NewUsers(ctx, newMemStore())
	require.NoError(t, err)

	a := mustUser(t, "a")
	require.NoError(t, users.Create(ctx, a))

	got, err := users.GetByID(ctx, a.ID)
	require.NoError(t, err)
	got.Username = "tampered"
	got.Posts = append(got.Posts, 99)

	again, err := users.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Username)
	assert.Empty(t, again.Posts)
}

func TestUsers_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	users, err := NewUsers(ctx, store)
	require.NoError(t, err)

	a, b := mustUser(t, "a"), mustUser(t, "b")
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))
	require.NoError(t, users.AddFollow(ctx, a.ID, b.ID))

	before, err := users.List(ctx)
	require.NoError(t, err)

	reloaded, err := NewUsers(ctx, store)
	require.NoError(t, err)
	after, err := reloaded.List(ctx)
	require.NoError(t, err)

	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Username, after[i].Username)
		assert.Equal(t, before[i].Following, after[i].Following)
		assert.Equal(t, before[i].Followers, after[i].Followers)
	}
}

func TestPosts_IDsIncreaseAndOrderIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	posts, err := NewPosts(ctx, store)
	require.NoError(t, err)

	author, _ := uuid.NewV4()
	p1, err := posts.Create(ctx, &model.Post{AuthorID: author, Content: "first"})
	require.NoError(t, err)
	p2, err := posts.Create(ctx, &model.Post{AuthorID: author, Content: "second"})
	require.NoError(t, err)
	assert.Greater(t, p2.ID, p1.ID)

	list, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Content)
	assert.Equal(t, "first", list[1].Content)

	// Sequence survives a reload.
	reloaded, err := NewPosts(ctx, store)
	require.NoError(t, err)
	p3, err := reloaded.Create(ctx, &model.Post{AuthorID: author, Content: "third"})
	require.NoError(t, err)
	assert.Greater(t, p3.ID, p2.ID)
}

func TestPosts_Discard(t *testing.T) {
	ctx := context.Background()
	posts, err := NewPosts(ctx, newMemStore())
	require.NoError(t, err)

	author, _ := uuid.NewV4()
	p, err := posts.Create(ctx, &model.Post{AuthorID: author, Content: "oops"})
	require.NoError(t, err)

	require.NoError(t, posts.Discard(ctx, p.ID))
	_, err = posts.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, posts.Discard(ctx, p.ID), errs.ErrNotFound)
}

func TestPosts_CreateRollbackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	posts, err := NewPosts(ctx, store)
	require.NoError(t, err)

	author, _ := uuid.NewV4()
	store.failNext = true
	_, err = posts.Create(ctx, &model.Post{AuthorID: author, Content: "x"})
	require.ErrorIs(t, err, errs.ErrPersistenceUnavailable)

	list, err := posts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The failed attempt must not burn an ID.
	p, err := posts.Create(ctx, &model.Post{AuthorID: author, Content: "y"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}
