// Package service contains the application services: identity and session,
// social graph, content, feed and discovery, notifications, clusters,
// achievements, and reports.
package service

import (
	"context"
	"time"

	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// AchievementService is the one-shot unlock tracker. Unlock is idempotent by
// construction, so call sites may trigger it unconditionally.
type AchievementService interface {
	// Unlock records the achievement if it is not yet unlocked. It returns
	// true only on the first unlock.
	Unlock(ctx context.Context, id string) (bool, error)
	// List returns unlocked achievements in unlock order.
	List(ctx context.Context) ([]model.Achievement, error)
}

type AchievementServiceImpl struct {
	repo repository.AchievementRepository
}

// NewAchievementService constructs AchievementService.
func NewAchievementService(repo repository.AchievementRepository) *AchievementServiceImpl {
	return &AchievementServiceImpl{repo: repo}
}

// Unlock records the achievement once; re-triggering is a no-op.
func (s *AchievementServiceImpl) Unlock(ctx context.Context, id string) (bool, error) {
	if _, ok, err := s.repo.Get(ctx, id); err != nil {
		return false, err
	} else if ok {
		return false, nil
	}
	a := model.Achievement{ID: id, Unlocked: true, UnlockedAt: time.Now().UTC()}
	if err := s.repo.Put(ctx, a); err != nil {
		return false, err
	}
	return true, nil
}

// List returns unlocked achievements in unlock order.
func (s *AchievementServiceImpl) List(ctx context.Context) ([]model.Achievement, error) {
	return s.repo.List(ctx)
}
