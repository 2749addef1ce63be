package service

import (
	"context"
	"testing"

	"github.com/DealeGear/synapse/internal/model"
)

func TestAchievement_UnlockOnce(t *testing.T) {
	t.Parallel()
	svc := NewAchievementService(&fakeAchievements{})
	ctx := context.Background()

	first, err := svc.Unlock(ctx, model.AchievementFirstPost)
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if !first {
		t.Fatalf("first unlock must report true")
	}

	again, err := svc.Unlock(ctx, model.AchievementFirstPost)
	if err != nil {
		t.Fatalf("second Unlock: %v", err)
	}
	if again {
		t.Fatalf("repeat unlock must report false")
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != model.AchievementFirstPost || !list[0].Unlocked {
		t.Fatalf("want single unlocked record, got %+v", list)
	}
}

func TestAchievement_ListInUnlockOrder(t *testing.T) {
	t.Parallel()
	svc := NewAchievementService(&fakeAchievements{})
	ctx := context.Background()

	for _, id := range []string{model.AchievementFirstAccount, model.AchievementFirstPost, model.AchievementFirstConnection} {
		if _, err := svc.Unlock(ctx, id); err != nil {
			t.Fatalf("Unlock %s: %v", id, err)
		}
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("want 3 achievements, got %d", len(list))
	}
	if list[0].ID != model.AchievementFirstAccount || list[2].ID != model.AchievementFirstConnection {
		t.Fatalf("unlock order lost: %+v", list)
	}
}
