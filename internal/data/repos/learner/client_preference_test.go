package learner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/eerste-dingen/internal/domain"
	"github.com/yungbote/eerste-dingen/internal/data/repos/testutil"
	"github.com/yungbote/eerste-dingen/internal/platform/dbctx"
)

func exerciseRepo(t *testing.T, repo ClientPreferenceRepo) {
	t.Helper()
	dbc := dbctx.From(context.Background())
	clientID := uuid.New()

	got, err := repo.GetByClientID(dbc, clientID)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("get missing: want=nil got=%+v", got)
	}

	if err := repo.Upsert(dbc, &types.ClientPreference{ClientID: clientID, LastLessonID: 2}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	first, err := repo.GetByClientID(dbc, clientID)
	if err != nil || first == nil {
		t.Fatalf("get after insert: row=%v err=%v", first, err)
	}
	if first.LastLessonID != 2 {
		t.Fatalf("last lesson: want=2 got=%d", first.LastLessonID)
	}

	time.Sleep(5 * time.Millisecond)
	if err := repo.Upsert(dbc, &types.ClientPreference{ClientID: clientID, LastLessonID: 5}); err != nil {
		t.Fatalf("update: %v", err)
	}
	second, err := repo.GetByClientID(dbc, clientID)
	if err != nil || second == nil {
		t.Fatalf("get after update: row=%v err=%v", second, err)
	}
	if second.LastLessonID != 5 {
		t.Fatalf("last lesson: want=5 got=%d", second.LastLessonID)
	}
	if second.ID != first.ID {
		t.Fatalf("row id changed on update: %s -> %s", first.ID, second.ID)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}

	if err := repo.Upsert(dbc, &types.ClientPreference{LastLessonID: 1}); err != nil {
		t.Fatalf("nil client id should be a no-op: %v", err)
	}
	if got, err := repo.GetByClientID(dbc, uuid.Nil); err != nil || got != nil {
		t.Fatalf("nil client id: want=nil,nil got=%v,%v", got, err)
	}
}

func TestMemoryClientPreferenceRepo(t *testing.T) {
	exerciseRepo(t, NewMemoryClientPreferenceRepo())
}

func TestGormClientPreferenceRepo(t *testing.T) {
	db := testutil.DB(t)
	exerciseRepo(t, NewClientPreferenceRepo(db, testutil.Logger(t)))
}

func TestRedisClientPreferenceRepo(t *testing.T) {
	rdb := testutil.Redis(t)
	exerciseRepo(t, NewRedisClientPreferenceRepo(rdb, time.Minute, testutil.Logger(t)))
}
