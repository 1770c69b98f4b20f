package repos_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/repurpose-backend/internal/data/repos"
	"github.com/yungbote/repurpose-backend/internal/data/repos/testutil"
	types "github.com/yungbote/repurpose-backend/internal/domain"
)

func TestGeneratedPostRepoCreateBatch(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := repos.NewGeneratedPostRepo(tx, testutil.Logger(t))
	content := testutil.SeedContent(t, tx, "batch test")

	rows := []*types.GeneratedPost{
		{ContentID: content.ID, Platform: "linkedin", GeneratedText: "post one"},
		{ContentID: content.ID, Platform: "linkedin", GeneratedText: "post two"},
	}
	saved, err := repo.Create(context.Background(), rows)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved rows, got %d", len(saved))
	}
	for _, row := range saved {
		if row.ID == uuid.Nil {
			t.Fatalf("create must assign ids")
		}
	}

	empty, err := repo.Create(context.Background(), nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty batch must be a no-op, got %v / %v", empty, err)
	}
}

func TestGeneratedPostRepoListByContentFiltersPlatform(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := repos.NewGeneratedPostRepo(tx, testutil.Logger(t))
	content := testutil.SeedContent(t, tx, "filter test")

	testutil.SeedGeneratedPosts(t, tx, content.ID, "linkedin", 2)
	testutil.SeedGeneratedPosts(t, tx, content.ID, "twitter", 3)

	all, err := repo.ListByContent(context.Background(), content.ID, "")
	if err != nil || len(all) != 5 {
		t.Fatalf("expected 5 posts across platforms, got %d (%v)", len(all), err)
	}

	tw, err := repo.ListByContent(context.Background(), content.ID, "twitter")
	if err != nil || len(tw) != 3 {
		t.Fatalf("expected 3 twitter posts, got %d (%v)", len(tw), err)
	}

	none, err := repo.ListByContent(context.Background(), uuid.Nil, "")
	if err != nil || len(none) != 0 {
		t.Fatalf("nil content id must yield nothing")
	}
}

func TestGeneratedPostRepoSetFavorite(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := repos.NewGeneratedPostRepo(tx, testutil.Logger(t))
	content := testutil.SeedContent(t, tx, "favorite test")

	posts := testutil.SeedGeneratedPosts(t, tx, content.ID, "seo", 1)

	if err := repo.SetFavorite(context.Background(), posts[0].ID, true); err != nil {
		t.Fatalf("set favorite: %v", err)
	}

	got, err := repo.GetByID(context.Background(), posts[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || !got.IsFavorite {
		t.Fatalf("favorite flag not persisted: %+v", got)
	}
}
