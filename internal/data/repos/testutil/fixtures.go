package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/repurpose-backend/internal/domain"
)

// SeedContent inserts one content row with enough original text to clear the
// generation minimum.
func SeedContent(tb testing.TB, gdb *gorm.DB, title string) *types.Content {
	tb.Helper()
	row := &types.Content{
		ID:           uuid.New(),
		Title:        title,
		OriginalText: "This is seeded long-form content used by repository tests. It is long enough to be repurposed.",
		WordCount:    16,
	}
	if err := gdb.WithContext(context.Background()).Create(row).Error; err != nil {
		tb.Fatalf("seed content: %v", err)
	}
	return row
}

// SeedGeneratedPosts inserts n posts for the given content and platform.
func SeedGeneratedPosts(tb testing.TB, gdb *gorm.DB, contentID uuid.UUID, platform string, n int) []*types.GeneratedPost {
	tb.Helper()
	out := make([]*types.GeneratedPost, 0, n)
	for i := 0; i < n; i++ {
		row := &types.GeneratedPost{
			ID:            uuid.New(),
			ContentID:     contentID,
			Platform:      platform,
			GeneratedText: fmt.Sprintf("seeded %s variant %d", platform, i+1),
		}
		if err := gdb.WithContext(context.Background()).Create(row).Error; err != nil {
			tb.Fatalf("seed generated post: %v", err)
		}
		out = append(out, row)
	}
	return out
}
