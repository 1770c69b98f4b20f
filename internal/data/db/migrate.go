package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/repurpose-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Content{},
		&types.GeneratedPost{},
	)
}

func EnsureContentIndexes(db *gorm.DB) error {
	// List endpoints page over content by recency.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_content_created_at
		ON content (created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_content_created_at: %w", err)
	}
	// Generated posts are always fetched per content, usually per platform.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_generated_posts_content_platform
		ON generated_posts (content_id, platform, created_at);
	`).Error; err != nil {
		return fmt.Errorf("create idx_generated_posts_content_platform: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureContentIndexes(s.db); err != nil {
		s.log.Error("Content index migration failed", "error", err)
		return err
	}
	return nil
}
