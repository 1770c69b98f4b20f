package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Content is a piece of long-form text uploaded for repurposing.
type Content struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index;column:user_id" json:"user_id,omitempty"`
	OriginalText string     `gorm:"not null;column:original_text" json:"original_text"`
	Title        string     `gorm:"size:255;column:title" json:"title"`
	WordCount    int        `gorm:"column:word_count" json:"word_count"`
	SourceURL    string     `gorm:"size:500;column:source_url" json:"source_url"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`

	GeneratedPosts []GeneratedPost `gorm:"foreignKey:ContentID" json:"-"`
}

func (Content) TableName() string { return "content" }

// GeneratedPost is one generated variant for a platform, linked to its source
// content. Derived fields that vary per platform (title, hashtags, image spec)
// live in PostMetadata.
type GeneratedPost struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContentID     uuid.UUID      `gorm:"type:uuid;not null;index;column:content_id" json:"content_id"`
	Platform      string         `gorm:"size:50;not null;column:platform" json:"platform"`
	GeneratedText string         `gorm:"not null;column:generated_text" json:"generated_text"`
	PostMetadata  datatypes.JSON `gorm:"column:post_metadata" json:"post_metadata,omitempty"`
	IsFavorite    bool           `gorm:"default:false;column:is_favorite" json:"is_favorite"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (GeneratedPost) TableName() string { return "generated_posts" }
