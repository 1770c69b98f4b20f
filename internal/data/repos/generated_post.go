package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/repurpose-backend/internal/domain"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

type GeneratedPostRepo interface {
	Create(ctx context.Context, rows []*types.GeneratedPost) ([]*types.GeneratedPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error)
	// ListByContent returns posts for one content row, newest first. Platform
	// is an optional filter; empty means all platforms.
	ListByContent(ctx context.Context, contentID uuid.UUID, platform string) ([]*types.GeneratedPost, error)
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
}

type generatedPostRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGeneratedPostRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedPostRepo {
	return &generatedPostRepo{db: db, log: baseLog.With("repo", "GeneratedPostRepo")}
}

func (r *generatedPostRepo) Create(ctx context.Context, rows []*types.GeneratedPost) ([]*types.GeneratedPost, error) {
	if len(rows) == 0 {
		return []*types.GeneratedPost{}, nil
	}
	for _, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *generatedPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.GeneratedPost, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.GeneratedPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *generatedPostRepo) ListByContent(ctx context.Context, contentID uuid.UUID, platform string) ([]*types.GeneratedPost, error) {
	var out []*types.GeneratedPost
	if contentID == uuid.Nil {
		return out, nil
	}
	q := r.db.WithContext(ctx).Where("content_id = ?", contentID)
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *generatedPostRepo) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	if id == uuid.Nil {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&types.GeneratedPost{}).
		Where("id = ?", id).
		Update("is_favorite", favorite).Error
}
