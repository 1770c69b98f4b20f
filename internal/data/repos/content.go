package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/repurpose-backend/internal/domain"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

type ContentRepo interface {
	Create(ctx context.Context, row *types.Content) (*types.Content, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Content, error)
	List(ctx context.Context, offset, limit int) ([]*types.Content, error)
}

type contentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	return &contentRepo{db: db, log: baseLog.With("repo", "ContentRepo")}
}

func (r *contentRepo) Create(ctx context.Context, row *types.Content) (*types.Content, error) {
	if row == nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *contentRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Content, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Content
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *contentRepo) List(ctx context.Context, offset, limit int) ([]*types.Content, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []*types.Content
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
