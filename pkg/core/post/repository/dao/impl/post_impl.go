package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "instaboose/pkg/common/errors"
	"instaboose/pkg/core/post/model"
	"instaboose/pkg/core/post/repository/dao"
)

type GormPostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) dao.PostRepository {
	return &GormPostRepository{db: db}
}

// Create 追加帖子。无长度限制，无去重，空文本同样接受
func (r *GormPostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("post creation failed: %w", apperrors.WrapGormError(err))
	}
	return nil
}

// ListAll 按自增主键升序读取全量帖子：插入顺序即展示顺序
func (r *GormPostRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("post listing failed: %w", apperrors.WrapGormError(err))
	}
	return posts, nil
}
