package dao

import (
	"context"

	"instaboose/pkg/core/post/model"
)

type PostRepository interface {
	// Create 追加一条帖子，回填自增ID
	Create(ctx context.Context, post *model.Post) error
	// ListAll 返回全部帖子，按插入顺序（最旧在前）
	ListAll(ctx context.Context) ([]model.Post, error)
}
