package service

import (
	"context"
	"time"

	apperrors "instaboose/pkg/common/errors"
	"instaboose/pkg/core/post/model"
	"instaboose/pkg/core/post/repository/dao"
	"instaboose/pkg/core/user/session"
)

// PostService 帖子业务层：发帖时固化当前会话用户名为作者
type PostService struct {
	repo     dao.PostRepository
	sessions *session.Store
}

func NewPostService(repo dao.PostRepository, sessions *session.Store) *PostService {
	return &PostService{
		repo:     repo,
		sessions: sessions,
	}
}

// Publish 发布帖子。未登录时返回显式错误，
// 而不是在取用户名时解引用空会话
func (s *PostService) Publish(ctx context.Context, text string) (model.Post, error) {
	user, ok := s.sessions.Current()
	if !ok {
		return model.Post{}, apperrors.ErrUnauthenticated
	}

	post := model.Post{
		Author: user.Username, // 创建时刻的快照，之后改名不回溯
		Text:   text,
		Date:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// List 全量读取，每次都返回当前完整状态
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.repo.ListAll(ctx)
}
