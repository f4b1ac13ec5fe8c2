package session

import (
	"sync"

	"instaboose/pkg/core/user/model"
)

// Store 进程级会话状态：同一时刻最多持有一个用户身份。
// 所有状态变更只通过下面的入口方法进行；HTTP服务器是并发的，
// 因此用读写锁保护，尽管业务模型本身只有单个写者。
type Store struct {
	mu       sync.RWMutex
	loggedIn bool
	current  *model.User
}

func NewStore() *Store {
	return &Store{}
}

// Login 无条件登录：忽略密码，不校验用户是否存在，永远成功
func (s *Store) Login(username, _ string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.User{Username: username}
	s.loggedIn = true
	s.current = &user
	return user
}

// Register 与 Login 完全等效：不区分新老用户，不做冲突检查
func (s *Store) Register(username, password string) model.User {
	return s.Login(username, password)
}

// Logout 清空会话，从任何状态调用都成立
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loggedIn = false
	s.current = nil
}

// Rename 整体替换当前用户身份；未登录时不产生任何效果。
// 历史帖子保留创建时的作者名，不随改名回溯更新。
func (s *Store) Rename(newUsername string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn || s.current == nil {
		return model.User{}, false
	}
	user := model.User{Username: newUsername}
	s.current = &user
	return user, true
}

// Current 读取当前会话快照
func (s *Store) Current() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loggedIn || s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// IsLoggedIn 当前是否已登录
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}
