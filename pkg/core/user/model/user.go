package model

// User 用户身份，仅由用户名构成；不保存密码，也不校验唯一性
type User struct {
	Username string
}
