package model

// User API 调用方 (用于登录认证)
// 凭据来自配置，Password 保存的是 bcrypt 哈希
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
