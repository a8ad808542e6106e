package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginDTO 登录
type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthDTO 登录/注册返回
type AuthDTO struct {
	Token string   `json:"token,omitempty"`
	User  *UserDTO `json:"user"`
}

// UserDTO 用户公开资料，不含密码哈希
type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"`
	Followers []uint64  `json:"followers"`
	Following []uint64  `json:"following"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileDTO 修改资料，空字段不更新
type UpdateProfileDTO struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=30"`
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=512"`
}

// AuthorDTO 嵌入在故事、评论、通知中的用户投影
type AuthorDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}
