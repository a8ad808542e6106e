package model

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_users_username" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Bio          string    `gorm:"type:varchar(500);not null;default:''" json:"bio"`
	AvatarURL    string    `gorm:"type:varchar(512);not null;default:''" json:"avatarUrl"`
	Role         string    `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
