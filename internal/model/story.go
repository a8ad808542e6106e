package model

import (
	"time"
)

type Story struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	AuthorID    uint64    `gorm:"not null;index:idx_stories_author_id" json:"authorId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Genre       string    `gorm:"type:varchar(64);not null;default:'General'" json:"genre"`
	Tags        []string  `gorm:"type:json;serializer:json" json:"tags"`
	CoverImage  string    `gorm:"type:varchar(512);not null;default:''" json:"coverImage"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:0;index:idx_stories_published_created" json:"isPublished"`
	Views       int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt   time.Time `gorm:"index:idx_stories_published_created" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Author User `gorm:"foreignKey:AuthorID;references:ID" json:"-"`
}

func (Story) TableName() string {
	return "stories"
}

const DefaultGenre = "General"
