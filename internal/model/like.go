package model

import (
	"time"
)

type Like struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	StoryID   uint64    `gorm:"primaryKey;index:idx_story_likes_story_id" json:"storyId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "story_likes"
}
