package model

import (
	"time"
)

type Bookmark struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	StoryID   uint64    `gorm:"primaryKey;index:idx_bookmarks_story_id" json:"storyId"`
	CreatedAt time.Time `gorm:"index:idx_bookmarks_created_at" json:"createdAt"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
