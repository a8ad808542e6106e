package model

import (
	"time"
)

type Chapter struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	StoryID       uint64    `gorm:"not null;index:idx_chapters_story_number" json:"storyId"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Content       string    `gorm:"type:longtext;not null" json:"content"`
	ChapterNumber int       `gorm:"not null;index:idx_chapters_story_number" json:"chapterNumber"` // 非唯一，并发创建可能重复
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Chapter) TableName() string {
	return "chapters"
}
