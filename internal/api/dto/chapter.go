package dto

import "time"

type ChapterCreateDTO struct {
	Title   string `json:"title" validate:"max=255"`
	Content string `json:"content"`
}

type ChapterUpdateDTO struct {
	Title   *string `json:"title" validate:"omitempty,max=255"`
	Content *string `json:"content"`
}

type ChapterDTO struct {
	ID            uint64    `json:"id"`
	StoryID       uint64    `json:"story_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ChapterNumber int       `json:"chapter_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
