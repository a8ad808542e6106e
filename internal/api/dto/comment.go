package dto

import "time"

// CommentCreateDTO 发表评论
type CommentCreateDTO struct {
	Content string `json:"content" validate:"max=2000"`
}

// CommentDTO 评论详情
type CommentDTO struct {
	ID        uint64     `json:"id"`
	StoryID   uint64     `json:"story_id"`
	User      *AuthorDTO `json:"user"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
}
