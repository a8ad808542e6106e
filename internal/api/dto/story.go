package dto

import "time"

// StoryCreateDTO 创建故事，支持 JSON 或 multipart 表单
type StoryCreateDTO struct {
	Title       string   `json:"title" form:"title" validate:"max=255"`
	Description string   `json:"description" form:"description"`
	Genre       string   `json:"genre" form:"genre" validate:"max=64"`
	Tags        []string `json:"tags" form:"tags"`
	CoverImage  string   `json:"cover_image" form:"-"`
	IsPublished bool     `json:"is_published" form:"is_published"`
}

// StoryUpdateDTO 更新故事，空字段不更新，is_published 仅在显式给出时更新
type StoryUpdateDTO struct {
	Title       *string  `json:"title" form:"title" validate:"omitempty,max=255"`
	Description *string  `json:"description" form:"description"`
	Genre       *string  `json:"genre" form:"genre" validate:"omitempty,max=64"`
	Tags        []string `json:"tags" form:"tags"`
	CoverImage  *string  `json:"cover_image" form:"-"`
	IsPublished *bool    `json:"is_published" form:"is_published"`
}

// StoryDTO 故事详情
type StoryDTO struct {
	ID          uint64     `json:"id"`
	Author      *AuthorDTO `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	Tags        []string   `json:"tags"`
	CoverImage  string     `json:"cover_image"`
	IsPublished bool       `json:"is_published"`
	Likes       []uint64   `json:"likes"`
	Views       int64      `json:"views"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StoryBriefDTO 书架中的故事投影
type StoryBriefDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	Tags        []string `json:"tags"`
	CoverImage  string   `json:"cover_image"`
	IsPublished bool     `json:"is_published"`
}

// BookmarkDTO 书架条目，故事已被删除时 Story 为 null
type BookmarkDTO struct {
	StoryID   uint64         `json:"story_id"`
	Story     *StoryBriefDTO `json:"story"`
	CreatedAt time.Time      `json:"created_at"`
}
