package dto

import "time"

// NotificationRefDTO 通知关联的故事/章节
type NotificationRefDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

// NotificationDTO 通知返回对象，引用的实体已删除时对应字段为 null
type NotificationDTO struct {
	ID        string              `json:"id"`
	UserID    uint64              `json:"user_id"`
	FromUser  *AuthorDTO          `json:"from_user"`
	Type      string              `json:"type"`
	Story     *NotificationRefDTO `json:"story"`
	Chapter   *NotificationRefDTO `json:"chapter"`
	Message   string              `json:"message"`
	IsRead    bool                `json:"is_read"`
	CreatedAt time.Time           `json:"created_at"`
}
