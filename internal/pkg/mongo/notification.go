package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const NotificationCollection = "notifications"

// Notification 社交互动产生的通知，消息文案在创建时生成快照
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uint64             `bson:"user_id" json:"userId"`     // 接收者
	FromUser  uint64             `bson:"from_user" json:"fromUser"` // 发起者
	Type      string             `bson:"type" json:"type"`          // like | comment | follow
	StoryID   *uint64            `bson:"story_id,omitempty" json:"storyId,omitempty"`
	ChapterID *uint64            `bson:"chapter_id,omitempty" json:"chapterId,omitempty"`
	Message   string             `bson:"message" json:"message"`
	IsRead    bool               `bson:"is_read" json:"isRead"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
