package kafka

import (
	"StorySphere/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
)

type NotificationHandler struct {
	repo mongo.NotificationRepo
}

func NewNotificationHandler(repo mongo.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{
		repo: repo,
	}
}

func (h *NotificationHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("notification consumer setup")
	return nil
}

func (h *NotificationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("notification consumer cleanup")
	return nil
}

func (h *NotificationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	err := pullMessageBatch(session, claim, h.logic)
	if err != nil {
		log.Error("notification process batch error", "err", err)
		return err
	}
	return nil
}

// logic 无法解析的消息直接丢弃，重复投递的通知按 ID 去重
func (h *NotificationHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var n mongo.Notification
	if err := json.Unmarshal(msg.Value, &n); err != nil {
		log.WarnContext(ctx, "drop malformed notification", "offset", msg.Offset, "err", err)
		return nil
	}
	if n.UserID == 0 || n.UserID == n.FromUser {
		return nil
	}

	if err := h.repo.Create(ctx, &n); err != nil {
		if mongoDB.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}
