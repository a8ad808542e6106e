package kafka

import (
	"StorySphere/internal/api/config"
	"StorySphere/internal/pkg/mongo"
	"context"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationProducer 将通知写入 Kafka，由 NotificationHandler 异步落库
type NotificationProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewNotificationProducer(cfg *config.Config) (*NotificationProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return newNotificationProducer(producer, cfg.KafkaNotification.Topic), nil
}

func newNotificationProducer(producer sarama.SyncProducer, topic string) *NotificationProducer {
	return &NotificationProducer{
		producer: producer,
		topic:    topic,
	}
}

// Publish 以接收者 ID 作为分区键，同一用户的通知保持顺序
func (p *NotificationProducer) Publish(ctx context.Context, n *mongo.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// 在投递前分配 ID，重复消费时落库可去重
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(n.UserID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *NotificationProducer) Close() error {
	return p.producer.Close()
}
