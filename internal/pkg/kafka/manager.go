package kafka

import (
	"StorySphere/internal/api/config"
	"StorySphere/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理通知消费者组
type ConsumerManager struct {
	topic                string
	notificationConsumer sarama.ConsumerGroup
	notificationHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, notificationRepo mongo.NotificationRepo) (*ConsumerManager, error) {
	consumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaNotification.GroupID, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return &ConsumerManager{
		topic:                cfg.KafkaNotification.Topic,
		notificationConsumer: consumer,
		notificationHandler:  NewNotificationHandler(notificationRepo),
	}, nil
}

// Start 阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.notificationConsumer.Errors() {
			log.Error("Notification consumer error", "err", err)
		}
	}()

	go func() {
		log.Info("Notification consumer started", "topic", m.topic)
		for {
			if err := m.notificationConsumer.Consume(ctx, []string{m.topic}, m.notificationHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.notificationConsumer.Close(); err != nil {
		log.Error("Failed to close notification consumer", "err", err)
		return err
	}
	return nil
}
