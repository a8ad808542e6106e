package wire

import (
	"StorySphere/internal/api"
	"StorySphere/internal/api/config"
	"StorySphere/internal/api/handler"
	"StorySphere/internal/pkg/kafka"
	"StorySphere/internal/pkg/minio"
	"StorySphere/internal/pkg/mongo"
	"StorySphere/internal/pkg/redis"
	"StorySphere/internal/repository"
	"StorySphere/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
	// 仅 kafka 通知模式下非空
	KafkaManager         *kafka.ConsumerManager
	NotificationProducer *kafka.NotificationProducer
}

func BuildApplication(db *gorm.DB, mongoDatabase *mongoDB.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	storyRepo := repository.NewStoryRepo(db)
	storyActionRepo := repository.NewStoryActionRepo(db)
	chapterRepo := repository.NewChapterRepo(db)
	notificationRepo := mongo.NewNotificationRepo(mongoDatabase)

	objectStore := minio.NewObjectStore()
	blacklist := redis.NewTokenBlacklist()

	container := &ApplicationContainer{DB: db}

	var publisher service.NotificationPublisher
	if cfg.Notification.Mode == config.NotificationModeKafka {
		producer, err := kafka.NewNotificationProducer(cfg)
		if err != nil {
			return nil, err
		}
		kafkaMgr, err := kafka.NewConsumerManager(cfg, notificationRepo)
		if err != nil {
			_ = producer.Close()
			return nil, err
		}
		publisher = producer
		container.NotificationProducer = producer
		container.KafkaManager = kafkaMgr
	}
	log.Info("Notification delivery configured", "mode", cfg.Notification.Mode)

	var locker service.Locker
	if cfg.Content.SerializeChapterNumbers {
		locker = redis.NewLocker()
	}

	notificationService := service.NewNotificationService(notificationRepo, publisher, userRepo, storyRepo, chapterRepo)
	userService := service.NewUserService(userRepo, userFollowRepo, objectStore, blacklist)
	userFollowService := service.NewUserFollowService(userRepo, userFollowRepo, storyRepo, storyActionRepo, notificationService)
	storyService := service.NewStoryService(storyRepo, storyActionRepo, objectStore)
	chapterService := service.NewChapterService(chapterRepo, storyRepo, locker)
	storyActionService := service.NewStoryActionService(userRepo, storyRepo, storyActionRepo, notificationService)
	bookmarkService := service.NewBookmarkService(storyRepo, storyActionRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		UserFollowHandler:   handler.NewUserFollowHandler(userFollowService),
		StoryHandler:        handler.NewStoryHandler(storyService),
		ChapterHandler:      handler.NewChapterHandler(chapterService),
		StoryActionHandler:  handler.NewStoryActionHandler(storyActionService),
		LibraryHandler:      handler.NewLibraryHandler(bookmarkService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}
	container.Router = api.SetupRouter(handlers, blacklist)

	return container, nil
}
