package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/mongo"
	"StorySphere/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// NotificationPublisher 通知投递通道，直接落库或经由消息队列
type NotificationPublisher interface {
	Publish(ctx context.Context, n *mongo.Notification) error
}

type NotificationService interface {
	CreateNotification(ctx context.Context, n *mongo.Notification)
	GetNotifications(ctx context.Context, userID uint64) ([]*dto.NotificationDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, id string) (*dto.NotificationDTO, error)
}

type notificationServiceImpl struct {
	notificationRepo mongo.NotificationRepo
	publisher        NotificationPublisher
	userRepo         repository.UserRepo
	storyRepo        repository.StoryRepo
	chapterRepo      repository.ChapterRepo
}

// NewNotificationService publisher 为 nil 时直接写入通知集合
func NewNotificationService(
	notificationRepo mongo.NotificationRepo,
	publisher NotificationPublisher,
	userRepo repository.UserRepo,
	storyRepo repository.StoryRepo,
	chapterRepo repository.ChapterRepo,
) NotificationService {
	if publisher == nil {
		publisher = &directPublisher{repo: notificationRepo}
	}
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		userRepo:         userRepo,
		storyRepo:        storyRepo,
		chapterRepo:      chapterRepo,
	}
}

type directPublisher struct {
	repo mongo.NotificationRepo
}

func (p *directPublisher) Publish(ctx context.Context, n *mongo.Notification) error {
	return p.repo.Create(ctx, n)
}

// CreateNotification 触发方动作已提交后调用，失败只记录日志
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, n *mongo.Notification) {
	if n == nil || n.UserID == n.FromUser {
		return
	}

	n.IsRead = false
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if err := s.publisher.Publish(ctx, n); err != nil {
		log.ErrorContext(ctx, "Notification creation failed",
			"type", n.Type,
			"user_id", n.UserID,
			"from_user", n.FromUser,
			"err", err)
	}
}

// GetNotifications 新的在前，补全发起者、故事、章节信息
func (s *notificationServiceImpl) GetNotifications(ctx context.Context, userID uint64) ([]*dto.NotificationDTO, error) {
	list, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, list)
}

// MarkAsRead 重复标记幂等
func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, id string) (*dto.NotificationDTO, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}

	notice, err := s.notificationRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongoDB.ErrNoDocuments) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}

	if notice.UserID != userID {
		return nil, ErrForbidden
	}

	if !notice.IsRead {
		if err = s.notificationRepo.MarkAsRead(ctx, objectID); err != nil {
			if errors.Is(err, mongoDB.ErrNoDocuments) {
				return nil, ErrNotificationNotFound
			}
			return nil, err
		}
		notice.IsRead = true
	}

	res, err := s.resolve(ctx, []*mongo.Notification{notice})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

func (s *notificationServiceImpl) resolve(ctx context.Context, list []*mongo.Notification) ([]*dto.NotificationDTO, error) {
	var userIDs, storyIDs, chapterIDs []uint64
	for _, n := range list {
		userIDs = append(userIDs, n.FromUser)
		if n.StoryID != nil {
			storyIDs = append(storyIDs, *n.StoryID)
		}
		if n.ChapterID != nil {
			chapterIDs = append(chapterIDs, *n.ChapterID)
		}
	}

	users := make(map[uint64]*model.User)
	stories := make(map[uint64]*model.Story)
	chapters := make(map[uint64]*model.Chapter)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.userRepo.GetUserByIds(gCtx, uniqueIDs(userIDs))
		for _, u := range found {
			users[u.ID] = u
		}
		return err
	})
	g.Go(func() error {
		found, err := s.storyRepo.GetStoryByIds(gCtx, uniqueIDs(storyIDs))
		for _, st := range found {
			stories[st.ID] = st
		}
		return err
	})
	g.Go(func() error {
		for _, id := range uniqueIDs(chapterIDs) {
			ch, err := s.chapterRepo.GetChapter(gCtx, id)
			if err != nil {
				return err
			}
			if ch != nil {
				chapters[ch.ID] = ch
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make([]*dto.NotificationDTO, 0, len(list))
	for _, n := range list {
		d := &dto.NotificationDTO{
			ID:        n.ID.Hex(),
			UserID:    n.UserID,
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if u, ok := users[n.FromUser]; ok {
			d.FromUser = toAuthorDTO(u)
		}
		if n.StoryID != nil {
			if st, ok := stories[*n.StoryID]; ok {
				d.Story = &dto.NotificationRefDTO{ID: st.ID, Title: st.Title}
			}
		}
		if n.ChapterID != nil {
			if ch, ok := chapters[*n.ChapterID]; ok {
				d.Chapter = &dto.NotificationRefDTO{ID: ch.ID, Title: ch.Title}
			}
		}
		res = append(res, d)
	}
	return res, nil
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	res := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

func toAuthorDTO(u *model.User) *dto.AuthorDTO {
	if u == nil {
		return nil
	}
	return &dto.AuthorDTO{ID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL}
}
