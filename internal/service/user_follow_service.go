package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/consts"
	"StorySphere/internal/pkg/mongo"
	"StorySphere/internal/repository"
	"context"
	"fmt"
	"time"
)

type UserFollowService interface {
	ToggleFollow(ctx context.Context, actorID, targetID uint64) (*dto.ToggleDTO, error)
	GetFollowingFeed(ctx context.Context, actorID uint64) ([]*dto.StoryDTO, error)
}

type UserFollowServiceImpl struct {
	userRepo            repository.UserRepo
	userFollowRepo      repository.UserFollowRepo
	storyRepo           repository.StoryRepo
	storyActionRepo     repository.StoryActionRepo
	notificationService NotificationService
}

func NewUserFollowService(
	userRepo repository.UserRepo,
	userFollowRepo repository.UserFollowRepo,
	storyRepo repository.StoryRepo,
	storyActionRepo repository.StoryActionRepo,
	notificationService NotificationService,
) UserFollowService {
	return &UserFollowServiceImpl{
		userRepo:            userRepo,
		userFollowRepo:      userFollowRepo,
		storyRepo:           storyRepo,
		storyActionRepo:     storyActionRepo,
		notificationService: notificationService,
	}
}

// ToggleFollow 已关注则取关，否则关注并通知对方。关注边单行写入，双方视图天然一致
func (s *UserFollowServiceImpl) ToggleFollow(ctx context.Context, actorID, targetID uint64) (*dto.ToggleDTO, error) {
	target, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	if actorID == targetID {
		return nil, ErrUserFollowSelf
	}

	actor, err := loadActor(ctx, s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	removed, err := s.userFollowRepo.DeleteUserFollow(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &dto.ToggleDTO{
			Action:  consts.ActionUnfollowed,
			Message: fmt.Sprintf("Unfollowed %s", target.Username),
		}, nil
	}

	created, err := s.userFollowRepo.CreateUserFollow(ctx, &model.UserFollow{
		FollowerID:  actorID,
		FollowingID: targetID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.notificationService.CreateNotification(ctx, &mongo.Notification{
			UserID:   targetID,
			FromUser: actorID,
			Type:     consts.NotificationTypeFollow,
			Message:  fmt.Sprintf("%s started following you", actor.Username),
		})
	}

	return &dto.ToggleDTO{
		Action:  consts.ActionFollowed,
		Message: fmt.Sprintf("Followed %s", target.Username),
	}, nil
}

// GetFollowingFeed 所关注作者的已发布故事，新的在前
func (s *UserFollowServiceImpl) GetFollowingFeed(ctx context.Context, actorID uint64) ([]*dto.StoryDTO, error) {
	stories, err := s.storyRepo.GetFollowingFeed(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return buildStoryDTOs(ctx, s.storyActionRepo, stories)
}

// loadActor 令牌有效但账号已不存在时按未认证处理
func loadActor(ctx context.Context, userRepo repository.UserRepo, actorID uint64) (*model.User, error) {
	actor, err := userRepo.GetUserById(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrTokenInvalid
	}
	return actor, nil
}
