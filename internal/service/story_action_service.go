package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/consts"
	"StorySphere/internal/pkg/mongo"
	"StorySphere/internal/pkg/util"
	"StorySphere/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"
)

type StoryActionService interface {
	ToggleLike(ctx context.Context, actorID, storyID uint64) (*dto.ToggleDTO, error)
	AddComment(ctx context.Context, actorID, storyID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, storyID uint64) ([]*dto.CommentDTO, error)
}

type StoryActionServiceImpl struct {
	userRepo            repository.UserRepo
	storyRepo           repository.StoryRepo
	storyActionRepo     repository.StoryActionRepo
	notificationService NotificationService
}

func NewStoryActionService(
	userRepo repository.UserRepo,
	storyRepo repository.StoryRepo,
	storyActionRepo repository.StoryActionRepo,
	notificationService NotificationService,
) StoryActionService {
	return &StoryActionServiceImpl{
		userRepo:            userRepo,
		storyRepo:           storyRepo,
		storyActionRepo:     storyActionRepo,
		notificationService: notificationService,
	}
}

// ToggleLike 已点赞则取消，否则点赞并在非作者本人时通知作者
func (s *StoryActionServiceImpl) ToggleLike(ctx context.Context, actorID, storyID uint64) (*dto.ToggleDTO, error) {
	story, err := s.storyRepo.GetStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	actor, err := loadActor(ctx, s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	res := &dto.ToggleDTO{Action: consts.ActionUnliked, Message: "Story unliked"}

	removed, err := s.storyActionRepo.DeleteLike(ctx, actorID, storyID)
	if err != nil {
		return nil, err
	}
	if !removed {
		created, err := s.storyActionRepo.CreateLike(ctx, &model.Like{UserID: actorID, StoryID: storyID, CreatedAt: time.Now()})
		if err != nil {
			return nil, err
		}
		res.Action, res.Message = consts.ActionLiked, "Story liked"

		if created && story.AuthorID != actorID {
			s.notificationService.CreateNotification(ctx, &mongo.Notification{
				UserID:   story.AuthorID,
				FromUser: actorID,
				Type:     consts.NotificationTypeLike,
				StoryID:  &story.ID,
				Message:  fmt.Sprintf("%s liked your story \"%s\"", actor.Username, story.Title),
			})
		}
	}

	stories, err := buildStoryDTOs(ctx, s.storyActionRepo, []*model.Story{story})
	if err != nil {
		return nil, err
	}
	res.Story = stories[0]
	return res, nil
}

// AddComment 内容先校验再查故事，评论总会落库，评论者非作者时通知作者
func (s *StoryActionServiceImpl) AddComment(ctx context.Context, actorID, storyID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return nil, ErrCommentEmpty
	}
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	actor, err := loadActor(ctx, s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		StoryID: storyID,
		UserID:  actorID,
		Content: req.Content,
	}
	if err = s.storyActionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if story.AuthorID != actorID {
		s.notificationService.CreateNotification(ctx, &mongo.Notification{
			UserID:   story.AuthorID,
			FromUser: actorID,
			Type:     consts.NotificationTypeComment,
			StoryID:  &story.ID,
			Message:  fmt.Sprintf("%s commented on your story \"%s\"", actor.Username, story.Title),
		})
	}

	comment.User = *actor
	return toCommentDTO(comment), nil
}

// GetComments 旧的在前，不校验故事是否存在
func (s *StoryActionServiceImpl) GetComments(ctx context.Context, storyID uint64) ([]*dto.CommentDTO, error) {
	comments, err := s.storyActionRepo.GetCommentsByStoryID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentDTO(c))
	}
	return res, nil
}

func toCommentDTO(c *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        c.ID,
		StoryID:   c.StoryID,
		User:      &dto.AuthorDTO{ID: c.UserID, Username: c.User.Username, AvatarURL: c.User.AvatarURL},
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
