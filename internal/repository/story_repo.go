package repository

import (
	"StorySphere/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type StoryRepo interface {
	CreateStory(ctx context.Context, story *model.Story) error
	GetStory(ctx context.Context, id uint64) (*model.Story, error)
	GetStoryByIds(ctx context.Context, ids []uint64) ([]*model.Story, error)
	GetPublishedStories(ctx context.Context) ([]*model.Story, error)
	GetFollowingFeed(ctx context.Context, userID uint64) ([]*model.Story, error)
	UpdateStory(ctx context.Context, story *model.Story) error
	DeleteStory(ctx context.Context, id uint64) error
}

type StoryRepoImpl struct {
	db *gorm.DB
}

func NewStoryRepo(db *gorm.DB) StoryRepo {
	return &StoryRepoImpl{db: db}
}

func (s *StoryRepoImpl) CreateStory(ctx context.Context, story *model.Story) error {
	return s.db.WithContext(ctx).Create(story).Error
}

// GetStory 不区分发布状态，附带作者
func (s *StoryRepoImpl) GetStory(ctx context.Context, id uint64) (*model.Story, error) {
	story := &model.Story{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		First(story, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return story, nil
}

func (s *StoryRepoImpl) GetStoryByIds(ctx context.Context, ids []uint64) ([]*model.Story, error) {
	stories := make([]*model.Story, 0, len(ids))
	if len(ids) == 0 {
		return stories, nil
	}
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&stories).Error
	return stories, err
}

// GetPublishedStories 全部已发布故事，新的在前
func (s *StoryRepoImpl) GetPublishedStories(ctx context.Context) ([]*model.Story, error) {
	stories := make([]*model.Story, 0)
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("is_published = ?", true).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	return stories, err
}

// GetFollowingFeed userID 所关注作者的已发布故事，新的在前
func (s *StoryRepoImpl) GetFollowingFeed(ctx context.Context, userID uint64) ([]*model.Story, error) {
	following := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Select("following_id").
		Where("follower_id = ?", userID)

	stories := make([]*model.Story, 0)
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("is_published = ? AND author_id IN (?)", true, following).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	return stories, err
}

// UpdateStory 写回可编辑字段，作者不可变
func (s *StoryRepoImpl) UpdateStory(ctx context.Context, story *model.Story) error {
	return s.db.WithContext(ctx).
		Model(story).
		Select("title", "description", "genre", "tags", "cover_image", "is_published").
		Updates(story).Error
}

// DeleteStory 只删除故事本身，章节、评论、书签、通知保留
func (s *StoryRepoImpl) DeleteStory(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Story{}, id).Error
}
