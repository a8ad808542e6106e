package repository

import (
	"StorySphere/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ChapterRepo interface {
	CountByStoryID(ctx context.Context, storyID uint64) (int64, error)
	CreateChapter(ctx context.Context, chapter *model.Chapter) error
	GetChapter(ctx context.Context, id uint64) (*model.Chapter, error)
	GetChaptersByStoryID(ctx context.Context, storyID uint64) ([]*model.Chapter, error)
	UpdateChapter(ctx context.Context, chapter *model.Chapter) error
	DeleteChapter(ctx context.Context, id uint64) error
}

type ChapterRepoImpl struct {
	db *gorm.DB
}

func NewChapterRepo(db *gorm.DB) ChapterRepo {
	return &ChapterRepoImpl{db: db}
}

func (s *ChapterRepoImpl) CountByStoryID(ctx context.Context, storyID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Chapter{}).
		Where("story_id = ?", storyID).
		Count(&count).Error
	return count, err
}

func (s *ChapterRepoImpl) CreateChapter(ctx context.Context, chapter *model.Chapter) error {
	return s.db.WithContext(ctx).Create(chapter).Error
}

func (s *ChapterRepoImpl) GetChapter(ctx context.Context, id uint64) (*model.Chapter, error) {
	chapter := &model.Chapter{}
	if err := s.db.WithContext(ctx).First(chapter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return chapter, nil
}

// GetChaptersByStoryID 按章节号升序，编号相同时按创建顺序
func (s *ChapterRepoImpl) GetChaptersByStoryID(ctx context.Context, storyID uint64) ([]*model.Chapter, error) {
	chapters := make([]*model.Chapter, 0)
	err := s.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("chapter_number ASC, id ASC").
		Find(&chapters).Error
	return chapters, err
}

// UpdateChapter 章节号与所属故事不可变
func (s *ChapterRepoImpl) UpdateChapter(ctx context.Context, chapter *model.Chapter) error {
	return s.db.WithContext(ctx).
		Model(chapter).
		Select("title", "content").
		Updates(chapter).Error
}

func (s *ChapterRepoImpl) DeleteChapter(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Chapter{}, id).Error
}
