package repository

import (
	"StorySphere/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoryActionRepo 点赞、评论、书签
type StoryActionRepo interface {
	CreateLike(ctx context.Context, like *model.Like) (bool, error)
	DeleteLike(ctx context.Context, userID, storyID uint64) (bool, error)
	CheckLikeExists(ctx context.Context, userID, storyID uint64) (bool, error)
	GetLikeUserIDs(ctx context.Context, storyID uint64) ([]uint64, error)
	GetLikeUserIDsByStoryIds(ctx context.Context, storyIDs []uint64) (map[uint64][]uint64, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentsByStoryID(ctx context.Context, storyID uint64) ([]*model.Comment, error)

	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) (bool, error)
	DeleteBookmark(ctx context.Context, userID, storyID uint64) (bool, error)
	CheckBookmarkExists(ctx context.Context, userID, storyID uint64) (bool, error)
	GetBookmarksByUserID(ctx context.Context, userID uint64) ([]*model.Bookmark, error)
}

type StoryActionRepoImpl struct {
	db *gorm.DB
}

func NewStoryActionRepo(db *gorm.DB) StoryActionRepo {
	return &StoryActionRepoImpl{db}
}

func (s *StoryActionRepoImpl) CreateLike(ctx context.Context, like *model.Like) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	return result.RowsAffected > 0, result.Error
}

func (s *StoryActionRepoImpl) DeleteLike(ctx context.Context, userID, storyID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Delete(&model.Like{})
	return result.RowsAffected > 0, result.Error
}

func (s *StoryActionRepoImpl) CheckLikeExists(ctx context.Context, userID, storyID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Count(&count).Error
	return count > 0, err
}

func (s *StoryActionRepoImpl) GetLikeUserIDs(ctx context.Context, storyID uint64) ([]uint64, error) {
	userIDs := make([]uint64, 0)
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("story_id = ?", storyID).
		Order("created_at ASC").
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

func (s *StoryActionRepoImpl) GetLikeUserIDsByStoryIds(ctx context.Context, storyIDs []uint64) (map[uint64][]uint64, error) {
	res := make(map[uint64][]uint64, len(storyIDs))
	if len(storyIDs) == 0 {
		return res, nil
	}

	var likes []*model.Like
	err := s.db.WithContext(ctx).
		Where("story_id IN ?", storyIDs).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, like := range likes {
		res[like.StoryID] = append(res[like.StoryID], like.UserID)
	}
	return res, nil
}

func (s *StoryActionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetCommentsByStoryID 旧的在前，附带评论者
func (s *StoryActionRepoImpl) GetCommentsByStoryID(ctx context.Context, storyID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("story_id = ?", storyID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (s *StoryActionRepoImpl) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(bookmark)
	return result.RowsAffected > 0, result.Error
}

func (s *StoryActionRepoImpl) DeleteBookmark(ctx context.Context, userID, storyID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Delete(&model.Bookmark{})
	return result.RowsAffected > 0, result.Error
}

func (s *StoryActionRepoImpl) CheckBookmarkExists(ctx context.Context, userID, storyID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Count(&count).Error
	return count > 0, err
}

// GetBookmarksByUserID 新的在前
func (s *StoryActionRepoImpl) GetBookmarksByUserID(ctx context.Context, userID uint64) ([]*model.Bookmark, error) {
	bookmarks := make([]*model.Bookmark, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, story_id DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}
