package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/consts"
	"StorySphere/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type BookmarkService interface {
	ToggleBookmark(ctx context.Context, actorID, storyID uint64) (*dto.ToggleDTO, error)
	GetBookmarks(ctx context.Context, actorID uint64) ([]*dto.BookmarkDTO, error)
}

type BookmarkServiceImpl struct {
	storyRepo       repository.StoryRepo
	storyActionRepo repository.StoryActionRepo
}

func NewBookmarkService(storyRepo repository.StoryRepo, storyActionRepo repository.StoryActionRepo) BookmarkService {
	return &BookmarkServiceImpl{
		storyRepo:       storyRepo,
		storyActionRepo: storyActionRepo,
	}
}

// ToggleBookmark 书签从不产生通知
func (s *BookmarkServiceImpl) ToggleBookmark(ctx context.Context, actorID, storyID uint64) (*dto.ToggleDTO, error) {
	story, err := s.storyRepo.GetStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}

	removed, err := s.storyActionRepo.DeleteBookmark(ctx, actorID, storyID)
	if err != nil {
		return nil, err
	}
	if removed {
		return &dto.ToggleDTO{Action: consts.ActionRemoved, Message: "Bookmark removed"}, nil
	}

	if _, err = s.storyActionRepo.CreateBookmark(ctx, &model.Bookmark{UserID: actorID, StoryID: storyID, CreatedAt: time.Now()}); err != nil {
		return nil, err
	}
	return &dto.ToggleDTO{Action: consts.ActionBookmarked, Message: "Story bookmarked"}, nil
}

// GetBookmarks 新的在前，故事已删除的条目 story 为 null
func (s *BookmarkServiceImpl) GetBookmarks(ctx context.Context, actorID uint64) ([]*dto.BookmarkDTO, error) {
	bookmarks, err := s.storyActionRepo.GetBookmarksByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.StoryID)
	}
	stories, err := s.storyRepo.GetStoryByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	storyMap := make(map[uint64]*model.Story, len(stories))
	for _, st := range stories {
		storyMap[st.ID] = st
	}

	res := make([]*dto.BookmarkDTO, 0, len(bookmarks))
	for _, b := range bookmarks {
		item := &dto.BookmarkDTO{StoryID: b.StoryID, CreatedAt: b.CreatedAt}
		if st, ok := storyMap[b.StoryID]; ok {
			item.Story = &dto.StoryBriefDTO{}
			_ = copier.Copy(item.Story, st)
			if item.Story.Tags == nil {
				item.Story.Tags = []string{}
			}
		}
		res = append(res, item)
	}
	return res, nil
}
