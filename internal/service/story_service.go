package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/consts"
	"StorySphere/internal/pkg/util"
	"StorySphere/internal/repository"
	"context"
	"io"
	"strings"

	"github.com/jinzhu/copier"
)

type StoryService interface {
	CreateStory(ctx context.Context, authorID uint64, req *dto.StoryCreateDTO, cover io.Reader) (*dto.StoryDTO, error)
	GetPublishedStories(ctx context.Context) ([]*dto.StoryDTO, error)
	GetStory(ctx context.Context, storyID uint64) (*dto.StoryDTO, error)
	UpdateStory(ctx context.Context, actorID, storyID uint64, req *dto.StoryUpdateDTO, cover io.Reader) (*dto.StoryDTO, error)
	DeleteStory(ctx context.Context, actorID, storyID uint64) error
}

type StoryServiceImpl struct {
	storyRepo       repository.StoryRepo
	storyActionRepo repository.StoryActionRepo
	objectStore     ObjectStore
}

func NewStoryService(storyRepo repository.StoryRepo, storyActionRepo repository.StoryActionRepo, objectStore ObjectStore) StoryService {
	return &StoryServiceImpl{
		storyRepo:       storyRepo,
		storyActionRepo: storyActionRepo,
		objectStore:     objectStore,
	}
}

// CreateStory cover 不为空时上传封面并覆盖请求中的 cover_image
func (s *StoryServiceImpl) CreateStory(ctx context.Context, authorID uint64, req *dto.StoryCreateDTO, cover io.Reader) (*dto.StoryDTO, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrStoryTitleRequired
	}
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}

	story := &model.Story{}
	if err := copier.Copy(story, req); err != nil {
		return nil, err
	}
	story.AuthorID = authorID
	if strings.TrimSpace(story.Genre) == "" {
		story.Genre = model.DefaultGenre
	}
	if story.Tags == nil {
		story.Tags = []string{}
	}

	if cover != nil {
		url, err := storeImage(ctx, s.objectStore, consts.CoverObjectPrefix, cover)
		if err != nil {
			return nil, err
		}
		story.CoverImage = url
	}

	if err := s.storyRepo.CreateStory(ctx, story); err != nil {
		return nil, err
	}
	return s.GetStory(ctx, story.ID)
}

func (s *StoryServiceImpl) GetPublishedStories(ctx context.Context) ([]*dto.StoryDTO, error) {
	stories, err := s.storyRepo.GetPublishedStories(ctx)
	if err != nil {
		return nil, err
	}
	return buildStoryDTOs(ctx, s.storyActionRepo, stories)
}

// GetStory 未发布的故事同样可按 ID 读取
func (s *StoryServiceImpl) GetStory(ctx context.Context, storyID uint64) (*dto.StoryDTO, error) {
	story, err := s.storyRepo.GetStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	res, err := buildStoryDTOs(ctx, s.storyActionRepo, []*model.Story{story})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// UpdateStory 仅作者可改，空字段忽略，is_published 显式给出时才更新
func (s *StoryServiceImpl) UpdateStory(ctx context.Context, actorID, storyID uint64, req *dto.StoryUpdateDTO, cover io.Reader) (*dto.StoryDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}

	story, err := s.getOwnedStory(ctx, actorID, storyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		story.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil && *req.Description != "" {
		story.Description = *req.Description
	}
	if req.Genre != nil && *req.Genre != "" {
		story.Genre = *req.Genre
	}
	if req.Tags != nil {
		story.Tags = req.Tags
	}
	if req.CoverImage != nil && *req.CoverImage != "" {
		story.CoverImage = *req.CoverImage
	}
	if req.IsPublished != nil {
		story.IsPublished = *req.IsPublished
	}

	if cover != nil {
		url, err := storeImage(ctx, s.objectStore, consts.CoverObjectPrefix, cover)
		if err != nil {
			return nil, err
		}
		story.CoverImage = url
	}

	if err = s.storyRepo.UpdateStory(ctx, story); err != nil {
		return nil, err
	}
	return s.GetStory(ctx, story.ID)
}

// DeleteStory 不级联删除章节、评论、书签与通知
func (s *StoryServiceImpl) DeleteStory(ctx context.Context, actorID, storyID uint64) error {
	if _, err := s.getOwnedStory(ctx, actorID, storyID); err != nil {
		return err
	}
	return s.storyRepo.DeleteStory(ctx, storyID)
}

func (s *StoryServiceImpl) getOwnedStory(ctx context.Context, actorID, storyID uint64) (*model.Story, error) {
	story, err := s.storyRepo.GetStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	if story.AuthorID != actorID {
		return nil, ErrForbidden
	}
	return story, nil
}

// buildStoryDTOs 批量补全点赞集合与作者投影
func buildStoryDTOs(ctx context.Context, storyActionRepo repository.StoryActionRepo, stories []*model.Story) ([]*dto.StoryDTO, error) {
	ids := make([]uint64, 0, len(stories))
	for _, st := range stories {
		ids = append(ids, st.ID)
	}
	likes, err := storyActionRepo.GetLikeUserIDsByStoryIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StoryDTO, 0, len(stories))
	for _, st := range stories {
		d := &dto.StoryDTO{}
		_ = copier.Copy(d, st)
		d.Author = &dto.AuthorDTO{ID: st.AuthorID, Username: st.Author.Username, AvatarURL: st.Author.AvatarURL}
		d.Likes = nonNilIDs(likes[st.ID])
		if d.Tags == nil {
			d.Tags = []string{}
		}
		res = append(res, d)
	}
	return res, nil
}
