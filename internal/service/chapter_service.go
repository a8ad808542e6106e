package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/consts"
	"StorySphere/internal/pkg/util"
	"StorySphere/internal/repository"
	"context"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// Locker 分布式互斥锁，返回的 unlock 由调用方负责释放
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type ChapterService interface {
	CreateChapter(ctx context.Context, actorID, storyID uint64, req *dto.ChapterCreateDTO) (*dto.ChapterDTO, error)
	GetChapters(ctx context.Context, storyID uint64) ([]*dto.ChapterDTO, error)
	UpdateChapter(ctx context.Context, actorID, chapterID uint64, req *dto.ChapterUpdateDTO) (*dto.ChapterDTO, error)
	DeleteChapter(ctx context.Context, actorID, chapterID uint64) error
}

type ChapterServiceImpl struct {
	chapterRepo repository.ChapterRepo
	storyRepo   repository.StoryRepo
	locker      Locker
}

// NewChapterService locker 为 nil 时章节号按 count+1 直接分配，并发创建可能得到相同编号
func NewChapterService(chapterRepo repository.ChapterRepo, storyRepo repository.StoryRepo, locker Locker) ChapterService {
	return &ChapterServiceImpl{
		chapterRepo: chapterRepo,
		storyRepo:   storyRepo,
		locker:      locker,
	}
}

func (s *ChapterServiceImpl) CreateChapter(ctx context.Context, actorID, storyID uint64, req *dto.ChapterCreateDTO) (*dto.ChapterDTO, error) {
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

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrChapterFieldsMissing
	}
	if err = util.ValidateDTO(req); err != nil {
		return nil, err
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, consts.ChapterNumberLock+strconv.FormatUint(storyID, 10))
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	count, err := s.chapterRepo.CountByStoryID(ctx, storyID)
	if err != nil {
		return nil, err
	}

	chapter := &model.Chapter{
		StoryID:       storyID,
		Title:         req.Title,
		Content:       req.Content,
		ChapterNumber: int(count) + 1,
	}
	if err = s.chapterRepo.CreateChapter(ctx, chapter); err != nil {
		return nil, err
	}
	return toChapterDTO(chapter), nil
}

// GetChapters 按章节号升序，不校验故事是否存在
func (s *ChapterServiceImpl) GetChapters(ctx context.Context, storyID uint64) ([]*dto.ChapterDTO, error) {
	chapters, err := s.chapterRepo.GetChaptersByStoryID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.ChapterDTO, 0, len(chapters))
	for _, ch := range chapters {
		res = append(res, toChapterDTO(ch))
	}
	return res, nil
}

func (s *ChapterServiceImpl) UpdateChapter(ctx context.Context, actorID, chapterID uint64, req *dto.ChapterUpdateDTO) (*dto.ChapterDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}

	chapter, err := s.getOwnedChapter(ctx, actorID, chapterID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		chapter.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) != "" {
		chapter.Content = *req.Content
	}

	if err = s.chapterRepo.UpdateChapter(ctx, chapter); err != nil {
		return nil, err
	}
	return toChapterDTO(chapter), nil
}

func (s *ChapterServiceImpl) DeleteChapter(ctx context.Context, actorID, chapterID uint64) error {
	if _, err := s.getOwnedChapter(ctx, actorID, chapterID); err != nil {
		return err
	}
	return s.chapterRepo.DeleteChapter(ctx, chapterID)
}

// getOwnedChapter 通过所属故事校验作者，故事已删除时返回 ErrStoryNotFound
func (s *ChapterServiceImpl) getOwnedChapter(ctx context.Context, actorID, chapterID uint64) (*model.Chapter, error) {
	chapter, err := s.chapterRepo.GetChapter(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}

	story, err := s.storyRepo.GetStory(ctx, chapter.StoryID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	if story.AuthorID != actorID {
		return nil, ErrForbidden
	}
	return chapter, nil
}

func toChapterDTO(ch *model.Chapter) *dto.ChapterDTO {
	res := &dto.ChapterDTO{}
	_ = copier.Copy(res, ch)
	return res
}
