package handler

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/service"

	"github.com/gin-gonic/gin"
)

// ChapterHandler 路由参数 id 在列表/创建时为故事 ID，更新/删除时为章节 ID
type ChapterHandler struct {
	chapterSvc service.ChapterService
}

func NewChapterHandler(chapterSvc service.ChapterService) *ChapterHandler {
	return &ChapterHandler{chapterSvc: chapterSvc}
}

func (s *ChapterHandler) GetChapters(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	chapters, err := s.chapterSvc.GetChapters(c.Request.Context(), storyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, chapters)
}

func (s *ChapterHandler) CreateChapter(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ChapterCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	chapter, err := s.chapterSvc.CreateChapter(c.Request.Context(), currentUserID(c), storyID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, chapter)
}

func (s *ChapterHandler) UpdateChapter(c *gin.Context) {
	chapterID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ChapterUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	chapter, err := s.chapterSvc.UpdateChapter(c.Request.Context(), currentUserID(c), chapterID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, chapter)
}

func (s *ChapterHandler) DeleteChapter(c *gin.Context) {
	chapterID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := s.chapterSvc.DeleteChapter(c.Request.Context(), currentUserID(c), chapterID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Chapter removed", nil)
}
