package handler

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/service"
	"io"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storySvc service.StoryService
}

func NewStoryHandler(storySvc service.StoryService) *StoryHandler {
	return &StoryHandler{storySvc: storySvc}
}

// CreateStory 支持 JSON，或携带 cover_image 文件的 multipart 表单
func (s *StoryHandler) CreateStory(c *gin.Context) {
	var req dto.StoryCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	var cover io.Reader
	if isMultipart(c) {
		req.Tags = splitTags(req.Tags)
		file, err := openImage(c, "cover_image")
		if err != nil {
			response.Error(c, err)
			return
		}
		if file != nil {
			defer func() {
				_ = file.Close()
			}()
			cover = file
		}
	}

	story, err := s.storySvc.CreateStory(c.Request.Context(), currentUserID(c), &req, cover)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, story)
}

func (s *StoryHandler) GetStories(c *gin.Context) {
	stories, err := s.storySvc.GetPublishedStories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stories)
}

func (s *StoryHandler) GetStory(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	story, err := s.storySvc.GetStory(c.Request.Context(), storyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, story)
}

func (s *StoryHandler) UpdateStory(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.StoryUpdateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	var cover io.Reader
	if isMultipart(c) {
		req.Tags = splitTags(req.Tags)
		file, err := openImage(c, "cover_image")
		if err != nil {
			response.Error(c, err)
			return
		}
		if file != nil {
			defer func() {
				_ = file.Close()
			}()
			cover = file
		}
	}

	story, err := s.storySvc.UpdateStory(c.Request.Context(), currentUserID(c), storyID, &req, cover)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, story)
}

func (s *StoryHandler) DeleteStory(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := s.storySvc.DeleteStory(c.Request.Context(), currentUserID(c), storyID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Story removed", nil)
}
