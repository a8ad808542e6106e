package handler

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/service"

	"github.com/gin-gonic/gin"
)

type StoryActionHandler struct {
	storyActionSvc service.StoryActionService
}

func NewStoryActionHandler(storyActionSvc service.StoryActionService) *StoryActionHandler {
	return &StoryActionHandler{storyActionSvc: storyActionSvc}
}

// ToggleLike 返回更新后的故事
func (s *StoryActionHandler) ToggleLike(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := s.storyActionSvc.ToggleLike(c.Request.Context(), currentUserID(c), storyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, res.Message, res)
}

func (s *StoryActionHandler) AddComment(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.storyActionSvc.AddComment(c.Request.Context(), currentUserID(c), storyID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, comment)
}

func (s *StoryActionHandler) GetComments(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	comments, err := s.storyActionSvc.GetComments(c.Request.Context(), storyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
