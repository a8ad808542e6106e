package handler

import (
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

// ToggleFollow 已关注则取消，否则关注
func (s *UserFollowHandler) ToggleFollow(c *gin.Context) {
	targetID, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := s.userFollowSvc.ToggleFollow(c.Request.Context(), currentUserID(c), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, res.Message, res)
}

func (s *UserFollowHandler) GetFollowingFeed(c *gin.Context) {
	stories, err := s.userFollowSvc.GetFollowingFeed(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stories)
}
