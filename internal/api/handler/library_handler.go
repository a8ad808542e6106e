package handler

import (
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	bookmarkSvc service.BookmarkService
}

func NewLibraryHandler(bookmarkSvc service.BookmarkService) *LibraryHandler {
	return &LibraryHandler{bookmarkSvc: bookmarkSvc}
}

func (s *LibraryHandler) ToggleBookmark(c *gin.Context) {
	storyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	res, err := s.bookmarkSvc.ToggleBookmark(c.Request.Context(), currentUserID(c), storyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, res.Message, res)
}

func (s *LibraryHandler) GetLibrary(c *gin.Context) {
	bookmarks, err := s.bookmarkSvc.GetBookmarks(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bookmarks)
}
