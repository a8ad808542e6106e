package handler

import (
	"StorySphere/internal/pkg/response"
	"StorySphere/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) GetNotifications(c *gin.Context) {
	list, err := s.notificationSvc.GetNotifications(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// MarkAsRead id 为通知的 ObjectID 十六进制串
func (s *NotificationHandler) MarkAsRead(c *gin.Context) {
	n, err := s.notificationSvc.MarkAsRead(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, n)
}
