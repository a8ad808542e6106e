package api

import "StorySphere/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	UserFollowHandler   *handler.UserFollowHandler
	StoryHandler        *handler.StoryHandler
	ChapterHandler      *handler.ChapterHandler
	StoryActionHandler  *handler.StoryActionHandler
	LibraryHandler      *handler.LibraryHandler
	NotificationHandler *handler.NotificationHandler
}
