package api

import (
	"StorySphere/internal/api/middleware"
	"StorySphere/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter checker 用于登出后的 Token 注销检查，可为 nil
func SetupRouter(group *HandlersGroup, checker middleware.RevocationChecker) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(checker)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)
			authGroup.GET("/me", auth, group.UserHandler.GetMe)
			authGroup.POST("/logout", auth, group.UserHandler.Logout)
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:id", group.UserHandler.GetUserInfo)

			authUserGroup := userGroup.Group("")
			authUserGroup.Use(auth)
			{
				authUserGroup.PUT("/profile", group.UserHandler.UpdateProfile)
				authUserGroup.POST("/avatar", group.UserHandler.UploadAvatar)
				authUserGroup.POST("/follow/:id", group.UserFollowHandler.ToggleFollow)
				authUserGroup.GET("/following-feed", group.UserFollowHandler.GetFollowingFeed)
			}
		}

		storyGroup := apiGroup.Group("/stories")
		{
			storyGroup.GET("", group.StoryHandler.GetStories)
			storyGroup.GET("/:id", group.StoryHandler.GetStory)
			storyGroup.GET("/:id/comments", group.StoryActionHandler.GetComments)

			authStoryGroup := storyGroup.Group("")
			authStoryGroup.Use(auth)
			{
				authStoryGroup.POST("", group.StoryHandler.CreateStory)
				authStoryGroup.PUT("/:id", group.StoryHandler.UpdateStory)
				authStoryGroup.DELETE("/:id", group.StoryHandler.DeleteStory)
				authStoryGroup.POST("/:id/like", group.StoryActionHandler.ToggleLike)
				authStoryGroup.POST("/:id/comments", group.StoryActionHandler.AddComment)
			}
		}

		chapterGroup := apiGroup.Group("/chapters")
		{
			chapterGroup.GET("/:id", group.ChapterHandler.GetChapters)

			authChapterGroup := chapterGroup.Group("")
			authChapterGroup.Use(auth)
			{
				authChapterGroup.POST("/:id", group.ChapterHandler.CreateChapter)
				authChapterGroup.PUT("/:id", group.ChapterHandler.UpdateChapter)
				authChapterGroup.DELETE("/:id", group.ChapterHandler.DeleteChapter)
			}
		}

		libraryGroup := apiGroup.Group("/library")
		libraryGroup.Use(auth)
		{
			libraryGroup.GET("", group.LibraryHandler.GetLibrary)
			libraryGroup.POST("/:id", group.LibraryHandler.ToggleBookmark)
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(auth)
		{
			notificationGroup.GET("", group.NotificationHandler.GetNotifications)
			notificationGroup.PUT("/:id/read", group.NotificationHandler.MarkAsRead)
		}
	}

	return r
}
