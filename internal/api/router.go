package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AK-1225/SPONproject/config"
	_ "github.com/AK-1225/SPONproject/docs"
	"github.com/AK-1225/SPONproject/internal/api/handler"
	"github.com/AK-1225/SPONproject/internal/api/middleware"
)

// NewRouter 组装全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware("spon-api"))
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	authed := v1.Group("")
	authed.Use(middleware.Auth(cfg.JWT.Secret))
	{
		rel := authed.Group("/relations")
		{
			rel.POST("/follow", h.Follow)
			rel.POST("/unfollow", h.Unfollow)
			rel.GET("/following", h.ListFollowing)
			rel.GET("/fans/:athlete_id", h.ListFans)
			rel.POST("/block", h.Block)
			rel.POST("/unblock", h.Unblock)
			rel.GET("/blocked", h.BlockedUsers)
		}

		sup := authed.Group("/supports")
		{
			sup.POST("", h.RecordSupport)
			sup.GET("/history", h.SupportHistory)
			sup.GET("/tier/:athlete_id", h.TierFor)
		}

		eng := authed.Group("/engagement")
		{
			eng.POST("/like", h.ToggleLike)
			eng.POST("/bookmark", h.ToggleBookmark)
			eng.GET("/flags/:content_id", h.EngagementFlags)
			eng.GET("/collection", h.Collection)
			eng.POST("/collection", h.Collect)
			eng.DELETE("/collection/:photo_id", h.Uncollect)
		}

		athletes := authed.Group("/athletes")
		{
			athletes.GET("", h.SearchAthletes)
			athletes.PATCH("/me", h.UpdateProfile)
			athletes.GET("/:athlete_id", h.GetAthlete)
			athletes.GET("/:athlete_id/posts", h.PostsForAthlete)
			athletes.GET("/:athlete_id/stories", h.StoriesForAthlete)
			athletes.GET("/:athlete_id/bestshots", h.BestShots)
		}

		posts := authed.Group("/posts")
		{
			posts.POST("", h.AddPost)
			posts.DELETE("/:post_id", h.DeletePost)
		}

		board := authed.Group("/board")
		{
			board.POST("", h.PostToBoard)
			board.GET("/:athlete_id", h.BoardPosts)
			board.DELETE("/:id", h.DeleteBoardPost)
		}

		comments := authed.Group("/comments")
		{
			comments.POST("", h.AddComment)
			comments.GET("/:post_id", h.CommentsForPost)
			comments.DELETE("/:id", h.DeleteComment)
		}

		notify := authed.Group("/notifications")
		{
			notify.GET("", h.Notifications)
			notify.GET("/unread", h.UnreadCount)
			notify.POST("/read/:id", h.MarkNotificationRead)
			notify.POST("/read-all", h.MarkAllNotificationsRead)
			notify.DELETE("", h.ClearNotifications)
		}
	}

	return r
}
