package api

import (
	"Inkstone/internal/api/middleware"
	"Inkstone/internal/pkg/logger"
	"Inkstone/internal/store"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, s *store.Store) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.GET("/list", group.UserHandler.ListUsers)
			userGroup.GET("/:user_id", group.UserHandler.GetUser)
		}

		feedGroup := apiGroup.Group("/feed")
		{
			feedGroup.GET("/trending", middleware.IdentityOptionalMiddleware(s), group.FeedHandler.Trending)
			feedGroup.GET("/following", middleware.IdentityMiddleware(s), group.FeedHandler.Following)
		}

		writingGroup := apiGroup.Group("/writing")
		{
			writingGroup.GET("/:writing_id", group.WritingHandler.GetWriting)

			authGroup := writingGroup.Group("")
			authGroup.Use(middleware.IdentityMiddleware(s))
			{
				authGroup.POST("", group.WritingHandler.SaveWriting)
				authGroup.GET("/mine/list", group.WritingHandler.ListMine)
			}
		}

		actionGroup := apiGroup.Group("/writing-action")
		{
			actionGroup.POST("/:writing_id/view", group.WritingActionHandler.TrackView)

			authGroup := actionGroup.Group("")
			authGroup.Use(middleware.IdentityMiddleware(s))
			{
				authGroup.POST("/:writing_id/vote", group.WritingActionHandler.Vote)
				authGroup.POST("/:writing_id/comment", group.WritingActionHandler.AddComment)
			}
		}

		relationGroup := apiGroup.Group("/user-relation")
		relationGroup.Use(middleware.IdentityMiddleware(s))
		{
			relationGroup.POST("/toggle/:author_id", group.UserFollowHandler.ToggleFollow)
			relationGroup.GET("/following", group.UserFollowHandler.GetFollowing)
		}

		editorGroup := apiGroup.Group("/editor")
		editorGroup.Use(middleware.IdentityMiddleware(s))
		{
			editorGroup.POST("/markdown", group.EditorHandler.InsertMarkdown)
			editorGroup.POST("/grammar/check", group.EditorHandler.CheckGrammar)
			editorGroup.POST("/grammar/apply", group.EditorHandler.ApplySuggestion)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.IdentityMiddleware(s))
		{
			analyticsGroup.GET("", group.AnalyticsHandler.Dashboard)
		}
	}

	return r
}
