package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"herbgarden/handlers"
	"herbgarden/middleware"
)

func corsOrigins() []string {
	if raw := os.Getenv("CORS_ORIGIN"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	router := gin.Default()

	// CORS must be attached before any route so every endpoint,
	// health check included, carries the headers.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Virtual Herbal Garden API is running",
			"time":    time.Now().Unix(),
			"ws":      "WebSocket available at /ws",
		})
	})

	// Public routes (no auth required)
	router.POST("/api/signup", middleware.RateLimitMiddleware(), handlers.Signup)
	router.POST("/api/login", middleware.RateLimitMiddleware(), handlers.Login)
	router.GET("/api/vapid-public-key", handlers.GetVapidPublicKey)

	// Catalog and community reads are public
	router.GET("/api/herbs", handlers.GetHerbs)
	router.GET("/api/herbs/:id", handlers.GetHerb)
	router.GET("/api/recommendations", handlers.GetRecommendations)
	router.GET("/api/post-meta", handlers.GetPostMeta)
	router.GET("/api/posts", handlers.GetPosts)
	router.GET("/api/posts/:id", handlers.GetPost)
	router.GET("/api/spaces", handlers.GetSpaces)
	router.GET("/api/spaces/:id", handlers.GetSpace)
	router.GET("/api/leaderboard", handlers.GetLeaderboard)
	router.GET("/api/user/:id", handlers.GetUser)

	// Stats endpoints for the admin dashboard
	router.GET("/api/users", handlers.GetUsers)
	router.GET("/api/active-users", handlers.GetActiveUsers)
	router.GET("/api/daily-active-users", handlers.GetDailyActiveUsers)
	router.GET("/api/monthly-active-users", handlers.GetMonthlyActiveUsers)
	router.GET("/api/visit-count", handlers.GetVisitCount)
	router.POST("/api/visit-count", handlers.IncrementVisitCount)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	// Profile
	protected.GET("/me", handlers.GetMyProfile)
	protected.PUT("/me", handlers.UpdateMyProfile)
	protected.POST("/me/activity", handlers.UpdateMyActivity)

	// Community posts
	protected.POST("/posts", handlers.CreatePost)
	protected.DELETE("/posts/:id", handlers.DeletePost)
	protected.POST("/posts/:id/vote", handlers.VotePost)
	protected.POST("/posts/:id/comments", handlers.AddComment)
	protected.POST("/posts/:id/comments/:commentId/upvote", handlers.UpvoteComment)
	protected.POST("/posts/:id/bookmark", handlers.ToggleBookmarkPost)
	protected.POST("/posts/:id/report", handlers.ReportPost)

	// Herb catalog management
	protected.POST("/herbs", handlers.CreateHerb)
	protected.PUT("/herbs/:id", handlers.UpdateHerb)
	protected.DELETE("/herbs/:id", handlers.DeleteHerb)
	protected.POST("/herbs/:id/bookmark", handlers.ToggleBookmarkHerb)

	// Spaces
	protected.POST("/spaces", handlers.CreateSpace)
	protected.POST("/spaces/:id/join", handlers.JoinSpace)
	protected.POST("/spaces/:id/leave", handlers.LeaveSpace)

	// Media upload
	protected.POST("/upload-media", handlers.UploadMedia)

	// Push subscriptions
	protected.POST("/subscribe", handlers.SubscribePush)

	// Add a catch-all for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error":   "Endpoint not found",
				"path":    c.Request.URL.Path,
				"message": "Check the API documentation for available endpoints",
			})
			return
		}
		c.Next()
	})

	return router
}
