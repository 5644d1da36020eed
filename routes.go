// Package main is the entry point for the blog API
package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/qmshan/blogapi/api/anime"
	"github.com/qmshan/blogapi/api/comment"
	"github.com/qmshan/blogapi/api/drive"
	"github.com/qmshan/blogapi/api/github"
	"github.com/qmshan/blogapi/api/post"
	"github.com/qmshan/blogapi/api/sso"
	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/config"
	"github.com/qmshan/blogapi/shared/middleware"
)

// setupRoutes configures the routes for the API
func setupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {

	// Repositories
	userRepo := user.NewRepository(db)
	ssoRepo := sso.NewRepository(db)
	postRepo := post.NewRepository(db)
	commentRepo := comment.NewRepository(db)
	animeRepo := anime.NewRepository(db)

	// Services
	userService := user.NewService(userRepo, cfg.AvatarURL)
	ssoService := sso.NewService(ssoRepo, userService, sso.NewIdPClient(cfg.SSOAPIURL), cfg.FrontendURL)
	postService := post.NewService(postRepo, userRepo, cfg.AvatarURL)
	commentService := comment.NewService(commentRepo, postRepo, userRepo, cfg.AvatarURL)
	animeService := anime.NewService(animeRepo)
	driveClient := drive.NewClient(cfg.DriveAPIURL, cfg.DriveCorpID, cfg.DriveCorpSecret)
	driveService := drive.NewService(driveClient, cfg.DriveSpaceID, cfg.ProxyHost)
	githubService := github.NewService(cfg.GithubAPIURL, github.NewRedisCache(redisClient))

	// Handlers
	userHandler := user.NewHandler(userService)
	ssoHandler := sso.NewHandler(ssoService)
	postHandler := post.NewHandler(postService, commentService)
	commentHandler := comment.NewHandler(commentService)
	animeHandler := anime.NewHandler(animeService)
	driveHandler := drive.NewHandler(driveService)
	githubHandler := github.NewHandler(githubService)

	// Liveness
	e.GET("/health", healthRoute)

	// Create a group for all API routes
	api := e.Group("/api")

	// Public routes
	api.GET("/posts", postHandler.ListPosts)
	api.GET("/posts/:id", postHandler.GetPost)
	api.GET("/posts/:id/comments/tree", commentHandler.GetCommentTree)
	api.GET("/search-posts", postHandler.SearchPosts)
	api.GET("/anime", animeHandler.ListAnime)
	api.GET("/github/:owner/:repo", githubHandler.GetRepo)

	// Session routes - optionally authenticated
	api.GET("/user/status", userHandler.Status)
	api.GET("/user", userHandler.Status)

	// SSO handshake routes
	api.GET("/sso/callback", ssoHandler.Callback)
	api.POST("/sso/verify", ssoHandler.Verify)

	// Create a group for protected routes
	protected := api.Group("", middleware.Auth(userService))
	protected.POST("/user/logout", userHandler.Logout)
	protected.POST("/posts/:postId/comments", commentHandler.CreateComment)
	protected.DELETE("/posts/:postId/comments/:commentId", commentHandler.DeleteComment)

	// Drive proxy routes reject with the `{logged_in:false}` shape
	driveGroup := api.Group("", middleware.AuthWithLoginState(userService))
	driveGroup.POST("/list", driveHandler.ListFiles)
	driveGroup.POST("/download", driveHandler.Download)
}

// healthRoute is the liveness endpoint
func healthRoute(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
