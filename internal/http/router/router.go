package router

import (
	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/handler"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/service"
)

type RouterConfig struct {
	CookieName   string
	CookieMaxAge int
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(services.Auth(), cfg.CookieName)

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.CookieName, cfg.CookieMaxAge, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	v1 := router.Group("/api/v1")
	v1.Use(requireAuth)
	{
		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		memberHandler := handler.NewMemberHandler(services.Members())
		projectHandler := handler.NewProjectHandler(services.Projects())
		WorkspaceRouter(v1.Group("/workspaces"), workspaceHandler, memberHandler, projectHandler)

		taskHandler := handler.NewTaskHandler(services.Tasks())
		TaskRouter(v1, projectHandler, taskHandler)
	}
}
