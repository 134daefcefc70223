package router

import (
	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", requireAuth, h.Logout)
	rg.GET("/me", requireAuth, h.Me)
}
