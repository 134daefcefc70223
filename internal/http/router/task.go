package router

import (
	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/handler"
)

func TaskRouter(rg *gin.RouterGroup, ph *handler.ProjectHandler, th *handler.TaskHandler) {
	rg.GET("/projects/:projectID", ph.Get)
	rg.POST("/projects/:projectID/tasks", th.Create)
	rg.GET("/projects/:projectID/tasks", th.List)

	rg.GET("/tasks/:taskID", th.Get)
	rg.PATCH("/tasks/:taskID", th.Update)
}
