package router

import (
	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, wh *handler.WorkspaceHandler, mh *handler.MemberHandler, ph *handler.ProjectHandler) {
	rg.POST("", wh.Create)
	rg.GET("", wh.List)
	rg.GET("/:workspaceID", wh.Get)
	rg.PATCH("/:workspaceID", wh.Update)
	rg.DELETE("/:workspaceID", wh.Delete)
	rg.GET("/:workspaceID/activities", wh.ListActivities)

	rg.GET("/:workspaceID/members", mh.List)
	rg.POST("/:workspaceID/members", mh.Add)
	rg.PATCH("/:workspaceID/members/:userID", mh.ChangeRole)
	rg.DELETE("/:workspaceID/members/:userID", mh.Remove)

	rg.POST("/:workspaceID/projects", ph.Create)
	rg.GET("/:workspaceID/projects", ph.List)
}
