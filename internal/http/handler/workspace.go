package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/dto"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

type createWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req createWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user := middleware.GetUser(c)
	workspace, err := h.workspaceService.Create(c.Request.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromWorkspace(workspace))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	user := middleware.GetUser(c)
	workspace, members, err := h.workspaceService.Get(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WorkspaceDetailResponse{
		WorkspaceResponse: dto.FromWorkspace(workspace),
		Members:           dto.FromMembers(members),
	})
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	user := middleware.GetUser(c)
	workspaces, err := h.workspaceService.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": dto.FromWorkspaces(workspaces)})
}

type updateWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	var req updateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user := middleware.GetUser(c)
	workspace, err := h.workspaceService.Update(c.Request.Context(), user.ID, workspaceID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromWorkspace(workspace))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	user := middleware.GetUser(c)
	if err := h.workspaceService.Delete(c.Request.Context(), user.ID, workspaceID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) ListActivities(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	limit := parseQueryInt32(c, "limit", 0)
	offset := parseQueryInt32(c, "offset", 0)

	user := middleware.GetUser(c)
	activities, err := h.workspaceService.ListActivities(c.Request.Context(), user.ID, workspaceID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": dto.FromActivities(activities)})
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

func parseQueryInt32(c *gin.Context, key string, fallback int32) int32 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}
