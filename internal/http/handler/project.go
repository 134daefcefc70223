package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/dto"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user := middleware.GetUser(c)
	project, err := h.projectService.Create(c.Request.Context(), user.ID, workspaceID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromProject(project))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, ok := parseID(c, "projectID")
	if !ok {
		return
	}

	user := middleware.GetUser(c)
	project, err := h.projectService.Get(c.Request.Context(), user.ID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProject(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	user := middleware.GetUser(c)
	projects, err := h.projectService.List(c.Request.Context(), user.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": dto.FromProjects(projects)})
}
