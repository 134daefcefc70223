package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/dto"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	AssigneeID  *int64  `json:"assignee_id,string"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	projectID, ok := parseID(c, "projectID")
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user := middleware.GetUser(c)
	task, err := h.taskService.Create(c.Request.Context(), user.ID, projectID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
		Priority:    model.TaskPriority(req.Priority),
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTask(task))
}

func (h *TaskHandler) Get(c *gin.Context) {
	taskID, ok := parseID(c, "taskID")
	if !ok {
		return
	}

	user := middleware.GetUser(c)
	task, err := h.taskService.Get(c.Request.Context(), user.ID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTask(task))
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *int64  `json:"assignee_id,string"`
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := parseID(c, "taskID")
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	input := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := model.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	user := middleware.GetUser(c)
	task, err := h.taskService.Update(c.Request.Context(), user.ID, taskID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTask(task))
}

func (h *TaskHandler) List(c *gin.Context) {
	projectID, ok := parseID(c, "projectID")
	if !ok {
		return
	}

	var status *model.TaskStatus
	if raw := c.Query("status"); raw != "" {
		s := model.TaskStatus(raw)
		status = &s
	}

	user := middleware.GetUser(c)
	tasks, err := h.taskService.List(c.Request.Context(), user.ID, projectID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.FromTasks(tasks)})
}
