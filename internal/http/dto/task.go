package dto

import (
	"time"

	"taskboard.app/server/internal/model"
)

type TaskResponse struct {
	ID          int64              `json:"id,string"`
	ProjectID   int64              `json:"project_id,string"`
	WorkspaceID int64              `json:"workspace_id,string"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Status      model.TaskStatus   `json:"status"`
	Priority    model.TaskPriority `json:"priority"`
	AssigneeID  *int64             `json:"assignee_id,string"`
	CreatedBy   int64              `json:"created_by,string"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func FromTask(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		WorkspaceID: t.WorkspaceID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssigneeID:  t.AssigneeID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTasks(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, FromTask(&tasks[i]))
	}
	return out
}
