package dto

import (
	"time"

	"taskboard.app/server/internal/model"
)

type ProjectResponse struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProject(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		WorkspaceID: p.WorkspaceID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func FromProjects(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, FromProject(&projects[i]))
	}
	return out
}
