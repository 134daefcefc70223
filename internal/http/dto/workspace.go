package dto

import (
	"time"

	"taskboard.app/server/internal/model"
)

type WorkspaceResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   int64     `json:"created_by,string"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromWorkspace(w *model.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func FromWorkspaces(workspaces []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		out = append(out, FromWorkspace(&workspaces[i]))
	}
	return out
}

type MemberResponse struct {
	UserID   int64      `json:"user_id,string"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

func FromMember(m *model.Member) MemberResponse {
	return MemberResponse{
		UserID:   m.UserID,
		Name:     m.UserName,
		Email:    m.UserEmail,
		Role:     m.Role,
		JoinedAt: m.CreatedAt,
	}
}

func FromMembers(members []model.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, FromMember(&members[i]))
	}
	return out
}

type WorkspaceDetailResponse struct {
	WorkspaceResponse
	Members []MemberResponse `json:"members"`
}
