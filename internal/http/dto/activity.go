package dto

import (
	"time"

	"taskboard.app/server/internal/model"
)

type ActivityResponse struct {
	ID           int64              `json:"id,string"`
	WorkspaceID  int64              `json:"workspace_id,string"`
	ActorID      int64              `json:"actor_id,string"`
	ActivityType model.ActivityType `json:"activity_type"`
	Description  string             `json:"description"`
	CreatedAt    time.Time          `json:"created_at"`
}

func FromActivity(a *model.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		WorkspaceID:  a.WorkspaceID,
		ActorID:      a.ActorID,
		ActivityType: a.ActivityType,
		Description:  a.Description,
		CreatedAt:    a.CreatedAt,
	}
}

func FromActivities(activities []model.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, FromActivity(&activities[i]))
	}
	return out
}
