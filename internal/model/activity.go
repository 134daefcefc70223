package model

import "time"

// ActivityType identifies what kind of mutation an activity records.
type ActivityType string

const (
	ActivityWorkspaceCreated  ActivityType = "workspace_created"
	ActivityWorkspaceUpdated  ActivityType = "workspace_updated"
	ActivityWorkspaceDeleted  ActivityType = "workspace_deleted"
	ActivityMemberAdded       ActivityType = "workspace_member_added"
	ActivityMemberRemoved     ActivityType = "workspace_member_removed"
	ActivityMemberRoleChanged ActivityType = "workspace_member_role_changed"
	ActivityProjectCreated    ActivityType = "project_created"
	ActivityTaskCreated       ActivityType = "task_created"
	ActivityTaskUpdated       ActivityType = "task_updated"
	ActivityTaskStatusChanged ActivityType = "task_status_changed"
)

// Activity is an append-only audit record. Rows are inserted in the same
// transaction as the mutation they describe and never modified afterwards.
type Activity struct {
	ID           int64        `json:"id"`
	WorkspaceID  int64        `json:"workspace_id"`
	ActorID      int64        `json:"actor_id"`
	ActivityType ActivityType `json:"activity_type"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `json:"created_at"`
}
