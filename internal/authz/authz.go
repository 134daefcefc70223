// Package authz holds the workspace permission rules as pure functions.
// Decisions depend only on the actor's role, the action, and (for member
// mutations) the target's role. Anything not explicitly granted is denied.
package authz

import "taskboard.app/server/internal/model"

// Action is an operation a member can attempt within a workspace.
type Action string

const (
	ActionViewWorkspace   Action = "view_workspace"
	ActionUpdateWorkspace Action = "update_workspace"
	ActionDeleteWorkspace Action = "delete_workspace"
	ActionCreateProject   Action = "create_project"
	ActionCreateTask      Action = "create_task"
	ActionUpdateTask      Action = "update_task"
	ActionAddMember       Action = "add_member"
	ActionRemoveMember    Action = "remove_member"
	ActionChangeRole      Action = "change_role"
)

var permissions = map[model.Role]map[Action]bool{
	model.RoleOwner: {
		ActionViewWorkspace:   true,
		ActionUpdateWorkspace: true,
		ActionDeleteWorkspace: true,
		ActionCreateProject:   true,
		ActionCreateTask:      true,
		ActionUpdateTask:      true,
		ActionAddMember:       true,
		ActionRemoveMember:    true,
		ActionChangeRole:      true,
	},
	model.RoleAdmin: {
		ActionViewWorkspace:   true,
		ActionUpdateWorkspace: true,
		ActionCreateProject:   true,
		ActionCreateTask:      true,
		ActionUpdateTask:      true,
		ActionAddMember:       true,
		ActionRemoveMember:    true,
		ActionChangeRole:      true,
	},
	model.RoleMember: {
		ActionViewWorkspace: true,
		ActionCreateProject: true,
		ActionCreateTask:    true,
		ActionUpdateTask:    true,
	},
}

// Can reports whether a member with the given role may perform the action.
// Target-specific restrictions are layered on top by CanRemoveMember and
// CanChangeRole.
func Can(role model.Role, action Action) bool {
	return permissions[role][action]
}

// CanRemoveMember reports whether the actor may remove a member holding
// targetRole. Admins may not touch owners.
func CanRemoveMember(actor, targetRole model.Role) bool {
	if !Can(actor, ActionRemoveMember) {
		return false
	}
	if actor == model.RoleAdmin && targetRole == model.RoleOwner {
		return false
	}
	return true
}

// CanChangeRole reports whether the actor may change a member's role from
// targetRole to newRole. Admins may not change an owner's role and may not
// promote anyone to owner.
func CanChangeRole(actor, targetRole, newRole model.Role) bool {
	if !Can(actor, ActionChangeRole) {
		return false
	}
	if actor == model.RoleAdmin && (targetRole == model.RoleOwner || newRole == model.RoleOwner) {
		return false
	}
	return true
}
