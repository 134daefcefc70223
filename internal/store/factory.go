package store

import (
	"taskboard.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

func (s *Stores) Members() MemberStore {
	return newMemberStore(s.queries)
}

func (s *Stores) Projects() ProjectStore {
	return newProjectStore(s.queries)
}

func (s *Stores) Tasks() TaskStore {
	return newTaskStore(s.queries)
}

func (s *Stores) Activities() ActivityStore {
	return newActivityStore(s.queries)
}
