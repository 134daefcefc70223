package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"taskboard.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness constraint
var ErrConflict = errors.New("already exists")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

// SessionStore defines the contract for session data access.
// Sessions are looked up by the hash of their bearer token; the plaintext
// token is never stored.
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}

// WorkspaceStore defines the contract for workspace data access.
// Deleted workspaces are invisible: reads filter them out and
// updates against them report ErrNotFound.
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	Delete(ctx context.Context, id int64) error // soft delete
	ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error)
}

// MemberStore defines the contract for workspace membership data access
type MemberStore interface {
	Get(ctx context.Context, workspaceID, userID int64) (*model.Member, error)
	List(ctx context.Context, workspaceID int64) ([]model.Member, error)
	Create(ctx context.Context, member *model.Member) error
	UpdateRole(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.Member, error)
	Delete(ctx context.Context, workspaceID, userID int64) error

	// LockOwners takes row locks on the workspace's owner rows so a
	// subsequent CountOwners is stable for the rest of the transaction.
	LockOwners(ctx context.Context, workspaceID int64) error
	CountOwners(ctx context.Context, workspaceID int64) (int64, error)
}

// ProjectStore defines the contract for project data access
type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Project, error)
}

// TaskStore defines the contract for task data access
type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	ListByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	ListByProjectAndStatus(ctx context.Context, projectID int64, status model.TaskStatus) ([]model.Task, error)
}

// ActivityStore defines the contract for the append-only activity log
type ActivityStore interface {
	GetByID(ctx context.Context, id int64) (*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int32) ([]model.Activity, error)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
