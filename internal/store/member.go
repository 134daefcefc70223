package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"taskboard.app/server/core/db/sqlc"
	"taskboard.app/server/internal/model"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) Get(ctx context.Context, workspaceID, userID int64) (*model.Member, error) {
	row, err := s.queries.GetWorkspaceMember(ctx, sqlc.GetWorkspaceMemberParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

func (s *memberStore) List(ctx context.Context, workspaceID int64) ([]model.Member, error) {
	rows, err := s.queries.ListWorkspaceMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Member, len(rows))
	for i, row := range rows {
		result[i] = model.Member{
			WorkspaceID: row.WorkspaceID,
			UserID:      row.UserID,
			Role:        model.Role(row.Role),
			UserName:    row.UserName,
			UserEmail:   row.UserEmail,
			CreatedAt:   row.CreatedAt.Time,
			UpdatedAt:   row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *memberStore) Create(ctx context.Context, member *model.Member) error {
	row, err := s.queries.CreateWorkspaceMember(ctx, sqlc.CreateWorkspaceMemberParams{
		WorkspaceID: member.WorkspaceID,
		UserID:      member.UserID,
		Role:        string(member.Role),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	*member = *toMemberModel(row)
	return nil
}

func (s *memberStore) UpdateRole(ctx context.Context, workspaceID, userID int64, role model.Role) (*model.Member, error) {
	row, err := s.queries.UpdateWorkspaceMemberRole(ctx, sqlc.UpdateWorkspaceMemberRoleParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        string(role),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

func (s *memberStore) Delete(ctx context.Context, workspaceID, userID int64) error {
	return s.queries.DeleteWorkspaceMember(ctx, sqlc.DeleteWorkspaceMemberParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
}

func (s *memberStore) LockOwners(ctx context.Context, workspaceID int64) error {
	_, err := s.queries.LockWorkspaceOwners(ctx, workspaceID)
	return err
}

func (s *memberStore) CountOwners(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.CountWorkspaceOwners(ctx, workspaceID)
}

func toMemberModel(row sqlc.WorkspaceMember) *model.Member {
	return &model.Member{
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
		Role:        model.Role(row.Role),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
