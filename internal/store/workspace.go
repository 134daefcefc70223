package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"taskboard.app/server/core/db/sqlc"
	"taskboard.app/server/internal/model"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		CreatedBy:   ws.CreatedBy,
	})
	if err != nil {
		return err
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteWorkspace(ctx, id)
}

func (s *workspaceStore) ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceModel(row)
	}
	return result, nil
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
		IsDeleted:   row.IsDeleted,
	}
}
