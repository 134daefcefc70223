package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"taskboard.app/server/core/db/sqlc"
	"taskboard.app/server/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	row, err := s.queries.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		WorkspaceID: task.WorkspaceID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AssigneeID:  task.AssigneeID,
		CreatedBy:   task.CreatedBy,
	})
	if err != nil {
		return err
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) Update(ctx context.Context, task *model.Task) error {
	row, err := s.queries.UpdateTask(ctx, sqlc.UpdateTaskParams{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AssigneeID:  task.AssigneeID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) ListByProjectAndStatus(ctx context.Context, projectID int64, status model.TaskStatus) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByProjectAndStatus(ctx, sqlc.ListTasksByProjectAndStatusParams{
		ProjectID: projectID,
		Status:    string(status),
	})
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func toTaskModel(row sqlc.Task) *model.Task {
	return &model.Task{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		WorkspaceID: row.WorkspaceID,
		Title:       row.Title,
		Description: row.Description,
		Status:      model.TaskStatus(row.Status),
		Priority:    model.TaskPriority(row.Priority),
		AssigneeID:  row.AssigneeID,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toTaskModels(rows []sqlc.Task) []model.Task {
	result := make([]model.Task, len(rows))
	for i, row := range rows {
		result[i] = *toTaskModel(row)
	}
	return result
}
