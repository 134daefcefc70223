package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"taskboard.app/server/core/db/sqlc"
	"taskboard.app/server/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	row, err := s.queries.GetActivity(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toActivityModel(row), nil
}

func (s *activityStore) Create(ctx context.Context, activity *model.Activity) error {
	row, err := s.queries.CreateActivity(ctx, sqlc.CreateActivityParams{
		ID:           activity.ID,
		WorkspaceID:  activity.WorkspaceID,
		ActorID:      activity.ActorID,
		ActivityType: string(activity.ActivityType),
		Description:  activity.Description,
	})
	if err != nil {
		return err
	}
	*activity = *toActivityModel(row)
	return nil
}

func (s *activityStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int32) ([]model.Activity, error) {
	rows, err := s.queries.ListActivitiesByWorkspace(ctx, sqlc.ListActivitiesByWorkspaceParams{
		WorkspaceID: workspaceID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Activity, len(rows))
	for i, row := range rows {
		result[i] = *toActivityModel(row)
	}
	return result, nil
}

func toActivityModel(row sqlc.Activity) *model.Activity {
	return &model.Activity{
		ID:           row.ID,
		WorkspaceID:  row.WorkspaceID,
		ActorID:      row.ActorID,
		ActivityType: model.ActivityType(row.ActivityType),
		Description:  row.Description,
		CreatedAt:    row.CreatedAt.Time,
	}
}
