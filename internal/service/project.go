package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"taskboard.app/server/common/id"
	"taskboard.app/server/internal/authz"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/queue"
	"taskboard.app/server/internal/store"
)

type ProjectService interface {
	Create(ctx context.Context, actorID, workspaceID int64, name string, description *string) (*model.Project, error)
	Get(ctx context.Context, actorID, projectID int64) (*model.Project, error)
	List(ctx context.Context, actorID, workspaceID int64) ([]model.Project, error)
}

type projectService struct {
	txRunner TxRunner
	producer queue.Producer
}

func NewProjectService(txRunner TxRunner, producer queue.Producer) ProjectService {
	return &projectService{txRunner: txRunner, producer: producer}
}

func (s *projectService) Create(ctx context.Context, actorID, workspaceID int64, name string, description *string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}

	var (
		project  *model.Project
		activity *model.Activity
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		_, member, err := membership(ctx, stores, workspaceID, actorID)
		if err != nil {
			return err
		}
		if !authz.Can(member.Role, authz.ActionCreateProject) {
			return ErrForbidden
		}

		project = &model.Project{
			ID:          id.New(),
			WorkspaceID: workspaceID,
			Name:        name,
			Description: description,
		}
		if err := stores.Projects().Create(ctx, project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		activity, err = recordActivity(ctx, stores, workspaceID, actorID,
			model.ActivityProjectCreated, fmt.Sprintf("Project '%s' created", project.Name))
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "project created", "project_id", project.ID, "workspace_id", workspaceID, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return project, nil
}

func (s *projectService) Get(ctx context.Context, actorID, projectID int64) (*model.Project, error) {
	var project *model.Project
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		project, err = getProjectForMember(ctx, stores, actorID, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, actorID, workspaceID int64) ([]model.Project, error) {
	var projects []model.Project
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, _, err := membership(ctx, stores, workspaceID, actorID); err != nil {
			return err
		}
		var err error
		projects, err = stores.Projects().ListByWorkspace(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// getProjectForMember loads a project and checks the caller belongs to its
// workspace. Projects in workspaces the caller cannot see report ErrNotFound.
func getProjectForMember(ctx context.Context, stores StoreProvider, actorID, projectID int64) (*model.Project, error) {
	project, err := stores.Projects().GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	if _, _, err := membership(ctx, stores, project.WorkspaceID, actorID); err != nil {
		return nil, err
	}
	return project, nil
}
