package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"taskboard.app/server/common/id"
	"taskboard.app/server/internal/authz"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/queue"
)

type WorkspaceService interface {
	Create(ctx context.Context, actorID int64, name string, description *string) (*model.Workspace, error)
	Get(ctx context.Context, actorID, workspaceID int64) (*model.Workspace, []model.Member, error)
	List(ctx context.Context, actorID int64) ([]model.Workspace, error)
	Update(ctx context.Context, actorID, workspaceID int64, name string, description *string) (*model.Workspace, error)
	Delete(ctx context.Context, actorID, workspaceID int64) error
	ListActivities(ctx context.Context, actorID, workspaceID int64, limit, offset int32) ([]model.Activity, error)
}

type workspaceService struct {
	txRunner TxRunner
	producer queue.Producer
}

func NewWorkspaceService(txRunner TxRunner, producer queue.Producer) WorkspaceService {
	return &workspaceService{txRunner: txRunner, producer: producer}
}

func (s *workspaceService) Create(ctx context.Context, actorID int64, name string, description *string) (*model.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: workspace name is required", ErrValidation)
	}

	ws := &model.Workspace{
		ID:          id.New(),
		Name:        name,
		Description: description,
		CreatedBy:   actorID,
	}

	var activity *model.Activity
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Workspaces().Create(ctx, ws); err != nil {
			return fmt.Errorf("creating workspace: %w", err)
		}

		owner := &model.Member{
			WorkspaceID: ws.ID,
			UserID:      actorID,
			Role:        model.RoleOwner,
		}
		if err := stores.Members().Create(ctx, owner); err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}

		var err error
		activity, err = recordActivity(ctx, stores, ws.ID, actorID,
			model.ActivityWorkspaceCreated, fmt.Sprintf("Workspace '%s' created.", ws.Name))
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace created", "workspace_id", ws.ID, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, actorID, workspaceID int64) (*model.Workspace, []model.Member, error) {
	var (
		ws      *model.Workspace
		members []model.Member
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		ws, _, err = membership(ctx, stores, workspaceID, actorID)
		if err != nil {
			return err
		}
		members, err = stores.Members().List(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("listing members: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return ws, members, nil
}

func (s *workspaceService) List(ctx context.Context, actorID int64) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		workspaces, err = stores.Workspaces().ListByUser(ctx, actorID)
		if err != nil {
			return fmt.Errorf("listing workspaces: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (s *workspaceService) Update(ctx context.Context, actorID, workspaceID int64, name string, description *string) (*model.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: workspace name is required", ErrValidation)
	}

	var (
		ws       *model.Workspace
		activity *model.Activity
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var member *model.Member
		var err error
		ws, member, err = membership(ctx, stores, workspaceID, actorID)
		if err != nil {
			return err
		}
		if !authz.Can(member.Role, authz.ActionUpdateWorkspace) {
			return ErrForbidden
		}

		ws.Name = name
		if description != nil {
			ws.Description = description
		}
		if err := stores.Workspaces().Update(ctx, ws); err != nil {
			return fmt.Errorf("updating workspace: %w", err)
		}

		activity, err = recordActivity(ctx, stores, ws.ID, actorID,
			model.ActivityWorkspaceUpdated, fmt.Sprintf("Workspace '%s' updated.", ws.Name))
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace updated", "workspace_id", workspaceID, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return ws, nil
}

func (s *workspaceService) Delete(ctx context.Context, actorID, workspaceID int64) error {
	var activity *model.Activity
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ws, member, err := membership(ctx, stores, workspaceID, actorID)
		if err != nil {
			return err
		}
		if !authz.Can(member.Role, authz.ActionDeleteWorkspace) {
			return ErrForbidden
		}

		if err := stores.Workspaces().Delete(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}

		activity, err = recordActivity(ctx, stores, workspaceID, actorID,
			model.ActivityWorkspaceDeleted, fmt.Sprintf("Workspace '%s' deleted.", ws.Name))
		return err
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "workspace deleted", "workspace_id", workspaceID, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return nil
}

func (s *workspaceService) ListActivities(ctx context.Context, actorID, workspaceID int64, limit, offset int32) ([]model.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var activities []model.Activity
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, _, err := membership(ctx, stores, workspaceID, actorID); err != nil {
			return err
		}
		var err error
		activities, err = stores.Activities().ListByWorkspace(ctx, workspaceID, limit, offset)
		if err != nil {
			return fmt.Errorf("listing activities: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activities, nil
}
