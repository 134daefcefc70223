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

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	AssigneeID  *int64
}

// UpdateTaskInput carries a partial update: nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Priority    *model.TaskPriority
	AssigneeID  *int64
}

type TaskService interface {
	Create(ctx context.Context, actorID, projectID int64, input CreateTaskInput) (*model.Task, error)
	Get(ctx context.Context, actorID, taskID int64) (*model.Task, error)
	Update(ctx context.Context, actorID, taskID int64, input UpdateTaskInput) (*model.Task, error)
	List(ctx context.Context, actorID, projectID int64, status *model.TaskStatus) ([]model.Task, error)
}

type taskService struct {
	txRunner TxRunner
	producer queue.Producer
}

func NewTaskService(txRunner TxRunner, producer queue.Producer) TaskService {
	return &taskService{txRunner: txRunner, producer: producer}
}

func (s *taskService) Create(ctx context.Context, actorID, projectID int64, input CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrValidation)
	}
	status := input.Status
	if status == "" {
		status = model.TaskStatusTodo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	priority := input.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: invalid priority %q", ErrValidation, priority)
	}

	var (
		task     *model.Task
		activity *model.Activity
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		project, err := getProjectForMember(ctx, stores, actorID, projectID)
		if err != nil {
			return err
		}
		member, err := stores.Members().Get(ctx, project.WorkspaceID, actorID)
		if err != nil {
			return fmt.Errorf("getting membership: %w", err)
		}
		if !authz.Can(member.Role, authz.ActionCreateTask) {
			return ErrForbidden
		}

		task = &model.Task{
			ID:          id.New(),
			ProjectID:   project.ID,
			WorkspaceID: project.WorkspaceID,
			Title:       title,
			Description: input.Description,
			Status:      status,
			Priority:    priority,
			AssigneeID:  input.AssigneeID,
			CreatedBy:   actorID,
		}
		if err := stores.Tasks().Create(ctx, task); err != nil {
			return fmt.Errorf("creating task: %w", err)
		}

		activity, err = recordActivity(ctx, stores, project.WorkspaceID, actorID,
			model.ActivityTaskCreated, fmt.Sprintf("Task '%s' created", task.Title))
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task created", "task_id", task.ID, "project_id", projectID, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return task, nil
}

func (s *taskService) Get(ctx context.Context, actorID, taskID int64) (*model.Task, error) {
	var task *model.Task
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		task, err = getTaskForMember(ctx, stores, actorID, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, actorID, taskID int64, input UpdateTaskInput) (*model.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *input.Status)
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, fmt.Errorf("%w: invalid priority %q", ErrValidation, *input.Priority)
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrValidation)
	}

	var (
		task     *model.Task
		activity *model.Activity
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		task, err = getTaskForMember(ctx, stores, actorID, taskID)
		if err != nil {
			return err
		}
		member, err := stores.Members().Get(ctx, task.WorkspaceID, actorID)
		if err != nil {
			return fmt.Errorf("getting membership: %w", err)
		}
		if !authz.Can(member.Role, authz.ActionUpdateTask) {
			return ErrForbidden
		}

		previousStatus := task.Status
		if input.Title != nil {
			task.Title = strings.TrimSpace(*input.Title)
		}
		if input.Description != nil {
			task.Description = input.Description
		}
		if input.Status != nil {
			task.Status = *input.Status
		}
		if input.Priority != nil {
			task.Priority = *input.Priority
		}
		if input.AssigneeID != nil {
			task.AssigneeID = input.AssigneeID
		}

		if err := stores.Tasks().Update(ctx, task); err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		if task.Status != previousStatus {
			activity, err = recordActivity(ctx, stores, task.WorkspaceID, actorID,
				model.ActivityTaskStatusChanged,
				fmt.Sprintf("Task '%s' updated: status from '%s' to '%s'", task.Title, previousStatus, task.Status))
		} else {
			activity, err = recordActivity(ctx, stores, task.WorkspaceID, actorID,
				model.ActivityTaskUpdated, fmt.Sprintf("Task '%s' updated", task.Title))
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task updated", "task_id", taskID, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return task, nil
}

func (s *taskService) List(ctx context.Context, actorID, projectID int64, status *model.TaskStatus) ([]model.Task, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *status)
	}

	var tasks []model.Task
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		project, err := getProjectForMember(ctx, stores, actorID, projectID)
		if err != nil {
			return err
		}
		if status != nil {
			tasks, err = stores.Tasks().ListByProjectAndStatus(ctx, project.ID, *status)
		} else {
			tasks, err = stores.Tasks().ListByProject(ctx, project.ID)
		}
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// getTaskForMember loads a task and checks the caller belongs to its
// workspace. Tasks in workspaces the caller cannot see report ErrNotFound.
func getTaskForMember(ctx context.Context, stores StoreProvider, actorID, taskID int64) (*model.Task, error) {
	task, err := stores.Tasks().GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	if _, _, err := membership(ctx, stores, task.WorkspaceID, actorID); err != nil {
		return nil, err
	}
	return task, nil
}
