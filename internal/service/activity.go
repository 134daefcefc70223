package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taskboard.app/server/common/id"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/queue"
	"taskboard.app/server/internal/store"
)

// recordActivity appends one audit record inside the caller's transaction.
// Every successful mutation records exactly one; denied or failed mutations
// roll back with the rest of the transaction and leave none.
func recordActivity(ctx context.Context, stores StoreProvider, workspaceID, actorID int64, activityType model.ActivityType, description string) (*model.Activity, error) {
	activity := &model.Activity{
		ID:           id.New(),
		WorkspaceID:  workspaceID,
		ActorID:      actorID,
		ActivityType: activityType,
		Description:  description,
	}
	if err := stores.Activities().Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("recording activity: %w", err)
	}
	return activity, nil
}

// publishActivity pushes a committed activity onto the stream for downstream
// consumers. Failures are logged and swallowed: the database row is the
// source of truth and the request already succeeded.
func publishActivity(ctx context.Context, producer queue.Producer, activity *model.Activity) {
	if producer == nil || activity == nil {
		return
	}
	err := producer.Enqueue(ctx, queue.ActivityMessage{
		ActivityID:   activity.ID,
		WorkspaceID:  activity.WorkspaceID,
		ActivityType: string(activity.ActivityType),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to publish activity", "error", err, "activity_id", activity.ID)
	}
}

// membership is the single gate for workspace access. It resolves the
// workspace and the caller's membership in it, reporting ErrNotFound both
// when the workspace is missing (or deleted) and when the caller is not a
// member.
func membership(ctx context.Context, stores StoreProvider, workspaceID, userID int64) (*model.Workspace, *model.Member, error) {
	ws, err := stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("getting workspace: %w", err)
	}

	member, err := stores.Members().Get(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("getting membership: %w", err)
	}

	return ws, member, nil
}

// ensureLastOwnerStands locks the workspace's owner rows and fails with
// ErrLastOwner when the locked set has a single owner left. Callers must
// invoke it before demoting or removing an owner, inside the same
// transaction as the mutation.
func ensureLastOwnerStands(ctx context.Context, stores StoreProvider, workspaceID int64) error {
	if err := stores.Members().LockOwners(ctx, workspaceID); err != nil {
		return fmt.Errorf("locking owners: %w", err)
	}
	count, err := stores.Members().CountOwners(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("counting owners: %w", err)
	}
	if count <= 1 {
		return ErrLastOwner
	}
	return nil
}
