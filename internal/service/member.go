package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taskboard.app/server/internal/authz"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/queue"
	"taskboard.app/server/internal/store"
)

type MemberService interface {
	Add(ctx context.Context, actorID, workspaceID int64, email string, role model.Role) (*model.Member, error)
	Remove(ctx context.Context, actorID, workspaceID, userID int64) error
	ChangeRole(ctx context.Context, actorID, workspaceID, userID int64, role model.Role) (*model.Member, error)
	List(ctx context.Context, actorID, workspaceID int64) ([]model.Member, error)
}

type memberService struct {
	txRunner TxRunner
	producer queue.Producer
}

func NewMemberService(txRunner TxRunner, producer queue.Producer) MemberService {
	return &memberService{txRunner: txRunner, producer: producer}
}

func (s *memberService) Add(ctx context.Context, actorID, workspaceID int64, email string, role model.Role) (*model.Member, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}

	var (
		member   *model.Member
		activity *model.Activity
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		_, actor, err := membership(ctx, stores, workspaceID, actorID)
		if err != nil {
			return err
		}
		if !authz.Can(actor.Role, authz.ActionAddMember) {
			return ErrForbidden
		}
		// Ownership is only ever granted at workspace creation or by an
		// owner promoting an existing member.
		if role == model.RoleOwner {
			return ErrForbidden
		}

		user, err := stores.Users().GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: no user with email %q", ErrNotFound, email)
			}
			return fmt.Errorf("getting user: %w", err)
		}

		member = &model.Member{
			WorkspaceID: workspaceID,
			UserID:      user.ID,
			Role:        role,
		}
		if err := stores.Members().Create(ctx, member); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return fmt.Errorf("%w: user is already a member", ErrConflict)
			}
			return fmt.Errorf("creating member: %w", err)
		}
		member.UserName = user.Name
		member.UserEmail = user.Email

		activity, err = recordActivity(ctx, stores, workspaceID, actorID,
			model.ActivityMemberAdded, fmt.Sprintf("User '%s' added as '%s'", user.Email, role))
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "member added", "workspace_id", workspaceID, "user_id", member.UserID, "role", member.Role, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return member, nil
}

func (s *memberService) Remove(ctx context.Context, actorID, workspaceID, userID int64) error {
	var activity *model.Activity
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		_, actor, err := membership(ctx, stores, workspaceID, actorID)
		if err != nil {
			return err
		}

		target, err := stores.Members().Get(ctx, workspaceID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("getting member: %w", err)
		}

		if !authz.CanRemoveMember(actor.Role, target.Role) {
			return ErrForbidden
		}

		if target.Role == model.RoleOwner {
			if err := ensureLastOwnerStands(ctx, stores, workspaceID); err != nil {
				return err
			}
		}

		user, err := stores.Users().GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("getting user: %w", err)
		}

		if err := stores.Members().Delete(ctx, workspaceID, userID); err != nil {
			return fmt.Errorf("deleting member: %w", err)
		}

		activity, err = recordActivity(ctx, stores, workspaceID, actorID,
			model.ActivityMemberRemoved, fmt.Sprintf("User '%s' removed", user.Email))
		return err
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "member removed", "workspace_id", workspaceID, "user_id", userID, "actor_id", actorID)
	publishActivity(ctx, s.producer, activity)
	return nil
}

func (s *memberService) ChangeRole(ctx context.Context, actorID, workspaceID, userID int64, role model.Role) (*model.Member, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}

	var (
		member   *model.Member
		activity *model.Activity
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		_, actor, err := membership(ctx, stores, workspaceID, actorID)
		if err != nil {
			return err
		}

		target, err := stores.Members().Get(ctx, workspaceID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("getting member: %w", err)
		}

		if !authz.CanChangeRole(actor.Role, target.Role, role) {
			return ErrForbidden
		}

		// No-op role change succeeds without touching the audit log.
		if target.Role == role {
			member = target
			return nil
		}

		if target.Role == model.RoleOwner {
			if err := ensureLastOwnerStands(ctx, stores, workspaceID); err != nil {
				return err
			}
		}

		previous := target.Role
		member, err = stores.Members().UpdateRole(ctx, workspaceID, userID, role)
		if err != nil {
			return fmt.Errorf("updating role: %w", err)
		}

		user, err := stores.Users().GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("getting user: %w", err)
		}

		activity, err = recordActivity(ctx, stores, workspaceID, actorID,
			model.ActivityMemberRoleChanged,
			fmt.Sprintf("User '%s' role changed from '%s' to '%s'", user.Email, previous, role))
		return err
	})
	if err != nil {
		return nil, err
	}

	if activity != nil {
		slog.InfoContext(ctx, "member role changed", "workspace_id", workspaceID, "user_id", userID, "role", role, "actor_id", actorID)
		publishActivity(ctx, s.producer, activity)
	}
	return member, nil
}

func (s *memberService) List(ctx context.Context, actorID, workspaceID int64) ([]model.Member, error) {
	var members []model.Member
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, _, err := membership(ctx, stores, workspaceID, actorID); err != nil {
			return err
		}
		var err error
		members, err = stores.Members().List(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("listing members: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}
