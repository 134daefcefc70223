package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskboard.app/server/common/id"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/service"
	"taskboard.app/server/internal/store"
)

var _ = Describe("MemberService", func() {
	var (
		svc      service.MemberService
		provider *mockStoreProvider
		producer *mockProducer
		ctx      context.Context
	)

	const workspaceID = int64(1)

	setActor := func(userID int64, role model.Role) {
		provider.members.getFn = func(_ context.Context, wsID, uid int64) (*model.Member, error) {
			if uid == userID {
				return &model.Member{WorkspaceID: wsID, UserID: uid, Role: role}, nil
			}
			return nil, store.ErrNotFound
		}
	}

	setActorAndTarget := func(actorID int64, actorRole model.Role, targetID int64, targetRole model.Role) {
		provider.members.getFn = func(_ context.Context, wsID, uid int64) (*model.Member, error) {
			switch uid {
			case actorID:
				return &model.Member{WorkspaceID: wsID, UserID: uid, Role: actorRole}, nil
			case targetID:
				return &model.Member{WorkspaceID: wsID, UserID: uid, Role: targetRole}, nil
			}
			return nil, store.ErrNotFound
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		provider = newMockStoreProvider()
		producer = &mockProducer{}
		svc = service.NewMemberService(&mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(provider)
			},
		}, producer)
		Expect(id.Init(1)).To(Succeed())

		provider.workspaces.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
			return &model.Workspace{ID: wsID, Name: "Acme"}, nil
		}
		provider.users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
			return &model.User{ID: 50, Name: "Bea", Email: email}, nil
		}
		provider.users.getByIDFn = func(_ context.Context, uid int64) (*model.User, error) {
			return &model.User{ID: uid, Name: "Bea", Email: "bea@example.com"}, nil
		}
	})

	Describe("Add", func() {
		It("lets an admin add a member and records an activity", func() {
			setActor(20, model.RoleAdmin)

			member, err := svc.Add(ctx, 20, workspaceID, "bea@example.com", model.RoleMember)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.UserID).To(Equal(int64(50)))
			Expect(member.Role).To(Equal(model.RoleMember))
			Expect(provider.activities.created).To(HaveLen(1))
			Expect(provider.activities.created[0].ActivityType).To(Equal(model.ActivityMemberAdded))
			Expect(provider.activities.created[0].Description).To(Equal("User 'bea@example.com' added as 'member'"))
			Expect(producer.enqueued).To(HaveLen(1))
		})

		It("forbids plain members from adding", func() {
			setActor(30, model.RoleMember)

			_, err := svc.Add(ctx, 30, workspaceID, "bea@example.com", model.RoleMember)
			Expect(err).To(MatchError(service.ErrForbidden))
			Expect(provider.members.createCalls).To(BeZero())
			Expect(provider.activities.createCalls).To(BeZero())
			Expect(producer.enqueued).To(BeEmpty())
		})

		It("never grants the owner role through Add, even for owners", func() {
			setActor(10, model.RoleOwner)

			_, err := svc.Add(ctx, 10, workspaceID, "bea@example.com", model.RoleOwner)
			Expect(err).To(MatchError(service.ErrForbidden))
			Expect(provider.members.createCalls).To(BeZero())
		})

		It("rejects invalid roles", func() {
			_, err := svc.Add(ctx, 10, workspaceID, "bea@example.com", model.Role("superuser"))
			Expect(err).To(MatchError(service.ErrValidation))
		})

		It("reports not found for unknown emails", func() {
			setActor(10, model.RoleOwner)
			provider.users.getByEmailFn = func(_ context.Context, _ string) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Add(ctx, 10, workspaceID, "ghost@example.com", model.RoleMember)
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("reports conflict when the user is already a member", func() {
			setActor(10, model.RoleOwner)
			provider.members.createFn = func(_ context.Context, _ *model.Member) error {
				return store.ErrConflict
			}

			_, err := svc.Add(ctx, 10, workspaceID, "bea@example.com", model.RoleMember)
			Expect(err).To(MatchError(service.ErrConflict))
		})

		It("hides the workspace from non-member actors", func() {
			provider.members.getFn = func(_ context.Context, _, _ int64) (*model.Member, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Add(ctx, 99, workspaceID, "bea@example.com", model.RoleMember)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("Remove", func() {
		It("lets an admin remove a member and records an activity", func() {
			setActorAndTarget(20, model.RoleAdmin, 50, model.RoleMember)

			Expect(svc.Remove(ctx, 20, workspaceID, 50)).To(Succeed())
			Expect(provider.members.deleteCalls).To(Equal(1))
			Expect(provider.activities.created).To(HaveLen(1))
			Expect(provider.activities.created[0].Description).To(Equal("User 'bea@example.com' removed"))
		})

		It("forbids an admin from removing an owner", func() {
			setActorAndTarget(20, model.RoleAdmin, 10, model.RoleOwner)

			err := svc.Remove(ctx, 20, workspaceID, 10)
			Expect(err).To(MatchError(service.ErrForbidden))
			Expect(provider.members.deleteCalls).To(BeZero())
		})

		It("refuses to remove the last owner", func() {
			setActorAndTarget(10, model.RoleOwner, 10, model.RoleOwner)
			provider.members.countOwnersFn = func(_ context.Context, _ int64) (int64, error) {
				return 1, nil
			}

			err := svc.Remove(ctx, 10, workspaceID, 10)
			Expect(err).To(MatchError(service.ErrLastOwner))
			Expect(provider.members.lockCalls).To(Equal(1))
			Expect(provider.members.deleteCalls).To(BeZero())
			Expect(provider.activities.createCalls).To(BeZero())
		})

		It("removes an owner when another owner remains", func() {
			setActorAndTarget(10, model.RoleOwner, 11, model.RoleOwner)
			provider.members.countOwnersFn = func(_ context.Context, _ int64) (int64, error) {
				return 2, nil
			}

			Expect(svc.Remove(ctx, 10, workspaceID, 11)).To(Succeed())
			Expect(provider.members.deleteCalls).To(Equal(1))
		})
	})

	Describe("ChangeRole", func() {
		It("lets an owner promote a member to admin", func() {
			setActorAndTarget(10, model.RoleOwner, 50, model.RoleMember)

			member, err := svc.ChangeRole(ctx, 10, workspaceID, 50, model.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Role).To(Equal(model.RoleAdmin))
			Expect(provider.activities.created).To(HaveLen(1))
			Expect(provider.activities.created[0].ActivityType).To(Equal(model.ActivityMemberRoleChanged))
			Expect(provider.activities.created[0].Description).To(Equal("User 'bea@example.com' role changed from 'member' to 'admin'"))
		})

		It("forbids an admin from promoting to owner", func() {
			setActorAndTarget(20, model.RoleAdmin, 50, model.RoleMember)

			_, err := svc.ChangeRole(ctx, 20, workspaceID, 50, model.RoleOwner)
			Expect(err).To(MatchError(service.ErrForbidden))
			Expect(provider.activities.createCalls).To(BeZero())
		})

		It("forbids an admin from changing an owner's role", func() {
			setActorAndTarget(20, model.RoleAdmin, 10, model.RoleOwner)

			_, err := svc.ChangeRole(ctx, 20, workspaceID, 10, model.RoleAdmin)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("lets an owner promote a member to owner", func() {
			setActorAndTarget(10, model.RoleOwner, 50, model.RoleMember)

			member, err := svc.ChangeRole(ctx, 10, workspaceID, 50, model.RoleOwner)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Role).To(Equal(model.RoleOwner))
		})

		It("treats a same-role change as a no-op without an activity", func() {
			setActorAndTarget(10, model.RoleOwner, 50, model.RoleMember)

			member, err := svc.ChangeRole(ctx, 10, workspaceID, 50, model.RoleMember)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Role).To(Equal(model.RoleMember))
			Expect(provider.activities.createCalls).To(BeZero())
			Expect(producer.enqueued).To(BeEmpty())
		})

		It("refuses to demote the last owner", func() {
			setActorAndTarget(10, model.RoleOwner, 10, model.RoleOwner)
			provider.members.countOwnersFn = func(_ context.Context, _ int64) (int64, error) {
				return 1, nil
			}

			_, err := svc.ChangeRole(ctx, 10, workspaceID, 10, model.RoleAdmin)
			Expect(err).To(MatchError(service.ErrLastOwner))
			Expect(provider.activities.createCalls).To(BeZero())
		})

		It("demotes an owner when another owner remains", func() {
			setActorAndTarget(10, model.RoleOwner, 11, model.RoleOwner)
			provider.members.countOwnersFn = func(_ context.Context, _ int64) (int64, error) {
				return 2, nil
			}

			member, err := svc.ChangeRole(ctx, 10, workspaceID, 11, model.RoleMember)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Role).To(Equal(model.RoleMember))
		})
	})

	Describe("List", func() {
		It("returns members to any workspace member", func() {
			setActor(30, model.RoleMember)
			provider.members.listFn = func(_ context.Context, wsID int64) ([]model.Member, error) {
				return []model.Member{
					{WorkspaceID: wsID, UserID: 10, Role: model.RoleOwner},
					{WorkspaceID: wsID, UserID: 30, Role: model.RoleMember},
				}, nil
			}

			members, err := svc.List(ctx, 30, workspaceID)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(2))
		})

		It("hides the list from non-members", func() {
			provider.members.getFn = func(_ context.Context, _, _ int64) (*model.Member, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.List(ctx, 99, workspaceID)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})
})
