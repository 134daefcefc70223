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

var _ = Describe("ProjectService", func() {
	var (
		svc      service.ProjectService
		provider *mockStoreProvider
		producer *mockProducer
		ctx      context.Context
	)

	const workspaceID = int64(1)

	BeforeEach(func() {
		ctx = context.Background()
		provider = newMockStoreProvider()
		producer = &mockProducer{}
		svc = service.NewProjectService(&mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(provider)
			},
		}, producer)
		Expect(id.Init(1)).To(Succeed())

		provider.workspaces.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
			return &model.Workspace{ID: wsID, Name: "Acme"}, nil
		}
		provider.members.getFn = func(_ context.Context, wsID, uid int64) (*model.Member, error) {
			return &model.Member{WorkspaceID: wsID, UserID: uid, Role: model.RoleMember}, nil
		}
	})

	Describe("Create", func() {
		It("lets any member create a project and records an activity", func() {
			project, err := svc.Create(ctx, 30, workspaceID, "Backend", strPtr("api work"))
			Expect(err).NotTo(HaveOccurred())
			Expect(project.Name).To(Equal("Backend"))
			Expect(project.WorkspaceID).To(Equal(workspaceID))
			Expect(provider.projects.createCalls).To(Equal(1))
			Expect(provider.activities.created).To(HaveLen(1))
			Expect(provider.activities.created[0].ActivityType).To(Equal(model.ActivityProjectCreated))
			Expect(provider.activities.created[0].Description).To(Equal("Project 'Backend' created"))
			Expect(producer.enqueued).To(HaveLen(1))
		})

		It("rejects a blank name", func() {
			_, err := svc.Create(ctx, 30, workspaceID, "", nil)
			Expect(err).To(MatchError(service.ErrValidation))
			Expect(provider.projects.createCalls).To(BeZero())
		})

		It("hides the workspace from non-members", func() {
			provider.members.getFn = func(_ context.Context, _, _ int64) (*model.Member, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Create(ctx, 99, workspaceID, "Backend", nil)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("Get", func() {
		It("returns a project to workspace members", func() {
			provider.projects.getByIDFn = func(_ context.Context, pid int64) (*model.Project, error) {
				return &model.Project{ID: pid, WorkspaceID: workspaceID, Name: "Backend"}, nil
			}

			project, err := svc.Get(ctx, 30, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(project.Name).To(Equal("Backend"))
		})

		It("hides projects in foreign workspaces", func() {
			provider.projects.getByIDFn = func(_ context.Context, pid int64) (*model.Project, error) {
				return &model.Project{ID: pid, WorkspaceID: workspaceID, Name: "Backend"}, nil
			}
			provider.members.getFn = func(_ context.Context, _, _ int64) (*model.Member, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Get(ctx, 99, 2)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})
})
