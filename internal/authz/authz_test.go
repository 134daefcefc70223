package authz_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskboard.app/server/internal/authz"
	"taskboard.app/server/internal/model"
)

var allActions = []authz.Action{
	authz.ActionViewWorkspace,
	authz.ActionUpdateWorkspace,
	authz.ActionDeleteWorkspace,
	authz.ActionCreateProject,
	authz.ActionCreateTask,
	authz.ActionUpdateTask,
	authz.ActionAddMember,
	authz.ActionRemoveMember,
	authz.ActionChangeRole,
}

var _ = Describe("Can", func() {
	It("grants owners every action", func() {
		for _, action := range allActions {
			Expect(authz.Can(model.RoleOwner, action)).To(BeTrue(), "owner should be allowed %s", action)
		}
	})

	It("grants admins everything except workspace deletion", func() {
		for _, action := range allActions {
			allowed := authz.Can(model.RoleAdmin, action)
			if action == authz.ActionDeleteWorkspace {
				Expect(allowed).To(BeFalse())
			} else {
				Expect(allowed).To(BeTrue(), "admin should be allowed %s", action)
			}
		}
	})

	It("limits members to viewing and creating work items", func() {
		granted := map[authz.Action]bool{
			authz.ActionViewWorkspace: true,
			authz.ActionCreateProject: true,
			authz.ActionCreateTask:    true,
			authz.ActionUpdateTask:    true,
		}
		for _, action := range allActions {
			Expect(authz.Can(model.RoleMember, action)).To(Equal(granted[action]), "member permission for %s", action)
		}
	})

	It("denies everything for unknown roles", func() {
		for _, action := range allActions {
			Expect(authz.Can(model.Role("guest"), action)).To(BeFalse())
		}
	})
})

var _ = Describe("CanRemoveMember", func() {
	It("lets owners remove anyone", func() {
		for _, target := range []model.Role{model.RoleOwner, model.RoleAdmin, model.RoleMember} {
			Expect(authz.CanRemoveMember(model.RoleOwner, target)).To(BeTrue())
		}
	})

	It("stops admins from removing owners", func() {
		Expect(authz.CanRemoveMember(model.RoleAdmin, model.RoleOwner)).To(BeFalse())
		Expect(authz.CanRemoveMember(model.RoleAdmin, model.RoleAdmin)).To(BeTrue())
		Expect(authz.CanRemoveMember(model.RoleAdmin, model.RoleMember)).To(BeTrue())
	})

	It("denies members entirely", func() {
		for _, target := range []model.Role{model.RoleOwner, model.RoleAdmin, model.RoleMember} {
			Expect(authz.CanRemoveMember(model.RoleMember, target)).To(BeFalse())
		}
	})
})

var _ = Describe("CanChangeRole", func() {
	roles := []model.Role{model.RoleOwner, model.RoleAdmin, model.RoleMember}

	It("lets owners change any role to any role", func() {
		for _, target := range roles {
			for _, next := range roles {
				Expect(authz.CanChangeRole(model.RoleOwner, target, next)).To(BeTrue())
			}
		}
	})

	It("stops admins from touching owners or promoting to owner", func() {
		for _, target := range roles {
			for _, next := range roles {
				allowed := authz.CanChangeRole(model.RoleAdmin, target, next)
				if target == model.RoleOwner || next == model.RoleOwner {
					Expect(allowed).To(BeFalse(), "admin changing %s to %s", target, next)
				} else {
					Expect(allowed).To(BeTrue(), "admin changing %s to %s", target, next)
				}
			}
		}
	})

	It("denies members entirely", func() {
		for _, target := range roles {
			for _, next := range roles {
				Expect(authz.CanChangeRole(model.RoleMember, target, next)).To(BeFalse())
			}
		}
	})
})
