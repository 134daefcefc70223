package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskboard.app/server/internal/http/handler"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/service"
)

var _ = Describe("WorkspaceHandler", func() {
	var (
		router *gin.Engine
		svc    *mockWorkspaceService
		auth   *mockAuthService
	)

	doRequest := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "sid", Value: "opaque-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockWorkspaceService{}
		auth = &mockAuthService{}
		h := handler.NewWorkspaceHandler(svc)

		group := router.Group("/workspaces")
		group.Use(middleware.RequireAuth(auth, "sid"))
		group.POST("", h.Create)
		group.GET("/:workspaceID", h.Get)
		group.PATCH("/:workspaceID", h.Update)
		group.DELETE("/:workspaceID", h.Delete)
		group.GET("/:workspaceID/activities", h.ListActivities)
	})

	It("returns 401 without a session cookie", func() {
		req := httptest.NewRequest(http.MethodPost, "/workspaces", bytes.NewBufferString(`{"name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("returns 201 with the workspace on create", func() {
		svc.createFn = func(_ context.Context, actorID int64, name string, _ *string) (*model.Workspace, error) {
			Expect(actorID).To(Equal(int64(10)))
			return &model.Workspace{ID: 1, Name: name, CreatedBy: actorID}, nil
		}

		w := doRequest(http.MethodPost, "/workspaces", []byte(`{"name":"Acme"}`))

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["name"]).To(Equal("Acme"))
	})

	It("returns 400 on a missing name", func() {
		w := doRequest(http.MethodPost, "/workspaces", []byte(`{}`))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 when the caller is not a member", func() {
		svc.getFn = func(_ context.Context, _, _ int64) (*model.Workspace, []model.Member, error) {
			return nil, nil, service.ErrNotFound
		}

		w := doRequest(http.MethodGet, "/workspaces/1", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns the workspace with members on get", func() {
		svc.getFn = func(_ context.Context, _, wsID int64) (*model.Workspace, []model.Member, error) {
			return &model.Workspace{ID: wsID, Name: "Acme"}, []model.Member{
				{WorkspaceID: wsID, UserID: 10, Role: model.RoleOwner, UserName: "Ana"},
			}, nil
		}

		w := doRequest(http.MethodGet, "/workspaces/1", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["members"]).To(HaveLen(1))
	})

	It("returns 403 when updates are forbidden", func() {
		svc.updateFn = func(_ context.Context, _, _ int64, _ string, _ *string) (*model.Workspace, error) {
			return nil, service.ErrForbidden
		}

		w := doRequest(http.MethodPatch, "/workspaces/1", []byte(`{"name":"Acme 2"}`))
		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("returns 204 on delete", func() {
		svc.deleteFn = func(_ context.Context, _, _ int64) error {
			return nil
		}

		w := doRequest(http.MethodDelete, "/workspaces/1", nil)
		Expect(w.Code).To(Equal(http.StatusNoContent))
	})

	It("returns 400 for a malformed workspace id", func() {
		w := doRequest(http.MethodGet, "/workspaces/not-a-number", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("passes pagination through to the activity list", func() {
		svc.listActivitiesFn = func(_ context.Context, _, _ int64, limit, offset int32) ([]model.Activity, error) {
			Expect(limit).To(Equal(int32(10)))
			Expect(offset).To(Equal(int32(20)))
			return []model.Activity{{ID: 1, ActivityType: model.ActivityWorkspaceCreated}}, nil
		}

		w := doRequest(http.MethodGet, "/workspaces/1/activities?limit=10&offset=20", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["activities"]).To(HaveLen(1))
	})
})
