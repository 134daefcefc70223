package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/dto"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

type addMemberRequest struct {
	Email string     `json:"email" binding:"required,email"`
	Role  model.Role `json:"role" binding:"required"`
}

func (h *MemberHandler) Add(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user := middleware.GetUser(c)
	member, err := h.memberService.Add(c.Request.Context(), user.ID, workspaceID, req.Email, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromMember(member))
}

func (h *MemberHandler) Remove(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}

	actor := middleware.GetUser(c)
	if err := h.memberService.Remove(c.Request.Context(), actor.ID, workspaceID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type changeRoleRequest struct {
	Role model.Role `json:"role" binding:"required"`
}

func (h *MemberHandler) ChangeRole(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userID")
	if !ok {
		return
	}

	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	actor := middleware.GetUser(c)
	member, err := h.memberService.ChangeRole(c.Request.Context(), actor.ID, workspaceID, userID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMember(member))
}

func (h *MemberHandler) List(c *gin.Context) {
	workspaceID, ok := parseID(c, "workspaceID")
	if !ok {
		return
	}

	actor := middleware.GetUser(c)
	members, err := h.memberService.List(c.Request.Context(), actor.ID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": dto.FromMembers(members)})
}
