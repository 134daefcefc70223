package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard.app/server/internal/http/dto"
	"taskboard.app/server/internal/http/middleware"
	"taskboard.app/server/internal/service"
)

type AuthHandler struct {
	authService  service.AuthService
	cookieName   string
	cookieMaxAge int
	secure       bool
}

func NewAuthHandler(authService service.AuthService, cookieName string, cookieMaxAge int, secure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		secure:       secure,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user, session, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusCreated, dto.FromUser(user))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user, session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, dto.FromUser(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	c.JSON(http.StatusOK, dto.FromUser(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, h.cookieMaxAge, "/", "", h.secure, true)
}
