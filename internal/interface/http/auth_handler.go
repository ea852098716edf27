package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/entertainmenthub/user-api/internal/application"
	"github.com/entertainmenthub/user-api/pkg/response"
	"github.com/entertainmenthub/user-api/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	_, err := h.Auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.WriteError[any](c, http.StatusBadRequest, "email is already in use", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.WriteError[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	response.WriteSuccess[any](c, http.StatusOK, nil, "User registered successfully!", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.WriteError[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.WriteError[any](c, http.StatusInternalServerError, "login failed", nil)
		return
	}

	response.WriteSuccess(c, http.StatusOK, gin.H{
		"token":    token,
		"type":     "Bearer",
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}, "login successful", map[string]any{"expires_at": exp})
}

// Profile GET /api/profile (auth required)
func (h *AuthHandler) Profile(c *gin.Context) {
	id := identityFromCtx(c)
	u, err := h.Auth.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.WriteError[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get profile failed")
		response.WriteError[any](c, http.StatusInternalServerError, "profile lookup failed", nil)
		return
	}

	response.WriteSuccess(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"created_at": u.CreatedAt,
	}, "profile", nil)
}

// identityFromCtx rebuilds the token subject injected by middleware.Auth.
func identityFromCtx(c *gin.Context) application.Identity {
	return application.Identity{
		UserID:   c.GetString("userID"),
		Email:    c.GetString("userEmail"),
		Username: c.GetString("userName"),
	}
}
