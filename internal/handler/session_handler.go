package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/session"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
	"github.com/educonnect/educonnect-api/pkg/response"
)

// SessionHandler wires the session state machine to HTTP routes.
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// Register mounts session routes on the group.
func (h *SessionHandler) Register(r *gin.RouterGroup) {
	r.GET("/session", h.Snapshot)
	r.POST("/session/login", h.Login)
	r.POST("/session/logout", h.Logout)
	r.POST("/session/view", h.Navigate)
	r.POST("/session/theme", h.ToggleTheme)
}

// Snapshot returns the session read model used by the rendering layer.
func (h *SessionHandler) Snapshot(c *gin.Context) {
	sess := resolveSession(c, h.manager)
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}

type loginRequest struct {
	Role string `json:"role" binding:"required"`
}

// Login selects a role and loads its canned profile.
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unknown role"))
		return
	}

	sess := resolveSession(c, h.manager)
	sess.Login(role)
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}

// Logout resets the session to the logged-out state.
func (h *SessionHandler) Logout(c *gin.Context) {
	sess := resolveSession(c, h.manager)
	sess.Logout()
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}

type navigateRequest struct {
	View string `json:"view" binding:"required"`
}

// Navigate switches the active view.
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid navigation payload"))
		return
	}

	sess := resolveSession(c, h.manager)
	sess.Navigate(req.View)
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}

// ToggleTheme flips and persists the dark-mode preference.
func (h *SessionHandler) ToggleTheme(c *gin.Context) {
	sess := resolveSession(c, h.manager)
	dark := sess.ToggleTheme(c.Request.Context())
	response.JSON(c, http.StatusOK, gin.H{"theme_dark": dark}, nil)
}
