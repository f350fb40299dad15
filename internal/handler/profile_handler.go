package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/session"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
	"github.com/educonnect/educonnect-api/pkg/response"
)

// ProfileHandler exposes teacher portfolio operations.
type ProfileHandler struct {
	manager *session.Manager
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(manager *session.Manager) *ProfileHandler {
	return &ProfileHandler{manager: manager}
}

// Register mounts profile routes on the group.
func (h *ProfileHandler) Register(r *gin.RouterGroup) {
	r.POST("/profile", h.Save)
	r.POST("/profile/editing", h.SetEditing)
	r.POST("/profile/optimize", h.Optimize)
	r.POST("/profile/match", h.Match)
}

// Save replaces the committed teacher profile with the edited draft and
// re-runs matching.
func (h *ProfileHandler) Save(c *gin.Context) {
	var edited models.TeacherProfile
	if err := c.ShouldBindJSON(&edited); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	sess := resolveSession(c, h.manager)
	if err := sess.SaveProfile(edited); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}

type editingRequest struct {
	Editing bool `json:"editing"`
}

// SetEditing toggles profile edit mode.
func (h *ProfileHandler) SetEditing(c *gin.Context) {
	var req editingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	sess := resolveSession(c, h.manager)
	sess.SetEditing(req.Editing)
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}

type optimizeRequest struct {
	Text string `json:"text"`
}

// Optimize summarizes free resume text into the active profile. A blank
// text is accepted and does nothing; an AI failure surfaces as a
// SERVICE_ERROR the client shows as a blocking alert.
func (h *ProfileHandler) Optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid optimize payload"))
		return
	}

	sess := resolveSession(c, h.manager)
	if err := sess.OptimizeProfile(c.Request.Context(), req.Text); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}

// Match re-runs job matching for the active teacher profile.
func (h *ProfileHandler) Match(c *gin.Context) {
	sess := resolveSession(c, h.manager)
	sess.TriggerMatching()
	response.JSON(c, http.StatusAccepted, sess.Snapshot(), nil)
}
