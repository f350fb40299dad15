package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/session"
	"github.com/educonnect/educonnect-api/internal/store"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
	"github.com/educonnect/educonnect-api/pkg/response"
)

// JobHandler exposes the shared job board.
type JobHandler struct {
	manager *session.Manager
	board   *store.Board
}

// NewJobHandler constructs a JobHandler.
func NewJobHandler(manager *session.Manager, board *store.Board) *JobHandler {
	return &JobHandler{manager: manager, board: board}
}

// Register mounts job routes on the group.
func (h *JobHandler) Register(r *gin.RouterGroup) {
	r.GET("/jobs", h.List)
	r.POST("/jobs", h.Publish)
	r.POST("/jobs/:id/apply", h.Apply)
}

// List returns every listing, newest first.
func (h *JobHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.board.Snapshot(), nil)
}

// Publish validates a draft from the school job form and prepends the
// resulting listing to the board.
func (h *JobHandler) Publish(c *gin.Context) {
	var draft session.JobDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid job payload"))
		return
	}

	sess := resolveSession(c, h.manager)
	listing, err := sess.PublishJob(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, listing)
}

// Apply records an application for the session. Re-applying to the same
// listing is a no-op.
func (h *JobHandler) Apply(c *gin.Context) {
	sess := resolveSession(c, h.manager)
	sess.Apply(c.Param("id"))
	response.JSON(c, http.StatusOK, sess.Snapshot(), nil)
}
