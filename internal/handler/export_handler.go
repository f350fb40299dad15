package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/service"
	"github.com/educonnect/educonnect-api/internal/session"
	"github.com/educonnect/educonnect-api/pkg/response"
)

// ExportHandler serves document downloads.
type ExportHandler struct {
	manager *session.Manager
	exports *service.ExportService
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(manager *session.Manager, exports *service.ExportService) *ExportHandler {
	return &ExportHandler{manager: manager, exports: exports}
}

// Register mounts export routes on the group.
func (h *ExportHandler) Register(r *gin.RouterGroup) {
	r.GET("/export/portfolio.pdf", h.Portfolio)
	r.GET("/export/admissions.csv", h.Admissions)
}

// Portfolio renders the session's teacher profile as a PDF download.
func (h *ExportHandler) Portfolio(c *gin.Context) {
	sess := resolveSession(c, h.manager)
	snap := sess.Snapshot()

	data, err := h.exports.Portfolio(c.Request.Context(), snap.TeacherProfile)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("portfolio-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Admissions exports the full admissions ledger as CSV.
func (h *ExportHandler) Admissions(c *gin.Context) {
	data, err := h.exports.Admissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("admissions-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
