package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/session"
	"github.com/educonnect/educonnect-api/internal/store"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
	"github.com/educonnect/educonnect-api/pkg/response"
)

// AdmissionHandler exposes the shared admissions ledger.
type AdmissionHandler struct {
	manager *session.Manager
	ledger  *store.Ledger
}

// NewAdmissionHandler constructs an AdmissionHandler.
func NewAdmissionHandler(manager *session.Manager, ledger *store.Ledger) *AdmissionHandler {
	return &AdmissionHandler{manager: manager, ledger: ledger}
}

// Register mounts admission routes on the group.
func (h *AdmissionHandler) Register(r *gin.RouterGroup) {
	r.GET("/admissions", h.List)
	r.POST("/admissions", h.Submit)
	r.POST("/admissions/:id/decision", h.Decide)
}

// List returns every submitted application.
func (h *AdmissionHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.ledger.Snapshot(), nil)
}

type admissionRequest struct {
	SchoolID  string `json:"schoolId"`
	ChildName string `json:"childName"`
	Grade     string `json:"grade"`
	Statement string `json:"statement"`
}

// Submit files a new application for a school and returns the pending
// record.
func (h *AdmissionHandler) Submit(c *gin.Context) {
	var req admissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid admission payload"))
		return
	}

	sess := resolveSession(c, h.manager)
	draft := session.AdmissionDraft{
		ChildName: req.ChildName,
		Grade:     req.Grade,
		Statement: req.Statement,
	}
	app, err := sess.SubmitAdmission(draft, req.SchoolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, app)
}

type decisionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Decide accepts or rejects a pending application.
func (h *AdmissionHandler) Decide(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}

	status, err := models.ParseApplicationStatus(req.Status)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unknown application status"))
		return
	}

	app, ok := h.ledger.Decide(c.Param("id"), status)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "application not found"))
		return
	}
	response.JSON(c, http.StatusOK, app, nil)
}
