package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/service"
	"github.com/educonnect/educonnect-api/pkg/response"
)

// DirectoryHandler exposes the school directory.
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler constructs a DirectoryHandler.
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Register mounts directory routes on the group.
func (h *DirectoryHandler) Register(r *gin.RouterGroup) {
	r.GET("/schools", h.List)
	r.GET("/schools/:id", h.Get)
}

// List returns schools matching the search, category and page query
// parameters.
func (h *DirectoryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := models.SchoolFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     page,
		PageSize: limit,
	}

	schools, pagination, err := h.directory.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schools, pagination)
}

// Get returns a single school with its open roles.
func (h *DirectoryHandler) Get(c *gin.Context) {
	school, err := h.directory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, school, nil)
}
