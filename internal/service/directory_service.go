package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/store"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

// DirectoryService exposes the school directory with search, category
// filtering and pagination.
type DirectoryService struct {
	directory *store.Directory
	board     *store.Board
	logger    *zap.Logger
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(directory *store.Directory, board *store.Board, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{directory: directory, board: board, logger: logger}
}

// List returns matching schools plus pagination data. Each school's open
// roles are resolved from the live job board.
func (s *DirectoryService) List(ctx context.Context, filter models.SchoolFilter) ([]models.SchoolProfile, *models.Pagination, error) {
	schools, total := s.directory.List(filter)

	for i := range schools {
		schools[i].OpenRoles = s.board.BySchool(schools[i].ID)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return schools, pagination, nil
}

// Get returns a single school by id.
func (s *DirectoryService) Get(ctx context.Context, id string) (*models.SchoolProfile, error) {
	school, ok := s.directory.Find(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "school not found")
	}
	school.OpenRoles = s.board.BySchool(school.ID)
	return &school, nil
}
