package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/store"
	"github.com/educonnect/educonnect-api/pkg/export"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

// ExportService renders marketplace records into downloadable documents.
type ExportService struct {
	ledger *store.Ledger
	pdf    *export.PDFExporter
	csv    *export.CSVExporter
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(ledger *store.Ledger, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		ledger: ledger,
		pdf:    export.NewPDFExporter(),
		csv:    export.NewCSVExporter(),
		logger: logger,
	}
}

// Portfolio renders a teacher profile as a one-page PDF.
func (s *ExportService) Portfolio(ctx context.Context, profile *models.TeacherProfile) ([]byte, error) {
	if profile == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no active teacher profile")
	}

	dataset := export.Dataset{
		Headers: []string{"Field", "Value"},
		Rows: []map[string]string{
			{"Field": "Name", "Value": profile.Name},
			{"Field": "Subject", "Value": profile.Subject},
			{"Field": "Experience", "Value": strconv.Itoa(profile.ExperienceYears) + " years"},
			{"Field": "Education", "Value": profile.Education},
			{"Field": "Location", "Value": profile.Location},
			{"Field": "Skills", "Value": strings.Join(profile.Skills, ", ")},
			{"Field": "Bio", "Value": profile.Bio},
		},
	}

	rendered, err := s.pdf.Render(dataset, "Professional Portfolio")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render portfolio")
	}
	return rendered, nil
}

// Admissions renders the application ledger as CSV.
func (s *ExportService) Admissions(ctx context.Context) ([]byte, error) {
	apps := s.ledger.Snapshot()

	dataset := export.Dataset{
		Headers: []string{"ID", "Child", "Grade", "School", "Status", "Submitted"},
		Rows:    make([]map[string]string, 0, len(apps)),
	}
	for _, app := range apps {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":        app.ID,
			"Child":     app.ChildName,
			"Grade":     app.GradeLevel,
			"School":    app.SchoolID,
			"Status":    string(app.Status),
			"Submitted": app.SubmittedAt,
		})
	}

	rendered, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render admissions export")
	}
	return rendered, nil
}
