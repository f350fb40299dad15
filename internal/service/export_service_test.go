package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/seed"
	"github.com/educonnect/educonnect-api/internal/store"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

func TestExportPortfolioRendersPDF(t *testing.T) {
	svc := NewExportService(store.NewLedger(), nil)
	profile := seed.Teachers()[0]

	rendered, err := svc.Portfolio(context.Background(), &profile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(rendered, []byte("%PDF")))
}

func TestExportPortfolioWithoutProfile(t *testing.T) {
	svc := NewExportService(store.NewLedger(), nil)

	_, err := svc.Portfolio(context.Background(), nil)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestExportAdmissionsCSV(t *testing.T) {
	ledger := store.NewLedger()
	ledger.Submit(models.StudentApplication{
		ParentID:   "p1",
		SchoolID:   "s1",
		ChildName:  "Leo Stevenson",
		GradeLevel: "Grade 5",
	})

	svc := NewExportService(ledger, nil)
	rendered, err := svc.Admissions(context.Background())
	require.NoError(t, err)

	out := string(rendered)
	assert.Contains(t, out, "ID,Child,Grade,School,Status,Submitted")
	assert.Contains(t, out, "Leo Stevenson")
	assert.Contains(t, out, "PENDING")
}
