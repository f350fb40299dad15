package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/seed"
)

func TestBoardPublishPrepends(t *testing.T) {
	board := NewBoard(seed.Jobs())
	before := board.Len()

	created := board.Publish(models.JobListing{
		SchoolID:    "s-own",
		Title:       "Math Tutor",
		Subject:     "Mathematics",
		Description: "After-school tutoring role.",
	})

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, before+1, board.Len())

	snapshot := board.Snapshot()
	assert.Equal(t, "Math Tutor", snapshot[0].Title)
	assert.Equal(t, "s-own", snapshot[0].SchoolID)
}

func TestBoardPublishUniqueIDs(t *testing.T) {
	board := NewBoard(nil)
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		created := board.Publish(models.JobListing{Title: "Role", Description: "d"})
		_, dup := seen[created.ID]
		require.False(t, dup, "listing ids must be unique")
		seen[created.ID] = struct{}{}
	}
}

func TestBoardSnapshotIsCopy(t *testing.T) {
	board := NewBoard(seed.Jobs())
	snapshot := board.Snapshot()
	snapshot[0].Title = "mutated"

	assert.NotEqual(t, "mutated", board.Snapshot()[0].Title)
}

func TestLedgerSubmitStartsPending(t *testing.T) {
	ledger := NewLedger()

	app := ledger.Submit(models.StudentApplication{
		ParentID:   "p1",
		SchoolID:   "s1",
		ChildName:  "Leo Stevenson",
		GradeLevel: "Grade 6",
	})

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.NotEmpty(t, app.SubmittedAt)
	assert.Equal(t, 1, ledger.Len())
}

func TestLedgerDecide(t *testing.T) {
	ledger := NewLedger()
	app := ledger.Submit(models.StudentApplication{ParentID: "p1", SchoolID: "s1", ChildName: "Leo", GradeLevel: "Grade 6"})

	updated, ok := ledger.Decide(app.ID, models.StatusAccepted)
	require.True(t, ok)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.Equal(t, models.StatusAccepted, ledger.Snapshot()[0].Status)

	_, ok = ledger.Decide("missing", models.StatusRejected)
	assert.False(t, ok)
}

func TestDirectorySearchAndCategory(t *testing.T) {
	dir := NewDirectory(seed.Schools())

	byName, total := dir.List(models.SchoolFilter{Search: "oxford"})
	require.Equal(t, 1, total)
	assert.Equal(t, "s1", byName[0].ID)

	byLocation, total := dir.List(models.SchoolFilter{Search: "london"})
	assert.Equal(t, 1, total)
	assert.Len(t, byLocation, 1)

	montessori, total := dir.List(models.SchoolFilter{Category: "Montessori"})
	require.Equal(t, 1, total)
	assert.Equal(t, "s3", montessori[0].ID)

	all, total := dir.List(models.SchoolFilter{Category: "All"})
	assert.Equal(t, 4, total)
	assert.Len(t, all, 4)
}

func TestDirectoryPagination(t *testing.T) {
	dir := NewDirectory(seed.Schools())

	page1, total := dir.List(models.SchoolFilter{Page: 1, PageSize: 3})
	assert.Equal(t, 4, total)
	assert.Len(t, page1, 3)

	page2, _ := dir.List(models.SchoolFilter{Page: 2, PageSize: 3})
	assert.Len(t, page2, 1)

	page3, _ := dir.List(models.SchoolFilter{Page: 3, PageSize: 3})
	assert.Empty(t, page3)
}
