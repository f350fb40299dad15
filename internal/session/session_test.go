package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/seed"
	"github.com/educonnect/educonnect-api/internal/store"
	"github.com/educonnect/educonnect-api/internal/view"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

type mockAI struct {
	summary      *models.ProfileSummary
	summaryErr   error
	matchResults []models.MatchResult
	matchErr     error
	matchCalls   int
	summYCalls   int
	lastProfile  models.TeacherProfile
}

func (m *mockAI) Summarize(ctx context.Context, rawText string) (*models.ProfileSummary, error) {
	m.summYCalls++
	return m.summary, m.summaryErr
}

func (m *mockAI) MatchJobs(ctx context.Context, profile models.TeacherProfile, jobs []models.JobListing) ([]models.MatchResult, error) {
	m.matchCalls++
	m.lastProfile = profile
	if m.matchErr != nil {
		return nil, m.matchErr
	}
	if m.matchResults != nil {
		return m.matchResults, nil
	}
	out := make([]models.MatchResult, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, models.MatchResult{JobID: j.ID, MatchScore: 75, Reasoning: "fit"})
	}
	return out, nil
}

// holdRunner captures submitted work instead of running it, letting
// tests interleave transitions with async completion.
type holdRunner struct {
	pending []func(context.Context)
}

func (r *holdRunner) Submit(taskType string, fn func(context.Context)) error {
	r.pending = append(r.pending, fn)
	return nil
}

func (r *holdRunner) flush() {
	for _, fn := range r.pending {
		fn(context.Background())
	}
	r.pending = nil
}

func newTestSession(t *testing.T, client *mockAI) *Session {
	t.Helper()
	return New("sess-1", Deps{
		AI:     client,
		Board:  store.NewBoard(seed.Jobs()),
		Ledger: store.NewLedger(),
		Runner: InlineRunner{},
	})
}

func TestLoginTeacher(t *testing.T) {
	client := &mockAI{}
	sess := newTestSession(t, client)

	sess.Login(models.RoleTeacher)

	snap := sess.Snapshot()
	assert.Equal(t, models.RoleTeacher, snap.Role)
	assert.Equal(t, view.TeacherDashboard, snap.View)
	require.NotNil(t, snap.TeacherProfile)
	assert.Nil(t, snap.ParentProfile)
	assert.Equal(t, "t1", snap.TeacherProfile.ID)
	assert.Equal(t, 1, client.matchCalls, "teacher login triggers matching")

	// Stub-style seeded board: one result per seeded job.
	assert.Len(t, snap.MatchResults, 4)
	for _, id := range []string{"j1", "j2", "j3", "j4"} {
		assert.Contains(t, snap.MatchResults, id)
	}
}

func TestLoginParent(t *testing.T) {
	client := &mockAI{}
	sess := newTestSession(t, client)

	sess.Login(models.RoleParent)

	snap := sess.Snapshot()
	assert.Equal(t, models.RoleParent, snap.Role)
	assert.Equal(t, view.ParentDashboard, snap.View)
	require.NotNil(t, snap.ParentProfile)
	assert.Nil(t, snap.TeacherProfile)
	assert.Zero(t, client.matchCalls)
}

func TestLoginSchool(t *testing.T) {
	sess := newTestSession(t, &mockAI{})

	sess.Login(models.RoleSchool)

	snap := sess.Snapshot()
	assert.Equal(t, models.RoleSchool, snap.Role)
	assert.Equal(t, view.SchoolDashboard, snap.View)
	assert.Nil(t, snap.TeacherProfile)
	assert.Nil(t, snap.ParentProfile)
}

func TestReloginOverwrites(t *testing.T) {
	sess := newTestSession(t, &mockAI{})

	sess.Login(models.RoleTeacher)
	sess.Login(models.RoleParent)

	snap := sess.Snapshot()
	assert.Equal(t, models.RoleParent, snap.Role)
	assert.Nil(t, snap.TeacherProfile, "exactly one profile slot is populated")
	require.NotNil(t, snap.ParentProfile)
}

func TestLogoutResets(t *testing.T) {
	sess := newTestSession(t, &mockAI{})
	board := sess.deps.Board

	sess.Login(models.RoleTeacher)
	sess.Apply("j1")
	jobsBefore := board.Len()

	sess.Logout()

	snap := sess.Snapshot()
	assert.Equal(t, models.RoleNone, snap.Role)
	assert.Equal(t, view.Home, snap.View)
	assert.Nil(t, snap.TeacherProfile)
	assert.Nil(t, snap.ParentProfile)
	assert.Empty(t, snap.MatchResults)
	assert.False(t, snap.Busy)

	// Shared collections survive logout.
	assert.Equal(t, jobsBefore, board.Len())
}

func TestStaleMatchingDiscardedAfterLogout(t *testing.T) {
	client := &mockAI{}
	runner := &holdRunner{}
	sess := New("sess-1", Deps{
		AI:     client,
		Board:  store.NewBoard(seed.Jobs()),
		Ledger: store.NewLedger(),
		Runner: runner,
	})

	sess.Login(models.RoleTeacher)
	require.Len(t, runner.pending, 1)

	sess.Logout()
	runner.flush() // stale response lands after the role changed

	snap := sess.Snapshot()
	assert.Empty(t, snap.MatchResults, "stale completion must not mutate state")
	assert.False(t, snap.Busy)
}

func TestMatchingFailureLeavesResults(t *testing.T) {
	client := &mockAI{}
	runner := &holdRunner{}
	sess := New("sess-1", Deps{
		AI:     client,
		Board:  store.NewBoard(seed.Jobs()),
		Ledger: store.NewLedger(),
		Runner: runner,
	})

	sess.Login(models.RoleTeacher)
	runner.flush()
	require.Len(t, sess.Snapshot().MatchResults, 4)

	client.matchErr = errors.New("boom")
	sess.TriggerMatching()
	assert.True(t, sess.Snapshot().Busy)
	runner.flush()

	snap := sess.Snapshot()
	assert.Len(t, snap.MatchResults, 4, "failed run leaves previous results")
	assert.False(t, snap.Busy, "busy is released on failure")
}

func TestOptimizeProfileBlankIsNoop(t *testing.T) {
	client := &mockAI{}
	sess := newTestSession(t, client)
	sess.Login(models.RoleTeacher)
	before := sess.Snapshot()

	require.NoError(t, sess.OptimizeProfile(context.Background(), ""))
	require.NoError(t, sess.OptimizeProfile(context.Background(), "   "))

	after := sess.Snapshot()
	assert.Equal(t, before.TeacherProfile, after.TeacherProfile)
	assert.False(t, after.Busy)
	assert.Zero(t, client.summYCalls)
}

func TestOptimizeProfileMergesSkills(t *testing.T) {
	client := &mockAI{
		summary: &models.ProfileSummary{
			Bio:    "Polished bio.",
			Skills: []string{"Physics", "Mentoring"},
		},
	}
	sess := newTestSession(t, client)
	sess.Login(models.RoleTeacher)
	require.Equal(t, 1, client.matchCalls)

	err := sess.OptimizeProfile(context.Background(), "twelve years of physics teaching")
	require.NoError(t, err)

	snap := sess.Snapshot()
	assert.Equal(t, "Polished bio.", snap.TeacherProfile.Bio)
	// Seed skills are Physics, Python, Curriculum Design. Union keeps
	// first-seen order and suppresses the duplicate Physics.
	assert.Equal(t, []string{"Physics", "Python", "Curriculum Design", "Mentoring"}, snap.TeacherProfile.Skills)

	assert.Equal(t, 2, client.matchCalls, "optimization re-triggers matching")
	assert.Equal(t, "Polished bio.", client.lastProfile.Bio, "matching sees the updated profile")
}

func TestOptimizeProfileFailureSurfacesServiceError(t *testing.T) {
	client := &mockAI{summaryErr: errors.New("quota exceeded")}
	sess := newTestSession(t, client)
	sess.Login(models.RoleTeacher)
	before := sess.Snapshot().TeacherProfile

	err := sess.OptimizeProfile(context.Background(), "resume text")
	require.Error(t, err)
	assert.True(t, appErrors.IsService(err))

	snap := sess.Snapshot()
	assert.Equal(t, before, snap.TeacherProfile, "failure leaves profile unchanged")
	assert.False(t, snap.Busy, "busy is released on failure")
}

func TestSaveProfileRetriggersMatching(t *testing.T) {
	client := &mockAI{}
	sess := newTestSession(t, client)
	sess.Login(models.RoleTeacher)
	require.Equal(t, 1, client.matchCalls)

	edited := *sess.Snapshot().TeacherProfile
	edited.Subject = "Astrophysics"
	require.NoError(t, sess.SaveProfile(edited))

	snap := sess.Snapshot()
	assert.Equal(t, "Astrophysics", snap.TeacherProfile.Subject)
	assert.False(t, snap.Editing)
	assert.Equal(t, 2, client.matchCalls)
}

func TestApplyIsIdempotent(t *testing.T) {
	sess := newTestSession(t, &mockAI{})
	sess.Login(models.RoleTeacher)

	sess.Apply("j1")
	once := sess.Snapshot().AppliedJobIDs

	sess.Apply("j1")
	twice := sess.Snapshot().AppliedJobIDs

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"j1"}, twice)
}

func TestPublishJobValidation(t *testing.T) {
	sess := newTestSession(t, &mockAI{})
	sess.Login(models.RoleSchool)
	sess.Navigate(view.SchoolJobs)
	before := sess.deps.Board.Len()

	_, err := sess.PublishJob(JobDraft{Title: "", Description: "desc"})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))

	_, err = sess.PublishJob(JobDraft{Title: "   ", Description: "desc"})
	require.Error(t, err, "whitespace-only title is rejected")

	assert.Equal(t, before, sess.deps.Board.Len(), "no listing added")
	assert.Equal(t, view.SchoolJobs, sess.Snapshot().View, "rejected draft does not navigate")
}

func TestPublishJobSuccess(t *testing.T) {
	sess := newTestSession(t, &mockAI{})
	sess.Login(models.RoleSchool)
	sess.Navigate(view.SchoolJobs)
	before := sess.deps.Board.Len()

	created, err := sess.PublishJob(JobDraft{Title: "Math Tutor", Description: "Tutoring role."})
	require.NoError(t, err)

	assert.Equal(t, before+1, sess.deps.Board.Len())
	first := sess.deps.Board.Snapshot()[0]
	assert.Equal(t, "Math Tutor", first.Title)
	assert.Equal(t, "s-own", first.SchoolID)
	assert.Equal(t, "Varies", first.GradeLevel)
	assert.Equal(t, "Competitive", first.SalaryRange)
	assert.Equal(t, created.ID, first.ID)
	assert.Equal(t, view.SchoolDashboard, sess.Snapshot().View)
}

func TestSubmitAdmissionValidation(t *testing.T) {
	sess := newTestSession(t, &mockAI{})
	sess.Login(models.RoleParent)

	_, err := sess.SubmitAdmission(AdmissionDraft{ChildName: "", Grade: "Grade 6"}, "s1")
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
	assert.Zero(t, sess.deps.Ledger.Len())
}

func TestSubmitAdmissionSuccess(t *testing.T) {
	sess := newTestSession(t, &mockAI{})
	sess.Login(models.RoleParent)
	sess.Navigate(view.ParentBrowse)

	created, err := sess.SubmitAdmission(AdmissionDraft{ChildName: "Leo Stevenson", Grade: "Grade 6", Statement: "Loves robotics."}, "s1")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "p1", created.ParentID)
	assert.Equal(t, "s1", created.SchoolID)
	assert.Equal(t, 1, sess.deps.Ledger.Len())
	assert.Equal(t, view.ParentDashboard, sess.Snapshot().View)
}

func TestToggleTheme(t *testing.T) {
	sess := newTestSession(t, &mockAI{})

	assert.True(t, sess.ToggleTheme(context.Background()))
	assert.False(t, sess.ToggleTheme(context.Background()))
}

func TestUnknownViewResolvesBlank(t *testing.T) {
	sess := newTestSession(t, &mockAI{})
	sess.Login(models.RoleTeacher)
	sess.Navigate("does-not-exist")

	snap := sess.Snapshot()
	assert.Equal(t, "does-not-exist", snap.View)
	assert.Empty(t, snap.RenderTarget)
}
