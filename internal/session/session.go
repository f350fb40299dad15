// Package session implements the application state machine driving a
// marketplace client: role selection, view navigation, profile editing
// and the asynchronous matching/summarization cycle.
//
// Each Session owns its state behind a single mutex. Asynchronous
// completions re-enter through the same lock, so every mutation is
// serialized even though AI calls run on worker goroutines. A generation
// counter fences stale completions: a logout or re-login bumps the
// generation and any in-flight result landing afterwards is discarded.
package session

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/ai"
	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/internal/seed"
	"github.com/educonnect/educonnect-api/internal/store"
	"github.com/educonnect/educonnect-api/internal/view"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

// Runner executes fire-and-forget work off the request path.
type Runner interface {
	Submit(taskType string, fn func(context.Context)) error
}

// PreferenceStore persists per-session display preferences.
type PreferenceStore interface {
	ThemeDark(ctx context.Context, sessionID string) (bool, error)
	SetThemeDark(ctx context.Context, sessionID string, dark bool) error
}

// Deps groups session collaborators.
type Deps struct {
	AI        ai.Client
	Board     *store.Board
	Ledger    *store.Ledger
	Directory *store.Directory
	Runner    Runner
	Prefs     PreferenceStore
	Validator *validator.Validate
	Logger    *zap.Logger
}

// JobDraft is the publish-job form payload.
type JobDraft struct {
	Title       string `json:"title" validate:"required"`
	Subject     string `json:"subject"`
	Salary      string `json:"salary"`
	Description string `json:"description" validate:"required"`
}

// AdmissionDraft is the school admission form payload.
type AdmissionDraft struct {
	ChildName string `json:"child_name" validate:"required"`
	Grade     string `json:"grade" validate:"required"`
	Statement string `json:"statement"`
}

// Snapshot is the rendering layer's read model of a session.
type Snapshot struct {
	Role           models.Role                   `json:"role"`
	View           string                        `json:"view"`
	RenderTarget   string                        `json:"render_target"`
	Busy           bool                          `json:"busy"`
	TeacherProfile *models.TeacherProfile        `json:"teacher_profile,omitempty"`
	ParentProfile  *models.ParentProfile         `json:"parent_profile,omitempty"`
	AppliedJobIDs  []string                      `json:"applied_job_ids"`
	MatchResults   map[string]models.MatchResult `json:"match_results"`
	ThemeDark      bool                          `json:"theme_dark"`
	Editing        bool                          `json:"editing"`
}

// Session is a single client's state machine instance.
type Session struct {
	id   string
	deps Deps

	mu             sync.Mutex
	role           models.Role
	view           string
	busy           bool
	teacherProfile *models.TeacherProfile
	parentProfile  *models.ParentProfile
	appliedJobs    map[string]struct{}
	matchResults   map[string]models.MatchResult
	pendingEdit    *models.TeacherProfile
	editing        bool
	themeDark      bool
	gen            uint64
}

// New builds a session in the logged-out state.
func New(id string, deps Deps) *Session {
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Session{
		id:           id,
		deps:         deps,
		role:         models.RoleNone,
		view:         view.Home,
		appliedJobs:  make(map[string]struct{}),
		matchResults: make(map[string]models.MatchResult),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SetThemeDark primes the theme flag, used when restoring a persisted
// preference at session creation.
func (s *Session) SetThemeDark(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themeDark = dark
}

// Login selects a role and loads the role's canned profile. There is no
// guard: logging in while already logged in overwrites the prior state.
// A TEACHER login kicks off matching as a fire-and-forget operation.
func (s *Session) Login(role models.Role) {
	s.mu.Lock()
	s.role = role
	s.teacherProfile = nil
	s.parentProfile = nil
	s.editing = false
	s.pendingEdit = nil
	s.view = view.DefaultView(role)

	switch role {
	case models.RoleTeacher:
		profile := seed.Teachers()[0]
		s.teacherProfile = &profile
		edit := profile
		s.pendingEdit = &edit
	case models.RoleParent:
		profile := seed.Parents()[0]
		s.parentProfile = &profile
	}
	s.mu.Unlock()

	if role == models.RoleTeacher {
		s.TriggerMatching()
	}
}

// Logout resets the session to its initial state. The shared job and
// application collections are left untouched. The generation bump makes
// any in-flight AI completion land as stale and be discarded.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.role = models.RoleNone
	s.view = view.Home
	s.busy = false
	s.teacherProfile = nil
	s.parentProfile = nil
	s.matchResults = make(map[string]models.MatchResult)
	s.editing = false
	s.pendingEdit = nil
}

// Navigate switches the active view. Unknown views are accepted; they
// simply resolve to a blank render target.
func (s *Session) Navigate(viewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = viewID
}

// TriggerMatching scores the current job board against the active
// teacher profile as a fire-and-forget operation. Without a teacher
// profile it is a no-op. Failures are logged and leave the previous
// results in place; the busy flag is released on every path.
func (s *Session) TriggerMatching() {
	s.mu.Lock()
	if s.teacherProfile == nil {
		s.mu.Unlock()
		return
	}
	profile := *s.teacherProfile
	gen := s.gen
	s.busy = true
	s.mu.Unlock()

	jobs := s.deps.Board.Snapshot()

	err := s.deps.Runner.Submit("match-jobs", func(ctx context.Context) {
		results, err := s.deps.AI.MatchJobs(ctx, profile, jobs)
		s.completeMatching(gen, results, err)
	})
	if err != nil {
		s.deps.Logger.Warn("failed to schedule matching", zap.String("session", s.id), zap.Error(err))
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}
}

func (s *Session) completeMatching(gen uint64, results []models.MatchResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		s.deps.Logger.Debug("discarding stale matching result", zap.String("session", s.id))
		return
	}
	s.busy = false

	if err != nil {
		s.deps.Logger.Error("matching failed", zap.String("session", s.id), zap.Error(err))
		return
	}

	scoreMap := make(map[string]models.MatchResult, len(results))
	for _, r := range results {
		scoreMap[r.JobID] = r
	}
	s.matchResults = scoreMap
}

// OptimizeProfile summarizes free resume text into the active teacher
// profile: the bio is replaced, the skills are merged as a set union,
// and matching re-runs against the updated profile. Blank input is a
// no-op. A summarization failure is returned to the caller so the UI can
// raise a blocking alert; the busy flag is released either way.
func (s *Session) OptimizeProfile(ctx context.Context, rawText string) error {
	if strings.TrimSpace(rawText) == "" {
		return nil
	}

	s.mu.Lock()
	if s.teacherProfile == nil {
		s.mu.Unlock()
		return appErrors.Clone(appErrors.ErrNotFound, "no active teacher profile")
	}
	gen := s.gen
	s.busy = true
	s.mu.Unlock()

	summary, err := s.deps.AI.Summarize(ctx, rawText)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.deps.Logger.Debug("discarding stale summary", zap.String("session", s.id))
		return nil
	}
	s.busy = false
	if err != nil {
		s.mu.Unlock()
		s.deps.Logger.Error("profile optimization failed", zap.String("session", s.id), zap.Error(err))
		return appErrors.Clone(appErrors.ErrService, "AI optimization failed. Please try again.")
	}

	updated := s.teacherProfile.WithSummary(summary.Bio, summary.Skills)
	s.teacherProfile = &updated
	edit := updated
	s.pendingEdit = &edit
	s.mu.Unlock()

	s.TriggerMatching()
	return nil
}

// SaveProfile replaces the committed teacher profile with the edited
// draft, exits edit mode and re-runs matching.
func (s *Session) SaveProfile(edited models.TeacherProfile) error {
	s.mu.Lock()
	if s.teacherProfile == nil {
		s.mu.Unlock()
		return appErrors.Clone(appErrors.ErrNotFound, "no active teacher profile")
	}
	s.teacherProfile = &edited
	draft := edited
	s.pendingEdit = &draft
	s.editing = false
	s.mu.Unlock()

	s.TriggerMatching()
	return nil
}

// SetEditing toggles profile edit mode, resetting the draft to the
// committed profile when entering.
func (s *Session) SetEditing(editing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = editing
	if editing && s.teacherProfile != nil {
		draft := *s.teacherProfile
		s.pendingEdit = &draft
	}
}

// PublishJob validates the draft and prepends a new listing to the
// shared board, then navigates to the school dashboard. A rejected draft
// leaves all state unchanged.
func (s *Session) PublishJob(draft JobDraft) (*models.JobListing, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)
	if err := s.deps.Validator.Struct(draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Please fill in all required fields.")
	}

	subject := draft.Subject
	if subject == "" {
		subject = "Mathematics"
	}
	salary := draft.Salary
	if salary == "" {
		salary = "Competitive"
	}

	created := s.deps.Board.Publish(models.JobListing{
		SchoolID:    "s-own",
		Title:       draft.Title,
		Subject:     subject,
		GradeLevel:  "Varies",
		SalaryRange: salary,
		Description: draft.Description,
		PostedAt:    "Just now",
	})

	s.mu.Lock()
	s.view = view.SchoolDashboard
	s.mu.Unlock()

	return &created, nil
}

// Apply records a job application. The operation is idempotent: applying
// to the same listing twice is a no-op.
func (s *Session) Apply(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appliedJobs[jobID] = struct{}{}
}

// SubmitAdmission validates the draft and prepends a PENDING application
// to the shared ledger, then navigates to the parent dashboard.
func (s *Session) SubmitAdmission(draft AdmissionDraft, schoolID string) (*models.StudentApplication, error) {
	draft.ChildName = strings.TrimSpace(draft.ChildName)
	draft.Grade = strings.TrimSpace(draft.Grade)
	if err := s.deps.Validator.Struct(draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Please provide child name and grade.")
	}

	s.mu.Lock()
	parentID := "guest"
	if s.parentProfile != nil {
		parentID = s.parentProfile.ID
	}
	s.mu.Unlock()

	created := s.deps.Ledger.Submit(models.StudentApplication{
		ParentID:   parentID,
		SchoolID:   schoolID,
		ChildName:  draft.ChildName,
		GradeLevel: draft.Grade,
		Statement:  draft.Statement,
	})

	s.mu.Lock()
	s.view = view.ParentDashboard
	s.mu.Unlock()

	return &created, nil
}

// ToggleTheme flips the dark-mode flag and persists it. Persistence
// failures are logged, never surfaced: the in-session flag already
// changed.
func (s *Session) ToggleTheme(ctx context.Context) bool {
	s.mu.Lock()
	s.themeDark = !s.themeDark
	dark := s.themeDark
	s.mu.Unlock()

	if s.deps.Prefs != nil {
		if err := s.deps.Prefs.SetThemeDark(ctx, s.id, dark); err != nil {
			s.deps.Logger.Warn("failed to persist theme preference", zap.String("session", s.id), zap.Error(err))
		}
	}
	return dark
}

// Snapshot returns a copy of the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Role:         s.role,
		View:         s.view,
		RenderTarget: view.Resolve(s.role, s.view),
		Busy:         s.busy,
		ThemeDark:    s.themeDark,
		Editing:      s.editing,
		MatchResults: make(map[string]models.MatchResult, len(s.matchResults)),
	}
	for id, r := range s.matchResults {
		snap.MatchResults[id] = r
	}

	snap.AppliedJobIDs = make([]string, 0, len(s.appliedJobs))
	for id := range s.appliedJobs {
		snap.AppliedJobIDs = append(snap.AppliedJobIDs, id)
	}
	sort.Strings(snap.AppliedJobIDs)

	if s.teacherProfile != nil {
		profile := *s.teacherProfile
		snap.TeacherProfile = &profile
	}
	if s.parentProfile != nil {
		profile := *s.parentProfile
		snap.ParentProfile = &profile
	}
	return snap
}
