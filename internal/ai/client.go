// Package ai provides the matching/summarization capability used by the
// marketplace: turning free resume text into a bio plus key skills, and
// scoring the job board against a teacher profile.
//
// Two implementations exist behind the Client interface: GeminiClient
// calls the generative-language REST API with a fixed structured-output
// schema, StubClient fabricates plausible results locally. The
// implementation is chosen once at startup and injected; callers never
// branch on the provider.
package ai

import (
	"context"

	"github.com/educonnect/educonnect-api/internal/models"
)

// Client is the matching/summarization capability surface.
type Client interface {
	// Summarize condenses raw resume text into a professional bio and a
	// list of key skills. Callers enforce non-empty input.
	Summarize(ctx context.Context, rawText string) (*models.ProfileSummary, error)

	// MatchJobs scores every listing against the profile. An empty job
	// slice yields an empty result. Neither input is mutated.
	MatchJobs(ctx context.Context, profile models.TeacherProfile, jobs []models.JobListing) ([]models.MatchResult, error)
}
