package ai

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/educonnect/educonnect-api/internal/models"
)

const stubBio = "A dedicated educator with a proven record of raising student outcomes through evidence-based instruction. Known for building inclusive classrooms where every learner is challenged and supported. Brings curriculum leadership experience and a collaborative approach to school communities."

var stubSkills = []string{"Classroom Leadership", "Curriculum Design", "Differentiated Instruction", "Assessment Literacy", "Parent Communication"}

// StubClient fabricates matching and summarization results locally after
// a fixed simulated delay. It never fails except on context
// cancellation, which makes it the default for development and tests.
type StubClient struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStubClient builds a stub with the given simulated latency. A zero
// delay answers immediately.
func NewStubClient(delay time.Duration) *StubClient {
	return &StubClient{
		delay: delay,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Summarize implements Client with a canned bio and fixed skill list.
func (c *StubClient) Summarize(ctx context.Context, rawText string) (*models.ProfileSummary, error) {
	if err := c.sleep(ctx); err != nil {
		return nil, err
	}
	skills := make([]string, len(stubSkills))
	copy(skills, stubSkills)
	return &models.ProfileSummary{Bio: stubBio, Skills: skills}, nil
}

// MatchJobs implements Client, producing one result per input job with a
// pseudo-random score in [60,100]. Result order equals input order; no
// sorting by score.
func (c *StubClient) MatchJobs(ctx context.Context, profile models.TeacherProfile, jobs []models.JobListing) ([]models.MatchResult, error) {
	if err := c.sleep(ctx); err != nil {
		return nil, err
	}
	results := make([]models.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, models.MatchResult{
			JobID:      job.ID,
			MatchScore: 60 + c.intn(41),
			Reasoning:  "Strong alignment between your subject expertise and the school's stated needs.",
		})
	}
	return results, nil
}

func (c *StubClient) sleep(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *StubClient) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}
