package service

import (
	"context"
	"time"

	"github.com/educonnect/educonnect-api/internal/ai"
	"github.com/educonnect/educonnect-api/internal/models"
)

// instrumentedClient decorates an ai.Client with call metrics.
type instrumentedClient struct {
	inner   ai.Client
	metrics *MetricsService
}

// InstrumentClient wraps the client so every call feeds the metrics
// service. A nil metrics service returns the client unchanged.
func InstrumentClient(inner ai.Client, metrics *MetricsService) ai.Client {
	if metrics == nil {
		return inner
	}
	return &instrumentedClient{inner: inner, metrics: metrics}
}

func (c *instrumentedClient) Summarize(ctx context.Context, rawText string) (*models.ProfileSummary, error) {
	start := time.Now()
	summary, err := c.inner.Summarize(ctx, rawText)
	c.metrics.ObserveAICall("summarize", err, time.Since(start))
	return summary, err
}

func (c *instrumentedClient) MatchJobs(ctx context.Context, profile models.TeacherProfile, jobs []models.JobListing) ([]models.MatchResult, error) {
	start := time.Now()
	results, err := c.inner.MatchJobs(ctx, profile, jobs)
	c.metrics.ObserveAICall("match_jobs", err, time.Since(start))
	return results, err
}
