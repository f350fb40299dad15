package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/internal/models"
	"github.com/educonnect/educonnect-api/pkg/config"
	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

// GeminiClient talks to the generative-language REST API using
// structured-output requests. Every failure mode, transport, HTTP
// status, schema violation, surfaces as a SERVICE_ERROR so the session
// layer has a single error class to handle.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	logger     *zap.Logger
}

// NewGeminiClient constructs a remote client from configuration.
func NewGeminiClient(cfg config.AIConfig, logger *zap.Logger) *GeminiClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

type generateRequest struct {
	Contents         []content       `json:"contents"`
	GenerationConfig *generationConf `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConf struct {
	ResponseMIMEType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   interface{} `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize implements Client.
func (c *GeminiClient) Summarize(ctx context.Context, rawText string) (*models.ProfileSummary, error) {
	payload, err := c.generate(ctx, summarizePrompt(rawText), summarizeSchema)
	if err != nil {
		return nil, err
	}

	var summary models.ProfileSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "malformed summary payload")
	}
	if summary.Bio == "" || summary.Skills == nil {
		return nil, appErrors.Clone(appErrors.ErrService, "summary payload missing required fields")
	}
	return &summary, nil
}

// MatchJobs implements Client.
func (c *GeminiClient) MatchJobs(ctx context.Context, profile models.TeacherProfile, jobs []models.JobListing) ([]models.MatchResult, error) {
	if len(jobs) == 0 {
		return []models.MatchResult{}, nil
	}

	prompt, err := matchPrompt(profile, jobs)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "failed to build match request")
	}

	payload, err := c.generate(ctx, prompt, matchSchema)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		JobID      string   `json:"jobId"`
		MatchScore *float64 `json:"matchScore"`
		Reasoning  string   `json:"reasoning"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "malformed match payload")
	}

	results := make([]models.MatchResult, 0, len(raw))
	for _, item := range raw {
		if item.JobID == "" || item.MatchScore == nil {
			return nil, appErrors.Clone(appErrors.ErrService, "match payload missing required fields")
		}
		results = append(results, models.MatchResult{
			JobID:      item.JobID,
			MatchScore: clampScore(int(*item.MatchScore)),
			Reasoning:  item.Reasoning,
		})
	}
	return results, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, schema interface{}) ([]byte, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConf{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "failed to encode request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "ai request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "failed to read ai response")
	}

	c.logger.Debug("ai call completed",
		zap.String("model", c.model),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.Clone(appErrors.ErrService, fmt.Sprintf("ai service returned status %d", resp.StatusCode))
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrService.Code, appErrors.ErrService.Status, "malformed ai response envelope")
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, appErrors.Clone(appErrors.ErrService, "ai response contained no candidates")
	}

	return []byte(decoded.Candidates[0].Content.Parts[0].Text), nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
