package ai

import (
	"encoding/json"
	"fmt"
)

const summarizePromptTemplate = `Analyze the following teacher resume text and provide a concise 3-sentence professional bio and a list of 5 key skills.
Text: %s`

const matchPromptTemplate = `Based on the teacher's profile: %s,
rank these job listings by compatibility: %s.
Return an array of objects with jobId and a matchScore (0-100) and a brief reasoning string.`

func summarizePrompt(rawText string) string {
	return fmt.Sprintf(summarizePromptTemplate, rawText)
}

func matchPrompt(profile, jobs interface{}) (string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	jobsJSON, err := json.Marshal(jobs)
	if err != nil {
		return "", fmt.Errorf("marshal jobs: %w", err)
	}
	return fmt.Sprintf(matchPromptTemplate, profileJSON, jobsJSON), nil
}

// Structured-output schemas sent with every request. The service must
// answer with JSON conforming to these shapes; anything else is a
// SERVICE_ERROR.
var summarizeSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"bio": map[string]interface{}{"type": "STRING"},
		"skills": map[string]interface{}{
			"type":  "ARRAY",
			"items": map[string]interface{}{"type": "STRING"},
		},
	},
	"required": []string{"bio", "skills"},
}

var matchSchema = map[string]interface{}{
	"type": "ARRAY",
	"items": map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"jobId":      map[string]interface{}{"type": "STRING"},
			"matchScore": map[string]interface{}{"type": "NUMBER"},
			"reasoning":  map[string]interface{}{"type": "STRING"},
		},
		"required": []string{"jobId", "matchScore", "reasoning"},
	},
}
