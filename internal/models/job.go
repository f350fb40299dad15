package models

// JobListing represents an open teaching role posted by a school.
// Salary and postedAt are display strings, not parsed values.
type JobListing struct {
	ID          string `json:"id"`
	SchoolID    string `json:"school_id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	GradeLevel  string `json:"grade_level"`
	SalaryRange string `json:"salary_range"`
	Description string `json:"description"`
	PostedAt    string `json:"posted_at"`
}

// MatchResult scores a single listing against a teacher profile. Results
// are transient: keyed by job id and replaced wholesale on every
// matching run.
type MatchResult struct {
	JobID      string `json:"job_id"`
	MatchScore int    `json:"match_score"`
	Reasoning  string `json:"reasoning"`
}

// ProfileSummary is the structured result of summarizing free resume
// text into a bio plus key skills.
type ProfileSummary struct {
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}
