package models

import "fmt"

// ApplicationStatus tracks the lifecycle of a student admission request.
// PENDING is the initial state; status is the only field a school actor
// may change afterwards.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// ParseApplicationStatus converts a raw string into an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case StatusPending, StatusAccepted, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// StudentApplication represents a parent's admission request for a child.
type StudentApplication struct {
	ID          string            `json:"id"`
	ParentID    string            `json:"parent_id"`
	SchoolID    string            `json:"school_id"`
	ChildName   string            `json:"child_name"`
	GradeLevel  string            `json:"grade_level"`
	Statement   string            `json:"statement"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt string            `json:"submitted_at"`
}
