package assessments

import (
	"errors"
	"time"

	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/shared/server/respond"
)

var (
	ErrNotFound     = errors.New("assessment not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Assessment is the latest answer set of one user.
type Assessment struct {
	UserID    string                    `json:"userId"`
	Answers   roadmap.AssessmentAnswers `json:"answers"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// FieldIssue describes one rejected answer field.
type FieldIssue = respond.FieldIssue

// ValidationError carries every issue found in a submission.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	return "invalid assessment answers"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
