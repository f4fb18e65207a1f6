package assessments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/roadmaps"
	"roadmap-backend/internal/shared/metrics"
	"roadmap-backend/internal/shared/telemetry"
)

// RoadmapGenerator builds and stores a user's roadmap.
type RoadmapGenerator interface {
	Build(userID string, answers roadmap.AssessmentAnswers) (roadmaps.Record, error)
	Store(ctx context.Context, rec roadmaps.Record) error
	InvalidateCache(ctx context.Context, userIDs ...string)
}

type Service struct {
	Repo     Repo
	Roadmaps RoadmapGenerator
	// DB, when set, stores the assessment and roadmap in one transaction.
	DB *sql.DB
}

func NewService(repo Repo, generator RoadmapGenerator, db *sql.DB) *Service {
	return &Service{Repo: repo, Roadmaps: generator, DB: db}
}

// SubmitResult is the stored assessment and the roadmap regenerated from it.
type SubmitResult struct {
	Assessment Assessment
	Roadmap    roadmaps.Record
}

// Submit validates the answers and replaces the user's assessment and
// roadmap together. On failure neither changes.
func (s *Service) Submit(ctx context.Context, userID string, answers roadmap.AssessmentAnswers) (SubmitResult, error) {
	if strings.TrimSpace(userID) == "" {
		return SubmitResult{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if issues := Validate(answers); len(issues) > 0 {
		return SubmitResult{}, &ValidationError{Issues: issues}
	}

	rec, err := s.Roadmaps.Build(userID, answers)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("generate roadmap: %w", err)
	}

	var stored Assessment
	if s.DB != nil {
		stored, err = submitWithTx(ctx, s.DB, Assessment{UserID: userID, Answers: answers}, rec)
		if err == nil {
			s.Roadmaps.InvalidateCache(ctx, userID)
		}
	} else {
		stored, err = s.submitRepos(ctx, Assessment{UserID: userID, Answers: answers}, rec)
	}
	if err != nil {
		return SubmitResult{}, err
	}

	metrics.IncAssessmentsSubmitted()
	telemetry.Info("assessment.submitted", map[string]any{
		"user_id": userID,
		"stage":   string(answers.CurrentStage),
		"status":  string(answers.Status),
		"region":  answers.Region,
		"urgency": string(rec.Roadmap.UrgencyLevel),
	})
	return SubmitResult{Assessment: stored, Roadmap: rec}, nil
}

func submitWithTx(ctx context.Context, db *sql.DB, a Assessment, rec roadmaps.Record) (Assessment, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Assessment{}, err
	}
	defer tx.Rollback()

	stored, err := UpsertTx(ctx, tx, a)
	if err != nil {
		return Assessment{}, fmt.Errorf("store assessment: %w", err)
	}
	if err := roadmaps.SaveTx(ctx, tx, rec); err != nil {
		return Assessment{}, fmt.Errorf("store roadmap: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Assessment{}, err
	}
	return stored, nil
}

// submitRepos writes through the repos and puts the previous assessment back
// when the roadmap cannot be stored.
func (s *Service) submitRepos(ctx context.Context, a Assessment, rec roadmaps.Record) (Assessment, error) {
	prev, err := s.Repo.GetByUser(ctx, a.UserID)
	hadPrev := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Assessment{}, fmt.Errorf("load assessment: %w", err)
	}

	stored, err := s.Repo.Upsert(ctx, a)
	if err != nil {
		return Assessment{}, fmt.Errorf("store assessment: %w", err)
	}
	if err := s.Roadmaps.Store(ctx, rec); err != nil {
		s.restore(context.WithoutCancel(ctx), a.UserID, prev, hadPrev)
		return Assessment{}, fmt.Errorf("store roadmap: %w", err)
	}
	return stored, nil
}

func (s *Service) restore(ctx context.Context, userID string, prev Assessment, hadPrev bool) {
	var err error
	if !hadPrev {
		err = s.Repo.Delete(ctx, userID)
	} else if r, ok := s.Repo.(interface{ restore(Assessment) }); ok {
		r.restore(prev)
	} else {
		_, err = s.Repo.Upsert(ctx, prev)
	}
	if err != nil {
		telemetry.Error("assessment.restore_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

// Current returns the user's latest assessment, or ErrNotFound.
func (s *Service) Current(ctx context.Context, userID string) (Assessment, error) {
	if strings.TrimSpace(userID) == "" {
		return Assessment{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByUser(ctx, userID)
}
