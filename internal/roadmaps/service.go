package roadmaps

import (
	"context"
	"errors"
	"strings"
	"time"

	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/shared/metrics"
	"roadmap-backend/internal/shared/telemetry"
)

var ErrInvalidInput = errors.New("invalid input")

// Service builds roadmaps from answers and stores the latest one per user.
type Service struct {
	Repo    Repo
	Catalog roadmap.Catalog
	Now     func() time.Time
}

func NewService(repo Repo, catalog roadmap.Catalog) *Service {
	return &Service{Repo: repo, Catalog: catalog, Now: time.Now}
}

// Generate rebuilds the user's roadmap from answers and replaces the stored
// one.
func (s *Service) Generate(ctx context.Context, userID string, answers roadmap.AssessmentAnswers) (Record, error) {
	rec, err := s.Build(userID, answers)
	if err != nil {
		return Record{}, err
	}
	if err := s.Store(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Build computes the user's roadmap without storing it.
func (s *Service) Build(userID string, answers roadmap.AssessmentAnswers) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	return s.build(userID, answers), nil
}

// Store replaces the user's stored roadmap with rec.
func (s *Service) Store(ctx context.Context, rec Record) error {
	if err := s.Repo.Save(ctx, rec); err != nil {
		return err
	}
	logGenerated(rec)
	return nil
}

// InvalidateCache drops cached copies after a write that bypassed Repo.
func (s *Service) InvalidateCache(ctx context.Context, userIDs ...string) {
	if inv, ok := s.Repo.(interface {
		Invalidate(ctx context.Context, userIDs ...string)
	}); ok {
		inv.Invalidate(ctx, userIDs...)
	}
}

func logGenerated(rec Record) {
	telemetry.Info("roadmap.generated", map[string]any{
		"user_id":         rec.UserID,
		"urgency":         string(rec.Roadmap.UrgencyLevel),
		"sections":        len(rec.Roadmap.Sections),
		"catalog_version": rec.CatalogVersion,
	})
}

// Current returns the stored roadmap, or ErrNotFound.
func (s *Service) Current(ctx context.Context, userID string) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByUser(ctx, userID)
}

// Preview builds a roadmap without storing it.
func (s *Service) Preview(answers roadmap.AssessmentAnswers) Record {
	return s.build("", answers)
}

// PreviewLegacy builds a roadmap from the injury-based questionnaire.
func (s *Service) PreviewLegacy(answers roadmap.LegacyAnswers) Record {
	return Record{
		Roadmap:        roadmap.BuildLegacyRoadmap(answers, s.Catalog),
		CatalogVersion: s.Catalog.Version,
		GeneratedAt:    s.now(),
	}
}

func (s *Service) build(userID string, answers roadmap.AssessmentAnswers) Record {
	if fields := roadmap.Unrecognized(answers); len(fields) > 0 {
		for _, f := range fields {
			metrics.IncUnrecognizedInput(f)
		}
		telemetry.Warn("roadmap.unrecognized_input", map[string]any{
			"user_id": userID,
			"fields":  fields,
		})
	}

	start := time.Now()
	built := roadmap.BuildRoadmap(answers, s.Catalog)
	metrics.ObserveBuildDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncRoadmapsGenerated(stageLabel(answers.CurrentStage))

	return Record{
		UserID:         userID,
		Roadmap:        built,
		CatalogVersion: s.Catalog.Version,
		GeneratedAt:    s.now(),
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// stageLabel bounds the metric label set to known stages.
func stageLabel(stage roadmap.Stage) string {
	if stage == "" || roadmap.IsKnownStage(stage) {
		return string(stage)
	}
	return "unknown"
}
