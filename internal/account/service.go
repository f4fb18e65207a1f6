package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"roadmap-backend/internal/assessments"
	"roadmap-backend/internal/roadmaps"
	"roadmap-backend/internal/shared/telemetry"
)

// cacheInvalidator is implemented by repos that keep a read cache.
type cacheInvalidator interface {
	Invalidate(ctx context.Context, userIDs ...string)
}

type Service struct {
	AssessmentRepo assessments.Repo
	RoadmapRepo    roadmaps.Repo
	// DB, when set, makes the claim a single transaction over both tables.
	DB *sql.DB
}

type ClaimResult struct {
	MigratedAssessments int `json:"migratedAssessments"`
	MigratedRoadmaps    int `json:"migratedRoadmaps"`
}

func NewService(assessmentRepo assessments.Repo, roadmapRepo roadmaps.Repo, db *sql.DB) *Service {
	return &Service{AssessmentRepo: assessmentRepo, RoadmapRepo: roadmapRepo, DB: db}
}

// ClaimGuest moves a guest's assessment and roadmap to the authenticated
// user. Repeating the call is a no-op.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	var (
		result ClaimResult
		err    error
	)
	if s.DB != nil {
		result, err = claimWithTx(ctx, s.DB, guestUserID, authedUserID)
		if err == nil {
			if inv, ok := s.RoadmapRepo.(cacheInvalidator); ok {
				inv.Invalidate(ctx, guestUserID, authedUserID)
			}
		}
	} else {
		result, err = s.claimRepos(ctx, guestUserID, authedUserID)
	}
	if err != nil {
		return ClaimResult{}, err
	}

	telemetry.Info("account.guest_claimed", map[string]any{
		"user_id":              authedUserID,
		"guest_user_id":        guestUserID,
		"migrated_assessments": result.MigratedAssessments,
		"migrated_roadmaps":    result.MigratedRoadmaps,
	})
	return result, nil
}

func claimWithTx(ctx context.Context, db *sql.DB, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	assessmentCount, err := assessments.ClaimGuestTx(ctx, tx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	roadmapCount, err := roadmaps.ClaimGuestTx(ctx, tx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedAssessments: assessmentCount, MigratedRoadmaps: roadmapCount}, nil
}

func (s *Service) claimRepos(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	assessmentCount, err := s.AssessmentRepo.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	roadmapCount, err := s.RoadmapRepo.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedAssessments: assessmentCount, MigratedRoadmaps: roadmapCount}, nil
}
