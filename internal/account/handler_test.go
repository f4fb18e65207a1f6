package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/assessments"
	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/roadmaps"
)

func newClaimRouter(svc *Service, userID string, guest bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", guest)
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func claim(router *gin.Engine, guestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	if guestID != "" {
		req.Header.Set("X-Guest-Id", guestID)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func seedGuest(t *testing.T, guestUserID string) (*assessments.MemoryRepo, *roadmaps.MemoryRepo) {
	t.Helper()
	ctx := context.Background()
	assessmentRepo := assessments.NewMemoryRepo()
	roadmapRepo := roadmaps.NewMemoryRepo()
	answers := roadmap.AssessmentAnswers{
		Status:          roadmap.StatusMilitary,
		AmputationType:  roadmap.AmputationLowerLimb,
		AmputationLevel: roadmap.LevelAboveKnee,
		CurrentStage:    roadmap.StageRehabilitation,
	}
	if _, err := assessmentRepo.Upsert(ctx, assessments.Assessment{UserID: guestUserID, Answers: answers}); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	if err := roadmapRepo.Save(ctx, roadmaps.Record{UserID: guestUserID, GeneratedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("seed roadmap: %v", err)
	}
	return assessmentRepo, roadmapRepo
}

func TestClaimGuestMigratesData(t *testing.T) {
	guestID := "11111111-1111-1111-1111-111111111111"
	assessmentRepo, roadmapRepo := seedGuest(t, "guest:"+guestID)
	router := newClaimRouter(NewService(assessmentRepo, roadmapRepo, nil), "google:1", false)

	resp := claim(router, guestID)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var result ClaimResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.MigratedAssessments != 1 || result.MigratedRoadmaps != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	ctx := context.Background()
	if _, err := assessmentRepo.GetByUser(ctx, "google:1"); err != nil {
		t.Fatalf("expected migrated assessment: %v", err)
	}
	if _, err := roadmapRepo.GetByUser(ctx, "google:1"); err != nil {
		t.Fatalf("expected migrated roadmap: %v", err)
	}
}

func TestClaimGuestIdempotentAndIsolated(t *testing.T) {
	guestID := "22222222-2222-2222-2222-222222222222"
	assessmentRepo, roadmapRepo := seedGuest(t, "guest:"+guestID)
	router := newClaimRouter(NewService(assessmentRepo, roadmapRepo, nil), "google:1", false)

	if resp := claim(router, guestID); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	resp := claim(router, guestID)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 on idempotent call, got %d", resp.Code)
	}
	var result ClaimResult
	_ = json.Unmarshal(resp.Body.Bytes(), &result)
	if result.MigratedAssessments != 0 || result.MigratedRoadmaps != 0 {
		t.Fatalf("second claim should move nothing: %+v", result)
	}

	if _, err := roadmapRepo.GetByUser(context.Background(), "google:2"); err == nil {
		t.Fatalf("expected no roadmap for other user")
	}
}

func TestClaimGuestRequiresLogin(t *testing.T) {
	router := newClaimRouter(NewService(assessments.NewMemoryRepo(), roadmaps.NewMemoryRepo(), nil), "guest:abc", true)
	if resp := claim(router, "11111111-1111-1111-1111-111111111111"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestClaimGuestValidatesHeader(t *testing.T) {
	router := newClaimRouter(NewService(assessments.NewMemoryRepo(), roadmaps.NewMemoryRepo(), nil), "google:1", false)
	if resp := claim(router, ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without header, got %d", resp.Code)
	}
	if resp := claim(router, "not-a-uuid"); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", resp.Code)
	}
}

func TestClaimGuestUsesSingleTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM assessments a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE assessments SET user_id").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM assessments WHERE user_id").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM roadmaps a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE roadmaps SET user_id").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM roadmaps WHERE user_id").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	svc := NewService(&assessments.PGRepo{DB: db}, &roadmaps.PGRepo{DB: db}, db)
	result, err := svc.ClaimGuest(context.Background(), "guest:g1", "google:1")
	if err != nil {
		t.Fatalf("ClaimGuest: %v", err)
	}
	if result.MigratedAssessments != 1 || result.MigratedRoadmaps != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
