package assessments

import (
	"time"

	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/roadmaps"
)

var fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func validAnswers() roadmap.AssessmentAnswers {
	return roadmap.AssessmentAnswers{
		Status:          roadmap.StatusCivilian,
		PreSurgeryType:  roadmap.PreSurgeryEmergency,
		AmputationType:  roadmap.AmputationUpperLimb,
		AmputationLevel: roadmap.LevelBelowElbow,
		CurrentStage:    roadmap.StageRehabilitation,
		Region:          "lviv",
	}
}

func testCatalog() roadmap.Catalog {
	return roadmap.Catalog{
		Version: "test-1",
		RehabCenters: []roadmap.Resource{
			{ID: "rehab-1", Title: "Rehab Center", Type: roadmap.ResourceRehab, Region: "lviv", Tags: []string{"rehabilitation"}},
		},
		NGOs: []roadmap.Resource{
			{ID: "ngo-1", Title: "Aid Fund", Type: roadmap.ResourceNGO},
		},
	}
}

// newTestStack wires the assessment service to an in-memory roadmap service.
func newTestStack() (*Service, *MemoryRepo, *roadmaps.MemoryRepo) {
	repo := NewMemoryRepo()
	repo.now = func() time.Time { return fixedNow }
	roadmapRepo := roadmaps.NewMemoryRepo()
	roadmapSvc := roadmaps.NewService(roadmapRepo, testCatalog())
	roadmapSvc.Now = func() time.Time { return fixedNow }
	return NewService(repo, roadmapSvc, nil), repo, roadmapRepo
}
