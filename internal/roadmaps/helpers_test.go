package roadmaps

import (
	"time"

	"roadmap-backend/internal/roadmap"
)

var fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func testCatalog() roadmap.Catalog {
	return roadmap.Catalog{
		Version: "test-1",
		Hospitals: []roadmap.Resource{
			{ID: "hosp-1", Title: "City Hospital", Type: roadmap.ResourceHospital, Region: "kyiv", Tags: []string{"surgery"}},
		},
		RehabCenters: []roadmap.Resource{
			{ID: "rehab-1", Title: "Rehab Center", Type: roadmap.ResourceRehab, Region: "lviv", Tags: []string{"rehabilitation"}},
		},
		ProstheticCenters: []roadmap.Resource{
			{ID: "pc-1", Title: "Prosthetic Center", Type: roadmap.ResourceProstheticCenter, Region: "kyiv", Tags: []string{"lower-limb"}},
		},
		NGOs: []roadmap.Resource{
			{ID: "ngo-1", Title: "Aid Fund", Type: roadmap.ResourceNGO, Tags: []string{"funding"}},
		},
		SupportServices: []roadmap.Resource{
			{ID: "sup-1", Title: "Peer Group", Type: roadmap.ResourceSupport, Region: "kyiv", Tags: []string{"military", "peer-support"}},
		},
		Manufacturers: []roadmap.Resource{
			{ID: "mfr-1", Title: "Bionic Co", Type: roadmap.ResourceManufacturer, Tags: []string{"bionic", "lower-limb"}},
		},
		StatePrograms: []roadmap.Resource{
			{ID: "gov-1", Title: "State Program", Type: roadmap.ResourceGovernment, Tags: []string{"funding"}},
		},
	}
}

func testAnswers() roadmap.AssessmentAnswers {
	return roadmap.AssessmentAnswers{
		Status:          roadmap.StatusMilitary,
		AmputationType:  roadmap.AmputationLowerLimb,
		AmputationLevel: roadmap.LevelBelowKnee,
		CurrentStage:    roadmap.StageProstheticFitting,
		Region:          "kyiv",
	}
}

func newTestService(repo Repo) *Service {
	svc := NewService(repo, testCatalog())
	svc.Now = func() time.Time { return fixedNow }
	return svc
}
