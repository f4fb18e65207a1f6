package roadmaps

import (
	"errors"
	"time"

	"roadmap-backend/internal/roadmap"
)

var ErrNotFound = errors.New("roadmap not found")

// Record is the stored roadmap of one user. A new submission replaces it
// whole.
type Record struct {
	UserID         string                      `json:"userId"`
	Roadmap        roadmap.PersonalizedRoadmap `json:"roadmap"`
	CatalogVersion string                      `json:"catalogVersion"`
	GeneratedAt    time.Time                   `json:"generatedAt"`
}
