package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"roadmap-backend/internal/roadmap"
)

//go:embed data/resources.json
var embedded []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

// Default parses the catalog shipped with the binary.
func Default() (roadmap.Catalog, error) {
	return Parse(embedded)
}

// LoadFile reads a catalog that replaces the embedded one.
func LoadFile(path string) (roadmap.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return roadmap.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Load returns the file catalog when path is set, otherwise the embedded one.
// Either way the result is validated.
func Load(path string) (roadmap.Catalog, error) {
	var (
		c   roadmap.Catalog
		err error
	)
	if strings.TrimSpace(path) != "" {
		c, err = LoadFile(path)
	} else {
		c, err = Default()
	}
	if err != nil {
		return roadmap.Catalog{}, err
	}
	if err := Validate(c); err != nil {
		return roadmap.Catalog{}, err
	}
	return c, nil
}

func Parse(data []byte) (roadmap.Catalog, error) {
	var c roadmap.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return roadmap.Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return c, nil
}

var knownTypes = map[roadmap.ResourceType]bool{
	roadmap.ResourceGovernment:       true,
	roadmap.ResourceHospital:         true,
	roadmap.ResourceProstheticCenter: true,
	roadmap.ResourceRehab:            true,
	roadmap.ResourceNGO:              true,
	roadmap.ResourceManufacturer:     true,
	roadmap.ResourceFinancial:        true,
	roadmap.ResourceSupport:          true,
}

var knownUrgency = map[roadmap.ResourceUrgency]bool{
	roadmap.ResourceUrgencyImmediate: true,
	roadmap.ResourceUrgencyHigh:      true,
	roadmap.ResourceUrgencyMedium:    true,
	roadmap.ResourceUrgencyLow:       true,
}

// Validate reports every problem in the catalog at once.
func Validate(c roadmap.Catalog) error {
	var errs []error
	if strings.TrimSpace(c.Version) == "" {
		errs = append(errs, errors.New("version is required"))
	}
	seen := make(map[string]bool)
	for _, r := range c.All() {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("resource %q: id is required", r.Title))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("resource %s: duplicate id", id))
		}
		seen[id] = true
		if strings.TrimSpace(r.Title) == "" {
			errs = append(errs, fmt.Errorf("resource %s: title is required", id))
		}
		if !knownTypes[r.Type] {
			errs = append(errs, fmt.Errorf("resource %s: unknown type %q", id, r.Type))
		}
		if r.UrgencyLevel != "" && !knownUrgency[r.UrgencyLevel] {
			errs = append(errs, fmt.Errorf("resource %s: unknown urgency level %q", id, r.UrgencyLevel))
		}
		if r.Region != "" && !roadmap.IsKnownRegion(r.Region) {
			errs = append(errs, fmt.Errorf("resource %s: unknown region %q", id, r.Region))
		}
		if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 100) {
			errs = append(errs, fmt.Errorf("resource %s: rating %d out of range", id, *r.Rating))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}

// Count returns the number of resources across all categories.
func Count(c roadmap.Catalog) int {
	return len(c.All())
}
