package assessments

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"roadmap-backend/internal/roadmap"
)

const maxAdditionalInfo = 2000

// Validate checks an answer set before it is stored. Status, amputation type,
// level and stage are required; region and pre-surgery type are optional but
// must be known values when present.
func Validate(a roadmap.AssessmentAnswers) []FieldIssue {
	var issues []FieldIssue
	add := func(field, issue string) {
		issues = append(issues, FieldIssue{Field: field, Issue: issue})
	}

	switch a.Status {
	case roadmap.StatusMilitary, roadmap.StatusCivilian:
	case "":
		add("status", "required")
	default:
		add("status", "must be one of military, civilian")
	}

	switch a.PreSurgeryType {
	case "", roadmap.PreSurgeryPlanned, roadmap.PreSurgeryEmergency:
	default:
		add("preSurgeryType", "must be one of planned, emergency")
	}

	levels, typeKnown := roadmap.LevelsByType[a.AmputationType]
	switch {
	case a.AmputationType == "":
		add("amputationType", "required")
	case !typeKnown:
		add("amputationType", "must be one of upper-limb, lower-limb")
	}

	switch {
	case a.AmputationLevel == "":
		add("amputationLevel", "required")
	case typeKnown && !roadmap.LevelBelongsTo(a.AmputationType, a.AmputationLevel):
		add("amputationLevel", fmt.Sprintf("must be one of %s for %s", joinLevels(levels), a.AmputationType))
	}

	switch {
	case a.CurrentStage == "":
		add("currentStage", "required")
	case !roadmap.IsKnownStage(a.CurrentStage):
		add("currentStage", "unknown stage")
	}

	if a.Region != "" && !roadmap.IsKnownRegion(a.Region) {
		add("region", "unknown region")
	}

	if utf8.RuneCountInString(a.AdditionalInfo) > maxAdditionalInfo {
		add("additionalInfo", fmt.Sprintf("must be at most %d characters", maxAdditionalInfo))
	}
	return issues
}

func joinLevels(levels []roadmap.AmputationLevel) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
