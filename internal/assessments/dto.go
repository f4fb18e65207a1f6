package assessments

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/roadmaps"
)

// SubmitRequest is the body of POST /assessments. Binding tags reject values
// outside each enum; Validate covers the cross-field rules.
type SubmitRequest struct {
	Status          string `json:"status" binding:"required,oneof=military civilian" jsonschema:"enum=military,enum=civilian"`
	PreSurgeryType  string `json:"preSurgeryType,omitempty" binding:"omitempty,oneof=planned emergency" jsonschema:"enum=planned,enum=emergency"`
	AmputationType  string `json:"amputationType" binding:"required,oneof=upper-limb lower-limb" jsonschema:"enum=upper-limb,enum=lower-limb"`
	AmputationLevel string `json:"amputationLevel" binding:"required,oneof=shoulder-disarticulation above-elbow below-elbow wrist fingers hip-disarticulation above-knee below-knee partial-foot" jsonschema:"enum=shoulder-disarticulation,enum=above-elbow,enum=below-elbow,enum=wrist,enum=fingers,enum=hip-disarticulation,enum=above-knee,enum=below-knee,enum=partial-foot"`
	CurrentStage    string `json:"currentStage" binding:"required,oneof=pre-surgical acute-post-surgical in-patient-post-surgical rehabilitation pre-prosthetic prosthetic-fitting prosthetic-training community-reintegration" jsonschema:"enum=pre-surgical,enum=acute-post-surgical,enum=in-patient-post-surgical,enum=rehabilitation,enum=pre-prosthetic,enum=prosthetic-fitting,enum=prosthetic-training,enum=community-reintegration"`
	Region          string `json:"region,omitempty" jsonschema:"description=Region id from GET /api/v1/regions"`
	AdditionalInfo  string `json:"additionalInfo,omitempty" binding:"max=2000" jsonschema:"maxLength=2000"`
}

func (r SubmitRequest) toAnswers() roadmap.AssessmentAnswers {
	return roadmap.AssessmentAnswers{
		Status:          roadmap.Status(r.Status),
		PreSurgeryType:  roadmap.PreSurgeryType(r.PreSurgeryType),
		AmputationType:  roadmap.AmputationType(r.AmputationType),
		AmputationLevel: roadmap.AmputationLevel(r.AmputationLevel),
		CurrentStage:    roadmap.Stage(r.CurrentStage),
		Region:          strings.TrimSpace(r.Region),
		AdditionalInfo:  strings.TrimSpace(r.AdditionalInfo),
	}
}

// AssessmentResponse is the outward-facing representation of an assessment.
type AssessmentResponse struct {
	Answers   roadmap.AssessmentAnswers `json:"answers"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// SubmitResponse pairs the stored assessment with the roadmap built from it.
type SubmitResponse struct {
	Assessment AssessmentResponse `json:"assessment"`
	Roadmap    roadmaps.Record    `json:"roadmap"`
}

func toResponse(a Assessment) AssessmentResponse {
	return AssessmentResponse{Answers: a.Answers, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

// bindingIssues converts validator errors from ShouldBindJSON into field
// issues. Anything else is reported as a malformed body.
func bindingIssues(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Field: "body", Issue: "malformed JSON"}}
	}
	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{Field: lowerFirst(fe.Field()), Issue: describeTag(fe)})
	}
	return issues
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return fe.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
