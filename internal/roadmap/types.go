package roadmap

// Status is the patient's service status.
type Status string

const (
	StatusMilitary Status = "military"
	StatusCivilian Status = "civilian"
)

// PreSurgeryType describes how the amputation was scheduled.
type PreSurgeryType string

const (
	PreSurgeryPlanned   PreSurgeryType = "planned"
	PreSurgeryEmergency PreSurgeryType = "emergency"
)

// AmputationType is the affected limb group.
type AmputationType string

const (
	AmputationUpperLimb AmputationType = "upper-limb"
	AmputationLowerLimb AmputationType = "lower-limb"
)

// AmputationLevel is valid only within the option set of its AmputationType.
type AmputationLevel string

const (
	LevelShoulderDisarticulation AmputationLevel = "shoulder-disarticulation"
	LevelAboveElbow              AmputationLevel = "above-elbow"
	LevelBelowElbow              AmputationLevel = "below-elbow"
	LevelWrist                   AmputationLevel = "wrist"
	LevelFingers                 AmputationLevel = "fingers"

	LevelHipDisarticulation AmputationLevel = "hip-disarticulation"
	LevelAboveKnee          AmputationLevel = "above-knee"
	LevelBelowKnee          AmputationLevel = "below-knee"
	LevelPartialFoot        AmputationLevel = "partial-foot"
)

// Stage is the patient's position in the recovery pipeline.
type Stage string

const (
	StagePreSurgical            Stage = "pre-surgical"
	StageAcutePostSurgical      Stage = "acute-post-surgical"
	StageInPatientPostSurgical  Stage = "in-patient-post-surgical"
	StageRehabilitation         Stage = "rehabilitation"
	StagePreProsthetic          Stage = "pre-prosthetic"
	StageProstheticFitting      Stage = "prosthetic-fitting"
	StageProstheticTraining     Stage = "prosthetic-training"
	StageCommunityReintegration Stage = "community-reintegration"
)

// Stages lists the recovery stages in pipeline order.
var Stages = []Stage{
	StagePreSurgical,
	StageAcutePostSurgical,
	StageInPatientPostSurgical,
	StageRehabilitation,
	StagePreProsthetic,
	StageProstheticFitting,
	StageProstheticTraining,
	StageCommunityReintegration,
}

// LevelsByType is the level domain implied by each amputation type.
var LevelsByType = map[AmputationType][]AmputationLevel{
	AmputationUpperLimb: {
		LevelShoulderDisarticulation,
		LevelAboveElbow,
		LevelBelowElbow,
		LevelWrist,
		LevelFingers,
	},
	AmputationLowerLimb: {
		LevelHipDisarticulation,
		LevelAboveKnee,
		LevelBelowKnee,
		LevelPartialFoot,
	},
}

// AssessmentAnswers is the survey answer set. Callers clear AmputationLevel
// whenever AmputationType changes; the engine does not re-check that.
type AssessmentAnswers struct {
	Status          Status          `json:"status"`
	PreSurgeryType  PreSurgeryType  `json:"preSurgeryType,omitempty"`
	AmputationType  AmputationType  `json:"amputationType"`
	AmputationLevel AmputationLevel `json:"amputationLevel"`
	CurrentStage    Stage           `json:"currentStage"`
	Region          string          `json:"region"`
	AdditionalInfo  string          `json:"additionalInfo,omitempty"`
}

// ResourceType tags a catalog resource.
type ResourceType string

const (
	ResourceGovernment       ResourceType = "government"
	ResourceHospital         ResourceType = "hospital"
	ResourceProstheticCenter ResourceType = "prosthetic-center"
	ResourceRehab            ResourceType = "rehab"
	ResourceNGO              ResourceType = "ngo"
	ResourceManufacturer     ResourceType = "manufacturer"
	ResourceFinancial        ResourceType = "financial"
	ResourceSupport          ResourceType = "support"
)

// ResourceUrgency is an intrinsic property of a resource, unrelated to the
// computed per-user priority.
type ResourceUrgency string

const (
	ResourceUrgencyImmediate ResourceUrgency = "immediate"
	ResourceUrgencyHigh      ResourceUrgency = "high"
	ResourceUrgencyMedium    ResourceUrgency = "medium"
	ResourceUrgencyLow       ResourceUrgency = "low"
)

// Resource is a read-only catalog entry.
type Resource struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TitleUa       string          `json:"titleUa,omitempty"`
	Description   string          `json:"description"`
	DescriptionUa string          `json:"descriptionUa,omitempty"`
	Type          ResourceType    `json:"type"`
	Contact       string          `json:"contact,omitempty"`
	Email         string          `json:"email,omitempty"`
	Website       string          `json:"website,omitempty"`
	Address       string          `json:"address,omitempty"`
	UrgencyLevel  ResourceUrgency `json:"urgencyLevel,omitempty"`
	Tags          []string        `json:"tags"`
	Region        string          `json:"region,omitempty"`
	Rating        *int            `json:"rating,omitempty"`
}

// HasTag reports whether the resource carries the given tag.
func (r Resource) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog is the deployment-provided resource collection, partitioned by
// category. The engine never reclassifies or mutates it.
type Catalog struct {
	Version           string     `json:"version"`
	StatePrograms     []Resource `json:"statePrograms"`
	ProstheticCenters []Resource `json:"prostheticCenters"`
	Hospitals         []Resource `json:"hospitals"`
	RehabCenters      []Resource `json:"rehabCenters"`
	NGOs              []Resource `json:"ngoResources"`
	FinancialAid      []Resource `json:"financialAid"`
	SupportServices   []Resource `json:"supportServices"`
	Manufacturers     []Resource `json:"manufacturers"`
}

// MedicalFacilities returns hospitals, rehab centers and prosthetic centers
// in that order.
func (c Catalog) MedicalFacilities() []Resource {
	out := make([]Resource, 0, len(c.Hospitals)+len(c.RehabCenters)+len(c.ProstheticCenters))
	out = append(out, c.Hospitals...)
	out = append(out, c.RehabCenters...)
	out = append(out, c.ProstheticCenters...)
	return out
}

// All returns every resource in category order.
func (c Catalog) All() []Resource {
	groups := [][]Resource{
		c.StatePrograms,
		c.ProstheticCenters,
		c.Hospitals,
		c.RehabCenters,
		c.NGOs,
		c.FinancialAid,
		c.SupportServices,
		c.Manufacturers,
	}
	var out []Resource
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Priority is the computed per-user priority of a recommendation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities: critical(0) < high(1) < medium(2) < low(3).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// RegionMatch classifies a resource region against the user's region.
type RegionMatch string

const (
	RegionExact  RegionMatch = "exact"
	RegionNearby RegionMatch = "nearby"
	RegionOther  RegionMatch = "other"
)

// PersonalizedRecommendation is a catalog resource annotated for one user.
type PersonalizedRecommendation struct {
	Resource    Resource    `json:"resource"`
	Priority    Priority    `json:"priority"`
	Reason      string      `json:"reason"`
	Timeframe   string      `json:"timeframe"`
	RegionMatch RegionMatch `json:"regionMatch"`
}

// SectionUrgency is a presentation label, distinct from Priority.
type SectionUrgency string

const (
	SectionImmediate SectionUrgency = "immediate"
	SectionSoon      SectionUrgency = "soon"
	SectionOngoing   SectionUrgency = "ongoing"
)

// RoadmapStep is one concrete next action. IDs are contiguous from 1.
type RoadmapStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	LinkLabel   string `json:"linkLabel,omitempty"`
}

// RoadmapSection groups recommendations and steps under one heading.
type RoadmapSection struct {
	ID              string                       `json:"id"`
	Title           string                       `json:"title"`
	TitleUa         string                       `json:"titleUa"`
	Icon            string                       `json:"icon"`
	Urgency         SectionUrgency               `json:"urgency"`
	Recommendations []PersonalizedRecommendation `json:"recommendations"`
	Steps           []RoadmapStep                `json:"steps,omitempty"`
}

// UrgencyLevel is the overall roadmap urgency.
type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyModerate UrgencyLevel = "moderate"
	UrgencyStable   UrgencyLevel = "stable"
)

// PersonalizedRoadmap is the engine output. It has no state of its own and
// is regenerated in full whenever the answers change.
type PersonalizedRoadmap struct {
	UrgencyLevel            UrgencyLevel     `json:"urgencyLevel"`
	Summary                 string           `json:"summary"`
	SummaryUa               string           `json:"summaryUa"`
	Sections                []RoadmapSection `json:"sections"`
	ProstheticOptions       []string         `json:"prostheticOptions"`
	EstimatedTimeline       string           `json:"estimatedTimeline"`
	StatusMessage           string           `json:"statusMessage,omitempty"`
	AssistiveDevicesMessage string           `json:"assistiveDevicesMessage,omitempty"`
}

// Section returns the section with the given id.
func (r PersonalizedRoadmap) Section(id string) (RoadmapSection, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return RoadmapSection{}, false
}
