package roadmap

// Category selects the rule table used to score a resource list.
type Category string

const (
	CategoryMedical     Category = "medical"
	CategoryProsthetics Category = "prosthetics"
	CategorySupport     Category = "support"
	CategoryNGO         Category = "ngo"
	CategoryImmediate   Category = "immediate"
	CategoryFunding     Category = "funding"
)

// Categories lists every category with a rule table.
var Categories = []Category{
	CategoryMedical,
	CategoryProsthetics,
	CategorySupport,
	CategoryNGO,
	CategoryImmediate,
	CategoryFunding,
}

// RuleInput is what a rule predicate may look at.
type RuleInput struct {
	Resource Resource
	Answers  AssessmentAnswers
	Legacy   LegacyAnswers
}

// Rule is one (predicate, effect) pair. Rules in a table are applied in
// order and later matches overwrite earlier ones.
type Rule struct {
	Name  string
	When  func(RuleInput) bool
	Apply func(*PersonalizedRecommendation)
}

const (
	baselinePriority  = PriorityMedium
	baselineTimeframe = "Within 1 month"
)

func set(priority Priority, reason, timeframe string) func(*PersonalizedRecommendation) {
	return func(r *PersonalizedRecommendation) {
		r.Priority = priority
		r.Reason = reason
		if timeframe != "" {
			r.Timeframe = timeframe
		}
	}
}

func always(RuleInput) bool { return true }

func stageIn(stages ...Stage) func(RuleInput) bool {
	return func(in RuleInput) bool {
		for _, s := range stages {
			if in.Answers.CurrentStage == s {
				return true
			}
		}
		return false
	}
}

func hasTag(tag string) func(RuleInput) bool {
	return func(in RuleInput) bool { return in.Resource.HasTag(tag) }
}

var advancedLevels = map[AmputationLevel]bool{
	LevelShoulderDisarticulation: true,
	LevelAboveElbow:              true,
	LevelHipDisarticulation:      true,
	LevelAboveKnee:               true,
}

// escalateLowTo raises a low priority to p and replaces the reason. Higher
// priorities keep their value.
func escalateLowTo(p Priority, reason string) func(*PersonalizedRecommendation) {
	return func(r *PersonalizedRecommendation) {
		if r.Priority == PriorityLow {
			r.Priority = p
		}
		r.Reason = reason
	}
}

var medicalRules = []Rule{
	{
		Name:  "baseline",
		When:  always,
		Apply: set(PriorityMedium, "Recommended facility for ongoing medical care", "Within 1 month"),
	},
	{
		Name:  "post-surgical",
		When:  stageIn(StageAcutePostSurgical, StageInPatientPostSurgical),
		Apply: set(PriorityCritical, "Close medical follow-up is essential right after surgery", "This week"),
	},
	{
		Name:  "rehabilitation",
		When:  stageIn(StageRehabilitation, StagePreProsthetic),
		Apply: set(PriorityHigh, "Specialized rehabilitation prepares your limb for a prosthesis", "Within 2 weeks"),
	},
}

var prostheticsRules = []Rule{
	{
		Name:  "not-ready",
		When:  always,
		Apply: set(PriorityLow, "Learn about prosthetic options while you recover", "When ready"),
	},
	{
		Name:  "pre-prosthetic",
		When:  stageIn(StagePreProsthetic),
		Apply: set(PriorityMedium, "Start comparing providers before your fitting", "Within 1-2 months"),
	},
	{
		Name:  "fitting",
		When:  stageIn(StageProstheticFitting, StageProstheticTraining),
		Apply: set(PriorityHigh, "You are ready to work with a prosthetic provider", "Schedule now"),
	},
	{
		Name: "bionic-advanced-level",
		When: func(in RuleInput) bool {
			return in.Resource.HasTag("bionic") && advancedLevels[in.Answers.AmputationLevel]
		},
		Apply: escalateLowTo(PriorityMedium, "Advanced bionic options suitable for your amputation level"),
	},
}

var supportRules = []Rule{
	{
		Name:  "civilian",
		When:  always,
		Apply: set(PriorityMedium, "Peer and psychological support helps throughout recovery", "Ongoing"),
	},
	{
		Name:  "military",
		When:  func(in RuleInput) bool { return in.Answers.Status == StatusMilitary },
		Apply: set(PriorityHigh, "Veteran services can speed up benefits and rehabilitation", "Connect this week"),
	},
}

var ngoRules = []Rule{
	{
		Name:  "flat",
		When:  always,
		Apply: set(PriorityMedium, "Additional aid and programs you may qualify for", "As needed"),
	},
}

var immediateRules = []Rule{
	{
		Name:  "early-stage",
		When:  stageIn(StagePreSurgical, StageAcutePostSurgical),
		Apply: set(PriorityHigh, "Important during the first weeks of recovery", "Within 1 week"),
	},
	{
		Name: "intrinsically-immediate",
		When: func(in RuleInput) bool {
			return in.Resource.UrgencyLevel == ResourceUrgencyImmediate
		},
		Apply: set(PriorityCritical, "Essential first step for your recovery journey", "Immediately"),
	},
}

var fundingRules = []Rule{
	{
		Name:  "default",
		When:  always,
		Apply: set(PriorityLow, "Additional funding opportunities if needed", "As needed"),
	},
	{
		Name:  "none",
		When:  fundingIs(FundingNone),
		Apply: set(PriorityCritical, "You haven't applied for funding yet - this should be your first priority", "Start this week"),
	},
	{
		Name:  "unsure",
		When:  fundingIs(FundingUnsure),
		Apply: set(PriorityHigh, "Get clarity on available funding options", "Within 2 weeks"),
	},
	{
		Name:  "applied",
		When:  fundingIs(FundingApplied),
		Apply: set(PriorityMedium, "Track your application and explore additional sources", "Ongoing"),
	},
}

func fundingIs(values ...FundingStatus) func(RuleInput) bool {
	return func(in RuleInput) bool {
		for _, v := range values {
			if in.Legacy.GovernmentFunding == v {
				return true
			}
		}
		return false
	}
}

// Rules returns the ordered rule table for a category. Unknown categories
// have no rules and score every resource at the baseline.
func Rules(category Category) []Rule {
	switch category {
	case CategoryMedical:
		return medicalRules
	case CategoryProsthetics:
		return prostheticsRules
	case CategorySupport:
		return supportRules
	case CategoryNGO:
		return ngoRules
	case CategoryImmediate:
		return immediateRules
	case CategoryFunding:
		return fundingRules
	default:
		return nil
	}
}
