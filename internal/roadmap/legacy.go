package roadmap

import "strings"

// InjuryTime is the time since injury in the legacy survey.
type InjuryTime string

const (
	InjuryLessThan3Months InjuryTime = "less-3-months"
	Injury3To6Months      InjuryTime = "3-6-months"
	Injury6To12Months     InjuryTime = "6-12-months"
	InjuryMoreThan1Year   InjuryTime = "more-1-year"
)

// InjurySeverity is the legacy severity answer.
type InjurySeverity string

const (
	SeverityPartialDigit   InjurySeverity = "partial-digit"
	SeverityBelowElbowKnee InjurySeverity = "below-elbow-knee"
	SeverityAboveElbowKnee InjurySeverity = "above-elbow-knee"
	SeverityMultiple       InjurySeverity = "multiple"
)

// InjuryLocation values: upper-right, upper-left, lower-right, lower-left,
// multiple-limbs.
type InjuryLocation string

const MultipleLimbs InjuryLocation = "multiple-limbs"

// FundingStatus is the state of the government funding application.
type FundingStatus string

const (
	FundingNone      FundingStatus = "none"
	FundingApplied   FundingStatus = "applied"
	FundingApproved  FundingStatus = "approved"
	FundingReceiving FundingStatus = "receiving"
	FundingUnsure    FundingStatus = "unsure"
)

// LegacyAnswers is the earlier injury-time based survey.
type LegacyAnswers struct {
	InjuryTime        InjuryTime     `json:"injuryTime"`
	InjurySeverity    InjurySeverity `json:"injurySeverity"`
	InjuryLocation    InjuryLocation `json:"injuryLocation"`
	GovernmentFunding FundingStatus  `json:"governmentFunding"`
	Region            string         `json:"region,omitempty"`
	AdditionalInfo    string         `json:"additionalInfo,omitempty"`
}

func (a LegacyAnswers) upper() bool {
	return strings.Contains(string(a.InjuryLocation), "upper") || a.InjuryLocation == MultipleLimbs
}

func (a LegacyAnswers) lower() bool {
	return strings.Contains(string(a.InjuryLocation), "lower") || a.InjuryLocation == MultipleLimbs
}

func (a LegacyAnswers) fundingMissing() bool {
	return a.GovernmentFunding == FundingNone || a.GovernmentFunding == FundingUnsure
}

func injuryIs(values ...InjuryTime) func(RuleInput) bool {
	return func(in RuleInput) bool {
		for _, v := range values {
			if in.Legacy.InjuryTime == v {
				return true
			}
		}
		return false
	}
}

func severityIs(values ...InjurySeverity) func(RuleInput) bool {
	return func(in RuleInput) bool {
		for _, v := range values {
			if in.Legacy.InjurySeverity == v {
				return true
			}
		}
		return false
	}
}

// keepTimeframe changes priority and reason only.
func keepTimeframe(p Priority, reason string) func(*PersonalizedRecommendation) {
	return func(r *PersonalizedRecommendation) {
		r.Priority = p
		r.Reason = reason
	}
}

var legacyImmediateRules = []Rule{
	{
		Name:  "recent-injury",
		When:  injuryIs(InjuryLessThan3Months),
		Apply: set(PriorityHigh, "Critical during early recovery phase", "Within 1 week"),
	},
	{
		Name:  "intrinsically-immediate",
		When:  func(in RuleInput) bool { return in.Resource.UrgencyLevel == ResourceUrgencyImmediate },
		Apply: set(PriorityCritical, "Essential first step for your recovery journey", "Immediately"),
	},
}

var legacyMedicalRules = []Rule{
	{
		Name:  "complex-case",
		When:  severityIs(SeverityMultiple, SeverityAboveElbowKnee),
		Apply: set(PriorityHigh, "Complex cases benefit from specialized care", "Within 2 weeks"),
	},
	{
		Name:  "recent-injury",
		When:  injuryIs(InjuryLessThan3Months),
		Apply: set(PriorityCritical, "Early medical care is crucial for optimal healing", "This week"),
	},
	{
		Name: "upper-limb-specialist",
		When: func(in RuleInput) bool {
			return in.Resource.HasTag("upper-limb") && strings.Contains(string(in.Legacy.InjuryLocation), "upper")
		},
		Apply: keepTimeframe(PriorityHigh, "Specializes in upper limb cases like yours"),
	},
	{
		Name: "lower-limb-specialist",
		When: func(in RuleInput) bool {
			return in.Resource.HasTag("lower-limb") && strings.Contains(string(in.Legacy.InjuryLocation), "lower")
		},
		Apply: keepTimeframe(PriorityHigh, "Specializes in lower limb cases like yours"),
	},
}

var legacyProstheticsRules = []Rule{
	{
		Name:  "healing",
		When:  always,
		Apply: set(PriorityLow, "Research options while healing continues", "When medically ready"),
	},
	{
		Name:  "upcoming-fitting",
		When:  injuryIs(Injury6To12Months),
		Apply: set(PriorityMedium, "Start exploring options for upcoming fitting", "Within 1-2 months"),
	},
	{
		Name:  "ready",
		When:  injuryIs(InjuryMoreThan1Year),
		Apply: set(PriorityHigh, "Ready for prosthetic fitting evaluation", "Schedule now"),
	},
	{
		Name: "bionic-complex-case",
		When: func(in RuleInput) bool {
			return in.Resource.HasTag("bionic") && severityIs(SeverityAboveElbowKnee, SeverityMultiple)(in)
		},
		Apply: escalateLowTo(PriorityMedium, "Advanced bionic options suitable for your case"),
	},
}

var legacyNGORules = []Rule{
	{
		Name:  "funding-gap",
		When:  func(in RuleInput) bool { return in.Legacy.fundingMissing() },
		Apply: set(PriorityHigh, "Alternative funding while government application processes", "Apply now"),
	},
	{
		Name:  "proven-track-record",
		When:  func(in RuleInput) bool { return in.Resource.UrgencyLevel == ResourceUrgencyHigh },
		Apply: keepTimeframe(PriorityHigh, "Highly recommended organization with proven track record"),
	},
}

var legacySupportRules = []Rule{
	{
		Name:  "early-adjustment",
		When:  injuryIs(InjuryLessThan3Months, Injury3To6Months),
		Apply: set(PriorityHigh, "Support is especially important during early adjustment", "Connect this week"),
	},
}

// LegacyRules returns the rule table of the injury-time based flow.
func LegacyRules(category Category) []Rule {
	switch category {
	case CategoryMedical:
		return legacyMedicalRules
	case CategoryProsthetics:
		return legacyProstheticsRules
	case CategorySupport:
		return legacySupportRules
	case CategoryNGO:
		return legacyNGORules
	case CategoryImmediate:
		return legacyImmediateRules
	case CategoryFunding:
		return fundingRules
	default:
		return nil
	}
}

// ScoreLegacyCategory is ScoreCategory for the legacy answers.
func ScoreLegacyCategory(resources []Resource, answers LegacyAnswers, category Category) []PersonalizedRecommendation {
	return score(resources, RuleInput{Legacy: answers}, LegacyRules(category))
}

func legacyUrgency(a LegacyAnswers) UrgencyLevel {
	switch {
	case a.InjuryTime == InjuryLessThan3Months:
		return UrgencyCritical
	case a.InjuryTime == Injury3To6Months || a.InjurySeverity == SeverityMultiple:
		return UrgencyHigh
	case a.fundingMissing():
		return UrgencyModerate
	default:
		return UrgencyStable
	}
}

// legacyOptions accumulates lists; multiple-limbs can match both limb groups.
func legacyOptions(a LegacyAnswers) []string {
	options := []string{}
	if a.InjurySeverity == SeverityPartialDigit {
		options = append(options, "Silicone finger prosthetics", "Functional finger prosthetics", "Cosmetic restoration")
	}
	if a.upper() {
		switch a.InjurySeverity {
		case SeverityBelowElbowKnee:
			options = append(options, "Myoelectric below-elbow prosthesis", "Body-powered prosthesis", "Activity-specific prosthesis")
		case SeverityAboveElbowKnee:
			options = append(options, "Myoelectric above-elbow prosthesis", "Hybrid prosthesis", "Bionic arm (Esper/Motorica)")
		}
	}
	if a.lower() {
		switch a.InjurySeverity {
		case SeverityBelowElbowKnee:
			options = append(options, "Below-knee prosthesis (BK)", "Running blade (Össur)", "Waterproof prosthesis")
		case SeverityAboveElbowKnee:
			options = append(options, "Above-knee prosthesis (AK)", "Microprocessor knee (C-Leg)", "Sports prosthesis")
		}
	}
	if a.InjurySeverity == SeverityMultiple {
		options = append(options, "Multi-limb prosthetic system", "Coordinated bilateral prosthetics", "Custom mobility solutions")
	}
	return options
}

var legacyTimelines = map[InjuryTime]string{
	InjuryLessThan3Months: "6-12 months to full prosthetic fitting (healing required first)",
	Injury3To6Months:      "3-6 months to initial prosthetic fitting",
	Injury6To12Months:     "1-3 months to prosthetic fitting (if wound healed)",
}

var legacySummaries = map[UrgencyLevel]bilingual{
	UrgencyCritical: {
		"Your injury is recent. Focus on healing, securing funding, and connecting with medical care immediately.",
		"Ваша травма недавня. Зосередьтеся на загоєнні, отриманні фінансування та негайному зв'язку з медичною допомогою.",
	},
	UrgencyHigh: {
		"You should prioritize medical consultations and funding applications to stay on track for prosthetic fitting.",
		"Вам слід надати пріоритет медичним консультаціям та заявкам на фінансування.",
	},
	UrgencyModerate: {
		"You're progressing well. Focus on completing funding applications and exploring prosthetic options.",
		"Ви добре просуваєтеся. Зосередьтеся на завершенні заявок на фінансування та вивченні варіантів протезування.",
	},
	UrgencyStable: {
		"You have a solid foundation. Continue with rehabilitation and prosthetic optimization.",
		"У вас міцна основа. Продовжуйте реабілітацію та оптимізацію протезування.",
	},
}

func immediateLevel(resources []Resource) []Resource {
	var out []Resource
	for _, r := range resources {
		if r.UrgencyLevel == ResourceUrgencyImmediate {
			out = append(out, r)
		}
	}
	return out
}

func concat(groups ...[]Resource) []Resource {
	var out []Resource
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// BuildLegacyRoadmap builds a roadmap from the injury-time based survey.
// Combined sections are scored as one list so their order stays sorted.
func BuildLegacyRoadmap(answers LegacyAnswers, catalog Catalog) PersonalizedRoadmap {
	urgency := legacyUrgency(answers)
	summary := legacySummaries[urgency]

	sections := make([]RoadmapSection, 0, 6)
	if urgency == UrgencyCritical || urgency == UrgencyHigh {
		immediate := concat(immediateLevel(catalog.SupportServices), immediateLevel(catalog.FinancialAid))
		sections = append(sections, RoadmapSection{
			ID:              SectionIDImmediate,
			Title:           "Immediate Actions",
			TitleUa:         "Негайні дії",
			Icon:            "AlertTriangle",
			Urgency:         SectionImmediate,
			Recommendations: top(ScoreLegacyCategory(immediate, answers, CategoryImmediate), 3),
		})
	}

	fundingUrgency := SectionSoon
	if answers.fundingMissing() {
		fundingUrgency = SectionImmediate
	}
	sections = append(sections, RoadmapSection{
		ID:              SectionFunding,
		Title:           "Funding & Benefits",
		TitleUa:         "Фінансування та пільги",
		Icon:            "Wallet",
		Urgency:         fundingUrgency,
		Recommendations: top(ScoreLegacyCategory(concat(catalog.StatePrograms, catalog.FinancialAid), answers, CategoryFunding), sectionCap),
	})

	medicalUrgency := SectionSoon
	if answers.InjuryTime == InjuryLessThan3Months {
		medicalUrgency = SectionImmediate
	}
	sections = append(sections, RoadmapSection{
		ID:              SectionMedical,
		Title:           "Medical Care & Rehabilitation",
		TitleUa:         "Медична допомога та реабілітація",
		Icon:            "Stethoscope",
		Urgency:         medicalUrgency,
		Recommendations: top(ScoreLegacyCategory(catalog.MedicalFacilities(), answers, CategoryMedical), sectionCap),
	})

	prostheticsUrgency := SectionOngoing
	if answers.InjuryTime == InjuryMoreThan1Year || answers.InjuryTime == Injury6To12Months {
		prostheticsUrgency = SectionSoon
	}
	sections = append(sections, RoadmapSection{
		ID:              SectionManufacturers,
		Title:           "Prosthetic Manufacturers",
		TitleUa:         "Виробники протезів",
		Icon:            "Cog",
		Urgency:         prostheticsUrgency,
		Recommendations: top(ScoreLegacyCategory(catalog.Manufacturers, answers, CategoryProsthetics), sectionCap),
	})

	sections = append(sections, RoadmapSection{
		ID:              SectionNGO,
		Title:           "NGOs & International Aid",
		TitleUa:         "НУО та міжнародна допомога",
		Icon:            "Heart",
		Urgency:         SectionOngoing,
		Recommendations: top(ScoreLegacyCategory(catalog.NGOs, answers, CategoryNGO), sectionCap),
	})

	sections = append(sections, RoadmapSection{
		ID:              SectionSupport,
		Title:           "Support & Community",
		TitleUa:         "Підтримка та спільнота",
		Icon:            "Users",
		Urgency:         SectionOngoing,
		Recommendations: top(ScoreLegacyCategory(catalog.SupportServices, answers, CategorySupport), 3),
	})

	timeline, ok := legacyTimelines[answers.InjuryTime]
	if !ok {
		timeline = "Ready for immediate prosthetic evaluation"
	}
	return PersonalizedRoadmap{
		UrgencyLevel:      urgency,
		Summary:           summary.en,
		SummaryUa:         summary.ua,
		Sections:          sections,
		ProstheticOptions: legacyOptions(answers),
		EstimatedTimeline: timeline,
	}
}
