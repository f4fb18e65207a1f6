package roadmap

var urgencyByStage = map[Stage]UrgencyLevel{
	StagePreSurgical:           UrgencyCritical,
	StageAcutePostSurgical:     UrgencyCritical,
	StageInPatientPostSurgical: UrgencyHigh,
	StageRehabilitation:        UrgencyHigh,
	StagePreProsthetic:         UrgencyModerate,
	StageProstheticFitting:     UrgencyModerate,
}

func urgencyFor(stage Stage) UrgencyLevel {
	if u, ok := urgencyByStage[stage]; ok {
		return u
	}
	return UrgencyStable
}

type limb struct {
	typ   AmputationType
	level AmputationLevel
}

var prostheticOptions = map[limb][]string{
	{AmputationUpperLimb, LevelShoulderDisarticulation}: {"Shoulder disarticulation prosthesis", "Myoelectric arm with powered elbow", "Lightweight cosmetic arm"},
	{AmputationUpperLimb, LevelAboveElbow}:              {"Myoelectric above-elbow prosthesis", "Hybrid prosthesis", "Bionic arm (Esper/Motorica)"},
	{AmputationUpperLimb, LevelBelowElbow}:              {"Myoelectric below-elbow prosthesis", "Body-powered prosthesis", "Activity-specific prosthesis"},
	{AmputationUpperLimb, LevelWrist}:                   {"Wrist disarticulation prosthesis", "Multi-articulating bionic hand", "Body-powered hook"},
	{AmputationUpperLimb, LevelFingers}:                 {"Silicone finger prosthetics", "Functional finger prosthetics", "Cosmetic restoration"},
	{AmputationLowerLimb, LevelHipDisarticulation}:      {"Hip disarticulation prosthesis", "Microprocessor hip and knee system", "Custom socket with pelvic suspension"},
	{AmputationLowerLimb, LevelAboveKnee}:               {"Above-knee prosthesis (AK)", "Microprocessor knee (C-Leg)", "Sports prosthesis"},
	{AmputationLowerLimb, LevelBelowKnee}:               {"Below-knee prosthesis (BK)", "Running blade", "Waterproof prosthesis"},
	{AmputationLowerLimb, LevelPartialFoot}:             {"Partial foot prosthesis", "Silicone toe filler", "Custom orthopedic insole"},
}

// optionsFor returns an empty list when either field is unset or the level
// does not belong to the type.
func optionsFor(t AmputationType, l AmputationLevel) []string {
	list := prostheticOptions[limb{t, l}]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

var statusMessages = map[Stage]string{
	StagePreSurgical:       "Before surgery, focus on preparation and on questions for your surgical team. This roadmap is informational and does not replace medical advice.",
	StageAcutePostSurgical: "Right after surgery, healing comes first. Follow your care team's instructions and contact them immediately if anything feels wrong.",
}

const defaultStatusMessage = "This roadmap lists informational resources only. Always confirm medical decisions with your care team."

func statusMessageFor(stage Stage) string {
	if m, ok := statusMessages[stage]; ok {
		return m
	}
	return defaultStatusMessage
}

type bilingual struct {
	en string
	ua string
}

var summaries = map[Stage]bilingual{
	StagePreSurgical: {
		"Your surgery is ahead. Prepare your body and your documents, and ask your surgeon how the amputation level affects future prosthetic options.",
		"Операція попереду. Підготуйте тіло та документи і запитайте хірурга, як рівень ампутації вплине на подальше протезування.",
	},
	StageAcutePostSurgical: {
		"You are in the first days after surgery. Focus on healing, pain control and staying in close contact with your medical team.",
		"Ви в перших днях після операції. Зосередьтеся на загоєнні, контролі болю та тісному зв'язку з медичною командою.",
	},
	StageInPatientPostSurgical: {
		"You are recovering in hospital. Start rehabilitation early, prepare for discharge and begin your disability and funding paperwork.",
		"Ви відновлюєтеся в лікарні. Почніть реабілітацію якомога раніше, підготуйтеся до виписки та розпочніть оформлення інвалідності і фінансування.",
	},
	StageRehabilitation: {
		"You are in active rehabilitation. Keep up therapy, secure state funding and choose the prosthetic center that suits you.",
		"Ви проходите активну реабілітацію. Продовжуйте терапію, отримайте державне фінансування та оберіть протезний центр.",
	},
	StagePreProsthetic: {
		"You are getting ready for a prosthesis. Visit prosthetic centers, compare options and keep your residual limb in good condition.",
		"Ви готуєтеся до протезування. Відвідайте протезні центри, порівняйте варіанти та підтримуйте кукс у доброму стані.",
	},
	StageProstheticFitting: {
		"Your prosthesis is being fitted. Attend every session and report any discomfort so the socket fits well.",
		"Вам виготовляють протез. Відвідуйте кожну примірку та повідомляйте про будь-який дискомфорт.",
	},
	StageProstheticTraining: {
		"You are learning to use your prosthesis. Build wearing time gradually and practice everyday tasks.",
		"Ви вчитеся користуватися протезом. Поступово збільшуйте час носіння та тренуйте щоденні дії.",
	},
	StageCommunityReintegration: {
		"You are returning to everyday life. Look at employment, sports and peer communities, and plan regular prosthesis maintenance.",
		"Ви повертаєтеся до звичного життя. Зверніть увагу на працевлаштування, спорт і спільноти, плануйте регулярне обслуговування протеза.",
	},
}

var defaultSummary = bilingual{
	"Here is a general roadmap of resources for people living with limb loss in Ukraine. Complete the assessment to make it personal.",
	"Ось загальна дорожня карта ресурсів для людей з ампутацією в Україні. Пройдіть оцінювання, щоб персоналізувати її.",
}

func summaryFor(stage Stage) bilingual {
	if s, ok := summaries[stage]; ok {
		return s
	}
	return defaultSummary
}

var timelines = map[Stage]string{
	StagePreSurgical:            "3-6 months after surgery to initial prosthetic fitting",
	StageAcutePostSurgical:      "2-6 months to prosthetic fitting (wound healing required first)",
	StageInPatientPostSurgical:  "2-4 months to prosthetic fitting",
	StageRehabilitation:         "1-3 months to prosthetic fitting",
	StagePreProsthetic:          "2-6 weeks to prosthetic fitting",
	StageProstheticFitting:      "1-3 months of fitting and adjustments",
	StageProstheticTraining:     "3-6 months of training to full independence",
	StageCommunityReintegration: "Ongoing: regular check-ups and socket replacement every 2-3 years",
}

// DefaultTimeline is used for stages outside the table.
const DefaultTimeline = "Timeline depends on your recovery stage. Complete the assessment for a personalized estimate."

func timelineFor(stage Stage) string {
	if t, ok := timelines[stage]; ok {
		return t
	}
	return DefaultTimeline
}

var beforeFitting = map[Stage]bool{
	StagePreSurgical:           true,
	StageAcutePostSurgical:     true,
	StageInPatientPostSurgical: true,
	StageRehabilitation:        true,
	StagePreProsthetic:         true,
}

var assistiveMessages = map[AmputationType]string{
	AmputationLowerLimb: "Until your prosthesis is ready, ask about a wheelchair, crutches or a walker. Mobility aids are available through the state assistive devices program.",
	AmputationUpperLimb: "Until your prosthesis is ready, daily-living aids such as adapted cutlery, button hooks and one-handed tools can make everyday tasks easier.",
}

func assistiveMessageFor(stage Stage, t AmputationType) string {
	if !beforeFitting[stage] {
		return ""
	}
	return assistiveMessages[t]
}

// showsManufacturers is the set of stages that get the manufacturers section.
var showsManufacturers = map[Stage]bool{
	StagePreProsthetic:          true,
	StageProstheticFitting:      true,
	StageProstheticTraining:     true,
	StageCommunityReintegration: true,
}

// Section ids.
const (
	SectionNextSteps     = "next-steps"
	SectionMedical       = "medical"
	SectionManufacturers = "prosthetics"
	SectionSupport       = "support"
	SectionNGO           = "ngo"
	SectionIDImmediate   = "immediate"
	SectionFunding       = "funding"
)

func nextStepsUrgency(u UrgencyLevel) SectionUrgency {
	switch u {
	case UrgencyCritical:
		return SectionImmediate
	case UrgencyHigh, UrgencyModerate:
		return SectionSoon
	default:
		return SectionOngoing
	}
}
