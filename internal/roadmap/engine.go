package roadmap

// sectionCap bounds every section's recommendation list.
const sectionCap = 4

// BuildRoadmap derives the full roadmap from the answers and the catalog.
// It does no I/O and never fails; values outside the enum domains fall back
// to the default table entries.
func BuildRoadmap(answers AssessmentAnswers, catalog Catalog) PersonalizedRoadmap {
	stage := answers.CurrentStage
	urgency := urgencyFor(stage)
	summary := summaryFor(stage)

	sections := make([]RoadmapSection, 0, 5)
	sections = append(sections, RoadmapSection{
		ID:              SectionNextSteps,
		Title:           "Next Steps",
		TitleUa:         "Наступні кроки",
		Icon:            "ListChecks",
		Urgency:         nextStepsUrgency(urgency),
		Recommendations: []PersonalizedRecommendation{},
		Steps:           StepsForStage(stage, answers.Status),
	})

	medicalUrgency := SectionSoon
	if stage == StageAcutePostSurgical || stage == StageInPatientPostSurgical {
		medicalUrgency = SectionImmediate
	}
	sections = append(sections, RoadmapSection{
		ID:              SectionMedical,
		Title:           "Medical Care & Rehabilitation",
		TitleUa:         "Медична допомога та реабілітація",
		Icon:            "Stethoscope",
		Urgency:         medicalUrgency,
		Recommendations: top(ScoreCategory(catalog.MedicalFacilities(), answers, CategoryMedical), sectionCap),
	})

	if showsManufacturers[stage] {
		manufacturersUrgency := SectionOngoing
		if stage == StageProstheticFitting || stage == StageProstheticTraining {
			manufacturersUrgency = SectionSoon
		}
		sections = append(sections, RoadmapSection{
			ID:              SectionManufacturers,
			Title:           "Prosthetic Manufacturers",
			TitleUa:         "Виробники протезів",
			Icon:            "Cog",
			Urgency:         manufacturersUrgency,
			Recommendations: top(ScoreCategory(catalog.Manufacturers, answers, CategoryProsthetics), sectionCap),
		})
	}

	support := RoadmapSection{
		ID:              SectionSupport,
		Title:           "Support & Community",
		TitleUa:         "Підтримка та спільнота",
		Icon:            "Users",
		Urgency:         SectionOngoing,
		Recommendations: top(ScoreCategory(catalog.SupportServices, answers, CategorySupport), sectionCap),
	}
	if answers.Status == StatusMilitary {
		support.Title = "Veteran & Support Services"
		support.TitleUa = "Ветеранські та допоміжні послуги"
		support.Icon = "Shield"
		support.Urgency = SectionSoon
	}
	sections = append(sections, support)

	sections = append(sections, RoadmapSection{
		ID:              SectionNGO,
		Title:           "NGOs & International Aid",
		TitleUa:         "НУО та міжнародна допомога",
		Icon:            "Heart",
		Urgency:         SectionOngoing,
		Recommendations: top(ScoreCategory(catalog.NGOs, answers, CategoryNGO), sectionCap),
	})

	return PersonalizedRoadmap{
		UrgencyLevel:            urgency,
		Summary:                 summary.en,
		SummaryUa:               summary.ua,
		Sections:                sections,
		ProstheticOptions:       optionsFor(answers.AmputationType, answers.AmputationLevel),
		EstimatedTimeline:       timelineFor(stage),
		StatusMessage:           statusMessageFor(stage),
		AssistiveDevicesMessage: assistiveMessageFor(stage, answers.AmputationType),
	}
}
