package roadmap

// Unrecognized lists the answer fields whose non-empty values fall outside
// their enum domain, in field order. A level that belongs to the other limb
// group is reported as amputationLevel. Region ids are checked against the
// region table.
func Unrecognized(answers AssessmentAnswers) []string {
	var fields []string
	if answers.Status != "" && answers.Status != StatusMilitary && answers.Status != StatusCivilian {
		fields = append(fields, "status")
	}
	if answers.PreSurgeryType != "" && answers.PreSurgeryType != PreSurgeryPlanned && answers.PreSurgeryType != PreSurgeryEmergency {
		fields = append(fields, "preSurgeryType")
	}
	levels, typeKnown := LevelsByType[answers.AmputationType]
	if answers.AmputationType != "" && !typeKnown {
		fields = append(fields, "amputationType")
	}
	if answers.AmputationLevel != "" && !levelKnown(answers.AmputationLevel, levels, typeKnown) {
		fields = append(fields, "amputationLevel")
	}
	if answers.CurrentStage != "" && !IsKnownStage(answers.CurrentStage) {
		fields = append(fields, "currentStage")
	}
	if answers.Region != "" && !IsKnownRegion(answers.Region) {
		fields = append(fields, "region")
	}
	return fields
}

func levelKnown(level AmputationLevel, levels []AmputationLevel, typeKnown bool) bool {
	if !typeKnown {
		for _, all := range LevelsByType {
			for _, l := range all {
				if l == level {
					return true
				}
			}
		}
		return false
	}
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

// IsKnownStage reports whether s is one of the recovery stages.
func IsKnownStage(s Stage) bool {
	for _, st := range Stages {
		if st == s {
			return true
		}
	}
	return false
}

// LevelBelongsTo reports whether level is valid for the amputation type.
func LevelBelongsTo(t AmputationType, level AmputationLevel) bool {
	for _, l := range LevelsByType[t] {
		if l == level {
			return true
		}
	}
	return false
}
