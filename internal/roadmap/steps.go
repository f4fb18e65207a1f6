package roadmap

var veteranStep = RoadmapStep{
	Title:       "Connect with veteran assistance",
	Description: "Register with the Ministry of Veterans Affairs to access veteran status, rehabilitation programs and prosthetic funding reserved for service members.",
	Link:        "https://mva.gov.ua",
	LinkLabel:   "Ministry of Veterans Affairs",
}

// veteranStepIndex is where the veteran step goes for military patients.
// Stages without an entry never get it.
var veteranStepIndex = map[Stage]int{
	StageAcutePostSurgical:      2,
	StageInPatientPostSurgical:  1,
	StageCommunityReintegration: 0,
}

var stageSteps = map[Stage][]RoadmapStep{
	StagePreSurgical: {
		{Title: "Discuss the amputation level with your surgeon", Description: "Ask how the chosen level affects future prosthetic options and whether limb-saving length is possible."},
		{Title: "Start pre-surgical conditioning", Description: "Strengthen your core, arms and the unaffected limb. Good conditioning shortens rehabilitation after surgery."},
		{Title: "Gather your documents", Description: "Collect your passport, tax number and medical records so that funding and disability applications can start right after surgery."},
		{Title: "Talk to someone who has been through it", Description: "A peer who lives with an amputation can answer practical questions your medical team may not cover."},
	},
	StageAcutePostSurgical: {
		{Title: "Follow wound and pain care instructions", Description: "Keep the wound clean and report fever, swelling or unusual pain to your care team at once."},
		{Title: "Protect joint mobility", Description: "Position the residual limb as instructed and avoid long periods with the joint bent to prevent contractures."},
		{Title: "Ask about phantom limb pain", Description: "Phantom sensations are common. Mirror therapy and medication can help, so mention them early."},
		{Title: "Request your discharge epicrisis", Description: "The discharge summary is required for every later referral, so ask for a copy before you leave the hospital."},
	},
	StageInPatientPostSurgical: {
		{Title: "Begin in-patient rehabilitation", Description: "Work with physical and occupational therapists on transfers, balance and daily activities."},
		{Title: "Start shaping the residual limb", Description: "Compression bandaging or a shrinker sock prepares the limb for a socket."},
		{Title: "Plan your discharge", Description: "Check whether your home needs ramps, rails or bathroom adaptations before you return."},
		{Title: "Apply for a disability assessment", Description: "The disability status issued after assessment opens access to state prosthetic and rehabilitation programs.", Link: "https://www.msp.gov.ua", LinkLabel: "Ministry of Social Policy"},
	},
	StageRehabilitation: {
		{Title: "Keep up regular physical therapy", Description: "Consistent strength and range-of-motion work decides how well you will use a prosthesis."},
		{Title: "Apply for state prosthetic funding", Description: "Submit your application for state-funded prosthetics through the social protection office.", Link: "https://www.msp.gov.ua", LinkLabel: "Ministry of Social Policy"},
		{Title: "Look after your mental health", Description: "Psychological support during rehabilitation lowers the risk of depression and helps you stay motivated."},
		{Title: "Choose a prosthetic center", Description: "Compare centers near you by experience with your amputation level and waiting time."},
	},
	StagePreProsthetic: {
		{Title: "Get a prosthetic referral", Description: "Ask your rehabilitation doctor for a referral that specifies the prosthesis type you need."},
		{Title: "Visit prosthetic centers", Description: "Meet prosthetists, see the devices they fit and ask how many patients like you they have treated."},
		{Title: "Prepare the residual limb", Description: "Keep the skin healthy and the limb volume stable so the first socket fits well."},
		{Title: "Register in the state prosthetics program", Description: "Make sure your application is registered so the fitting can be funded."},
	},
	StageProstheticFitting: {
		{Title: "Attend casting and test socket sessions", Description: "Several test sockets are normal. Each one brings the fit closer to what you need."},
		{Title: "Report any discomfort", Description: "Pressure points, redness or pain mean the socket needs adjusting. Tell your prosthetist early."},
		{Title: "Practice putting the prosthesis on and off", Description: "Learn the correct donning and doffing routine and how to manage socks and liners."},
		{Title: "Keep records of your fitting", Description: "Save the device passport and warranty documents for repairs and future replacements."},
	},
	StageProstheticTraining: {
		{Title: "Complete gait or function training", Description: "Training with a therapist teaches you to use the prosthesis safely and efficiently."},
		{Title: "Build wearing tolerance gradually", Description: "Increase wearing time step by step and check your skin after each session."},
		{Title: "Practice daily tasks", Description: "Use the prosthesis for real activities at home so that it becomes part of your routine."},
		{Title: "Schedule follow-up visits", Description: "Your limb changes during the first year. Regular checks keep the socket fitting well."},
	},
	StageCommunityReintegration: {
		{Title: "Explore employment and retraining", Description: "The employment service offers retraining and job placement for people with disabilities.", Link: "https://www.dcz.gov.ua", LinkLabel: "State Employment Service"},
		{Title: "Join adaptive sports or peer groups", Description: "Sports and peer communities help you stay active and connected."},
		{Title: "Plan prosthesis maintenance", Description: "Know where to go for repairs and when you are eligible for a replacement device."},
		{Title: "Review your benefits", Description: "Check that you receive every benefit and compensation you are entitled to."},
	},
}

var fallbackSteps = []RoadmapStep{
	{Title: "Complete your assessment", Description: "Tell us your current recovery stage to get steps tailored to you."},
	{Title: "Talk to your doctor", Description: "Your medical team can explain what comes next in your recovery."},
	{Title: "Explore available resources", Description: "Browse the resource directory for programs, centers and support services."},
}

// StepsForStage returns the next-action steps for a stage. Military patients
// get the veteran step in stages that have a slot for it. IDs run 1..N.
func StepsForStage(stage Stage, status Status) []RoadmapStep {
	base, ok := stageSteps[stage]
	if !ok {
		base = fallbackSteps
	}
	steps := make([]RoadmapStep, 0, len(base)+1)
	steps = append(steps, base...)
	if idx, ok := veteranStepIndex[stage]; ok && status == StatusMilitary {
		if idx > len(steps) {
			idx = len(steps)
		}
		steps = append(steps, RoadmapStep{})
		copy(steps[idx+1:], steps[idx:])
		steps[idx] = veteranStep
	}
	for i := range steps {
		steps[i].ID = i + 1
	}
	return steps
}
