package agent

// profiles is the static agent table, in classification tie-break order.
var profiles = []Profile{
	{
		Kind:        KindEmail,
		Name:        "Email Compose Agent",
		Description: "Composes professional academic emails",
		Keywords: []string{
			"email", "compose", "write", "draft", "send", "message",
			"professor", "instructor", "faculty", "reply", "respond",
			"extension", "request", "meeting", "appointment",
		},
		Priority: 3,
		Prompt:   emailPrompt,
		RequiredInputs: []RequiredInput{
			{Key: "recipient_type", Label: "Recipient Type", Question: "Who is the email for (professor, advisor, department office, ...)?"},
			{Key: "purpose", Label: "Purpose", Question: "What is the purpose of the email?"},
			{Key: "details", Label: "Details", Question: "What details should the email include?"},
			{Key: "tone", Label: "Tone", Question: "What tone should the email have (formal, friendly, ...)?"},
		},
		MinReplyLen:     50,
		IncompleteReply: "I apologize, but I couldn't generate a complete email. Please try again with more specific details.",
		SectionTitle:    "Composed Email",
		Footer:          "Note: This is a template email. Please review and modify it according to your specific needs before sending.",
	},
	{
		Kind:        KindResearch,
		Name:        "Research Paper Agent",
		Description: "Helps with research paper composition and analysis",
		Keywords: []string{
			"research", "paper", "thesis", "dissertation", "study",
			"methodology", "analysis", "literature", "review", "citation",
			"reference", "bibliography", "data", "results", "findings",
		},
		Priority: 3,
		Prompt:   researchPrompt,
		RequiredInputs: []RequiredInput{
			{Key: "paper_topic", Label: "Paper Topic", Question: "What is the topic of your research paper?"},
			{Key: "academic_level", Label: "Academic Level", Question: "What academic level is the paper for (undergraduate, graduate, ...)?"},
			{Key: "paper_length", Label: "Paper Length", Question: "How long should the paper be?"},
			{Key: "requirements", Label: "Requirements", Question: "Are there any specific requirements or guidelines to follow?"},
		},
		MinReplyLen:     100,
		IncompleteReply: "I apologize, but I couldn't generate complete research paper guidance. Please try again with more specific details.",
		SectionTitle:    "Research Paper Guidance",
		Footer:          "Note: This guidance is based on standard academic requirements. Please verify specific requirements with your instructor or department guidelines.",
	},
	{
		Kind:        KindAcademic,
		Name:        "Academic Concepts Agent",
		Description: "Explains academic concepts and theories",
		Keywords: []string{
			"explain", "concept", "theory", "definition", "understand",
			"learn", "topic", "subject", "course", "material", "example",
			"homework", "assignment", "problem", "solution",
		},
		Priority: 2,
		Prompt:   academicPrompt,
		RequiredInputs: []RequiredInput{
			{Key: "subject_area", Label: "Subject Area", Question: "Which subject area is the concept from?"},
			{Key: "concept", Label: "Concept", Question: "Which concept would you like explained?"},
			{Key: "difficulty_level", Label: "Difficulty Level", Question: "At what level should the explanation be (introductory, intermediate, advanced)?"},
			{Key: "prerequisites", Label: "Prerequisites", Question: "What related material are you already familiar with?"},
		},
		MinReplyLen:     50,
		IncompleteReply: "I apologize, but I couldn't generate a complete explanation. Please try again with more specific details.",
		SectionTitle:    "Concept Explanation",
		Footer:          "Note: This explanation is tailored to your specified difficulty level. If you need more or less detail, please let me know.",
	},
	{
		Kind:        KindRedirect,
		Name:        "Redirect Agent",
		Description: "Redirects users to appropriate UNT resources",
		Keywords: []string{
			"where", "find", "location", "website", "link", "resource",
			"information", "contact", "office", "department", "building",
			"service", "help", "support", "assistance",
		},
		Priority: 2,
		Prompt:   redirectPrompt,
		RequiredInputs: []RequiredInput{
			{Key: "resource_type", Label: "Resource Type", Question: "What kind of resource are you looking for?"},
			{Key: "specific_need", Label: "Specific Need", Question: "What specifically do you need help with?"},
			{Key: "department", Label: "Department", Question: "Which department or office is this related to?"},
		},
		MinReplyLen:     50,
		IncompleteReply: "I apologize, but I couldn't generate complete resource information. Please try again with more specific details.",
		SectionTitle:    "UNT Resource Information",
		Footer:          "Note: Please verify the availability and specific requirements of these resources by visiting the provided links or contacting the respective departments.",
	},
	{
		Kind:        KindGeneral,
		Name:        "General UNT Assistant",
		Description: "Provides general information about University of North Texas",
		Keywords: []string{
			"unt", "university", "campus", "student", "program",
			"admission", "enrollment", "registration", "general",
			"information", "question", "help",
		},
		Priority: 0,
		Prompt:   basePrompt,
	},
}

// Profiles returns the full agent table in declared order. The returned
// slice is shared and must be treated as read-only.
func Profiles() []Profile {
	return profiles
}

// ProfileFor looks up the profile of an agent kind.
func ProfileFor(kind Kind) (Profile, bool) {
	for _, p := range profiles {
		if p.Kind == kind {
			return p, true
		}
	}
	return Profile{}, false
}
