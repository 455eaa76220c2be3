package knowledge

// EssayTopics holds the static essay strategy lists used by the essay
// advice generator.
var EssayTopics = EssayGuidance{
	PersonalStatement: []string{
		"A challenge that shaped who you are today",
		"An intellectual passion that drives your curiosity",
		"A moment that changed your perspective",
		"Your unique background, identity, or experience",
		"A community you belong to and how you contribute",
	},
	SupplementalStrategies: []string{
		"'Why This School': Research specific programs, professors, clubs, and traditions",
		"'Why This Major': Connect your experiences to your academic interests",
		"Activity descriptions: Use active verbs and quantify impact",
		"Short answers: Be concise but memorable",
		"Additional information: Explain any weaknesses without making excuses",
	},
	CommonMistakes: []string{
		"Writing what you think admissions wants to hear",
		"Listing accomplishments instead of telling a story",
		"Being too generic or cliche",
		"Not showing self-reflection and growth",
		"Poor editing and proofreading",
	},
}

// StrengthsGuidance maps a strength category to advice for building on it.
var StrengthsGuidance = map[string][]string{
	"leadership": {
		"Take on higher-level positions (regional, state, national)",
		"Mentor other leaders and build sustainable organizations",
		"Document your impact with numbers and testimonials",
		"Expand leadership to new areas while maintaining depth",
	},
	"academic": {
		"Pursue highest-level competitions (national/international)",
		"Seek research opportunities with mentors",
		"Publish or present your work",
		"Tutor or teach others to demonstrate mastery",
	},
	"creative": {
		"Build a portfolio showcasing your best work",
		"Enter prestigious competitions and exhibitions",
		"Connect creativity to your intended field of study",
		"Create projects that solve real problems",
	},
	"athletic": {
		"Document achievements and statistics",
		"Highlight teamwork and leadership aspects",
		"Connect athletic discipline to other areas of life",
		"Consider recruitment if at competitive level",
	},
	"service": {
		"Scale your impact (more people, larger area)",
		"Take on leadership in service organizations",
		"Connect service to your intended major or career",
		"Document measurable impact and outcomes",
	},
}

// WeaknessesGuidance maps a weakness category to advice for addressing it.
var WeaknessesGuidance = map[string][]string{
	"grades": {
		"Focus on improving trends (upward trajectory matters)",
		"Take on challenging courses to show capability",
		"Get tutoring or extra help in weak subjects",
		"Explain circumstances in applications if relevant",
	},
	"testing": {
		"Consider test-optional schools if appropriate",
		"Take extensive prep courses and practice tests",
		"Try both SAT and ACT to find your strength",
		"Retake tests strategically (2-3 attempts maximum)",
	},
	"extracurriculars": {
		"It's not too late to start something meaningful",
		"Focus on depth over breadth in remaining time",
		"Create independent projects in your interest area",
		"Quality of involvement matters more than quantity",
	},
	"essays": {
		"Start writing early and revise extensively",
		"Get feedback from teachers, counselors, and peers",
		"Read successful essay examples",
		"Work with an essay coach if needed",
	},
	"recommendations": {
		"Build relationships with 2-3 teachers now",
		"Participate actively in classes",
		"Attend office hours and ask thoughtful questions",
		"Provide recommenders with detailed information about yourself",
	},
}
