package knowledge

// GradePlans maps a grade level to its recommended plan. Lookup is by
// key, so a plain map is fine here; unknown levels fall back to
// DefaultGradeLevel via GradePlanFor.
var GradePlans = map[string]GradePlan{
	"grade-9": {
		Priorities: []string{
			"Focus on building strong academic foundations",
			"Explore 2-3 potential interest areas through clubs and activities",
			"Start developing core skills in your areas of interest",
			"Build relationships with teachers who can become mentors",
		},
		Courses: []string{
			"Take honors-level courses in your strongest subjects",
			"Start a foreign language if you haven't already",
			"Consider taking Algebra II or Geometry (accelerated math track)",
			"Explore electives aligned with potential interests",
		},
		Activities: []string{
			"Join 2-3 clubs to explore interests (don't overcommit yet)",
			"Start learning skills outside school (coding, music, art)",
			"Consider joining a sport or physical activity",
			"Begin community service in areas you care about",
		},
		Timeline: []string{
			"Fall: Explore clubs and activities at school",
			"Winter: Settle into 2-3 consistent commitments",
			"Spring: Reflect on what you enjoyed most",
			"Summer: Take a class, start a project, or explore a new skill",
		},
	},
	"grade-10": {
		Priorities: []string{
			"Begin narrowing focus to 1-2 primary interest areas ('spike' development)",
			"Take leadership roles in activities you've committed to",
			"Start preparing for standardized tests (PSAT, SAT/ACT)",
			"Begin building a portfolio of work in your interest area",
		},
		Courses: []string{
			"Start taking AP courses in your strongest subjects (2-3 APs)",
			"Continue accelerated math track (Pre-Calculus)",
			"Add subject-specific APs aligned with intended major",
			"Consider dual enrollment for advanced courses",
		},
		Activities: []string{
			"Take on leadership roles (vice president, team captain)",
			"Start an independent project aligned with your interests",
			"Compete in regional/state-level competitions",
			"Build connections with mentors in your field",
		},
		Timeline: []string{
			"Fall: Increase commitment to primary activities, take PSAT",
			"Winter: Begin SAT/ACT prep, work on independent projects",
			"Spring: Compete in competitions, seek summer opportunities",
			"Summer: Research program, internship, or intensive project",
		},
	},
	"grade-11": {
		Priorities: []string{
			"This is the most critical year for college admissions",
			"Maximize your spike with significant achievements",
			"Take most challenging course load",
			"Excel on standardized tests (SAT/ACT, AP exams)",
		},
		Courses: []string{
			"Take 4-6 AP courses (focus on core + major-related)",
			"AP Calculus BC if STEM-focused",
			"Continue challenging course load across subjects",
			"Consider research methodology or advanced electives",
		},
		Activities: []string{
			"Achieve top leadership positions (president, founder, captain)",
			"Win significant awards in competitions",
			"Complete or publish research",
			"Create tangible impact in your community",
		},
		Timeline: []string{
			"Fall: SAT/ACT prep and first attempts, maximum activities",
			"Winter: Competition season, finalize research projects",
			"Spring: AP exams, final SAT/ACT attempts, college list research",
			"Summer: Prestigious program, internship, or capstone project",
		},
	},
	"grade-12": {
		Priorities: []string{
			"Focus on college applications (essays are crucial)",
			"Maintain strong grades (senior slump hurts)",
			"Continue leadership and activities through fall",
			"Demonstrate continued growth and commitment",
		},
		Courses: []string{
			"Continue rigorous course load (don't drop down)",
			"Take APs in new areas to show intellectual breadth",
			"Consider college-level courses (dual enrollment)",
			"Maintain GPA above 3.9 unweighted",
		},
		Activities: []string{
			"Complete any ongoing projects or research",
			"Maintain leadership roles through application season",
			"Win final awards and recognition",
			"Mentor younger students in your areas of expertise",
		},
		Timeline: []string{
			"August-October: Complete Common App, early applications",
			"November: Submit early decision/action applications",
			"December-January: Regular decision applications",
			"Spring: Make final decision, senior capstone activities",
		},
	},
	"gap-year": {
		Priorities: []string{
			"Create meaningful experiences that strengthen your profile",
			"Address any weaknesses from high school",
			"Develop maturity and unique perspectives",
			"Build skills and experiences relevant to your goals",
		},
		Courses: []string{
			"Consider community college courses in weak areas",
			"Take online courses from prestigious universities",
			"Learn new languages or technical skills",
			"Obtain relevant certifications",
		},
		Activities: []string{
			"Internship or work experience in your field",
			"Significant volunteer or service project",
			"Travel with purpose (language immersion, cultural exchange)",
			"Start a business or major independent project",
		},
		Timeline: []string{
			"Plan activities that build on your existing profile",
			"Document everything for updated applications",
			"Stay connected with recommenders",
			"Apply to schools during your gap year",
		},
	},
	"transfer": {
		Priorities: []string{
			"Achieve the highest possible GPA at current institution",
			"Build relationships with professors for recommendations",
			"Continue meaningful extracurricular involvement",
			"Articulate clear, compelling reasons for transfer",
		},
		Courses: []string{
			"Take the most rigorous courses available",
			"Focus on major-related prerequisites",
			"Achieve A's in all courses if possible",
			"Consider research opportunities with faculty",
		},
		Activities: []string{
			"Get involved in campus organizations",
			"Take on leadership roles quickly",
			"Conduct research with professors",
			"Continue high school activities if relevant",
		},
		Timeline: []string{
			"Fall: Research target schools, build relationships",
			"Winter: Request recommendations, draft essays",
			"Spring: Submit applications by deadlines",
			"Summer: Prepare for transition if admitted",
		},
	},
}
