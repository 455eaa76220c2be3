package knowledge

// MajorCategories lists every supported field of study. Order matters:
// classification walks the slice and returns the first category whose
// keyword appears in the student's intended majors, so stem_general
// stays last as the broadest bucket.
var MajorCategories = []MajorCategory{
	{
		ID:       "cs",
		Keywords: []string{"computer science", "cs", "software", "programming", "coding", "ai", "machine learning", "artificial intelligence", "data science"},
		Courses: []string{
			"AP Computer Science A (essential)",
			"AP Computer Science Principles",
			"AP Calculus BC",
			"AP Statistics",
			"Linear Algebra (if available)",
			"Data Structures & Algorithms (online/dual enrollment)",
		},
		Competitions: []string{
			"USACO (USA Computing Olympiad) - Bronze to Platinum divisions",
			"Google Code Jam / Kick Start",
			"Meta Hacker Cup",
			"Codeforces / LeetCode competitive programming",
			"Kaggle competitions for data science",
			"Congressional App Challenge",
			"Hack Club events and hackathons",
		},
		Research: []string{
			"Build original projects: apps, websites, games, or AI tools",
			"Contribute to open-source projects on GitHub",
			"Research with university professors in AI/ML",
			"Submit to ISEF/Regeneron with a CS project",
			"Develop a research paper for publication",
		},
		Extracurriculars: []string{
			"Start or lead a coding club at school",
			"Mentor younger students in programming",
			"Create a tech startup or nonprofit",
			"Build apps that solve real community problems",
			"Participate in hackathons and win awards",
		},
		SummerPrograms: []string{
			"Google CSSI (Computer Science Summer Institute)",
			"MIT PRIMES / RSI (Research Science Institute)",
			"Stanford SIMR or COSMOS",
			"Carnegie Mellon's Summer Academy for Math and Science",
			"University research internships (cold email professors)",
		},
		Skills: []string{
			"Python, Java, C++ (at least 2 languages)",
			"Web development (HTML/CSS/JS, React)",
			"Version control with Git/GitHub",
			"Problem-solving and algorithmic thinking",
			"Machine learning basics (TensorFlow, PyTorch)",
		},
	},
	{
		ID:       "engineering",
		Keywords: []string{"engineering", "mechanical", "electrical", "civil", "aerospace", "biomedical", "chemical", "robotics"},
		Courses: []string{
			"AP Physics C: Mechanics & E&M",
			"AP Calculus BC",
			"AP Chemistry",
			"Engineering/Robotics electives",
			"CAD/3D modeling courses",
		},
		Competitions: []string{
			"FIRST Robotics (FRC/FTC)",
			"Science Olympiad (engineering events)",
			"Physics Olympiad (F=ma, USAPhO)",
			"TSA (Technology Student Association)",
			"Rube Goldberg Machine Contest",
			"Model bridge building competitions",
		},
		Research: []string{
			"University lab research in mechanical/electrical engineering",
			"Build functional prototypes solving real problems",
			"Patent a novel invention or design",
			"Submit to science fairs with engineering projects",
			"Publish research in engineering journals",
		},
		Extracurriculars: []string{
			"Lead a FIRST Robotics team",
			"Engineering/STEM tutoring",
			"Build prosthetics for underserved communities",
			"Drone club, 3D printing club",
			"Community engineering projects",
		},
		SummerPrograms: []string{
			"MIT Women's Technology Program",
			"Stanford Engineering Academy",
			"Cooper Union Summer STEM",
			"Notre Dame iSURE",
			"Carnegie Mellon SAMS",
		},
		Skills: []string{
			"CAD software (SolidWorks, AutoCAD, Fusion 360)",
			"3D printing and prototyping",
			"Arduino/Raspberry Pi programming",
			"Basic circuit design",
			"Technical documentation and design reports",
		},
	},
	{
		ID:       "premed",
		Keywords: []string{"medicine", "pre-med", "premed", "biology", "neuroscience", "public health", "healthcare", "doctor", "physician"},
		Courses: []string{
			"AP Biology",
			"AP Chemistry",
			"AP Physics 1 & 2 (or C)",
			"AP Psychology",
			"Anatomy & Physiology",
			"Research Methods/Statistics",
		},
		Competitions: []string{
			"Science Olympiad (biology/health events)",
			"HOSA - Future Health Professionals",
			"Biology Olympiad (USABO)",
			"Brain Bee (neuroscience)",
			"Health Career Connection essays",
		},
		Research: []string{
			"Clinical shadowing (100+ hours)",
			"Biomedical research with university professors",
			"Hospital volunteer work",
			"Public health research projects",
			"ISEF projects in biology/medicine",
		},
		Extracurriculars: []string{
			"Health-focused community service",
			"Medical mission trips (if available)",
			"Start a health education initiative",
			"Red Cross volunteering",
			"Peer health counseling",
		},
		SummerPrograms: []string{
			"NIH Summer Internship Program",
			"Stanford Institutes of Medicine Summer",
			"NSLC programs in medicine",
			"Local hospital volunteer programs",
			"University biomedical research REUs",
		},
		Skills: []string{
			"Laboratory techniques",
			"Patient communication",
			"Medical terminology",
			"Research methodology",
			"Empathy and bedside manner",
		},
	},
	{
		ID:       "business",
		Keywords: []string{"business", "economics", "finance", "marketing", "entrepreneurship", "management", "accounting"},
		Courses: []string{
			"AP Economics (Micro & Macro)",
			"AP Statistics",
			"AP Calculus (AB or BC)",
			"Business/Entrepreneurship electives",
			"Accounting courses",
		},
		Competitions: []string{
			"DECA (marketing, finance, hospitality)",
			"FBLA (Future Business Leaders)",
			"Economics Challenge (Fed Challenge)",
			"Diamond Challenge (entrepreneurship)",
			"Stock market simulations",
		},
		Research: []string{
			"Start and run an actual business",
			"Economic research paper",
			"Market analysis projects",
			"Social entrepreneurship venture",
			"Business case competitions",
		},
		Extracurriculars: []string{
			"Start a business or social enterprise",
			"Investment club leadership",
			"Junior Achievement programs",
			"Nonprofit management",
			"Event planning and management",
		},
		SummerPrograms: []string{
			"Wharton LBW/Moneyball Academy",
			"LaunchX (MIT entrepreneurship)",
			"NSLC Business & Entrepreneurship",
			"Summer business internships",
			"Yale Young Global Scholars",
		},
		Skills: []string{
			"Financial modeling (Excel)",
			"Public speaking and pitching",
			"Market research",
			"Leadership and team management",
			"Networking and communication",
		},
	},
	{
		ID:       "humanities",
		Keywords: []string{"english", "history", "philosophy", "political science", "international relations", "sociology", "anthropology", "literature", "writing", "journalism"},
		Courses: []string{
			"AP English Literature & Language",
			"AP US History / World History / European History",
			"AP Government & Politics",
			"AP Psychology",
			"Foreign languages (AP level)",
		},
		Competitions: []string{
			"Speech and Debate (NFL/NSDA)",
			"Model UN",
			"Scholastic Art & Writing Awards",
			"Essay competitions (JFK Library, etc.)",
			"National History Day",
		},
		Research: []string{
			"Original historical research with archives",
			"Political analysis and policy papers",
			"Publish articles in school/local newspapers",
			"Literary magazine editing",
			"Documentary filmmaking",
		},
		Extracurriculars: []string{
			"Debate team captain/leadership",
			"Model UN secretary-general",
			"School newspaper editor-in-chief",
			"Literary magazine founder/editor",
			"Community advocacy campaigns",
		},
		SummerPrograms: []string{
			"Telluride Association Summer Program (TASP)",
			"Stanford Humanities Institute",
			"Oxbridge Academic Programs",
			"Georgetown summer programs",
			"Journalism/writing workshops",
		},
		Skills: []string{
			"Research and analysis",
			"Academic writing",
			"Public speaking",
			"Critical thinking",
			"Foreign language proficiency",
		},
	},
	{
		ID:       "stem_general",
		Keywords: []string{"math", "mathematics", "physics", "chemistry", "science", "stem"},
		Courses: []string{
			"AP Calculus BC",
			"AP Physics C (both)",
			"AP Chemistry",
			"Multivariable Calculus / Linear Algebra",
			"AP Statistics",
		},
		Competitions: []string{
			"AMC/AIME/USAMO (math)",
			"USAPhO (physics)",
			"USNCO (chemistry)",
			"Science Olympiad",
			"Putnam preparation",
		},
		Research: []string{
			"Original research with university mentors",
			"Submit to ISEF/Regeneron",
			"Theoretical or experimental projects",
			"Mathematical proofs and papers",
			"Cross-disciplinary research",
		},
		Extracurriculars: []string{
			"Math/Science tutoring",
			"Science Olympiad team leadership",
			"Math circle facilitation",
			"STEM outreach to underserved communities",
			"Science YouTube channel or blog",
		},
		SummerPrograms: []string{
			"RSI (Research Science Institute)",
			"PROMYS / Ross Mathematics Program",
			"SSP (Summer Science Program)",
			"Canada/USA Mathcamp",
			"MIT PRIMES",
		},
		Skills: []string{
			"Advanced problem-solving",
			"Mathematical proof writing",
			"Lab techniques",
			"Scientific writing",
			"Programming for computation",
		},
	},
}
