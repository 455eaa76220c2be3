package knowledge

// UniversityTiers lists the selectivity bands, most selective first.
// Tier detection walks the slice in order and returns the first tier
// whose keyword appears in the student's target schools.
var UniversityTiers = []UniversityTier{
	{
		ID:       "ivy_plus",
		Keywords: []string{"harvard", "yale", "princeton", "columbia", "upenn", "penn", "dartmouth", "cornell", "brown", "mit", "stanford", "caltech", "duke", "uchicago", "northwestern"},
		Expectations: []string{
			"Near-perfect academics (top 1-5% of class, 4.0+ weighted GPA)",
			"Exceptional standardized test scores (1550+ SAT, 35+ ACT)",
			"National or international-level achievements in your area of focus",
			"Clear 'spike' that sets you apart from other applicants",
			"Genuine intellectual curiosity demonstrated through projects",
			"Leadership with measurable impact, not just titles",
			"Compelling personal story that shines through essays",
		},
		Tips: []string{
			"Apply Early Decision/Action to maximize chances",
			"Visit campus if possible and engage with current students",
			"Research specific programs, professors, or opportunities at each school",
			"Essays must be exceptional - start early and revise many times",
			"Demonstrate 'fit' by showing you've researched what makes each school unique",
		},
	},
	{
		ID:       "top30",
		Keywords: []string{"vanderbilt", "notre dame", "washu", "emory", "georgetown", "berkeley", "ucla", "usc", "michigan", "virginia", "cmu", "carnegie mellon", "nyu", "tufts", "boston college"},
		Expectations: []string{
			"Strong academics (top 5-10% of class, 3.8+ GPA)",
			"High test scores (1450+ SAT, 32+ ACT)",
			"Regional or state-level achievements",
			"Consistent involvement and growth in activities",
			"Clear passion and direction in applications",
			"Good but not necessarily exceptional essays",
		},
		Tips: []string{
			"Apply to a balanced list of reach, match, and safety schools",
			"Highlight unique experiences or perspectives",
			"Show demonstrated interest through visits, interviews, webinars",
			"Strong letters of recommendation are crucial",
			"Consider school-specific scholarships and honors programs",
		},
	},
	{
		ID:       "canadian_top",
		Keywords: []string{"waterloo", "uwaterloo", "uoft", "toronto", "mcgill", "ubc", "queens", "western"},
		Expectations: []string{
			"Strong academics (90%+ average for competitive programs)",
			"For Waterloo: exceptional math/CS skills and contest results",
			"Strong AIF (Admission Information Form) for Waterloo",
			"Subject-specific requirements vary by program",
			"Extracurriculars valued but less emphasized than US schools",
		},
		Tips: []string{
			"For Waterloo CS/Engineering: Euclid, CCC, and CEMC contests are crucial",
			"Complete the AIF thoughtfully for Waterloo applications",
			"UofT and McGill focus heavily on grades",
			"Apply early as rolling/early admissions can help",
			"Consider co-op programs for career preparation",
		},
	},
}
