// Package knowledge holds the static advisory tables: major categories,
// grade-level plans, university tiers, essay guidance, and topic keyword
// rules. Classification tables are ordered slices because matching is
// first-match-wins; changing entry order changes classification results.
package knowledge

// MajorCategory describes one field of study and the recommendations
// associated with it.
type MajorCategory struct {
	ID               string
	Keywords         []string
	Courses          []string
	Competitions     []string
	Research         []string
	Extracurriculars []string
	SummerPrograms   []string
	Skills           []string
}

// GradePlan describes recommendations for one grade level.
type GradePlan struct {
	Priorities []string
	Courses    []string
	Activities []string
	Timeline   []string
}

// UniversityTier describes one selectivity band of target schools.
type UniversityTier struct {
	ID           string
	Keywords     []string
	Expectations []string
	Tips         []string
}

// TopicRule maps a conversation topic to the keywords that trigger it.
type TopicRule struct {
	Topic    string
	Keywords []string
}

// EssayGuidance groups the static essay advice lists.
type EssayGuidance struct {
	PersonalStatement      []string
	SupplementalStrategies []string
	CommonMistakes         []string
}

// DefaultMajorID is the category used when no major keyword matches.
const DefaultMajorID = "stem_general"

// DefaultTierID is the tier used when no university keyword matches.
const DefaultTierID = "top30"

// DefaultGradeLevel is the plan used for unknown grade levels.
const DefaultGradeLevel = "grade-11"

// MajorByID returns the major category with the given ID, or the
// default category when the ID is unknown.
func MajorByID(id string) MajorCategory {
	for _, m := range MajorCategories {
		if m.ID == id {
			return m
		}
	}
	return MajorByID(DefaultMajorID)
}

// TierByID returns the university tier with the given ID, or the
// default tier when the ID is unknown.
func TierByID(id string) UniversityTier {
	for _, t := range UniversityTiers {
		if t.ID == id {
			return t
		}
	}
	return TierByID(DefaultTierID)
}

// GradePlanFor returns the plan for the given grade level, falling back
// to the default level for unknown values.
func GradePlanFor(level string) GradePlan {
	if p, ok := GradePlans[level]; ok {
		return p
	}
	return GradePlans[DefaultGradeLevel]
}
