// Package advisor implements the deterministic advice engine: keyword
// classification of the student's profile and message, and template
// composition of the reply from the knowledge tables.
package advisor

import (
	"strings"

	"github.com/astralabs/astra-advisor-go/internal/knowledge"
)

// strengthRules and weaknessRules are ordered: detected categories come
// back in rule order, and the greeting only uses the first two.
var strengthRules = []struct {
	category string
	keywords []string
}{
	{"leadership", []string{"leader", "president", "captain", "founder"}},
	{"academic", []string{"grade", "gpa", "academic", "class rank"}},
	{"creative", []string{"creative", "art", "music", "design", "writing"}},
	{"athletic", []string{"sport", "athletic", "varsity", "team"}},
	{"service", []string{"service", "volunteer", "community", "nonprofit"}},
}

var weaknessRules = []struct {
	category string
	keywords []string
}{
	{"grades", []string{"grade", "gpa", "academic"}},
	{"testing", []string{"sat", "act", "test", "score"}},
	{"extracurriculars", []string{"extracurricular", "activity", "club"}},
	{"essays", []string{"essay", "writing", "write"}},
	{"recommendations", []string{"recommendation", "teacher", "relationship"}},
}

// DetectMajorCategory returns the ID of the first major category whose
// keyword appears in any of the intended majors. Matching is
// case-insensitive substring containment. Falls back to stem_general.
func DetectMajorCategory(majors []string) string {
	normalized := lowerAll(majors)

	for _, category := range knowledge.MajorCategories {
		for _, keyword := range category.Keywords {
			if anyContains(normalized, keyword) {
				return category.ID
			}
		}
	}
	return knowledge.DefaultMajorID
}

// DetectUniversityTier returns the ID of the first tier whose keyword
// appears in any of the target universities. Falls back to top30.
func DetectUniversityTier(universities []string) string {
	normalized := lowerAll(universities)

	for _, tier := range knowledge.UniversityTiers {
		for _, keyword := range tier.Keywords {
			if anyContains(normalized, keyword) {
				return tier.ID
			}
		}
	}
	return knowledge.DefaultTierID
}

// DetectTopics returns every topic whose keyword appears in the
// message, in rule order. When nothing matches it returns the general
// topic so the caller always has a topic to respond to.
func DetectTopics(message string) []string {
	lower := strings.ToLower(message)

	var topics []string
	for _, rule := range knowledge.TopicRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				topics = append(topics, rule.Topic)
				break
			}
		}
	}

	if len(topics) == 0 {
		return []string{knowledge.GeneralTopic}
	}
	return topics
}

// DetectStrengthCategories classifies the free-text strengths field.
// Falls back to academic so the greeting always has guidance to offer.
func DetectStrengthCategories(strengths string) []string {
	categories := matchRules(strengths, strengthRules)
	if len(categories) == 0 {
		return []string{"academic"}
	}
	return categories
}

// DetectWeaknessCategories classifies the free-text weaknesses field.
// Unlike strengths there is no fallback: an unclassifiable weakness
// gets no canned recommendations.
func DetectWeaknessCategories(weaknesses string) []string {
	return matchRules(weaknesses, weaknessRules)
}

func matchRules(text string, rules []struct {
	category string
	keywords []string
}) []string {
	lower := strings.ToLower(text)

	var categories []string
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				categories = append(categories, rule.category)
				break
			}
		}
	}
	return categories
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func anyContains(values []string, keyword string) bool {
	for _, v := range values {
		if strings.Contains(v, keyword) {
			return true
		}
	}
	return false
}
