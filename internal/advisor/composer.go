package advisor

import (
	"fmt"
	"strings"

	"github.com/astralabs/astra-advisor-go/internal/knowledge"
	"github.com/astralabs/astra-advisor-go/internal/storage"
)

// Reply modes reported alongside the composed text.
const (
	ModeOnboarding = "onboarding"
	ModeGreeting   = "greeting"
)

var gradeLabels = map[string]string{
	"grade-9":  "freshman",
	"grade-10": "sophomore",
	"grade-11": "junior",
	"grade-12": "senior",
	"gap-year": "gap year student",
	"transfer": "transfer student",
}

const onboardingReply = `**Welcome to Astra!**

I'm your AI College Admissions Advisor, ready to help you navigate your journey to top universities.

To give you personalized advice, please complete the onboarding questionnaire with information about:
- Your current grade level
- Intended major(s)
- Target universities
- Current activities and achievements
- Strengths and areas for improvement

Once I know more about you, I can provide tailored recommendations for courses, extracurriculars, competitions, research opportunities, essays, and more!`

// ComposeReply produces the assistant reply for a conversation. It
// returns the reply text and the mode that produced it: "onboarding"
// when no profile exists, "greeting" for the initial greeting, or the
// detected topic otherwise. Same inputs always produce the same reply.
func ComposeReply(history []storage.Message, profile *storage.StudentProfile, initialGreeting bool) (string, string) {
	if profile == nil {
		return onboardingReply, ModeOnboarding
	}

	if initialGreeting {
		return composeGreeting(profile), ModeGreeting
	}

	last, ok := lastUserMessage(history)
	if !ok {
		// A follow-up request with no user turn yet gets the greeting.
		return composeGreeting(profile), ModeGreeting
	}

	topic := DetectTopics(last.Content)[0]
	return composeTopicReply(topic, profile, last.Content), topic
}

func lastUserMessage(history []storage.Message) (storage.Message, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == storage.RoleUser {
			return history[i], true
		}
	}
	return storage.Message{}, false
}

func composeGreeting(profile *storage.StudentProfile) string {
	major := knowledge.MajorByID(DetectMajorCategory(profile.IntendedMajors))
	tier := knowledge.TierByID(DetectUniversityTier(profile.TargetUniversities))
	grade := knowledge.GradePlanFor(profile.GradeLevel)
	strengthCats := DetectStrengthCategories(profile.Strengths)
	weaknessCats := DetectWeaknessCategories(profile.Weaknesses)

	schools := strings.Join(firstN(profile.TargetUniversities, 3), ", ")
	if len(profile.TargetUniversities) > 3 {
		schools += " and others"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `**Welcome to Astra, your College Admissions Advisor!**

I've reviewed your profile and I'm excited to help you on your journey to %s!

---

**Your Profile at a Glance:**
- **Grade Level:** %s
- **Target Major(s):** %s
- **Target Schools:** %s

---

**What It Takes for Your Target Schools:**

`, schools, gradeLabel(profile.GradeLevel), strings.Join(profile.IntendedMajors, ", "), strings.Join(profile.TargetUniversities, ", "))

	writeBullets(&b, firstN(tier.Expectations, 4))

	fmt.Fprintf(&b, `
---

**Your Current Strengths:**
%s

`, profile.Strengths)

	if len(strengthCats) > 0 {
		b.WriteString("**How to Build on These Strengths:**\n")
		for _, cat := range firstN(strengthCats, 2) {
			writeBullets(&b, firstN(knowledge.StrengthsGuidance[cat], 2))
		}
	}

	fmt.Fprintf(&b, `
**Areas to Develop:**
%s

`, profile.Weaknesses)

	if len(weaknessCats) > 0 {
		b.WriteString("**Recommendations to Address These:**\n")
		for _, cat := range firstN(weaknessCats, 2) {
			writeBullets(&b, firstN(knowledge.WeaknessesGuidance[cat], 2))
		}
	}

	fmt.Fprintf(&b, `
---

**Your %s Year Priorities:**

`, gradeLabel(profile.GradeLevel))

	writeBullets(&b, grade.Priorities)

	fmt.Fprintf(&b, `
---

**Recommended Next Steps for %s:**

**Courses to Consider:**
`, firstOr(profile.IntendedMajors, "Your Major"))

	writeBullets(&b, firstN(major.Courses, 3))

	b.WriteString("\n**Key Competitions:**\n")
	writeBullets(&b, firstN(major.Competitions, 3))

	b.WriteString("\n**Extracurricular Ideas:**\n")
	writeBullets(&b, firstN(major.Extracurriculars, 3))

	b.WriteString(`
---

**What would you like to explore?**

I can help you with:
- Course planning and academic strategy
- Extracurricular development and building your "spike"
- Research opportunities and competitions
- Summer programs and internships
- Essay brainstorming and strategy
- Application timeline and deadlines

Just ask me anything about your college journey!`)

	return b.String()
}

func composeTopicReply(topic string, profile *storage.StudentProfile, message string) string {
	major := knowledge.MajorByID(DetectMajorCategory(profile.IntendedMajors))
	tier := knowledge.TierByID(DetectUniversityTier(profile.TargetUniversities))
	grade := knowledge.GradePlanFor(profile.GradeLevel)

	switch topic {
	case "courses":
		return courseAdvice(profile, major, grade)
	case "extracurriculars":
		return extracurricularAdvice(profile, major, grade)
	case "research":
		return researchAdvice(profile, major)
	case "competitions":
		return competitionAdvice(profile, major, tier)
	case "essays":
		return essayAdvice(profile)
	case "summer":
		return summerAdvice(profile, major)
	case "timeline":
		return timelineAdvice(profile, grade)
	case "testing":
		return testingAdvice(tier)
	case "recommendation":
		return recommendationAdvice(profile)
	case "spike":
		return spikeAdvice(profile, major)
	case "waterloo":
		return waterlooAdvice()
	default:
		// Topics without a dedicated generator (including "interview")
		// get the general advice.
		return generalAdvice(profile, grade, major)
	}
}

func gradeLabel(level string) string {
	if label, ok := gradeLabels[level]; ok {
		return label
	}
	return level
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 && items[0] != "" {
		return items[0]
	}
	return fallback
}
