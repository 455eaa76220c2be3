package knowledge

// TopicRules lists the conversation topics and their trigger keywords.
// Detection collects every matching topic, but order still matters: the
// first match drives which response generator runs. Note the keyword
// lists overlap ("schedule" triggers both courses and timeline), which
// is why courses is ahead of timeline.
var TopicRules = []TopicRule{
	{Topic: "courses", Keywords: []string{"course", "class", "ap", "ib", "schedule", "curriculum", "subject"}},
	{Topic: "extracurriculars", Keywords: []string{"extracurricular", "activity", "activities", "club", "sport", "volunteer", "leadership"}},
	{Topic: "research", Keywords: []string{"research", "project", "paper", "publish", "professor", "lab"}},
	{Topic: "competitions", Keywords: []string{"competition", "olympiad", "contest", "award", "usaco", "amc", "usamo"}},
	{Topic: "essays", Keywords: []string{"essay", "personal statement", "supplemental", "writing", "common app"}},
	{Topic: "summer", Keywords: []string{"summer", "program", "internship", "camp"}},
	{Topic: "timeline", Keywords: []string{"timeline", "plan", "schedule", "when", "deadline"}},
	{Topic: "testing", Keywords: []string{"sat", "act", "test", "score", "standardized"}},
	{Topic: "recommendation", Keywords: []string{"recommendation", "letter", "rec", "teacher", "counselor"}},
	{Topic: "interview", Keywords: []string{"interview", "alumni", "tips"}},
	{Topic: "spike", Keywords: []string{"spike", "unique", "stand out", "special", "differentiate"}},
	{Topic: "waterloo", Keywords: []string{"waterloo", "aif", "ccc", "euclid", "cemc"}},
}

// GeneralTopic is the fallback when no topic keyword matches.
const GeneralTopic = "general"
