package advisor

import (
	"strings"
	"testing"

	"github.com/astralabs/astra-advisor-go/internal/storage"
)

func juniorCSProfile() *storage.StudentProfile {
	return &storage.StudentProfile{
		GradeLevel:         "grade-11",
		IntendedMajors:     []string{"Computer Science"},
		TargetUniversities: []string{"MIT", "Stanford", "Waterloo", "Berkeley"},
		CurrentActivities:  "Coding club, math team",
		Strengths:          "USACO Silver, club president",
		Weaknesses:         "essays and low SAT score",
		Timeline:           "starting-now",
	}
}

func TestComposeReplyWithoutProfile(t *testing.T) {
	reply, mode := ComposeReply(nil, nil, false)

	if mode != ModeOnboarding {
		t.Errorf("expected onboarding mode, got %s", mode)
	}
	if !strings.Contains(reply, "onboarding questionnaire") {
		t.Error("onboarding reply should ask for the questionnaire")
	}
}

func TestComposeGreeting(t *testing.T) {
	profile := juniorCSProfile()
	reply, mode := ComposeReply(nil, profile, true)

	if mode != ModeGreeting {
		t.Fatalf("expected greeting mode, got %s", mode)
	}

	// Three schools then "and others" because the list has four entries.
	if !strings.Contains(reply, "MIT, Stanford, Waterloo and others!") {
		t.Error("greeting should name the first three schools and summarize the rest")
	}
	if !strings.Contains(reply, "**Grade Level:** junior") {
		t.Error("greeting should use the junior label for grade-11")
	}
	// ivy_plus expectations lead because MIT is in the target list.
	if !strings.Contains(reply, "Near-perfect academics") {
		t.Error("greeting should include ivy_plus expectations")
	}
	// Strengths classified as leadership first, so its guidance leads.
	if !strings.Contains(reply, "Take on higher-level positions") {
		t.Error("greeting should include leadership guidance")
	}
	// Weaknesses mention essays and SAT; testing guidance comes first in
	// rule order.
	if !strings.Contains(reply, "Consider test-optional schools") {
		t.Error("greeting should include testing guidance")
	}
	if !strings.Contains(reply, "This is the most critical year") {
		t.Error("greeting should include junior-year priorities")
	}
	if !strings.Contains(reply, "AP Computer Science A (essential)") {
		t.Error("greeting should include cs course recommendations")
	}
	if !strings.Contains(reply, "USACO (USA Computing Olympiad)") {
		t.Error("greeting should include cs competitions")
	}
}

func TestComposeGreetingUnknownGradeLevel(t *testing.T) {
	profile := juniorCSProfile()
	profile.GradeLevel = "grade-13"

	reply, _ := ComposeReply(nil, profile, true)

	// Unknown levels keep the raw value as the label and fall back to
	// the junior-year plan.
	if !strings.Contains(reply, "**Grade Level:** grade-13") {
		t.Error("unknown grade level should appear verbatim")
	}
	if !strings.Contains(reply, "This is the most critical year") {
		t.Error("unknown grade level should fall back to junior-year priorities")
	}
}

func TestComposeTopicReplies(t *testing.T) {
	profile := juniorCSProfile()

	tests := []struct {
		name     string
		message  string
		wantMode string
		wantText string
	}{
		{"competitions", "What competitions should I do?", "competitions", "USACO (USA Computing Olympiad)"},
		{"waterloo", "tell me about waterloo AIF", "waterloo", "CCC (Canadian Computing Competition)"},
		{"essays", "help with my personal statement", "essays", "A challenge that shaped who you are today"},
		{"research", "how do I find a research lab", "research", "Cold Emailing"},
		{"spike", "how do I stand out", "spike", `Building Your "Spike"`},
		{"timeline heading", "what's my timeline", "timeline", "**Your Grade 11 Timeline:**"},
		{"testing targets", "should I retake the SAT", "testing", "Exceptional standardized test scores (1550+ SAT, 35+ ACT)"},
		{"general fallback", "hello!", "general", "Let me help with your college admissions journey!"},
		{"interview has no generator", "any interview tips?", "interview", "Let me help with your college admissions journey!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []storage.Message{{Role: storage.RoleUser, Content: tt.message}}
			reply, mode := ComposeReply(history, profile, false)

			if mode != tt.wantMode {
				t.Errorf("mode = %s, want %s", mode, tt.wantMode)
			}
			if !strings.Contains(reply, tt.wantText) {
				t.Errorf("reply missing %q", tt.wantText)
			}
		})
	}
}

func TestComposeReplyUsesLastUserMessage(t *testing.T) {
	profile := juniorCSProfile()
	history := []storage.Message{
		{Role: storage.RoleUser, Content: "What competitions should I do?"},
		{Role: storage.RoleAssistant, Content: "..."},
		{Role: storage.RoleUser, Content: "tell me about waterloo AIF"},
	}

	_, mode := ComposeReply(history, profile, false)
	if mode != "waterloo" {
		t.Errorf("expected waterloo from the last user message, got %s", mode)
	}
}

func TestComposeReplyNoUserTurnsFallsBackToGreeting(t *testing.T) {
	profile := juniorCSProfile()
	history := []storage.Message{{Role: storage.RoleAssistant, Content: "hello"}}

	_, mode := ComposeReply(history, profile, false)
	if mode != ModeGreeting {
		t.Errorf("expected greeting mode without user turns, got %s", mode)
	}
}

func TestComposeReplyIsDeterministic(t *testing.T) {
	profile := juniorCSProfile()
	history := []storage.Message{{Role: storage.RoleUser, Content: "plan my summer programs"}}

	first, _ := ComposeReply(history, profile, false)
	for i := 0; i < 5; i++ {
		again, _ := ComposeReply(history, profile, false)
		if again != first {
			t.Fatal("same inputs must produce identical replies")
		}
	}
}
