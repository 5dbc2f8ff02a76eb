package session

import (
	"testing"
	"time"

	"github.com/obinna/prepcli/internal/bank"
)

func threeQuestions() []bank.Question {
	return []bank.Question{
		{ID: "1", Text: "Q1", Options: []string{"a", "b"}, Correct: "a"},
		{ID: "2", Text: "Q2", Options: []string{"c", "d"}, Correct: "d"},
		{ID: "3", Text: "Q3", Options: []string{"e", "f"}, Correct: "e"},
	}
}

func TestCheckIsAtMostOncePerQuestion(t *testing.T) {
	s := NewState("pt-1", threeQuestions(), time.Hour, time.Now())

	// No answer selected: no check possible.
	if s.CanCheck() {
		t.Fatal("check must require a selected answer")
	}

	s.SelectAnswer("a")
	if !s.CanCheck() {
		t.Fatal("expected check to be available")
	}
	if !s.MarkChecked() {
		t.Error("answer 'a' should be correct")
	}

	// Second check on the same answer is not available.
	if s.CanCheck() {
		t.Error("question already checked")
	}

	// Re-selecting the same answer does not re-open the check.
	s.SelectAnswer("a")
	if s.CanCheck() {
		t.Error("unchanged answer must not re-open the check")
	}

	// Changing the answer re-opens it.
	s.SelectAnswer("b")
	if !s.CanCheck() {
		t.Error("changed answer must re-open the check")
	}
	if s.MarkChecked() {
		t.Error("answer 'b' should be wrong")
	}
}

func TestNavigation(t *testing.T) {
	s := NewState("pt-1", threeQuestions(), time.Hour, time.Now())

	if s.Prev() {
		t.Error("prev at first question should fail")
	}
	if !s.Next() || s.Current != 1 {
		t.Errorf("current = %d, want 1", s.Current)
	}
	s.Next()
	if s.Next() {
		t.Error("next at last question should fail")
	}

	s.Jump(99)
	if s.Current != 2 {
		t.Errorf("jump clamps high: current = %d", s.Current)
	}
	s.Jump(-5)
	if s.Current != 0 {
		t.Errorf("jump clamps low: current = %d", s.Current)
	}
}

func TestAnsweredCount(t *testing.T) {
	s := NewState("pt-1", threeQuestions(), time.Hour, time.Now())
	if s.Answered() != 0 {
		t.Fatalf("answered = %d, want 0", s.Answered())
	}
	s.SelectAnswer("a")
	s.Next()
	s.SelectAnswer("c")
	if s.Answered() != 2 {
		t.Errorf("answered = %d, want 2", s.Answered())
	}
}

func TestCountdown(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewState("pt-1", threeQuestions(), 30*time.Minute, start)

	if s.Expired(start) {
		t.Fatal("fresh session should not be expired")
	}
	if got := s.Remaining(start.Add(10 * time.Minute)); got != 20*time.Minute {
		t.Errorf("remaining = %v, want 20m", got)
	}

	at := start.Add(30 * time.Minute)
	if !s.Expired(at) {
		t.Error("session should expire exactly at the deadline")
	}
	if got := s.Remaining(start.Add(31 * time.Minute)); got != 0 {
		t.Errorf("remaining floors at zero, got %v", got)
	}
	if got := s.Elapsed(start.Add(45 * time.Minute)); got != 30*time.Minute {
		t.Errorf("elapsed caps at duration, got %v", got)
	}
}

func TestScore(t *testing.T) {
	start := time.Now()
	s := NewState("pt-1", threeQuestions(), time.Hour, start)

	s.SelectAnswer("a") // correct
	s.Next()
	s.SelectAnswer("c") // wrong
	// Q3 left unanswered.

	r := s.Score(start.Add(10 * time.Minute))
	if r.Total != 3 || r.Attempted != 2 || r.Correct != 1 {
		t.Errorf("result = %+v", r)
	}
	want := 100.0 / 3.0
	if r.Score < want-0.01 || r.Score > want+0.01 {
		t.Errorf("score = %v, want ~%v", r.Score, want)
	}
	if !r.Questions[0].Correct || r.Questions[1].Correct || r.Questions[2].Correct {
		t.Errorf("per-question results wrong: %+v", r.Questions)
	}
}

func TestScoreTrimsWhitespace(t *testing.T) {
	qs := []bank.Question{{ID: "1", Text: "Q", Options: []string{" a ", "b"}, Correct: " a "}}
	s := NewState("pt-1", qs, time.Hour, time.Now())
	s.SelectAnswer(" a ")
	r := s.Score(time.Now())
	if r.Correct != 1 {
		t.Errorf("whitespace-padded answers should match, got %+v", r)
	}
}

func TestEmptyTestScoresZero(t *testing.T) {
	s := NewState("pt-1", nil, time.Hour, time.Now())
	r := s.Score(time.Now())
	if r.Score != 0 {
		t.Errorf("score = %v, want 0", r.Score)
	}
}

func TestSetupDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		available    int
		wantCount    int
		wantDuration int
	}{
		{200, 60, 60},
		{45, 45, 60},
		{1, 1, 60},
	}
	for _, tt := range tests {
		got := DefaultSetup(tt.available)
		if got.QuestionCount != tt.wantCount || got.DurationMinutes != tt.wantDuration {
			t.Errorf("DefaultSetup(%d) = %+v", tt.available, got)
		}
	}

	if got := ClampCount(150, 500); got != 100 {
		t.Errorf("ClampCount hard cap: got %d, want 100", got)
	}
	if got := ClampCount(50, 30); got != 30 {
		t.Errorf("ClampCount available cap: got %d, want 30", got)
	}
	if got := ClampCount(0, 30); got != 1 {
		t.Errorf("ClampCount floor: got %d, want 1", got)
	}
	if got := ClampDuration(500); got != 240 {
		t.Errorf("ClampDuration cap: got %d, want 240", got)
	}
	if got := ClampDuration(0); got != 1 {
		t.Errorf("ClampDuration floor: got %d, want 1", got)
	}
}
