package assist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/llm"
)

func physicsQuestion() bank.Question {
	return bank.Question{
		ID:      "41",
		Text:    "A body moving with uniform velocity has what acceleration?",
		Options: []string{"zero", "uniform", "increasing", "decreasing"},
		Correct: "zero",
		Topic:   bank.Topic{ID: 3, Name: "Mechanics"},
	}
}

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation": "Uniform velocity means no change in velocity, so acceleration is zero."}`),
	})
	svc := NewService(mock, DefaultConfig())

	exp, err := svc.Explain(context.Background(), physicsQuestion(), "uniform")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if exp.Fallback {
		t.Error("expected a real payload, not fallback")
	}
	if !strings.Contains(exp.Text, "zero") {
		t.Errorf("unexpected text: %q", exp.Text)
	}
	if exp.QuestionID != "41" {
		t.Errorf("question id = %q", exp.QuestionID)
	}

	// The wrong answer should reach the prompt so the tutor can address it.
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Student's answer: uniform") {
		t.Errorf("prompt missing student answer:\n%s", msg)
	}
}

func TestExplainOmitsCorrectUserAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation": "ok"}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Explain(context.Background(), physicsQuestion(), "zero"); err != nil {
		t.Fatalf("explain: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if strings.Contains(msg, "Student's answer") {
		t.Error("prompt should not flag a correct answer as wrong")
	}
}

func TestExplainProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Explain(context.Background(), physicsQuestion(), "")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestMakeExample(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"problem": "A car moves at constant 20 m/s. What is its acceleration?", "solution": "1. Velocity is constant.\n2. Acceleration is the rate of change of velocity.\n3. No change means zero.", "answer": "0 m/s^2"}`),
	})
	svc := NewService(mock, DefaultConfig())

	ex, err := svc.MakeExample(context.Background(), physicsQuestion())
	if err != nil {
		t.Fatalf("make example: %v", err)
	}
	if ex.Fallback {
		t.Error("expected a real payload")
	}
	if ex.Answer != "0 m/s^2" {
		t.Errorf("answer = %q", ex.Answer)
	}
}

func TestFallbackPayloads(t *testing.T) {
	q := physicsQuestion()

	exp := FallbackExplanation(q)
	if !exp.Fallback {
		t.Error("explanation not marked fallback")
	}
	if !strings.Contains(exp.Text, `"zero"`) {
		t.Errorf("fallback explanation must carry the correct answer: %q", exp.Text)
	}

	ex := FallbackExample(q)
	if !ex.Fallback {
		t.Error("example not marked fallback")
	}
	if ex.Answer != "zero" {
		t.Errorf("fallback example answer = %q", ex.Answer)
	}
	if ex.Problem != q.Text {
		t.Errorf("fallback example should reuse the question text")
	}
}
