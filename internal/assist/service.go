package assist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/llm"
)

// Service generates assist payloads through the configured LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an assist generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Explain generates an explanation for the question. userAnswer may be
// empty when the student asked before answering.
func (s *Service) Explain(ctx context.Context, q bank.Question, userAnswer string) (Explanation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	req := llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplanationUserMessage(q, userAnswer)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Explanation{}, fmt.Errorf("explanation generation: %w", err)
	}

	var out struct {
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Explanation{}, fmt.Errorf("parse explanation response: %w", err)
	}

	return Explanation{QuestionID: q.ID, Text: out.Explanation}, nil
}

// MakeExample generates a worked example similar to the question.
func (s *Service) MakeExample(ctx context.Context, q bank.Question) (Example, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExample)

	req := llm.Request{
		System: exampleSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExampleUserMessage(q)},
		},
		Schema:      ExampleSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Example{}, fmt.Errorf("example generation: %w", err)
	}

	var out struct {
		Problem  string `json:"problem"`
		Solution string `json:"solution"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Example{}, fmt.Errorf("parse example response: %w", err)
	}

	return Example{
		QuestionID: q.ID,
		Problem:    out.Problem,
		Solution:   out.Solution,
		Answer:     out.Answer,
	}, nil
}

// FallbackExplanation synthesizes a deterministic payload when generation
// failed after the charge went through. The student paid, so they get the
// correct answer at minimum.
func FallbackExplanation(q bank.Question) Explanation {
	return Explanation{
		QuestionID: q.ID,
		Text: fmt.Sprintf(
			"The correct answer is %q. We could not generate a detailed explanation right now; please try another question or check back later.",
			q.Correct),
		Fallback: true,
	}
}

// FallbackExample synthesizes a deterministic payload from the question
// itself for a failed first-time generation.
func FallbackExample(q bank.Question) Example {
	return Example{
		QuestionID: q.ID,
		Problem:    q.Text,
		Solution:   "Review the question and compare each option against the correct answer.",
		Answer:     q.Correct,
		Fallback:   true,
	}
}
