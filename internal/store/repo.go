package store

import (
	"context"
	"time"
)

// ChargeEventData captures a single authorization decision.
type ChargeEventData struct {
	UserID       string
	Action       string // explanation, check-answer, example, submit
	Description  string
	Amount       int
	Outcome      string // free, debited, denied
	Reason       string // denial reason, empty otherwise
	BalanceAfter int
}

// SessionEventData captures a practice-test lifecycle event.
type SessionEventData struct {
	SessionID     string
	Action        string // start, finish, abandon
	ExamName      string
	SubjectName   string
	QuestionCount int
	Correct       int
	Score         float64
	DurationSecs  int
}

// AssistEventData captures one use of an assist track on a question.
type AssistEventData struct {
	SessionID     string
	Track         string // explanation, check-answer, example
	QuestionIndex int
	QuestionID    string
	Fallback      bool
}

// SubmissionEventData captures the outcome of reconciling one session.
type SubmissionEventData struct {
	SessionID        string
	ScoreSaved       bool
	SubmissionsSent  int
	SubmissionsTotal int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionSummary is a read model over session finish events, used by stats.
type SessionSummary struct {
	SessionID     string
	ExamName      string
	SubjectName   string
	QuestionCount int
	Correct       int
	Score         float64
	DurationSecs  int
	Timestamp     time.Time
}

// LLMModelUsage aggregates request events per model, for cost estimates.
type LLMModelUsage struct {
	Model        string `json:"model"`
	Calls        int    `json:"calls"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// SpendSummary aggregates charge events for a user.
type SpendSummary struct {
	TotalDebited int // naira actually deducted
	FreeUsed     int // charges covered by the free allowance
	Denied       int // attempts refused
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendCharge records an authorization decision.
	AppendCharge(ctx context.Context, data ChargeEventData) error

	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAssistEvent records one assist-track use.
	AppendAssistEvent(ctx context.Context, data AssistEventData) error

	// AppendSubmissionEvent records a reconciliation outcome.
	AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsageByModel aggregates LLM token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// RecentSessions returns up to limit finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// Spend aggregates charge events for the given user.
	Spend(ctx context.Context, userID string) (SpendSummary, error)
}

// QuotaRepo tracks the persistent free-action counter per platform user.
type QuotaRepo interface {
	// FreeUsed returns how many free actions the user has consumed.
	// A user with no row has consumed zero.
	FreeUsed(ctx context.Context, userID string) (int, error)

	// ConsumeFree increments the counter and returns the new value.
	ConsumeFree(ctx context.Context, userID string) (int, error)

	// Reset zeroes the counter for the user.
	Reset(ctx context.Context, userID string) error
}
