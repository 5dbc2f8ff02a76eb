package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestChargeEventsAndSpend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ChargeEventData{
		{UserID: "u1", Action: "explanation", Amount: 0, Outcome: "free"},
		{UserID: "u1", Action: "check-answer", Amount: 0, Outcome: "free"},
		{UserID: "u1", Action: "example", Amount: 20, Outcome: "debited", BalanceAfter: 80},
		{UserID: "u1", Action: "submit", Amount: 25, Outcome: "debited", BalanceAfter: 55},
		{UserID: "u1", Action: "explanation", Amount: 20, Outcome: "denied", Reason: "insufficient balance"},
		{UserID: "u2", Action: "submit", Amount: 25, Outcome: "debited", BalanceAfter: 10},
	}
	for i, e := range events {
		if err := repo.AppendCharge(ctx, e); err != nil {
			t.Fatalf("append charge %d: %v", i, err)
		}
	}

	sum, err := repo.Spend(ctx, "u1")
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if sum.TotalDebited != 45 {
		t.Errorf("total debited = %d, want 45", sum.TotalDebited)
	}
	if sum.FreeUsed != 2 {
		t.Errorf("free used = %d, want 2", sum.FreeUsed)
	}
	if sum.Denied != 1 {
		t.Errorf("denied = %d, want 1", sum.Denied)
	}
}

func TestRecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "pt-1", Action: "start", ExamName: "WAEC", SubjectName: "Physics",
	}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	for i := 1; i <= 3; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:     "pt-" + string(rune('0'+i)),
			Action:        "finish",
			ExamName:      "WAEC",
			SubjectName:   "Physics",
			QuestionCount: 10,
			Correct:       i,
			Score:         float64(i) * 10,
			DurationSecs:  600,
		})
		if err != nil {
			t.Fatalf("append finish %d: %v", i, err)
		}
	}

	got, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first; start events excluded.
	if got[0].SessionID != "pt-3" {
		t.Errorf("first session = %q, want pt-3", got[0].SessionID)
	}
	if got[0].Score != 30 {
		t.Errorf("score = %v, want 30", got[0].Score)
	}
}

func TestAssistAndSubmissionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAssistEvent(ctx, AssistEventData{
		SessionID:     "pt-1",
		Track:         "explanation",
		QuestionIndex: 2,
		QuestionID:    "41",
		Fallback:      true,
	})
	if err != nil {
		t.Fatalf("append assist: %v", err)
	}

	err = repo.AppendSubmissionEvent(ctx, SubmissionEventData{
		SessionID:        "pt-1",
		ScoreSaved:       true,
		SubmissionsSent:  8,
		SubmissionsTotal: 10,
	})
	if err != nil {
		t.Fatalf("append submission: %v", err)
	}

	count, err := s.Client().AssistEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count assists: %v", err)
	}
	if count != 1 {
		t.Errorf("assist count = %d, want 1", count)
	}
}

func TestQuotaLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuotaRepo()
	ctx := context.Background()

	// Unknown user starts at zero.
	used, err := repo.FreeUsed(ctx, "u1")
	if err != nil {
		t.Fatalf("free used (empty): %v", err)
	}
	if used != 0 {
		t.Errorf("free used = %d, want 0", used)
	}

	// Counter only ever goes up.
	for want := 1; want <= 3; want++ {
		got, err := repo.ConsumeFree(ctx, "u1")
		if err != nil {
			t.Fatalf("consume %d: %v", want, err)
		}
		if got != want {
			t.Errorf("consume = %d, want %d", got, want)
		}
	}

	// Each user has an independent counter.
	used, err = repo.FreeUsed(ctx, "u2")
	if err != nil {
		t.Fatalf("free used u2: %v", err)
	}
	if used != 0 {
		t.Errorf("u2 free used = %d, want 0", used)
	}

	if err := repo.Reset(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	used, err = repo.FreeUsed(ctx, "u1")
	if err != nil {
		t.Fatalf("free used after reset: %v", err)
	}
	if used != 0 {
		t.Errorf("free used after reset = %d, want 0", used)
	}
}

func TestLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "explanation",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
