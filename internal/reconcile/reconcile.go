// Package reconcile pushes a finished test to the platform: the score
// first, then every answered question as its own submission. The local
// result is already final when reconciliation starts; upstream failures
// degrade the record, never the student's result.
package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/store"
)

// Uploader is the slice of the platform API the reconciler needs.
type Uploader interface {
	SaveScore(ctx context.Context, testID string, score float64, completedAt time.Time) error
	CreateSubmission(ctx context.Context, input api.SubmissionInput) error
}

// Item is one answered question to record upstream.
type Item struct {
	QuestionID string
	Answer     string
	Correct    bool
}

// Input describes one finished test.
type Input struct {
	TestID      string // remote practice-test id; empty when registration failed
	Score       float64
	CompletedAt time.Time
	Items       []Item
}

// Outcome reports how much of the test made it upstream.
type Outcome struct {
	// Skipped is true when there was no remote record to reconcile.
	Skipped bool

	ScoreSaved bool
	ScoreErr   error

	Sent  int
	Total int
}

// Reconciler uploads finished tests and records the outcome locally.
type Reconciler struct {
	uploader Uploader
	events   store.EventRepo
}

// New creates a Reconciler. events may be nil.
func New(uploader Uploader, events store.EventRepo) *Reconciler {
	return &Reconciler{uploader: uploader, events: events}
}

// Run reconciles one finished test. The score PATCH goes first; whatever
// its outcome, every item is then submitted independently. A failed item
// never stops the others.
func (r *Reconciler) Run(ctx context.Context, input Input) Outcome {
	if input.TestID == "" {
		return Outcome{Skipped: true, Total: len(input.Items)}
	}

	out := Outcome{Total: len(input.Items)}

	if err := r.uploader.SaveScore(ctx, input.TestID, input.Score, input.CompletedAt); err != nil {
		out.ScoreErr = err
	} else {
		out.ScoreSaved = true
	}

	testIRI := "/api/practice_tests/" + input.TestID

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, item := range input.Items {
		wg.Add(1)
		go func(item Item) {
			defer wg.Done()
			err := r.uploader.CreateSubmission(ctx, api.SubmissionInput{
				PracticeTestIRI: testIRI,
				QuestionIRI:     api.QuestionIRI(item.QuestionID),
				UserAnswer:      item.Answer,
				IsCorrect:       item.Correct,
			})
			if err == nil {
				mu.Lock()
				out.Sent++
				mu.Unlock()
			}
		}(item)
	}
	wg.Wait()

	r.record(ctx, input.TestID, out)
	return out
}

func (r *Reconciler) record(ctx context.Context, testID string, out Outcome) {
	if r.events == nil {
		return
	}
	_ = r.events.AppendSubmissionEvent(ctx, store.SubmissionEventData{
		SessionID:        testID,
		ScoreSaved:       out.ScoreSaved,
		SubmissionsSent:  out.Sent,
		SubmissionsTotal: out.Total,
	})
}
